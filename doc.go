// Package ga evolves fixed-length binary genotypes toward a hidden goal genotype.
//
// Each generation every member is scored by the number of genes it shares
// with the goal. The best top_n members survive (truncation selection) and
// the whole next generation is bred from them: where two parents agree the
// child inherits their gene, where they disagree a majority vote over several
// biased draws picks it. The run ends when a member matches the goal exactly.
//
// Basic usage:
//
//	config, err := ga.LoadConfig("path/to/config.ini")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	pop, err := ga.NewPopulation(config, nil)
//	if err != nil {
//		log.Fatalf("Error creating population: %v", err)
//	}
//
//	result, err := pop.Run()
//	if err != nil {
//		log.Fatalf("Error running evolution: %v", err)
//	}
//	fmt.Println(result)
package ga
