package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ivlev/cloud2video/internal/combos"
)

func main() {
	outputPtr := flag.String("output", "parameter_combinations.dat", "File to write, one combination per line")
	opsPtr := flag.String("operators", "", "YAML file with mutations and crossovers lists (default: built-in set)")
	flag.Parse()

	ops := combos.Default()
	if *opsPtr != "" {
		var err error
		ops, err = combos.LoadOperators(*opsPtr)
		if err != nil {
			log.Fatalf("[-] Error loading operators: %v", err)
		}
	}

	configs := combos.Configs(ops)
	f, err := os.Create(*outputPtr)
	if err != nil {
		log.Fatalf("[-] Error creating %s: %v", *outputPtr, err)
	}
	if err := combos.Write(f, configs); err != nil {
		f.Close()
		log.Fatalf("[-] Error writing %s: %v", *outputPtr, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("[-] Error writing %s: %v", *outputPtr, err)
	}
	fmt.Printf("[+++] %d combinations written to %s\n", len(configs), *outputPtr)
}
