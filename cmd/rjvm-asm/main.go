package main

import (
	"fmt"
	"os"

	"github.com/wkhere/rjvm"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <sourcefile> [outputfile]\n", os.Args[0])
		os.Exit(1)
	}

	src, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading source file: %v\n", err)
		os.Exit(1)
	}
	program, err := rjvm.Assemble(src)
	src.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Assembly error: %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) == 2 {
		// Hex dump for inspection.
		for i, b := range program {
			fmt.Printf("%02x ", b)
			if (i+1)%16 == 0 {
				fmt.Println()
			}
		}
		if len(program)%16 != 0 {
			fmt.Println()
		}
		return
	}

	if err := os.WriteFile(os.Args[2], program, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
}
