package main

import (
	"fmt"
	"os"

	"github.com/wkhere/rjvm"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <programfile>\n", os.Args[0])
		os.Exit(1)
	}

	program, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(rjvm.Disassemble(program))
}
