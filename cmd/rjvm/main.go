package main

import (
	"log"
	"os"
	"strconv"

	"github.com/wkhere/rjvm"
)

const usage = `Usage:
  rjvm server <port>
  rjvm client <host> <port> <N> [<file>]`

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		log.Fatalln(usage)
	}
	switch os.Args[1] {
	case "server":
		runServer(os.Args[2:])
	case "client":
		runClient(os.Args[2:])
	default:
		log.Fatalln(usage)
	}
}

func runServer(args []string) {
	if len(args) != 1 {
		log.Fatalln(usage)
	}
	s := &rjvm.Server{Port: args[0], Trace: os.Stdout}
	if err := s.ListenAndServe(); err != nil {
		log.Fatalln(err)
	}
}

func runClient(args []string) {
	if len(args) < 3 || len(args) > 4 {
		log.Fatalln(usage)
	}
	n, err := strconv.ParseInt(args[2], 10, 32)
	if err != nil {
		log.Fatalf("bad variable count %q: %v", args[2], err)
	}

	src := os.Stdin
	if len(args) == 4 {
		f, err := os.Open(args[3])
		if err != nil {
			log.Fatalln(err)
		}
		defer f.Close()
		src = f
	}

	c := &rjvm.Client{
		Host:    args[0],
		Port:    args[1],
		NumVars: int32(n),
		Src:     src,
		Out:     os.Stdout,
	}
	if err := c.Run(); err != nil {
		log.Fatalln(err)
	}
}
