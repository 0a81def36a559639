package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/SienaCSISParallelProcessing/pthreadslife/life"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s num_threads gridsize init_pct num_iters\n", os.Args[0])
	os.Exit(1)
}

func main() {
	if len(os.Args) != 5 {
		usage()
	}

	numThreads, err := strconv.Atoi(os.Args[1])
	if err != nil {
		usage()
	}
	gridSize, err := strconv.Atoi(os.Args[2])
	if err != nil {
		usage()
	}
	initPct, err := strconv.ParseFloat(os.Args[3], 64)
	if err != nil {
		usage()
	}
	numIters, err := strconv.Atoi(os.Args[4])
	if err != nil {
		usage()
	}

	p := life.Params{
		NumThreads: numThreads,
		GridSize:   gridSize,
		InitPct:    initPct,
		NumIters:   numIters,
	}
	if err := life.Run(p, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
