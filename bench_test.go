package main

import (
	"fmt"
	"io"
	"testing"

	"github.com/SienaCSISParallelProcessing/pthreadslife/life"
)

func benchThreadSweep(b *testing.B, gridsize, iters int) {
	for threads := 1; threads <= 16; threads++ {
		p := life.Params{
			NumThreads: threads,
			GridSize:   gridsize,
			InitPct:    0.5,
			NumIters:   iters,
		}
		name := fmt.Sprintf("%dx%dx%d-%d", p.GridSize, p.GridSize, p.NumIters, p.NumThreads)
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if err := life.Run(p, io.Discard); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func Benchmark_128_1000(b *testing.B) {
	benchThreadSweep(b, 128, 1000)
}

func Benchmark_256_250(b *testing.B) {
	benchThreadSweep(b, 256, 250)
}

func Benchmark_512_60(b *testing.B) {
	benchThreadSweep(b, 512, 60)
}
