// zalloc-bench measures wipe throughput so the default clearing
// strategy can be compared against the reference one. Build normally
// for the fast path, or with -tags wipe_reference for the per-byte
// reference strategy, and compare the two runs.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/zeromem/zalloc-go/internal/wipe"
)

func main() {
	iters := flag.Int("iters", 2000, "wipe iterations per size")
	flag.Parse()

	sizes := []int{64, 1 << 10, 64 << 10, 1 << 20, 16 << 20}

	fmt.Printf("%-10s %-14s %s\n", "size", "per wipe", "throughput")
	for _, size := range sizes {
		buf := make([]byte, size)
		for i := range buf {
			buf[i] = 0xFF
		}

		start := time.Now()
		for i := 0; i < *iters; i++ {
			wipe.Bytes(buf)
		}
		elapsed := time.Since(start)

		perOp := elapsed / time.Duration(*iters)
		mbps := float64(size) * float64(*iters) / elapsed.Seconds() / (1 << 20)
		fmt.Printf("%-10s %-14s %.0f MiB/s\n", humanSize(size), perOp, mbps)
	}
}

func humanSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%dMiB", n>>20)
	case n >= 1<<10:
		return fmt.Sprintf("%dKiB", n>>10)
	default:
		return fmt.Sprintf("%dB", n)
	}
}
