package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"

	"github.com/bitmemlabs/bitmem/memory"
)

// Measures the cost of single-bit writes as the buffer grows. Writes clone
// one page plus the page table instead of the whole buffer, so per-write
// cost should stay near-flat while the full-copy baseline grows linearly.

var (
	writes  = flag.Int("writes", 1<<14, "number of single-bit writes per buffer size")
	maxSize = flag.Int("maxsize", 1<<22, "largest buffer size, in bytes")
)

func main() {
	flag.Parse()

	data := make([][]string, 0)
	for size := 1 << 10; size <= *maxSize; size <<= 2 {
		log.Printf("bench: size %v starting...", bytefmt.ByteSize(uint64(size)))

		perWrite, err := benchSetBit(size, *writes)
		if err != nil {
			log.Fatalf("bench failure: %v", err)
		}

		baseline, err := benchFullCopy(size, *writes)
		if err != nil {
			log.Fatalf("bench failure: %v", err)
		}

		analysis, err := benchCount(size)
		if err != nil {
			log.Fatalf("bench failure: %v", err)
		}

		data = append(data, []string{
			bytefmt.ByteSize(uint64(size)),
			strconv.Itoa(*writes),
			perWrite.String(),
			baseline.String(),
			analysis.String(),
		})
	}

	report([]string{"size", "writes", "ns/write", "full-copy ns/write", "count-bits"}, data)
}

func benchSetBit(size, writes int) (time.Duration, error) {
	m, err := memory.New(size)
	if err != nil {
		return 0, err
	}

	t := time.Now()
	for i := 0; i < writes; i++ {
		m, err = m.SetBit(i%size, i%8, true)
		if err != nil {
			return 0, err
		}
	}
	return time.Since(t) / time.Duration(writes), nil
}

// benchFullCopy is the naive baseline: every write rebuilds the buffer
// through a whole-range SetBytes.
func benchFullCopy(size, writes int) (time.Duration, error) {
	m, err := memory.New(size)
	if err != nil {
		return 0, err
	}
	content, err := m.GetBytes(0, size)
	if err != nil {
		return 0, err
	}

	t := time.Now()
	for i := 0; i < writes; i++ {
		content[i%size] |= 1 << (i % 8)
		m, err = m.SetBytes(0, content)
		if err != nil {
			return 0, err
		}
	}
	return time.Since(t) / time.Duration(writes), nil
}

func benchCount(size int) (time.Duration, error) {
	m, err := memory.New(size)
	if err != nil {
		return 0, err
	}

	t := time.Now()
	m.CountSetBits()
	return time.Since(t), nil
}

func report(header []string, data [][]string) {
	fmt.Printf("\n\nBENCHMARKS: writes=%v\n", *writes)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetBorder(true)
	table.AppendBulk(data)
	table.Render()
}
