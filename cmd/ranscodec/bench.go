/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"runtime"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/klauspost/compress/zstd"
	rans "github.com/quantiled/rans"
	"github.com/quantiled/rans/internal"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/stat"
)

var benchCommand = cli.Command{
	Action:    benchAction,
	Name:      "bench",
	Usage:     "compare rANS-coded size against a zstd baseline and the empirical entropy bound",
	ArgsUsage: "<input>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "weights", Required: true, Usage: "weights file for the Categorical distribution (see fit)"},
		&cli.Int64Flag{Name: "min", Value: 0, Usage: "minimum supported symbol"},
		&cli.Int64Flag{Name: "max", Value: 255, Usage: "maximum supported symbol"},
		&cli.IntFlag{Name: "jobs", Value: runtime.NumCPU(), Usage: "number of independent coders to split the input across"},
	},
}

func benchAction(ctx *cli.Context) error {
	input := ctx.Args().First()

	if input == "" {
		return errors.New("ranscodec bench: missing <input> argument")
	}

	fd, err := internal.NewFileData(input)

	if err != nil {
		return errors.Wrapf(err, "ranscodec bench")
	}

	symbols, err := readSymbols(input)

	if err != nil {
		return err
	}

	if len(symbols) == 0 {
		return errors.New("ranscodec bench: input has no symbols")
	}

	weights, err := internal.LoadWeights(ctx.String("weights"))

	if err != nil {
		return err
	}

	min, max := int32(ctx.Int64("min")), int32(ctx.Int64("max"))

	ransBits, err := parallelEncodeBits(symbols, min, max, weights, ctx.Int("jobs"))

	if err != nil {
		return errors.Wrapf(err, "ranscodec bench")
	}

	probs := weightsToProbabilities(weights)
	entropyBits := stat.Entropy(probs) / math.Ln2 * float64(len(symbols))

	zstdBytes, err := zstdCompressedSize(symbols)

	if err != nil {
		return errors.Wrapf(err, "ranscodec bench: zstd baseline")
	}

	fmt.Printf("input: %s (%d bytes, %d symbols)\n", fd.Name, fd.Size, len(symbols))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"method", "bytes", "bits/symbol"})
	t.AppendRow(table.Row{"rans", ransBits / 8, fmt.Sprintf("%.3f", float64(ransBits)/float64(len(symbols)))})
	t.AppendRow(table.Row{"empirical entropy bound", int(math.Ceil(entropyBits / 8)), fmt.Sprintf("%.3f", entropyBits/float64(len(symbols)))})
	t.AppendRow(table.Row{"zstd", zstdBytes, fmt.Sprintf("%.3f", float64(zstdBytes)*8/float64(len(symbols)))})
	t.Render()

	return nil
}

// parallelEncodeBits splits symbols into jobs chunks, each encoded by
// an independent Coder concurrently, and sums the resulting bit
// counts. This is the bench subcommand's worker pool: concurrency
// across independent Coder values, never shared access to one.
func parallelEncodeBits(symbols []int32, min, max int32, weights []float64, jobs int) (int, error) {
	if jobs < 1 {
		jobs = 1
	}

	if jobs > len(symbols) {
		jobs = len(symbols)
	}

	jobsPerTask, err := internal.ComputeJobsPerTask(make([]uint, jobs), uint(len(symbols)), uint(jobs))

	if err != nil {
		return 0, err
	}

	var wg sync.WaitGroup
	bits := make([]int, jobs)
	errs := make([]error, jobs)

	offset := 0

	for i := 0; i < jobs; i++ {
		chunk := symbols[offset : offset+int(jobsPerTask[i])]
		offset += int(jobsPerTask[i])

		wg.Add(1)

		go func(i int, chunk []int32) {
			defer wg.Done()

			c := rans.New()

			if err := rans.PushIIDCategoricalSymbols(c, chunk, min, max, min, weights); err != nil {
				errs[i] = err
				return
			}

			bits[i] = c.NumBits()
		}(i, chunk)
	}

	wg.Wait()

	total := 0

	for i, err := range errs {
		if err != nil {
			return 0, err
		}

		total += bits[i]
	}

	return total, nil
}

func weightsToProbabilities(weights []float64) []float64 {
	var sum float64

	for _, w := range weights {
		sum += w
	}

	probs := make([]float64, len(weights))

	if sum == 0 {
		for i := range probs {
			probs[i] = 1.0 / float64(len(weights))
		}

		return probs
	}

	for i, w := range weights {
		probs[i] = w / sum
	}

	return probs
}

func zstdCompressedSize(symbols []int32) (int, error) {
	raw := make([]byte, 4*len(symbols))

	for i, s := range symbols {
		binary.LittleEndian.PutUint32(raw[4*i:], uint32(s))
	}

	sink := internal.NewBufferStream()

	enc, err := zstd.NewWriter(sink)

	if err != nil {
		return 0, err
	}

	if _, err := enc.Write(raw); err != nil {
		enc.Close()
		return 0, err
	}

	if err := enc.Close(); err != nil {
		return 0, err
	}

	return sink.Len(), nil
}
