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
	"bufio"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/quantiled/rans/internal"
	"github.com/urfave/cli/v2"
)

var fitCommand = cli.Command{
	Action:    fitAction,
	Name:      "fit",
	Usage:     "derive a Categorical weight vector from a raw byte file's order-0 histogram",
	ArgsUsage: "<input>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: "weights file to write, one frequency per line"},
	},
}

func fitAction(ctx *cli.Context) error {
	input := ctx.Args().First()

	if input == "" {
		return errors.New("ranscodec fit: missing <input> argument")
	}

	fd, err := internal.NewFileData(input)

	if err != nil {
		return errors.Wrapf(err, "ranscodec fit")
	}

	data, err := os.ReadFile(input)

	if err != nil {
		return errors.Wrapf(err, "ranscodec fit: read %s", input)
	}

	freqs := make([]int, 256)
	internal.ComputeByteHistogram(data, freqs)

	entropy1024 := internal.ComputeFirstOrderEntropy1024(len(data), freqs)

	if err := writeWeights(ctx.String("output"), freqs); err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"input", "bytes", "distinct symbols", "order-0 entropy (bits/symbol)"})

	distinct := 0

	for _, f := range freqs {
		if f > 0 {
			distinct++
		}
	}

	t.AppendRow(table.Row{fd.Name, fd.Size, distinct, fmt.Sprintf("%.3f", float64(entropy1024)/1024.0)})
	t.Render()

	return nil
}

func writeWeights(path string, freqs []int) error {
	f, err := os.Create(path)

	if err != nil {
		return errors.Wrapf(err, "ranscodec fit: create %s", path)
	}

	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	for _, freq := range freqs {
		if _, err := fmt.Fprintln(w, freq); err != nil {
			return errors.Wrapf(err, "ranscodec fit: write %s", path)
		}
	}

	return nil
}
