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
	"encoding/binary"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	rans "github.com/quantiled/rans"
	"github.com/quantiled/rans/internal"
	"github.com/quantiled/rans/wire"
	"github.com/urfave/cli/v2"
)

var decodeCommand = cli.Command{
	Action:    decodeAction,
	Name:      "decode",
	Usage:     "reverse ranscodec encode, writing one symbol per line",
	ArgsUsage: "<input>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: "path to write decoded symbols, one per line"},
		&cli.StringFlag{Name: "dist", Value: "categorical", Usage: "distribution kind: categorical or gaussian"},
		&cli.StringFlag{Name: "weights", Usage: "weights file for --dist=categorical (see fit)"},
		&cli.Int64Flag{Name: "min", Value: 0, Usage: "minimum supported symbol for --dist=categorical"},
		&cli.Int64Flag{Name: "max", Value: 255, Usage: "maximum supported symbol for --dist=categorical"},
		&cli.Float64Flag{Name: "mean", Value: 0, Usage: "mean for --dist=gaussian"},
		&cli.Float64Flag{Name: "std", Value: 1, Usage: "standard deviation for --dist=gaussian"},
	},
}

func decodeAction(ctx *cli.Context) error {
	input := ctx.Args().First()

	if input == "" {
		return errors.New("ranscodec decode: missing <input> argument")
	}

	raw, err := os.ReadFile(input)

	if err != nil {
		return errors.Wrapf(err, "ranscodec decode: read %s", input)
	}

	if len(raw) < 4 {
		return errors.New("ranscodec decode: file too short to hold a symbol count")
	}

	count := int(binary.LittleEndian.Uint32(raw[:4]))
	words, err := wire.Decode(raw[4:])

	if err != nil {
		return errors.Wrapf(err, "ranscodec decode")
	}

	c, err := rans.NewFromWords(words)

	if err != nil {
		return errors.Wrapf(err, "ranscodec decode")
	}

	var symbols []int32

	switch ctx.String("dist") {
	case "categorical":
		weightsPath := ctx.String("weights")

		if weightsPath == "" {
			return errors.New("ranscodec decode: --weights is required for --dist=categorical")
		}

		weights, err := internal.LoadWeights(weightsPath)

		if err != nil {
			return err
		}

		min, max := int32(ctx.Int64("min")), int32(ctx.Int64("max"))
		symbols, err = rans.PopIIDCategoricalSymbols(c, count, min, max, min, weights)

		if err != nil {
			return errors.Wrapf(err, "ranscodec decode")
		}

	case "gaussian":
		means := make([]float64, count)
		stds := make([]float64, count)

		for i := range means {
			means[i] = ctx.Float64("mean")
			stds[i] = ctx.Float64("std")
		}

		symbols, err = rans.PopGaussianSymbols(c, means, stds)

		if err != nil {
			return errors.Wrapf(err, "ranscodec decode")
		}

	default:
		return errors.Newf("ranscodec decode: unknown --dist %q", ctx.String("dist"))
	}

	if err := c.FinishDecoding(); err != nil {
		return errors.Wrapf(err, "ranscodec decode")
	}

	out, err := os.Create(ctx.String("output"))

	if err != nil {
		return errors.Wrapf(err, "ranscodec decode: create %s", ctx.String("output"))
	}

	defer out.Close()

	w := bufio.NewWriter(out)
	defer w.Flush()

	for _, s := range symbols {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return errors.Wrapf(err, "ranscodec decode: write output")
		}
	}

	return nil
}
