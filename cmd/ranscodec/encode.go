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
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	rans "github.com/quantiled/rans"
	"github.com/quantiled/rans/internal"
	"github.com/quantiled/rans/wire"
	"github.com/urfave/cli/v2"
)

var encodeCommand = cli.Command{
	Action:    encodeAction,
	Name:      "encode",
	Usage:     "rANS-encode a file of symbols, one signed integer per line",
	ArgsUsage: "<input>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: "path to write the encoded stream"},
		&cli.StringFlag{Name: "dist", Value: "categorical", Usage: "distribution kind: categorical or gaussian"},
		&cli.StringFlag{Name: "weights", Usage: "weights file for --dist=categorical (see fit)"},
		&cli.Int64Flag{Name: "min", Value: 0, Usage: "minimum supported symbol for --dist=categorical"},
		&cli.Int64Flag{Name: "max", Value: 255, Usage: "maximum supported symbol for --dist=categorical"},
		&cli.Float64Flag{Name: "mean", Value: 0, Usage: "mean for --dist=gaussian"},
		&cli.Float64Flag{Name: "std", Value: 1, Usage: "standard deviation for --dist=gaussian"},
	},
}

func encodeAction(ctx *cli.Context) error {
	input := ctx.Args().First()

	if input == "" {
		return errors.New("ranscodec encode: missing <input> argument")
	}

	symbols, err := readSymbols(input)

	if err != nil {
		return err
	}

	c := rans.New()

	switch ctx.String("dist") {
	case "categorical":
		weightsPath := ctx.String("weights")

		if weightsPath == "" {
			return errors.New("ranscodec encode: --weights is required for --dist=categorical")
		}

		weights, err := internal.LoadWeights(weightsPath)

		if err != nil {
			return err
		}

		min, max := int32(ctx.Int64("min")), int32(ctx.Int64("max"))

		if err := rans.PushIIDCategoricalSymbols(c, symbols, min, max, min, weights); err != nil {
			return errors.Wrapf(err, "ranscodec encode")
		}

	case "gaussian":
		means := make([]float64, len(symbols))
		stds := make([]float64, len(symbols))

		for i := range symbols {
			means[i] = ctx.Float64("mean")
			stds[i] = ctx.Float64("std")
		}

		if err := rans.PushGaussianSymbols(c, symbols, means, stds); err != nil {
			return errors.Wrapf(err, "ranscodec encode")
		}

	default:
		return errors.Newf("ranscodec encode: unknown --dist %q", ctx.String("dist"))
	}

	words := c.FinishEncoding()
	encoded := wire.Encode(words)

	out := make([]byte, 0, 4+len(encoded))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(symbols)))
	out = append(out, encoded...)

	if err := os.WriteFile(ctx.String("output"), out, 0o644); err != nil {
		return errors.Wrapf(err, "ranscodec encode: write %s", ctx.String("output"))
	}

	return nil
}

// readSymbols parses one int32 per non-blank line of path.
func readSymbols(path string) ([]int32, error) {
	f, err := os.Open(path)

	if err != nil {
		return nil, errors.Wrapf(err, "ranscodec: open %s", path)
	}

	defer f.Close()

	var symbols []int32
	scanner := bufio.NewScanner(f)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}

		v, err := strconv.ParseInt(line, 10, 32)

		if err != nil {
			return nil, errors.Wrapf(err, "ranscodec: %s line %d: invalid symbol %q", path, lineNo, line)
		}

		symbols = append(symbols, int32(v))
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "ranscodec: read %s", path)
	}

	return symbols, nil
}
