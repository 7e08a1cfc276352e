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

package internal

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// FileData encapsulates an input file's path and size, reported by the
// CLI alongside its compression statistics.
type FileData struct {
	FullPath string
	Name     string
	Size     int64
}

// NewFileData stats path and returns its FileData.
func NewFileData(path string) (FileData, error) {
	fi, err := os.Stat(path)

	if err != nil {
		return FileData{}, errors.Wrapf(err, "internal: stat %s", path)
	}

	return FileData{FullPath: path, Name: filepath.Base(path), Size: fi.Size()}, nil
}

// LoadWeights reads a weight vector from path, one non-negative
// float64 per line (blank lines and lines starting with '#' are
// skipped), in the format written by `cmd/ranscodec fit`. It is the
// file-backed counterpart to passing a literal []float64 to
// distributions.NewCategorical, letting the CLI drive a Categorical
// from a histogram produced by an external tool.
func LoadWeights(path string) ([]float64, error) {
	f, err := os.Open(path)

	if err != nil {
		return nil, errors.Wrapf(err, "internal: open weights file %s", path)
	}

	defer f.Close()

	var weights []float64
	scanner := bufio.NewScanner(f)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		w, err := strconv.ParseFloat(line, 64)

		if err != nil {
			return nil, errors.Wrapf(err, "internal: %s line %d: invalid weight %q", path, lineNo, line)
		}

		if w < 0 {
			return nil, errors.Newf("internal: %s line %d: negative weight %v", path, lineNo, w)
		}

		weights = append(weights, w)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "internal: read weights file %s", path)
	}

	return weights, nil
}
