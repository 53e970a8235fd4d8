// Package readfiles handles the plain-text grid files consumed and
// produced by the command-line front end: one matrix per file,
// whitespace-separated values, one row per line, NaN allowed for missing
// samples.
package readfiles

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yueyanglu/lu-etal/utils"
)

func ReadMatrix(path string) (R utils.Matrix, err error) {
	file, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("unable to read matrix file: %w", err)
		return
	}
	defer file.Close()

	var (
		scanner = bufio.NewScanner(file)
		data    []float64
		nr, nc  int
	)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if nc == 0 {
			nc = len(fields)
		} else if len(fields) != nc {
			err = fmt.Errorf("%s: row %d has %d columns, want %d", path, nr+1, len(fields), nc)
			return
		}
		for _, field := range fields {
			var val float64
			if val, err = strconv.ParseFloat(field, 64); err != nil {
				err = fmt.Errorf("%s: row %d: %w", path, nr+1, err)
				return
			}
			data = append(data, val)
		}
		nr++
	}
	if err = scanner.Err(); err != nil {
		return
	}
	if nr == 0 {
		err = fmt.Errorf("%s: no data", path)
		return
	}
	R = utils.NewMatrix(nr, nc, data)
	return
}

func WriteMatrix(path string, R utils.Matrix) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to write matrix file: %w", err)
	}
	defer file.Close()

	var (
		w      = bufio.NewWriter(file)
		nr, nc = R.Dims()
	)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			if j != 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%.12g", R.At(i, j))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
