package csvio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/knapsack/core"
)

// Write renders sol as "points:<value>" followed by one ID per line.
func Write(w io.Writer, sol core.Solution) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s%d\n", pointsPrefix, sol.Value)
	for _, id := range sol.Choices {
		fmt.Fprintln(bw, id)
	}

	return bw.Flush()
}

// SaveFile appends sol to path, creating the file if needed.
func SaveFile(path string, sol core.Solution) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Write(f, sol)
}

// ReadSolution parses one solution written by Write. Blank lines are ignored;
// reading stops at the next "points:" line or at EOF.
//
// Errors: ErrMalformedSolution when the first non-blank line is not a valid
// points line.
func ReadSolution(r io.Reader) (core.Solution, error) {
	var (
		sc     = bufio.NewScanner(r)
		sol    core.Solution
		header bool
	)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !header {
			rest, ok := strings.CutPrefix(line, pointsPrefix)
			if !ok {
				return core.Solution{}, fmt.Errorf("%q: %w", line, ErrMalformedSolution)
			}
			v, err := strconv.ParseInt(rest, 10, 64)
			if err != nil {
				return core.Solution{}, fmt.Errorf("%q: %w", line, errors.Join(ErrMalformedSolution, ErrNotInteger))
			}
			sol.Value = v
			header = true
			continue
		}
		if strings.HasPrefix(line, pointsPrefix) {
			break
		}
		sol.Choices = append(sol.Choices, line)
	}
	if err := sc.Err(); err != nil {
		return core.Solution{}, err
	}
	if !header {
		return core.Solution{}, ErrMalformedSolution
	}

	return sol, nil
}

// WriteCatalog writes an instance in the format Load reads: a header, the
// container row, then every item in catalog order.
func WriteCatalog(w io.Writer, cat *core.Catalog, initial core.Capacity) error {
	if cat == nil {
		return core.ErrNilCatalog
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, defaultHeader)
	fmt.Fprintf(bw, "%s, %d, %d, %d\n", KnapsackID, initial.Value, initial.Weight, initial.Volume)
	for _, it := range cat.Items() {
		fmt.Fprintf(bw, "%s, %d, %d, %d\n", it.ID, it.Value, it.Weight, it.Volume)
	}

	return bw.Flush()
}
