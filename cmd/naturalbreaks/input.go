package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// maxLineSize bounds a single input line; wide CSV rows are common.
const maxLineSize = 16 << 20

// readInput reads values from args[0] or, when absent or "-", from stdin.
func (a *app) readInput(cmd *cobra.Command, args []string) ([]float64, error) {
	var (
		r      io.Reader = cmd.InOrStdin()
		source           = "stdin"
	)
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r, source = f, args[0]
	}

	values, err := parseValues(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	a.logger.Debug("read input", zap.String("source", source), zap.Int("values", len(values)))
	return values, nil
}

// parseValues scans numbers separated by whitespace, commas or semicolons.
// Lines whose first non-blank character is '#' are skipped.
func parseValues(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var values []float64
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		for _, field := range strings.FieldsFunc(text, isSeparator) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q is not a number", line, field)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

func isSeparator(r rune) bool {
	return r == ',' || r == ';' || unicode.IsSpace(r)
}

// timed runs fn and returns its wall time as a log field.
func timed(fn func()) zap.Field {
	start := time.Now()
	fn()
	return zap.Duration("elapsed", time.Since(start))
}
