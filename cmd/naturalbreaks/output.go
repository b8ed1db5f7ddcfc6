package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pschoepf/naturalbreaks/jenks"
	"gopkg.in/yaml.v3"
)

// outputFormat selects the renderer.
type outputFormat int

const (
	outText outputFormat = iota
	outJSON
	outYAML
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func parseFormat(s string) (outputFormat, error) {
	switch strings.ToLower(s) {
	case formatText:
		return outText, nil
	case formatJSON:
		return outJSON, nil
	case formatYAML, "yml":
		return outYAML, nil
	}
	return 0, fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
}

// breaksDoc is the structured shape of the breaks command.
type breaksDoc struct {
	Breaks []float64 `json:"breaks" yaml:"breaks"`
}

func writeBreaks(w io.Writer, f outputFormat, breaks []float64) error {
	switch f {
	case outJSON:
		return writeJSON(w, breaksDoc{Breaks: breaks})
	case outYAML:
		return writeYAML(w, breaksDoc{Breaks: breaks})
	}

	parts := make([]string, len(breaks))
	for i, b := range breaks {
		parts[i] = formatFloat(b)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}

func writeClassification(w io.Writer, f outputFormat, res *jenks.Classification) error {
	switch f {
	case outJSON:
		return writeJSON(w, res)
	case outYAML:
		return writeYAML(w, res)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CLASS\tLOWER\tUPPER\tCOUNT\tMEAN\tSSD")
	for i, c := range res.Classes {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n",
			i, formatFloat(c.Lower), formatFloat(c.Upper), c.Count, formatFloat(c.Mean), formatFloat(c.SSD))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "SDAM=%s SDCM=%s GVF=%.6f\n", formatFloat(res.SDAM), formatFloat(res.SDCM), res.GVF)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
