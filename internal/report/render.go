package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Result is the outcome of checking or completing a single sequence.
type Result struct {
	Input      string `json:"input"`
	Valid      bool   `json:"valid"`
	CheckDigit string `json:"check_digit,omitempty"`
	Sequence   string `json:"sequence,omitempty"`
	Err        string `json:"error,omitempty"`
}

type PrintOptions struct {
	NoColor bool
	Quiet   bool
}

// PrintResults writes one status line per result and, for more than one
// result, a summary footer. Quiet suppresses the per-line output but keeps
// the footer.
func PrintResults(w io.Writer, results []Result, opts PrintOptions) {
	valid, invalid, malformed := 0, 0, 0
	for _, r := range results {
		switch {
		case r.Err != "":
			malformed++
		case r.Valid:
			valid++
		default:
			invalid++
		}
		if opts.Quiet {
			continue
		}
		if r.Err != "" {
			fmt.Fprintf(w, "%s %s  (%s)\n", statusWord("ERROR", color.FgYellow, opts.NoColor), r.Input, r.Err)
			continue
		}
		if r.Valid {
			fmt.Fprintf(w, "%s %s\n", statusWord("VALID", color.FgGreen, opts.NoColor), r.Input)
		} else {
			fmt.Fprintf(w, "%s %s\n", statusWord("INVALID", color.FgRed, opts.NoColor), r.Input)
		}
	}
	if len(results) > 1 {
		fmt.Fprintf(w, "\nChecked: %d (valid: %d, invalid: %d, malformed: %d)\n",
			len(results), valid, invalid, malformed)
	}
}

// statusWord pads before coloring so columns line up with color enabled.
func statusWord(word string, attr color.Attribute, noColor bool) string {
	padded := fmt.Sprintf("%-8s", word)
	if noColor {
		return padded
	}
	return color.New(attr).Sprint(padded)
}

// MarshalResults pretty-prints results as JSON for pipelines.
func MarshalResults(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// UnmarshalResults decodes results JSON, useful for ingestion tests.
func UnmarshalResults(r io.Reader) ([]Result, error) {
	var rs []Result
	if err := json.NewDecoder(r).Decode(&rs); err != nil {
		return nil, err
	}
	return rs, nil
}
