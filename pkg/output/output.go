// Package output renders check results for humans and machines.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/ppl/pkg/check"
)

var (
	green  = "\033[32m"
	yellow = "\033[33m"
	red    = "\033[31m"
	dim    = "\033[2m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, yellow, red, dim, reset = "", "", "", "", ""
	}
}

// PrintResult writes a check result with colored status. Details are
// indented to line up with the name.
func PrintResult(w io.Writer, r check.Result) {
	var color string
	switch r.Status {
	case check.StatusOK:
		color = green
	case check.StatusWarn:
		color = yellow
	default:
		color = red
	}
	tag := "[" + string(r.Status) + "]"
	_, _ = fmt.Fprintf(w, "%s%s%s %s\n", color, tag, reset, r.Name)

	indent := strings.Repeat(" ", len(tag)+1)
	for _, d := range r.Details {
		_, _ = fmt.Fprintf(w, "%s%s\n", indent, formatLabel(d))
	}
}

// formatLabel dims the "label:" prefix of a detail line.
func formatLabel(s string) string {
	label, rest, ok := strings.Cut(s, ":")
	if !ok {
		return s
	}
	return dim + label + ":" + reset + rest
}

// Report is the machine-readable form of a check run.
type Report struct {
	OK      bool           `json:"ok"`
	Results []check.Result `json:"results"`
}

// PrintJSON writes results as an indented JSON report.
func PrintJSON(w io.Writer, results []check.Result) error {
	rep := Report{OK: true, Results: results}
	for _, r := range results {
		if !r.OK() {
			rep.OK = false
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
