// Package report renders a count run for the console.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/aalvaropc/catcount/internal/domain"
)

// Report is the renderable view of one count run.
type Report struct {
	RunID  string
	Source string
	Result domain.ParseResult
}

// Write renders r to w in the given format (text|json|pretty).
func Write(w io.Writer, r Report, format string) error {
	switch format {
	case domain.FormatText, "":
		return WriteText(w, r.Result)
	case domain.FormatJSON:
		return WriteJSON(w, r)
	case domain.FormatPretty:
		if !isTerminal(w) {
			return WriteText(w, r.Result)
		}
		return WritePretty(w, r, DefaultTheme())
	default:
		return &domain.OpError{
			Op:   "report.write",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unsupported format %q (expected text|json|pretty): %w", format, domain.ErrInvalidConfig),
		}
	}
}

// WriteText prints the plain report: a CATEGORY/COUNT table with 10-wide
// left-justified names, a blank line, then the accepted lines verbatim.
func WriteText(w io.Writer, res domain.ParseResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %s\n", "CATEGORY", "COUNT")
	for _, c := range res.Counts {
		fmt.Fprintf(&b, "%-10s %d\n", c.Name, c.Count)
	}
	b.WriteString("\n")
	for _, l := range res.Lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

type jsonReport struct {
	RunID  string                 `json:"run_id"`
	Source string                 `json:"source"`
	Counts []domain.CategoryCount `json:"counts"`
	Lines  []string               `json:"lines"`
}

func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	payload := jsonReport{
		RunID:  r.RunID,
		Source: r.Source,
		Counts: r.Result.Counts,
		Lines:  r.Result.Lines,
	}
	if payload.Counts == nil {
		payload.Counts = []domain.CategoryCount{}
	}
	if payload.Lines == nil {
		payload.Lines = []string{}
	}
	return enc.Encode(payload)
}

// WritePretty renders the count table inside a bordered card. Accepted lines
// follow unstyled so they can still be copied verbatim.
func WritePretty(w io.Writer, r Report, th Theme) error {
	var table strings.Builder
	table.WriteString(th.Header.Render(fmt.Sprintf("%-10s %s", "CATEGORY", "COUNT")))
	for _, c := range r.Result.Counts {
		row := fmt.Sprintf("%-10s %d", c.Name, c.Count)
		if c.Count == 0 {
			row = th.Zero.Render(row)
		}
		table.WriteString("\n")
		table.WriteString(row)
	}

	var b strings.Builder
	if r.Source != "" {
		b.WriteString(th.Title.Render(r.Source))
		b.WriteString("\n")
	}
	b.WriteString(th.Card.Render(table.String()))
	b.WriteString("\n\n")
	for _, l := range r.Result.Lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
