package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/catcount/internal/domain"
)

func sampleResult() domain.ParseResult {
	return domain.Aggregate(
		domain.NewLegalSet(domain.DefaultCategories...),
		[]string{"PERSON test", "PERSON test", "PERSON test1", "PLACE test", "ANIMAL test", "COMPUTER windows", "OTHER water"},
	)
}

func TestWriteText_ExactShape(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "" +
		"CATEGORY   COUNT\n" +
		"PERSON     2\n" +
		"PLACE      1\n" +
		"ANIMAL     1\n" +
		"COMPUTER   1\n" +
		"OTHER      1\n" +
		"\n" +
		"PERSON test\n" +
		"PERSON test1\n" +
		"PLACE test\n" +
		"ANIMAL test\n" +
		"COMPUTER windows\n" +
		"OTHER water\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("text report mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteText_LongCategoryNotTruncated(t *testing.T) {
	res := domain.Aggregate(domain.NewLegalSet("VERYLONGCATEGORY"), []string{"VERYLONGCATEGORY x"})

	var buf bytes.Buffer
	if err := WriteText(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "VERYLONGCATEGORY 1\n") {
		t.Fatalf("expected full category name, got:\n%s", buf.String())
	}
}

func TestWriteText_EmptyResult(t *testing.T) {
	res := domain.Aggregate(domain.NewLegalSet("PERSON", "PLACE"), nil)

	var buf bytes.Buffer
	if err := Write(&buf, Report{Result: res}, domain.FormatText); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "CATEGORY   COUNT\nPERSON     0\nPLACE      0\n\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := Report{RunID: "abc123", Source: "input.txt", Result: sampleResult()}
	if err := Write(&buf, r, domain.FormatJSON); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got jsonReport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if got.RunID != "abc123" || got.Source != "input.txt" {
		t.Fatalf("unexpected metadata: %+v", got)
	}
	if diff := cmp.Diff(sampleResult().Counts, got.Counts); diff != "" {
		t.Fatalf("counts mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(buf.String(), `"category": "PERSON"`) {
		t.Fatalf("expected category key in JSON, got:\n%s", buf.String())
	}
}

func TestWrite_JSONEmptyLinesIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Report{}, domain.FormatJSON); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"lines": []`) || !strings.Contains(buf.String(), `"counts": []`) {
		t.Fatalf("expected empty arrays, got:\n%s", buf.String())
	}
}

func TestWrite_PrettyFallsBackToTextWhenNotTerminal(t *testing.T) {
	var pretty, text bytes.Buffer
	r := Report{Result: sampleResult()}
	if err := Write(&pretty, r, domain.FormatPretty); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := WriteText(&text, r.Result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pretty.String() != text.String() {
		t.Fatalf("expected text fallback, got:\n%s", pretty.String())
	}
}

func TestWritePretty_RendersCard(t *testing.T) {
	th := DefaultTheme()
	th.Card = th.Card.BorderStyle(lipgloss.NormalBorder())

	var buf bytes.Buffer
	r := Report{Source: "input.txt", Result: sampleResult()}
	if err := WritePretty(&buf, r, th); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"input.txt", "CATEGORY", "PERSON", "OTHER water\n"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in pretty output:\n%s", want, out)
		}
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, Report{}, "xml")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}
