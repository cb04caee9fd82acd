package domain

import (
	"cmp"
	"slices"
)

// CategoryCount is a single row of the ranked count table.
type CategoryCount struct {
	Name  string `json:"category"`
	Count int    `json:"count"`
}

// ParseResult is the outcome of one aggregation. Counts is sorted by count
// descending (ties in first-insertion order); Lines keeps first-seen order.
type ParseResult struct {
	Counts []CategoryCount `json:"counts"`
	Lines  []string        `json:"lines"`
}

// CategoryCounts returns a copy of the ranked count table.
func (r ParseResult) CategoryCounts() []CategoryCount {
	return slices.Clone(r.Counts)
}

// AcceptedLines returns a copy of the unique accepted lines.
func (r ParseResult) AcceptedLines() []string {
	return slices.Clone(r.Lines)
}

// CountFor reports the count for a category; ok is false for names outside
// the legal set.
func (r ParseResult) CountFor(name string) (int, bool) {
	for _, c := range r.Counts {
		if c.Name == name {
			return c.Count, true
		}
	}
	return 0, false
}

// Tally accumulates lines for a single aggregation. It is not safe for
// concurrent use. Each Result call returns an independent snapshot.
type Tally struct {
	legal LegalSet

	order  []string // category insertion order
	counts map[string]int

	lines []string
	seen  map[string]struct{}
}

func NewTally(legal LegalSet) *Tally {
	return &Tally{
		legal:  legal,
		counts: map[string]int{},
		lines:  []string{},
		seen:   map[string]struct{}{},
	}
}

// Add folds one raw line into the tally. Unclassifiable and illegal lines
// are ignored; a line already accepted for a known category is not recounted.
func (t *Tally) Add(line string) {
	category, ok := ClassifyLine(line)
	if !ok || !t.legal.Contains(category) {
		return
	}

	_, dup := t.seen[line]
	if _, known := t.counts[category]; known {
		if !dup {
			t.counts[category]++
		}
	} else {
		t.order = append(t.order, category)
		t.counts[category] = 1
	}

	if !dup {
		t.seen[line] = struct{}{}
		t.lines = append(t.lines, line)
	}
}

// Result zero-fills missing legal categories after the real sightings and
// returns the ranked, immutable view.
func (t *Tally) Result() ParseResult {
	counts := make([]CategoryCount, 0, t.legal.Len())
	for _, name := range t.order {
		counts = append(counts, CategoryCount{Name: name, Count: t.counts[name]})
	}
	for _, name := range t.legal.names {
		if _, ok := t.counts[name]; !ok {
			counts = append(counts, CategoryCount{Name: name})
		}
	}

	slices.SortStableFunc(counts, func(a, b CategoryCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	return ParseResult{
		Counts: counts,
		Lines:  slices.Clone(t.lines),
	}
}

// Aggregate runs a complete tally over an in-memory sequence of lines.
func Aggregate(legal LegalSet, lines []string) ParseResult {
	t := NewTally(legal)
	for _, l := range lines {
		t.Add(l)
	}
	return t.Result()
}
