package domain

import "strings"

// DefaultCategories is the legal set used when no configuration overrides it.
var DefaultCategories = []string{"PERSON", "PLACE", "ANIMAL", "COMPUTER", "OTHER"}

const lineSeparator = " "

// LegalSet is an immutable set of category names.
// Names keeps the order the caller supplied them in; that order decides where
// zero-count categories land among equal counts.
type LegalSet struct {
	names []string
	index map[string]struct{}
}

// NewLegalSet builds a LegalSet. Duplicate names collapse to their first
// occurrence. Empty names are dropped: a line starting with a space classifies
// as "" and must never be legal.
func NewLegalSet(names ...string) LegalSet {
	s := LegalSet{
		names: make([]string, 0, len(names)),
		index: make(map[string]struct{}, len(names)),
	}
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, dup := s.index[n]; dup {
			continue
		}
		s.index[n] = struct{}{}
		s.names = append(s.names, n)
	}
	return s
}

func (s LegalSet) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

func (s LegalSet) Len() int { return len(s.names) }

// Names returns a copy of the legal names in construction order.
func (s LegalSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// ClassifyLine extracts the candidate category of a raw line: the first token
// when the line splits on single spaces into at least two tokens.
// Trailing empty tokens do not count, so "", "   " and "PERSON " are all
// unclassifiable. Leading spaces are kept, which yields an empty category.
func ClassifyLine(line string) (string, bool) {
	tokens := strings.Split(line, lineSeparator)
	n := len(tokens)
	for n > 0 && tokens[n-1] == "" {
		n--
	}
	if n < 2 {
		return "", false
	}
	return tokens[0], true
}
