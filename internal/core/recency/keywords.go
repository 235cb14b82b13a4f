// Package recency classifies the relative date labels that listing pages print next to reviews
package recency

import (
	"slices"
	"strings"
)

// Table is a named list of substrings marking a review as recent
type Table struct {
	Locale   string   `yaml:"locale" json:"locale"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// DefaultTables returns the built-in ja and en tables
func DefaultTables() []Table {
	return []Table{
		{Locale: "ja", Keywords: []string{"日前", "週間前", "時間前", "分前"}},
		{Locale: "en", Keywords: []string{
			"day ago", "days ago",
			"week ago", "weeks ago",
			"hour ago", "hours ago",
			"minute ago", "minutes ago",
		}},
	}
}

// Matcher checks date labels against a flattened keyword list.
// Matching is substring containment on the lower-cased label
type Matcher struct {
	keywords []string
}

// NewMatcher flattens tables into a matcher; blank keywords are dropped
func NewMatcher(tables ...Table) *Matcher {
	m := &Matcher{}
	for _, t := range tables {
		for _, k := range t.Keywords {
			k = strings.ToLower(strings.TrimSpace(k))
			if k == "" || slices.Contains(m.keywords, k) {
				continue
			}
			m.keywords = append(m.keywords, k)
		}
	}
	return m
}

// Default returns a matcher over DefaultTables
func Default() *Matcher { return NewMatcher(DefaultTables()...) }

// IsRecent reports whether dateText contains any recent keyword
func (m *Matcher) IsRecent(dateText string) bool {
	if m == nil || dateText == "" {
		return false
	}
	s := strings.ToLower(dateText)
	for _, k := range m.keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// Keywords returns a copy of the flattened keyword list
func (m *Matcher) Keywords() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keywords)
}

// MergeTables appends extra tables after base, merging keywords of the same locale
func MergeTables(base []Table, extra ...Table) []Table {
	out := make([]Table, 0, len(base)+len(extra))
	for _, t := range base {
		out = append(out, Table{Locale: t.Locale, Keywords: slices.Clone(t.Keywords)})
	}
	for _, t := range extra {
		i := slices.IndexFunc(out, func(o Table) bool { return o.Locale == t.Locale })
		if i < 0 {
			out = append(out, Table{Locale: t.Locale, Keywords: slices.Clone(t.Keywords)})
			continue
		}
		out[i].Keywords = append(out[i].Keywords, t.Keywords...)
	}
	return out
}
