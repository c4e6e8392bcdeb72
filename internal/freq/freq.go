package freq

import (
	"sort"

	"github.com/papercloud/papercloud/internal/model"
)

// Table maps words to occurrence counts.
type Table map[string]int

// Count tallies the tokens into a new table.
func Count(tokens []string) Table {
	t := make(Table, len(tokens)/4+1)
	for _, tok := range tokens {
		t[tok]++
	}
	return t
}

// Get returns the count for word, or zero if absent.
func (t Table) Get(word string) int {
	return t[word]
}

// TopN returns the n highest-count entries in descending count order.
// Ties break alphabetically so output is deterministic across runs.
// If n exceeds the table size, all entries are returned.
func (t Table) TopN(n int) []model.WordCount {
	if n <= 0 {
		return nil
	}

	entries := make([]model.WordCount, 0, len(t))
	for word, count := range t {
		entries = append(entries, model.WordCount{Word: word, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})

	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// Cap returns a table containing only the n highest-count entries,
// using the same ordering as TopN. The receiver is not modified.
func (t Table) Cap(n int) Table {
	if n >= len(t) {
		return t
	}

	capped := make(Table, n)
	for _, e := range t.TopN(n) {
		capped[e.Word] = e.Count
	}
	return capped
}
