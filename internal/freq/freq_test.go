package freq

import (
	"testing"

	"github.com/papercloud/papercloud/internal/stopword"
)

func TestCount(t *testing.T) {
	t.Parallel()

	t.Run("tallies duplicates", func(t *testing.T) {
		t.Parallel()

		table := Count([]string{"spin", "charge", "spin", "spin"})
		if table["spin"] != 3 {
			t.Errorf("expected spin=3, got %d", table["spin"])
		}
		if table["charge"] != 1 {
			t.Errorf("expected charge=1, got %d", table["charge"])
		}
	})

	t.Run("empty stream yields empty table", func(t *testing.T) {
		t.Parallel()

		table := Count(nil)
		if len(table) != 0 {
			t.Errorf("expected empty table, got %d entries", len(table))
		}
	})

	t.Run("absent words count zero", func(t *testing.T) {
		t.Parallel()

		table := Count([]string{"spin"})
		if got := table.Get("missing"); got != 0 {
			t.Errorf("expected 0 for absent word, got %d", got)
		}
	})
}

// TestRawVersusFiltered checks the core invariant: filtering only removes
// entries, never adds, and untouched words keep identical counts.
func TestRawVersusFiltered(t *testing.T) {
	t.Parallel()

	stops := stopword.NewSet()
	tokens := []string{"the", "quantum", "state", "the", "the", "quantum", "and"}

	raw := Count(tokens)
	filtered := Count(stops.Filter(tokens))

	for word, rawCount := range raw {
		filteredCount := filtered.Get(word)
		if rawCount < filteredCount {
			t.Errorf("raw[%q]=%d < filtered[%q]=%d", word, rawCount, word, filteredCount)
		}
		if stops.Contains(word) {
			if filteredCount != 0 {
				t.Errorf("stopword %q should have filtered count 0, got %d", word, filteredCount)
			}
		} else if rawCount != filteredCount {
			t.Errorf("non-stopword %q: raw=%d filtered=%d, want equal", word, rawCount, filteredCount)
		}
	}

	if raw.Get("the") != 3 || filtered.Get("the") != 0 {
		t.Errorf("expected the: raw=3 filtered=0, got raw=%d filtered=%d",
			raw.Get("the"), filtered.Get("the"))
	}
	if raw.Get("quantum") != 2 || filtered.Get("quantum") != 2 {
		t.Errorf("expected quantum: raw=2 filtered=2, got raw=%d filtered=%d",
			raw.Get("quantum"), filtered.Get("quantum"))
	}
}

func TestTopN(t *testing.T) {
	t.Parallel()

	table := Table{"cc": 2, "aa": 5, "bb": 2, "dd": 9}

	t.Run("descending by count with alphabetical ties", func(t *testing.T) {
		t.Parallel()

		got := table.TopN(10)
		wantWords := []string{"dd", "aa", "bb", "cc"}
		if len(got) != len(wantWords) {
			t.Fatalf("expected %d entries, got %d", len(wantWords), len(got))
		}
		for i, w := range wantWords {
			if got[i].Word != w {
				t.Errorf("top[%d] = %q, want %q", i, got[i].Word, w)
			}
		}
	})

	t.Run("truncates to n", func(t *testing.T) {
		t.Parallel()

		got := table.TopN(2)
		if len(got) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(got))
		}
		if got[0].Word != "dd" || got[1].Word != "aa" {
			t.Errorf("expected [dd aa], got [%s %s]", got[0].Word, got[1].Word)
		}
	})

	t.Run("non-positive n yields nothing", func(t *testing.T) {
		t.Parallel()

		if got := table.TopN(0); got != nil {
			t.Errorf("expected nil for n=0, got %v", got)
		}
	})
}

func TestCap(t *testing.T) {
	t.Parallel()

	table := Table{"aa": 5, "bb": 3, "cc": 1}

	t.Run("keeps highest counts", func(t *testing.T) {
		t.Parallel()

		capped := table.Cap(2)
		if len(capped) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(capped))
		}
		if capped["aa"] != 5 || capped["bb"] != 3 {
			t.Errorf("expected aa=5 bb=3, got %v", capped)
		}
	})

	t.Run("returns receiver when n is large enough", func(t *testing.T) {
		t.Parallel()

		capped := table.Cap(10)
		if len(capped) != 3 {
			t.Errorf("expected full table, got %d entries", len(capped))
		}
	})
}
