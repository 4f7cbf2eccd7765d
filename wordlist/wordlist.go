// Package wordlist turns curriculum word lists into ChineseNotes by looking
// each word up in the dictionary.
package wordlist

import (
	"fmt"
	"io"

	"github.com/flashcards/zhdeck/dict"
)

// ChineseNote is a dictionary entry chosen for one word-list item together
// with the tags describing where the item came from.
type ChineseNote struct {
	Entry dict.Entry
	Tags  []string
}

// Ingestor reads one word-list format.
type Ingestor interface {
	Ingest(r io.Reader) ([]ChineseNote, error)
}

// Searcher looks up dictionary entries.
type Searcher interface {
	Search(params dict.SearchParams) []dict.Entry
}

// Resolver picks the preferred entry for a simplified headword.
type Resolver interface {
	Resolve(simp, category string) (dict.Entry, error)
}

// ErrMalformedRow is returned for a word-list row that does not have the
// format's shape.
type ErrMalformedRow struct {
	Line   int
	Row    string
	Reason string
}

func (e *ErrMalformedRow) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Row)
}

func skipSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
