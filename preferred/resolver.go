// Package preferred picks the single best dictionary entry for a headword
// that the dictionary lists several times.
package preferred

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/flashcards/zhdeck/dict"
)

// referenceRe matches definitions that only point at another entry.
var referenceRe = regexp.MustCompile(`^(?:variant of |old variant of |see [^ ]+\[[^\]]+\]$)`)

const erhuaPrefix = "erhua variant of "

// Resolver chooses entries using an override table and, failing that, a
// preference for common-noun senses that are not cross references.
type Resolver struct {
	dict      *dict.Dict
	overrides Overrides
	log       *slog.Logger
}

// NewResolver creates a Resolver. Neither d nor overrides may be modified
// afterwards.
func NewResolver(log *slog.Logger, d *dict.Dict, overrides Overrides) *Resolver {
	if overrides == nil {
		overrides = Overrides{}
	}
	return &Resolver{dict: d, overrides: overrides, log: log}
}

// Resolve returns the preferred entry for the simplified headword simp.
// category is an optional grammatical category used to pick an override.
//
// An entry picked by an override is returned as is. Otherwise, if the chosen
// entry is an erhua variant, the definitions, classifiers and
// Taiwan pinyin of the headword without its final character are used instead,
// while the headword and pinyin of the erhua form are kept.
func (r *Resolver) Resolve(simp, category string) (dict.Entry, error) {
	entries := r.dict.SearchSimplified(simp)
	if len(entries) == 0 {
		return dict.Entry{}, &ErrNotInDict{Headword: simp}
	}

	best, overridden := r.choose(entries, Key(simp, category))
	if overridden {
		return best, nil
	}
	if !strings.HasPrefix(best.FirstDefinition(), erhuaPrefix) {
		return best, nil
	}

	n := utf8.RuneCountInString(simp)
	if n <= 1 {
		return dict.Entry{}, &ErrErhuaUnderflow{Headword: simp}
	}
	_, size := utf8.DecodeLastRuneInString(simp)
	base := simp[:len(simp)-size]
	if utf8.RuneCountInString(base) >= n {
		return dict.Entry{}, &ErrErhuaUnderflow{Headword: simp}
	}
	r.log.Debug("following erhua redirect", slog.String("headword", simp), slog.String("target", base))

	target, err := r.Resolve(base, category)
	if err != nil {
		return dict.Entry{}, fmt.Errorf("resolve erhua target of %q: %w", simp, err)
	}
	return dict.Entry{
		Traditional:  best.Traditional,
		Simplified:   best.Simplified,
		Pinyin:       best.Pinyin,
		TaiwanPinyin: target.TaiwanPinyin,
		Definitions:  target.Definitions,
		Classifiers:  target.Classifiers,
	}, nil
}

// choose applies the override for key, then the goodness heuristic, and
// reports whether an override picked the entry. entries must not be empty.
func (r *Resolver) choose(entries []dict.Entry, key string) (dict.Entry, bool) {
	if o, ok := r.overrides[key]; ok {
		for _, e := range entries {
			if (o.Pinyin == "" || o.Pinyin == e.Pinyin) &&
				(o.Traditional == "" || o.Traditional == e.Traditional) {
				return e, true
			}
		}
		r.log.Warn("override matches no entry", slog.String("key", key))
	}

	// The last good entry wins, so a later common-noun sense beats an earlier
	// proper-noun one.
	best := entries[0]
	good := 0
	for _, e := range entries {
		if isGood(e) {
			best = e
			good++
		}
	}
	if good == 0 {
		r.log.Debug("no good entry, using the first", slog.String("key", key))
	}
	return best, false
}

// isGood reports whether e is neither a cross reference nor a proper noun.
func isGood(e dict.Entry) bool {
	if referenceRe.MatchString(e.FirstDefinition()) {
		return false
	}
	if e.Pinyin == "" {
		return true
	}
	first := e.Pinyin[0]
	return first < 'A' || first > 'Z'
}
