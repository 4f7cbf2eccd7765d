// Package card renders ChineseNotes into the fields shown on a flashcard.
package card

import (
	"crypto/sha256"
	"encoding/binary"
	"strings"

	"github.com/flashcards/zhdeck/dict"
	"github.com/flashcards/zhdeck/pinyin"
	"github.com/flashcards/zhdeck/wordlist"
)

// Card holds the rendered fields of one note.
type Card struct {
	GUID       string `json:"guid"`
	Simplified string `json:"simplified"`
	// Traditional is empty when it is the same as Simplified.
	Traditional  string   `json:"traditional,omitempty"`
	Pinyin       string   `json:"pinyin"`
	TaiwanPinyin string   `json:"taiwan_pinyin,omitempty"`
	Definitions  string   `json:"definitions"`
	Classifiers  string   `json:"classifiers,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// New renders note. guidPrefix namespaces the GUID so that decks built from
// different word lists do not collide.
func New(note wordlist.ChineseNote, guidPrefix string) Card {
	e := note.Entry
	c := Card{
		GUID:         GUID(guidPrefix, e),
		Simplified:   e.Simplified,
		Pinyin:       pinyin.ToDisplayMarkup(e.Pinyin),
		TaiwanPinyin: pinyin.ToDisplayMarkup(e.TaiwanPinyin),
		Definitions:  DefinitionsHTML(e.Definitions),
		Classifiers:  ClassifiersText(e.Classifiers),
		Tags:         note.Tags,
	}
	if e.Traditional != e.Simplified {
		c.Traditional = e.Traditional
	}
	return c
}

// DefinitionsHTML renders definitions as an ordered list. Definitions are not
// escaped.
func DefinitionsHTML(defs []string) string {
	var b strings.Builder
	b.WriteString("<div class=\"defs_wrapper\">\n<ol>")
	for _, d := range defs {
		b.WriteString("\n<li>\n")
		b.WriteString(d)
		b.WriteString("\n</li>")
	}
	b.WriteString("\n</ol>\n</div>")
	return b.String()
}

// ClassifiersText renders classifiers as "个|個(<markup>), 位(<markup>)".
func ClassifiersText(clfrs []dict.Classifier) string {
	parts := make([]string, 0, len(clfrs))
	for _, c := range clfrs {
		chars := c.Simplified
		if c.Simplified != c.Traditional {
			chars += "|" + c.Traditional
		}
		parts = append(parts, chars+"("+pinyin.ToDisplayMarkup(c.Pinyin)+")")
	}
	return strings.Join(parts, ", ")
}

const base91 = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!#$%&()*+,-./:;<=>?@[]^_`{|}~"

// GUID derives a stable note identifier from the headword and pinyin: the
// first 8 bytes of a SHA-256 digest written in base 91.
func GUID(prefix string, e dict.Entry) string {
	sum := sha256.Sum256([]byte(prefix + " " + e.Simplified + " " + e.Traditional + " " + e.Pinyin))
	val := binary.BigEndian.Uint64(sum[:8])

	var out []byte
	for val > 0 {
		out = append(out, base91[val%91])
		val /= 91
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}
