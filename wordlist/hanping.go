package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/flashcards/zhdeck/dict"
	"github.com/flashcards/zhdeck/pinyin"
)

var hanpingRe = regexp.MustCompile(`^(.+?)(?: \[(.+?)\])? +(.+)$`)

// elided marks a simplified character that is the same as the traditional one.
const elided = '-'

// HanpingWord is one parsed line of a Hanping word list.
type HanpingWord struct {
	Traditional string
	Simplified  string
	// Pinyin is tone-numbered.
	Pinyin string
}

// ParseHanpingLine parses a line such as
//
//	紀錄片 [纪录-]     jì lù piàn       newsreel • documentary
//
// The bracketed simplified form is omitted when it equals the traditional
// form, and uses '-' for characters that do not change. The pinyin has one
// syllable per character of the headword.
func ParseHanpingLine(line string) (HanpingWord, error) {
	m := hanpingRe.FindStringSubmatch(line)
	if m == nil {
		return HanpingWord{}, &ErrMalformedRow{Row: line, Reason: "not a Hanping word list line"}
	}
	w := HanpingWord{Traditional: m[1], Simplified: m[1]}

	if m[2] != "" {
		trad := []rune(w.Traditional)
		simp := []rune(m[2])
		if len(simp) != len(trad) {
			return HanpingWord{}, &ErrMalformedRow{Row: line, Reason: "simplified and traditional forms differ in length"}
		}
		for i, c := range simp {
			if c == elided {
				simp[i] = trad[i]
			}
		}
		w.Simplified = string(simp)
	}

	n := utf8.RuneCountInString(w.Traditional)
	fields := strings.Fields(m[3])
	if len(fields) < n {
		return HanpingWord{}, &ErrMalformedRow{Row: line, Reason: "too few pinyin syllables"}
	}
	w.Pinyin = pinyin.ToTonedASCII(strings.Join(fields[:n], " "))
	return w, nil
}

// Hanping ingests word lists exported from the Hanping dictionary app.
type Hanping struct {
	log  *slog.Logger
	dict Searcher
	tag  string
}

// NewHanping creates a Hanping ingestor. If tag is not empty every note gets
// it.
func NewHanping(log *slog.Logger, d Searcher, tag string) *Hanping {
	return &Hanping{log: log, dict: d, tag: tag}
}

func (h *Hanping) Ingest(r io.Reader) ([]ChineseNote, error) {
	var tags []string
	if h.tag != "" {
		tags = []string{h.tag}
	}

	var notes []ChineseNote
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), " \r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		w, err := ParseHanpingLine(text)
		if err != nil {
			var malformed *ErrMalformedRow
			if errors.As(err, &malformed) {
				malformed.Line = line
			}
			return nil, fmt.Errorf("hanping word list: %w", err)
		}

		entries := h.dict.Search(dict.SearchParams{
			Traditional: w.Traditional,
			Simplified:  w.Simplified,
			Pinyin:      w.Pinyin,
		})
		if len(entries) != 1 {
			h.log.Warn("word does not match exactly one entry",
				slog.String("traditional", w.Traditional),
				slog.String("simplified", w.Simplified),
				slog.String("pinyin", w.Pinyin),
				slog.Int("entries", len(entries)),
			)
		}
		if len(entries) == 0 {
			continue
		}
		// Matching ignores case, so "gan1" and "Gan1" can both match; the
		// lowercase common-noun sense comes last in CEDICT.
		notes = append(notes, ChineseNote{Entry: entries[len(entries)-1], Tags: tags})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("hanping word list: %w", err)
	}

	h.log.Info("word list ingested", slog.String("list", "hanping"), slog.Int("notes", len(notes)))
	return notes, nil
}
