package wordlist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/flashcards/zhdeck/dict"
)

// HSK ingests the HSK word list: CSV rows of
//
//	simplified,category,level
//
// where category is usually empty. Notes are tagged HSK_Level_<level>.
type HSK struct {
	curriculum
}

// NewHSK creates an HSK ingestor. Words in skip are dropped without a
// diagnostic.
func NewHSK(log *slog.Logger, d Searcher, resolver Resolver, skip []string) *HSK {
	return &HSK{curriculum{log: log, dict: d, resolver: resolver, skip: skipSet(skip)}}
}

func (h *HSK) Ingest(r io.Reader) ([]ChineseNote, error) {
	return h.ingest(r, "hsk", func(line int, row []string) (item, error) {
		level, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return item{}, &ErrMalformedRow{Line: line, Row: strings.Join(row, ","), Reason: "level is not a number"}
		}
		return item{
			simp:     strings.TrimSpace(row[0]),
			category: strings.TrimSpace(row[1]),
			tag:      fmt.Sprintf("HSK_Level_%d", level),
		}, nil
	})
}

// Integrated ingests the Integrated Chinese word list: CSV rows of
//
//	simplified,level,lesson
//
// Notes are tagged IC_<level>_<lesson>.
type Integrated struct {
	curriculum
}

// NewIntegrated creates an Integrated Chinese ingestor.
func NewIntegrated(log *slog.Logger, d Searcher, resolver Resolver, skip []string) *Integrated {
	return &Integrated{curriculum{log: log, dict: d, resolver: resolver, skip: skipSet(skip)}}
}

func (ic *Integrated) Ingest(r io.Reader) ([]ChineseNote, error) {
	return ic.ingest(r, "integrated", func(line int, row []string) (item, error) {
		level, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return item{}, &ErrMalformedRow{Line: line, Row: strings.Join(row, ","), Reason: "level is not a number"}
		}
		lesson, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return item{}, &ErrMalformedRow{Line: line, Row: strings.Join(row, ","), Reason: "lesson is not a number"}
		}
		return item{
			simp: strings.TrimSpace(row[0]),
			tag:  fmt.Sprintf("IC_%d_%d", level, lesson),
		}, nil
	})
}

type item struct {
	simp     string
	category string
	tag      string
}

// curriculum holds what the CSV-based ingestors share: every row names a
// simplified headword that is resolved to its preferred entry.
type curriculum struct {
	log      *slog.Logger
	dict     Searcher
	resolver Resolver
	skip     map[string]bool
}

func (c *curriculum) ingest(r io.Reader, name string, parse func(line int, row []string) (item, error)) ([]ChineseNote, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.Comment = '#'

	var notes []ChineseNote
	missing := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s word list: %w", name, err)
		}
		line, _ := reader.FieldPos(0)

		it, err := parse(line, row)
		if err != nil {
			return nil, fmt.Errorf("%s word list: %w", name, err)
		}
		if it.simp == "" {
			return nil, fmt.Errorf("%s word list: %w", name,
				&ErrMalformedRow{Line: line, Row: strings.Join(row, ","), Reason: "empty headword"})
		}
		if c.skip[it.simp] {
			continue
		}
		if len(c.dict.Search(dict.SearchParams{Simplified: it.simp})) == 0 {
			c.log.Warn("word not in dictionary", slog.String("list", name), slog.String("word", it.simp))
			missing++
			continue
		}

		entry, err := c.resolver.Resolve(it.simp, it.category)
		if err != nil {
			return nil, fmt.Errorf("%s word list: line %d: %w", name, line, err)
		}
		notes = append(notes, ChineseNote{Entry: entry, Tags: []string{it.tag}})
	}

	c.log.Info("word list ingested",
		slog.String("list", name),
		slog.Int("notes", len(notes)),
		slog.Int("missing", missing),
	)
	return notes, nil
}
