// Package app wires the dictionary, the disambiguator and the word-list
// ingestors into a deck-building run.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/flashcards/zhdeck/card"
	"github.com/flashcards/zhdeck/config"
	"github.com/flashcards/zhdeck/dict"
	"github.com/flashcards/zhdeck/preferred"
	"github.com/flashcards/zhdeck/wordlist"
)

// Pipeline builds notes from a dictionary and a word list:
// load, index, ingest, resolve.
type Pipeline struct {
	log      *slog.Logger
	cfg      *config.Config
	dict     *dict.Dict
	resolver *preferred.Resolver
}

// NewPipeline creates a Pipeline. cfg is expected to be validated.
func NewPipeline(log *slog.Logger, cfg *config.Config) *Pipeline {
	return &Pipeline{log: log, cfg: cfg}
}

// Load parses and indexes the configured dictionaries and reads the override
// table. It is called by Notes when needed.
func (p *Pipeline) Load() error {
	start := time.Now()

	files := p.cfg.Dictionary.DictionaryFiles()
	entries, err := dict.LoadFiles(files...)
	if err != nil {
		return fmt.Errorf("load dictionaries: %w", err)
	}

	overrides := preferred.Overrides{}
	if path := p.cfg.Dictionary.OverridesPath; path != "" {
		overrides, err = preferred.LoadOverridesFile(path)
		if err != nil {
			return fmt.Errorf("load overrides: %w", err)
		}
	}

	p.dict = dict.New(entries)
	p.resolver = preferred.NewResolver(p.log, p.dict, overrides)

	p.log.Info("dictionary indexed",
		slog.Int("files", len(files)),
		slog.Int("entries", p.dict.Len()),
		slog.Int("overrides", len(overrides)),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

// Dict returns the indexed dictionary, or nil before Load.
func (p *Pipeline) Dict() *dict.Dict {
	return p.dict
}

// Resolver returns the disambiguator, or nil before Load.
func (p *Pipeline) Resolver() *preferred.Resolver {
	return p.resolver
}

// Ingestor returns the ingestor for the configured word-list format.
func (p *Pipeline) Ingestor() (wordlist.Ingestor, error) {
	if p.dict == nil {
		if err := p.Load(); err != nil {
			return nil, err
		}
	}

	wl := p.cfg.WordList
	switch wl.Format {
	case config.FormatHSK:
		return wordlist.NewHSK(p.log, p.dict, p.resolver, wl.Skip), nil
	case config.FormatIntegrated:
		return wordlist.NewIntegrated(p.log, p.dict, p.resolver, wl.Skip), nil
	case config.FormatHanping:
		return wordlist.NewHanping(p.log, p.dict, wl.Tag), nil
	default:
		return nil, fmt.Errorf("unknown word list format %q", wl.Format)
	}
}

// Notes ingests the configured word list.
func (p *Pipeline) Notes() ([]wordlist.ChineseNote, error) {
	ingestor, err := p.Ingestor()
	if err != nil {
		return nil, err
	}

	file, err := os.Open(p.cfg.WordList.Path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer file.Close()

	notes, err := ingestor.Ingest(file)
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", p.cfg.WordList.Path, err)
	}
	return notes, nil
}

// Cards renders notes with the configured GUID prefix.
func (p *Pipeline) Cards(notes []wordlist.ChineseNote) []card.Card {
	cards := make([]card.Card, 0, len(notes))
	for _, n := range notes {
		cards = append(cards, card.New(n, p.cfg.GUIDPrefix))
	}
	return cards
}
