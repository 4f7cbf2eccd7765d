package dict

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

var (
	entryRe      = regexp.MustCompile(`^(\S+) (\S+) \[(.+?)\] /(.+)/$`)
	classifierRe = regexp.MustCompile(`^([^\[|]+)(?:\|([^\[]+))?\[(.+)\]$`)
	taiwanRe     = regexp.MustCompile(`^Taiwan pr\. \[([a-zA-Z0-9: ]+)\]$`)
)

const (
	classifierPrefix = "CL:"
	taiwanPrefix     = "Taiwan pr. "
)

// ParseLine parses one dictionary line of the form
//
//	TRAD SIMP [PINYIN] /definition 1/definition 2/.../
//
// Comments, blank lines and anything else that does not have that shape are
// reported as not ok.
func ParseLine(line string) (Entry, bool) {
	line = strings.TrimRight(line, " \r")
	if line == "" || line[0] == '#' {
		return Entry{}, false
	}
	m := entryRe.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}

	var defs []string
	for _, d := range strings.Split(m[4], "/") {
		if d != "" {
			defs = append(defs, d)
		}
	}

	entry := Entry{
		Traditional: m[1],
		Simplified:  m[2],
		Pinyin:      m[3],
	}
	for i := 0; i < len(defs); {
		switch {
		case strings.HasPrefix(defs[i], classifierPrefix):
			entry.Classifiers = append(entry.Classifiers, parseClassifiers(defs[i])...)
			defs = append(defs[:i], defs[i+1:]...)
		case strings.HasPrefix(defs[i], taiwanPrefix):
			tw := taiwanRe.FindStringSubmatch(defs[i])
			if tw == nil {
				slog.Debug("could not parse Taiwan pronunciation",
					slog.String("headword", entry.Traditional), slog.String("definition", defs[i]))
				i++
				continue
			}
			entry.TaiwanPinyin = tw[1]
			defs = append(defs[:i], defs[i+1:]...)
		default:
			i++
		}
	}
	entry.Definitions = defs
	return entry, true
}

// parseClassifiers parses a "CL:個|个[ge4],位[wei4]" definition.
func parseClassifiers(def string) []Classifier {
	var clfrs []Classifier
	for _, piece := range strings.Split(strings.TrimPrefix(def, classifierPrefix), ",") {
		m := classifierRe.FindStringSubmatch(strings.TrimSpace(piece))
		if m == nil {
			slog.Warn("could not parse classifier", slog.String("classifier", piece))
			continue
		}
		simp := m[2]
		if simp == "" {
			simp = m[1]
		}
		clfrs = append(clfrs, Classifier{Traditional: m[1], Simplified: simp, Pinyin: m[3]})
	}
	return clfrs
}

// ParseEntries parses every well-formed line of r, in order.
func ParseEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if entry, ok := ParseLine(scanner.Text()); ok {
			entries = append(entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan dictionary: %w", err)
	}
	return entries, nil
}

// LoadFiles parses the dictionaries at paths and concatenates their entries in
// the order given, so entries from earlier files come first in every search.
func LoadFiles(paths ...string) ([]Entry, error) {
	var entries []Entry
	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open dictionary %s: %w", path, err)
		}
		parsed, err := ParseEntries(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("parse dictionary %s: %w", path, err)
		}
		slog.Info("parsed dictionary", slog.String("path", path), slog.Int("entries", len(parsed)))
		entries = append(entries, parsed...)
	}
	return entries, nil
}
