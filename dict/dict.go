// Package dict parses CEDICT-format dictionaries and indexes their entries by
// traditional form, simplified form and pinyin.
package dict

import "strings"

// SearchParams filters a search. An empty field is not used as a filter.
type SearchParams struct {
	Traditional string
	Simplified  string
	// Pinyin is compared case-insensitively.
	Pinyin string
}

// Dict is an immutable index over a list of entries.
type Dict struct {
	entries     []Entry
	traditional map[string][]int
	simplified  map[string][]int
	pinyin      map[string][]int
}

// New indexes entries. Within each bucket entries keep their order in the
// slice. The slice must not be modified afterwards.
func New(entries []Entry) *Dict {
	return &Dict{
		entries:     entries,
		traditional: buildIndex(entries, func(e Entry) string { return e.Traditional }),
		simplified:  buildIndex(entries, func(e Entry) string { return e.Simplified }),
		pinyin:      buildIndex(entries, func(e Entry) string { return strings.ToLower(e.Pinyin) }),
	}
}

func buildIndex(entries []Entry, key func(Entry) string) map[string][]int {
	idx := make(map[string][]int)
	for i, e := range entries {
		k := key(e)
		idx[k] = append(idx[k], i)
	}
	return idx
}

// Len returns the number of indexed entries.
func (d *Dict) Len() int {
	return len(d.entries)
}

// Search returns the entries matching every non-empty field of params, in
// dictionary order.
func (d *Dict) Search(params SearchParams) []Entry {
	params.Pinyin = strings.ToLower(params.Pinyin)

	// The bucket only narrows the scan; every candidate is still checked
	// against all filters below.
	var candidates []int
	if c, ok := d.lookup(d.traditional, params.Traditional); ok {
		candidates = c
	} else if c, ok := d.lookup(d.simplified, params.Simplified); ok {
		candidates = c
	} else if c, ok := d.lookup(d.pinyin, params.Pinyin); ok {
		candidates = c
	} else {
		return nil
	}

	var result []Entry
	for _, i := range candidates {
		if matches(d.entries[i], params) {
			result = append(result, d.entries[i])
		}
	}
	return result
}

func (d *Dict) lookup(idx map[string][]int, key string) ([]int, bool) {
	if key == "" {
		return nil, false
	}
	c, ok := idx[key]
	return c, ok
}

// SearchSimplified returns every entry whose simplified form is simp.
func (d *Dict) SearchSimplified(simp string) []Entry {
	return d.Search(SearchParams{Simplified: simp})
}

// matches expects params.Pinyin to be lowercased already.
func matches(e Entry, params SearchParams) bool {
	if params.Traditional != "" && e.Traditional != params.Traditional {
		return false
	}
	if params.Simplified != "" && e.Simplified != params.Simplified {
		return false
	}
	if params.Pinyin != "" && strings.ToLower(e.Pinyin) != params.Pinyin {
		return false
	}
	return true
}
