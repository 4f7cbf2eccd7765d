// Package pinyin converts between diacritic pinyin ("hē chá"), tone-numbered
// pinyin ("he1 cha2") and the HTML markup used on flashcards.
package pinyin

import (
	"log/slog"
	"strconv"
	"strings"
	"unicode"
)

// toneTable holds the marked forms of each vowel for tones 1-4 followed by
// the bare vowel.
var toneTable = [6][5]rune{
	{'ā', 'á', 'ǎ', 'à', 'a'},
	{'ē', 'é', 'ě', 'è', 'e'},
	{'ī', 'í', 'ǐ', 'ì', 'i'},
	{'ō', 'ó', 'ǒ', 'ò', 'o'},
	{'ū', 'ú', 'ǔ', 'ù', 'u'},
	{'ǖ', 'ǘ', 'ǚ', 'ǜ', 'ü'},
}

const umlautRow = 5

// lookupMarked reports the table row and tone (1-4) of a marked vowel.
func lookupMarked(r rune) (row, tone int, ok bool) {
	lower := unicode.ToLower(r)
	for row := range toneTable {
		for col := 0; col < 4; col++ {
			if toneTable[row][col] == lower {
				return row, col + 1, true
			}
		}
	}
	return 0, 0, false
}

// marked returns vowel c carrying the given tone (5 = bare). The case of c is
// kept.
func marked(c rune, tone int) (rune, bool) {
	lower := unicode.ToLower(c)
	for _, row := range toneTable {
		if row[4] == lower {
			out := row[tone-1]
			if unicode.IsUpper(c) {
				out = unicode.ToUpper(out)
			}
			return out, true
		}
	}
	return c, false
}

// ToTonedASCII converts diacritic pinyin to tone-numbered pinyin, e.g.
// "hē diǎn lǜ chá ba" becomes "he1 dian3 lu:4 cha2 ba5".
func ToTonedASCII(s string) string {
	syllables := strings.Fields(s)
	out := make([]string, 0, len(syllables))
	for _, syl := range syllables {
		out = append(out, tonedSyllable(syl))
	}
	return strings.Join(out, " ")
}

func tonedSyllable(syl string) string {
	var b strings.Builder
	tone := 5
	for _, r := range syl {
		if tone == 5 {
			if row, t, ok := lookupMarked(r); ok {
				tone = t
				if row == umlautRow {
					b.WriteString(umlaut(unicode.IsUpper(r)))
				} else {
					bare := toneTable[row][4]
					if unicode.IsUpper(r) {
						bare = unicode.ToUpper(bare)
					}
					b.WriteRune(bare)
				}
				continue
			}
		}
		switch r {
		case 'ü':
			b.WriteString(umlaut(false))
		case 'Ü':
			b.WriteString(umlaut(true))
		default:
			b.WriteRune(r)
		}
	}
	b.WriteString(strconv.Itoa(tone))
	return b.String()
}

func umlaut(upper bool) string {
	if upper {
		return "U:"
	}
	return "u:"
}

// ToDisplayMarkup renders tone-numbered pinyin as HTML, wrapping each toned
// syllable in a span carrying its tone class and putting the tone mark back on
// the right vowel.
func ToDisplayMarkup(s string) string {
	syllables := strings.Fields(s)
	out := make([]string, 0, len(syllables))
	for _, syl := range syllables {
		out = append(out, markupSyllable(syl))
	}
	return strings.Join(out, " ")
}

func markupSyllable(syl string) string {
	last := syl[len(syl)-1]
	if last < '1' || last > '5' {
		return syl
	}
	tone := int(last - '0')

	body := strings.NewReplacer("u:", "ü", "U:", "Ü").Replace(syl[:len(syl)-1])
	runes := []rune(body)

	var b strings.Builder
	b.WriteString(`<span class="tone`)
	b.WriteByte(last)
	b.WriteString(`">`)

	toned := false
	for i, c := range runes {
		var next rune
		if i+1 < len(runes) {
			next = unicode.ToLower(runes[i+1])
		}
		lc := unicode.ToLower(c)
		carries := false
		switch {
		case toned:
		case lc == 'a' || lc == 'e':
			carries = true
		case lc == 'o' && next == 'u':
			carries = true
		case isVowel(lc) && !isVowel(next):
			carries = true
		}
		if carries {
			c, _ = marked(c, tone)
			toned = true
		}
		b.WriteRune(c)
	}
	if !toned && tone != 5 {
		slog.Debug("no vowel can carry tone mark", slog.String("syllable", syl))
	}

	b.WriteString("</span>")
	return b.String()
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiouü", r)
}

// Tones recovers the tone digits from the span classes of markup produced by
// ToDisplayMarkup, in order.
func Tones(markup string) []int {
	const marker = `<span class="tone`
	var tones []int
	for {
		i := strings.Index(markup, marker)
		if i < 0 || i+len(marker) >= len(markup) {
			return tones
		}
		markup = markup[i+len(marker):]
		if d := markup[0]; d >= '1' && d <= '5' {
			tones = append(tones, int(d-'0'))
		}
	}
}

// ToneDigits returns the trailing tone digit of every syllable of
// tone-numbered pinyin, skipping syllables without one.
func ToneDigits(s string) []int {
	var tones []int
	for _, syl := range strings.Fields(s) {
		if d := syl[len(syl)-1]; d >= '1' && d <= '5' {
			tones = append(tones, int(d-'0'))
		}
	}
	return tones
}
