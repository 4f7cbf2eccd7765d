package dict

import (
	"fmt"
	"strings"
)

// Classifier is a measure word listed in an entry's "CL:" definition.
type Classifier struct {
	Traditional string
	Simplified  string
	Pinyin      string
}

// Entry is one line of a CEDICT-format dictionary.
//
// Entries are built once when the dictionary is loaded and are never modified
// afterwards; copies handed out by Dict share their slices and must be treated
// as read-only.
type Entry struct {
	Traditional string
	Simplified  string
	// Pinyin is tone-numbered, e.g. "ji4 lu4 pian4".
	Pinyin string
	// TaiwanPinyin is taken from a "Taiwan pr. [...]" definition, if present.
	TaiwanPinyin string
	Definitions  []string
	Classifiers  []Classifier
}

// FirstDefinition returns the first definition, or "" if there is none.
func (e Entry) FirstDefinition() string {
	if len(e.Definitions) == 0 {
		return ""
	}
	return e.Definitions[0]
}

// String formats e as a dictionary line. Classifiers and the Taiwan
// pronunciation are written after the other definitions.
func (e Entry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s [%s] /", e.Traditional, e.Simplified, e.Pinyin)
	for _, d := range e.Definitions {
		b.WriteString(d)
		b.WriteByte('/')
	}
	if len(e.Classifiers) > 0 {
		clfrs := make([]string, 0, len(e.Classifiers))
		for _, c := range e.Classifiers {
			chars := c.Traditional
			if c.Simplified != c.Traditional {
				chars += "|" + c.Simplified
			}
			clfrs = append(clfrs, chars+"["+c.Pinyin+"]")
		}
		b.WriteString(classifierPrefix + strings.Join(clfrs, ",") + "/")
	}
	if e.TaiwanPinyin != "" {
		b.WriteString(taiwanPrefix + "[" + e.TaiwanPinyin + "]/")
	}
	return b.String()
}
