package wordlist

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHanpingLine(t *testing.T) {
	tests := map[string]struct {
		line    string
		want    HanpingWord
		wantErr bool
	}{
		"elided simplified": {
			line: "紀錄片 [纪录-]     jì lù piàn       newsreel • documentary (film or TV program) • CL: 部 (bù)",
			want: HanpingWord{Traditional: "紀錄片", Simplified: "纪录片", Pinyin: "ji4 lu4 pian4"},
		},
		"same traditional and simplified": {
			line: "粗 cū coarse • rough • thick (for cylindrical objects) • unfinished • vulgar • rude • crude",
			want: HanpingWord{Traditional: "粗", Simplified: "粗", Pinyin: "cu1"},
		},
		"fully written simplified": {
			line: "乾 [干] gān dry",
			want: HanpingWord{Traditional: "乾", Simplified: "干", Pinyin: "gan1"},
		},
		"umlaut": {
			line: "綠茶 [绿-] lǜ chá green tea",
			want: HanpingWord{Traditional: "綠茶", Simplified: "绿茶", Pinyin: "lu:4 cha2"},
		},
		"simplified length mismatch": {
			line:    "紀錄片 [纪录] jì lù piàn newsreel",
			wantErr: true,
		},
		"too few syllables": {
			line:    "紀錄片 jì lù",
			wantErr: true,
		},
		"no pinyin": {
			line:    "紀錄片",
			wantErr: true,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseHanpingLine(test.line)
			if (err != nil) != test.wantErr {
				t.Fatalf("Got error %v; wanted error %v", err, test.wantErr)
			}
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("Got %+v; wanted %+v", got, test.want)
			}
		})
	}
}

func TestHanping_Ingest(t *testing.T) {
	h := NewHanping(discardLogger(), testDict(t), "Hanping")

	notes, err := h.Ingest(open(t, "hanping.txt"))
	require.NoError(t, err)

	// 龘 is not in the dictionary.
	require.Len(t, notes, 3)
	assert.Equal(t, "纪录片", notes[0].Entry.Simplified)
	assert.Equal(t, "cu1", notes[1].Entry.Pinyin)
	assert.Equal(t, "gan1", notes[2].Entry.Pinyin, "lowercase entry preferred over the surname")
	assert.Equal(t, []string{"dry"}, notes[2].Entry.Definitions)
	for _, n := range notes {
		assert.Equal(t, []string{"Hanping"}, n.Tags)
	}
}

func TestHanping_IngestWithoutTag(t *testing.T) {
	h := NewHanping(discardLogger(), testDict(t), "")

	notes, err := h.Ingest(strings.NewReader("粗 cū coarse\n"))
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Nil(t, notes[0].Tags)
}

func TestHanping_IngestMalformed(t *testing.T) {
	h := NewHanping(discardLogger(), testDict(t), "")

	_, err := h.Ingest(strings.NewReader("粗 cū coarse\n紀錄片 jì\n"))
	var malformed *ErrMalformedRow
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 2, malformed.Line)
}
