package dict

import (
	"os"
	"reflect"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := map[string]struct {
		line   string
		want   Entry
		wantOk bool
	}{
		"classifier": {
			line: "紀錄片 纪录片 [ji4 lu4 pian4] /newsreel/documentary/CL:部[bu4]/",
			want: Entry{
				Traditional: "紀錄片",
				Simplified:  "纪录片",
				Pinyin:      "ji4 lu4 pian4",
				Definitions: []string{"newsreel", "documentary"},
				Classifiers: []Classifier{{Traditional: "部", Simplified: "部", Pinyin: "bu4"}},
			},
			wantOk: true,
		},
		"classifiers with simplified forms": {
			line: "幹 干 [gan4] /tree trunk/CL:個|个[ge4],位[wei4]/",
			want: Entry{
				Traditional: "幹",
				Simplified:  "干",
				Pinyin:      "gan4",
				Definitions: []string{"tree trunk"},
				Classifiers: []Classifier{
					{Traditional: "個", Simplified: "个", Pinyin: "ge4"},
					{Traditional: "位", Simplified: "位", Pinyin: "wei4"},
				},
			},
			wantOk: true,
		},
		"several classifier definitions": {
			line: "書 书 [shu1] /book/CL:本[ben3]/letter/CL:封[feng1]/",
			want: Entry{
				Traditional: "書",
				Simplified:  "书",
				Pinyin:      "shu1",
				Definitions: []string{"book", "letter"},
				Classifiers: []Classifier{
					{Traditional: "本", Simplified: "本", Pinyin: "ben3"},
					{Traditional: "封", Simplified: "封", Pinyin: "feng1"},
				},
			},
			wantOk: true,
		},
		"taiwan pronunciation": {
			line: "垃圾 垃圾 [la1 ji1] /trash/Taiwan pr. [le4 se4]/garbage/",
			want: Entry{
				Traditional:  "垃圾",
				Simplified:   "垃圾",
				Pinyin:       "la1 ji1",
				TaiwanPinyin: "le4 se4",
				Definitions:  []string{"trash", "garbage"},
			},
			wantOk: true,
		},
		"malformed taiwan pronunciation is kept": {
			line: "好 好 [hao3] /good/Taiwan pr. [hǎo]/",
			want: Entry{
				Traditional: "好",
				Simplified:  "好",
				Pinyin:      "hao3",
				Definitions: []string{"good", "Taiwan pr. [hǎo]"},
			},
			wantOk: true,
		},
		"bad classifier is dropped": {
			line: "車 车 [che1] /car/CL:輛|辆/",
			want: Entry{
				Traditional: "車",
				Simplified:  "车",
				Pinyin:      "che1",
				Definitions: []string{"car"},
			},
			wantOk: true,
		},
		"windows line ending": {
			line: "人 人 [ren2] /person/\r",
			want: Entry{
				Traditional: "人",
				Simplified:  "人",
				Pinyin:      "ren2",
				Definitions: []string{"person"},
			},
			wantOk: true,
		},
		"comment":       {line: "# CC-CEDICT"},
		"blank":         {line: ""},
		"no pinyin":     {line: "人 人 /person/"},
		"no definition": {line: "人 人 [ren2]"},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseLine(test.line)
			if ok != test.wantOk {
				t.Fatalf("Got ok %v; wanted %v", ok, test.wantOk)
			}
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("Got %+v; wanted %+v", got, test.want)
			}
		})
	}
}

func TestParseLineWithoutTaiwanPronunciation(t *testing.T) {
	got, ok := ParseLine("紀錄片 纪录片 [ji4 lu4 pian4] /newsreel/documentary/CL:部[bu4]/")
	if !ok {
		t.Fatal("line did not parse")
	}
	if got.TaiwanPinyin != "" {
		t.Errorf("Got Taiwan pinyin %q; wanted none", got.TaiwanPinyin)
	}
	if len(got.Definitions) != 2 {
		t.Errorf("Got %d definitions; wanted 2", len(got.Definitions))
	}
}

func TestParseEntries(t *testing.T) {
	file, err := os.Open("testdata/sample.u8")
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	entries, err := ParseEntries(file)
	if err != nil {
		t.Fatalf("ParseEntries returned error: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("Got %d entries; wanted 5", len(entries))
	}
	if entries[1].Pinyin != "Gan1" || entries[2].Pinyin != "gan1" {
		t.Errorf("entries out of source order: %q, %q", entries[1].Pinyin, entries[2].Pinyin)
	}
}

func TestLoadFilesKeepsFileOrder(t *testing.T) {
	extra := t.TempDir() + "/extra.u8"
	if err := os.WriteFile(extra, []byte("乾 干 [gan1] /extra sense/\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := LoadFiles(extra, "testdata/sample.u8")
	if err != nil {
		t.Fatalf("LoadFiles returned error: %v", err)
	}
	if len(entries) != 6 {
		t.Fatalf("Got %d entries; wanted 6", len(entries))
	}
	got := New(entries).Search(SearchParams{Simplified: "干", Pinyin: "gan1"})
	// Pinyin matching ignores case, so "Gan1" is included too.
	if len(got) != 3 || got[0].FirstDefinition() != "extra sense" {
		t.Errorf("Got %+v; wanted the extra entry first", got)
	}
}

func TestLoadFilesMissing(t *testing.T) {
	if _, err := LoadFiles("testdata/missing.u8"); err == nil {
		t.Error("Got nil error for missing file")
	}
}

func TestEntryStringParsesBack(t *testing.T) {
	lines := []string{
		"紀錄片 纪录片 [ji4 lu4 pian4] /newsreel/documentary/CL:部[bu4]/",
		"幹 干 [gan4] /tree trunk/CL:個|个[ge4],位[wei4]/",
		"垃圾 垃圾 [la1 ji1] /trash/Taiwan pr. [le4 se4]/",
		"人 人 [ren2] /person/",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			e, ok := ParseLine(line)
			if !ok {
				t.Fatalf("could not parse %q", line)
			}
			if got := e.String(); got != line {
				t.Errorf("Got %q; wanted %q", got, line)
			}
			again, ok := ParseLine(e.String())
			if !ok || !reflect.DeepEqual(again, e) {
				t.Errorf("Got %+v; wanted %+v", again, e)
			}
		})
	}
}
