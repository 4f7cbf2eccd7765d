package preferred

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverridesFile(t *testing.T) {
	got, err := LoadOverridesFile("testdata/overrides.yaml")
	require.NoError(t, err)

	assert.Equal(t, Overrides{
		"干":      {Pinyin: "gan4"},
		"得 verb": {Pinyin: "de2"},
		"乾":      {Traditional: "乾"},
	}, got)
}

func TestLoadOverrides_Empty(t *testing.T) {
	got, err := LoadOverrides(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadOverrides_Invalid(t *testing.T) {
	tests := map[string]string{
		"sequence at top level": "- 干\n- 得\n",
		"scalar value":          "干: gan4\n",
		"nested mapping field":  "干:\n  pinyin:\n    a: b\n",
		"broken yaml":           "干: [\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadOverrides(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestLoadOverridesFile_Missing(t *testing.T) {
	_, err := LoadOverridesFile("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "得", Key("得", ""))
	assert.Equal(t, "得 verb", Key("得", "verb"))
}
