package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_FallbackChain(t *testing.T) {
	table := Table{
		GenderFemale: {
			"en": {{ID: "en-f-1"}, {ID: "en-f-2"}},
			"fr": {{ID: "fr-f-1"}},
		},
		GenderMale: {
			"de": {{ID: "de-m-1"}},
		},
	}

	tests := []struct {
		name     string
		explicit string
		language string
		gender   Gender
		want     string
	}{
		{"explicit wins", "custom", "fr", GenderFemale, "custom"},
		{"exact match", "", "fr", GenderFemale, "fr-f-1"},
		{"falls back to english", "", "ja", GenderFemale, "en-f-1"},
		{"no english table", "", "ja", GenderMale, DefaultVoiceID},
		{"unknown gender", "", "en", Gender("other"), DefaultVoiceID},
		{"whitespace explicit ignored", "  ", "fr", GenderFemale, "fr-f-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(table, tt.explicit, tt.language, tt.gender))
		})
	}
}

func TestOptions_DefaultTable(t *testing.T) {
	table := DefaultTable()

	es := Options(table, "es", GenderFemale)
	assert.Len(t, es, 3)
	assert.Equal(t, "XB0fDUnXU5powFXDhCwa", es[0].ID)

	ja := Options(table, "ja", GenderMale)
	assert.Equal(t, "pNInz6obpgDQGcFmaJgB", ja[0].ID)

	assert.Empty(t, Options(Table{}, "en", GenderFemale))
}

func TestCatalog_Load(t *testing.T) {
	c := NewCatalog(nil)
	assert.Equal(t, "EXAVITQu4vr4xnSDxMaL", c.Resolve("", "en", GenderFemale))

	c.Load(Table{GenderFemale: {"en": {{ID: "reloaded"}}}})
	assert.Equal(t, "reloaded", c.Resolve("", "it", GenderFemale))
	assert.Len(t, c.Options("en", GenderFemale), 1)
}
