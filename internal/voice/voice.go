package voice

import "strings"

// Gender selects a voice family.
type Gender string

const (
	// GenderFemale selects female voices.
	GenderFemale Gender = "female"

	// GenderMale selects male voices.
	GenderMale Gender = "male"
)

// FallbackLanguage is consulted when a language has no voices of its own.
const FallbackLanguage = "en"

// DefaultVoiceID is used when the table yields nothing (Bella).
const DefaultVoiceID = "EXAVITQu4vr4xnSDxMaL"

// Voice is a single neural voice choice.
type Voice struct {
	ID          string `json:"id"          yaml:"id"`
	Description string `json:"description" yaml:"description"`
}

// Table maps gender, then language code, to an ordered list of voices.
type Table map[Gender]map[string][]Voice

// Options returns the voices for language and gender, falling back to the
// English list. It returns nil when neither exists.
func Options(t Table, language string, gender Gender) []Voice {
	byLang := t[gender]
	if voices := byLang[strings.ToLower(language)]; len(voices) > 0 {
		return voices
	}
	if voices := byLang[FallbackLanguage]; len(voices) > 0 {
		return voices
	}
	return nil
}

// Resolve picks the voice to synthesize with. An explicit id always wins,
// then the first option for language and gender, then DefaultVoiceID.
func Resolve(t Table, explicit, language string, gender Gender) string {
	if id := strings.TrimSpace(explicit); id != "" {
		return id
	}
	if voices := Options(t, language, gender); len(voices) > 0 {
		return voices[0].ID
	}
	return DefaultVoiceID
}

// DefaultTable returns the built-in ElevenLabs voice table.
func DefaultTable() Table {
	femaleMulti := []Voice{
		{ID: "XB0fDUnXU5powFXDhCwa", Description: "Charlotte - Multilingual"},
		{ID: "IKne3meq5aSn9XLyUdCD", Description: "Freya - Multilingual"},
	}
	maleMulti := []Voice{
		{ID: "5Q0t7uMcjvnagumLfvZi", Description: "Callum - Multilingual"},
		{ID: "pNInz6obpgDQGcFmaJgB", Description: "Adam - Multilingual"},
	}

	return Table{
		GenderFemale: {
			"en": {
				{ID: "EXAVITQu4vr4xnSDxMaL", Description: "Bella - American, Young Adult"},
				{ID: "XB0fDUnXU5powFXDhCwa", Description: "Charlotte - English, Seductive"},
				{ID: "IKne3meq5aSn9XLyUdCD", Description: "Freya - American, Young Adult"},
				{ID: "jBpfuIE2acCO8z3wKNLl", Description: "Gigi - American, Young Adult"},
				{ID: "N2lVS1w4EtoT3dr4eOWO", Description: "Lily - British, Middle Aged"},
			},
			"es": append(append([]Voice{}, femaleMulti...), Voice{ID: "EXAVITQu4vr4xnSDxMaL", Description: "Bella - Multilingual"}),
			"fr": femaleMulti,
			"de": femaleMulti,
			"it": femaleMulti,
			"pt": femaleMulti,
		},
		GenderMale: {
			"en": {
				{ID: "pNInz6obpgDQGcFmaJgB", Description: "Adam - American, Deep"},
				{ID: "5Q0t7uMcjvnagumLfvZi", Description: "Callum - American, Hoarse"},
				{ID: "VR6AewLTigWG4xSOukaG", Description: "Arnold - American, Crisp"},
				{ID: "yoZ06aMxZJJ28mfd3POQ", Description: "Sam - American, Raspy"},
				{ID: "CYw3kZ02Hs0563khs1Fj", Description: "Dave - British, Conversational"},
			},
			"es": append(append([]Voice{}, maleMulti...), Voice{ID: "VR6AewLTigWG4xSOukaG", Description: "Arnold - Multilingual"}),
			"fr": maleMulti,
			"de": maleMulti,
			"it": maleMulti,
			"pt": maleMulti,
		},
	}
}
