// Package language holds the static language tables served by the API.
package language

import (
	"strings"

	"golang.org/x/text/language"
)

// Auto asks the translation provider to detect the source language.
const Auto = "auto"

// Fallback is assumed when detection yields nothing usable.
const Fallback = "en"

var supported = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ru": "Russian",
	"ja": "Japanese",
	"ko": "Korean",
	"zh": "Chinese (Simplified)",
	"ar": "Arabic",
	"hi": "Hindi",
	"nl": "Dutch",
	"sv": "Swedish",
	"da": "Danish",
	"no": "Norwegian",
	"pl": "Polish",
	"cs": "Czech",
	"sk": "Slovak",
	"hu": "Hungarian",
	"ro": "Romanian",
	"bg": "Bulgarian",
	"hr": "Croatian",
	"sr": "Serbian",
	"sl": "Slovenian",
	"et": "Estonian",
	"lv": "Latvian",
	"lt": "Lithuanian",
	"fi": "Finnish",
	"tr": "Turkish",
	"el": "Greek",
	"he": "Hebrew",
	"th": "Thai",
	"vi": "Vietnamese",
	"id": "Indonesian",
	"ms": "Malay",
	"tl": "Filipino",
	"sw": "Swahili",
	"uk": "Ukrainian",
	"be": "Belarusian",
	"ka": "Georgian",
	"am": "Amharic",
	"bn": "Bengali",
	"gu": "Gujarati",
	"kn": "Kannada",
	"ml": "Malayalam",
	"mr": "Marathi",
	"ne": "Nepali",
	"or": "Odia",
	"pa": "Punjabi",
	"si": "Sinhala",
	"ta": "Tamil",
	"te": "Telugu",
	"ur": "Urdu",
}

var popular = []string{"en", "es", "fr", "de", "it", "pt", "ru", "ja", "ko", "zh", "ar", "hi"}

var tts = []string{"en", "es", "fr", "de", "it", "pt", "ru", "ja", "ko", "zh"}

// Supported returns every translatable language keyed by code.
func Supported() map[string]string {
	out := make(map[string]string, len(supported))
	for code, name := range supported {
		out[code] = name
	}
	return out
}

// Popular returns the short list shown first in language pickers.
func Popular() map[string]string {
	return subset(popular)
}

// TTS returns the languages with speech voices.
func TTS() map[string]string {
	return subset(tts)
}

// IsSupported reports whether code is a supported translation language.
func IsSupported(code string) bool {
	_, ok := supported[code]
	return ok
}

// Name returns the display name for code, or code itself.
func Name(code string) string {
	if name, ok := supported[code]; ok {
		if code == "zh" {
			return "Chinese"
		}
		return name
	}
	return code
}

// Normalize reduces a provider language tag such as "zh-CN" or "iw" to its
// two-letter base. It returns Fallback for empty or unparseable input.
func Normalize(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" || tag == Auto {
		return Fallback
	}

	t, err := language.Parse(tag)
	if err != nil {
		return Fallback
	}

	base, conf := t.Base()
	if conf == language.No {
		return Fallback
	}
	return base.String()
}

func subset(codes []string) map[string]string {
	out := make(map[string]string, len(codes))
	for _, code := range codes {
		out[code] = Name(code)
	}
	return out
}
