package http

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"sort"

	"github.com/ekisa-team/voxlingo/internal/language"
	"github.com/ekisa-team/voxlingo/internal/service"
	"github.com/ekisa-team/voxlingo/internal/store"
	"github.com/ekisa-team/voxlingo/internal/voice"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("index.html").
		Funcs(template.FuncMap{"languageName": language.Name}).
		ParseFS(templateFS, "templates/index.html"),
)

type languageOption struct {
	Code string
	Name string
}

type pageData struct {
	Languages     []languageOption
	Popular       []languageOption
	TTSLanguages  []languageOption
	FemaleVoices  []voice.Voice
	MaleVoices    []voice.Voice
	Recent        []*store.Translation
	NeuralEnabled bool
}

// PageHandler renders the landing page. It never fails because of the
// history database.
type PageHandler struct {
	history       *service.History
	voices        *voice.Catalog
	neuralEnabled bool
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(history *service.History, voices *voice.Catalog, neuralEnabled bool) *PageHandler {
	return &PageHandler{
		history:       history,
		voices:        voices,
		neuralEnabled: neuralEnabled,
	}
}

// ServeHTTP implements http.Handler.
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Languages:     options(language.Supported()),
		Popular:       options(language.Popular()),
		TTSLanguages:  options(language.TTS()),
		FemaleVoices:  h.voices.Options(language.Fallback, voice.GenderFemale),
		MaleVoices:    h.voices.Options(language.Fallback, voice.GenderMale),
		Recent:        h.history.Recent(r.Context(), service.RecentLimit),
		NeuralEnabled: h.neuralEnabled,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		slog.Error("Failed to render landing page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func options(m map[string]string) []languageOption {
	out := make([]languageOption, 0, len(m))
	for code, name := range m {
		out = append(out, languageOption{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
