// Package http exposes the translation and speech services over HTTP.
package http

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"

	"github.com/ekisa-team/voxlingo/internal/service"
	"github.com/ekisa-team/voxlingo/internal/voice"
)

// Services holds everything the HTTP layer serves.
type Services struct {
	Translations *service.Translations
	Speech       *service.Speech
	History      *service.History
	Voices       *voice.Catalog
	VoiceLister  VoiceLister
}

// NewAPI creates a huma API on mux with the standard middleware.
func NewAPI(mux *http.ServeMux, version string) huma.API {
	cfg := huma.DefaultConfig("VoxLingo API", version)
	cfg.Info.Description = "Translate text and turn translations into speech."

	api := humago.New(mux, cfg)
	api.UseMiddleware(ClientIP, AccessLog)

	return api
}

// Register registers every API operation.
func Register(api huma.API, s Services) {
	RegisterHealth(api)
	RegisterLanguages(api)
	NewTranslateHandler(api, s.Translations)
	NewSpeechHandler(api, s.Speech, s.Voices, s.VoiceLister)
	NewHistoryHandler(api, s.History)
}

// MountPages serves the landing page and the stored audio files.
func MountPages(mux *http.ServeMux, s Services, publicDir, publicURL string) {
	mux.Handle("GET /{$}", NewPageHandler(s.History, s.Voices, s.Speech.NeuralEnabled()))

	prefix := strings.TrimRight(publicURL, "/")
	if !strings.HasPrefix(prefix, "/") {
		// Blobs are served elsewhere (CDN or reverse proxy).
		return
	}
	mux.Handle("GET "+prefix+"/", http.StripPrefix(prefix, http.FileServer(http.Dir(publicDir))))
}
