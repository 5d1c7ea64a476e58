package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ekisa-team/voxlingo/internal/service"
	"github.com/ekisa-team/voxlingo/internal/store"
)

type (
	HistoryMetaDTO struct {
		CurrentPage      int   `json:"current_page"`
		PerPage          int   `json:"per_page"`
		Total            int   `json:"total"`
		LastPage         int   `json:"last_page"`
		StoragePersisted *bool `json:"storage_persisted,omitempty"`
	}

	HistoryResponseDTO struct {
		Success bool             `json:"success"`
		Data    []TranslationDTO `json:"data"`
		Meta    HistoryMetaDTO   `json:"meta"`
		Message string           `json:"message,omitempty"`
	}

	MessageResponseDTO struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
)

type (
	HistoryInput struct {
		Page    int `query:"page" default:"1"`
		PerPage int `query:"per_page" default:"20"`
	}

	HistoryOutput struct {
		Body HistoryResponseDTO
	}

	DeleteTranslationInput struct {
		ID int64 `path:"id"`
	}

	DeleteTranslationOutput struct {
		Body MessageResponseDTO
	}

	DownloadAudioInput struct {
		ID int64 `path:"id"`
	}
)

// HistoryHandler handles HTTP requests for translation history.
type HistoryHandler struct {
	service *service.History
}

// NewHistoryHandler creates a new HistoryHandler instance.
func NewHistoryHandler(api huma.API, service *service.History) *HistoryHandler {
	h := &HistoryHandler{service: service}

	huma.Register(api, huma.Operation{
		OperationID: "history",
		Method:      http.MethodGet,
		Path:        "/api/history",
		Summary:     "List translation history, newest first",
		Tags:        []string{"history"},
	}, h.handleHistory)

	huma.Register(api, huma.Operation{
		OperationID: "delete-translation",
		Method:      http.MethodDelete,
		Path:        "/api/translation/{id}",
		Summary:     "Delete a translation and its audio files",
		Tags:        []string{"history"},
	}, h.handleDelete)

	huma.Register(api, huma.Operation{
		OperationID: "download-audio",
		Method:      http.MethodGet,
		Path:        "/api/download-audio/{id}",
		Summary:     "Download a stored audio file",
		Tags:        []string{"history"},
	}, h.handleDownload)

	return h
}

// handleHistory handles the history operation.
func (h *HistoryHandler) handleHistory(ctx context.Context, input *HistoryInput) (*HistoryOutput, error) {
	page := h.service.List(ctx, input.Page, input.PerPage)

	body := HistoryResponseDTO{
		Success: true,
		Data:    toTranslationDTOs(page.Items),
		Meta: HistoryMetaDTO{
			CurrentPage: page.CurrentPage,
			PerPage:     page.PerPage,
			Total:       page.Total,
			LastPage:    page.LastPage,
		},
	}
	if page.Persistence.Degraded() {
		body.Meta.StoragePersisted = ptr(false)
		body.Message = msgHistoryUnavailable
	}

	return &HistoryOutput{Body: body}, nil
}

// handleDelete handles the delete-translation operation.
func (h *HistoryHandler) handleDelete(ctx context.Context, input *DeleteTranslationInput) (*DeleteTranslationOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound(msgTranslationNotFound, err)
		}
		slog.Error("Failed to delete translation", "error", err, "translation_id", input.ID)
		return nil, huma.Error500InternalServerError(msgDeleteFailed, err)
	}

	return &DeleteTranslationOutput{
		Body: MessageResponseDTO{Success: true, Message: msgTranslationDeleted},
	}, nil
}

// handleDownload handles the download-audio operation.
func (h *HistoryHandler) handleDownload(ctx context.Context, input *DownloadAudioInput) (*huma.StreamResponse, error) {
	a, rc, size, err := h.service.OpenAudio(ctx, input.ID)
	if err != nil {
		if errors.Is(err, service.ErrAudioNotFound) {
			return nil, huma.Error404NotFound(msgAudioNotFound, err)
		}
		slog.Error("Failed to open audio file", "error", err, "audio_file_id", input.ID)
		return nil, huma.Error500InternalServerError(msgDownloadFailed, err)
	}

	return &huma.StreamResponse{
		Body: func(hctx huma.Context) {
			defer rc.Close()

			hctx.SetHeader("Content-Type", a.MimeType)
			hctx.SetHeader("Content-Length", strconv.FormatInt(size, 10))
			hctx.SetHeader("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": a.FileName}))
			hctx.SetStatus(http.StatusOK)

			if _, err := io.Copy(hctx.BodyWriter(), rc); err != nil {
				slog.Warn("Audio download interrupted", "error", err, "audio_file_id", a.ID)
			}
		},
	}, nil
}
