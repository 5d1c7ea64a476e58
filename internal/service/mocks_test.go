package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ekisa-team/voxlingo/internal/backend"
	"github.com/ekisa-team/voxlingo/internal/store"
	"github.com/ekisa-team/voxlingo/internal/translate"
)

// --- Mock types ---

type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text, target, source string) (*translate.Result, error) {
	args := m.Called(ctx, text, target, source)
	if res, ok := args.Get(0).(*translate.Result); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTranslator) TranslateBatch(ctx context.Context, texts []string, target, source string) []translate.BatchItem {
	args := m.Called(ctx, texts, target, source)
	return args.Get(0).([]translate.BatchItem)
}

func (m *MockTranslator) DetectLanguage(ctx context.Context, text string) string {
	args := m.Called(ctx, text)
	return args.String(0)
}

type MockTranslationRepo struct {
	mock.Mock
}

func (m *MockTranslationRepo) Create(ctx context.Context, t *store.Translation) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTranslationRepo) Get(ctx context.Context, id int64) (*store.Translation, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*store.Translation); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTranslationRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTranslationRepo) List(ctx context.Context, limit, offset int) ([]*store.Translation, error) {
	args := m.Called(ctx, limit, offset)
	if items, ok := args.Get(0).([]*store.Translation); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTranslationRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockTranslationRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAudioFileRepo struct {
	mock.Mock
}

func (m *MockAudioFileRepo) Create(ctx context.Context, a *store.AudioFile) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAudioFileRepo) Get(ctx context.Context, id int64) (*store.AudioFile, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*store.AudioFile); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Provider() backend.BackendProvider {
	args := m.Called()
	return args.Get(0).(backend.BackendProvider)
}

func (m *MockBackend) Synthesize(ctx context.Context, req *backend.Request) (*backend.Response, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*backend.Response); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBackend) Close() error {
	args := m.Called()
	return args.Error(0)
}
