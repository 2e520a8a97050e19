package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"docushare-server/internal/apperr"
	"docushare-server/internal/handler"
	"docushare-server/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFileService struct{ mock.Mock }

func (m *MockFileService) Upload(ctx context.Context, owner, originalName, mimeType string, data []byte, sharePassword string) (*model.FileRecord, error) {
	args := m.Called(ctx, owner, originalName, mimeType, data, sharePassword)
	if rec := args.Get(0); rec != nil {
		return rec.(*model.FileRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFileService) ListByOwner(ctx context.Context, owner string) ([]model.FileRecord, error) {
	args := m.Called(ctx, owner)
	if recs := args.Get(0); recs != nil {
		return recs.([]model.FileRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFileService) Info(ctx context.Context, storageKey string) (bool, error) {
	args := m.Called(ctx, storageKey)
	return args.Bool(0), args.Error(1)
}

func (m *MockFileService) SetSharePassword(ctx context.Context, storageKey, password string) error {
	return m.Called(ctx, storageKey, password).Error(0)
}

func (m *MockFileService) Retrieve(ctx context.Context, storageKey, password string) ([]byte, string, error) {
	args := m.Called(ctx, storageKey, password)
	if data := args.Get(0); data != nil {
		return data.([]byte), args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

func (m *MockFileService) View(ctx context.Context, storageKey string) ([]byte, string, error) {
	args := m.Called(ctx, storageKey)
	if data := args.Get(0); data != nil {
		return data.([]byte), args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

func (m *MockFileService) Delete(ctx context.Context, storageKey string) error {
	return m.Called(ctx, storageKey).Error(0)
}

func newProtectedAccessRouter(service *MockFileService) chi.Router {
	r := chi.NewRouter()
	h := handler.NewFileHandler(service)
	r.Get("/api/files/protected-access/{filename}", h.ProtectedAccessQuery)
	return r
}

func decodeMessage(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(body, &resp))
	return resp.Message
}

// Отсутствие записи и отсутствие содержимого при живой записи
// возвращают клиенту разные сообщения
func TestFileHandler_ProtectedAccess_Errors(t *testing.T) {
	tests := []struct {
		name        string
		retrieveErr error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "record missing",
			retrieveErr: apperr.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "File not found",
		},
		{
			name:        "content missing",
			retrieveErr: apperr.ErrContentMissing,
			wantStatus:  http.StatusNotFound,
			wantMessage: "File missing",
		},
		{
			name:        "wrong password",
			retrieveErr: apperr.ErrUnauthorized,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Incorrect password",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockFileService)
			service.On("Retrieve", mock.Anything, "key", "").Return(nil, "", tt.retrieveErr)

			req := httptest.NewRequest(http.MethodGet, "/api/files/protected-access/key", nil)
			rec := httptest.NewRecorder()
			newProtectedAccessRouter(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rec.Body.Bytes()))
			service.AssertExpectations(t)
		})
	}
}

func TestFileHandler_ProtectedAccess_Success(t *testing.T) {
	service := new(MockFileService)
	service.On("Retrieve", mock.Anything, "key", "s3cret").
		Return([]byte("content"), "text/plain", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/files/protected-access/key?password=s3cret", nil)
	rec := httptest.NewRecorder()
	newProtectedAccessRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "content", rec.Body.String())
	service.AssertExpectations(t)
}
