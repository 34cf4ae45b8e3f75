package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"interviewcoach/api/internal/archive"
	"interviewcoach/api/internal/llm"
	"interviewcoach/api/internal/models"
	"interviewcoach/api/internal/prompts"
	"interviewcoach/api/internal/session"
)

type mockProvider struct {
	completeFn func(ctx context.Context, req *llm.CompletionRequest) (string, error)
	calls      int
}

func (m *mockProvider) Complete(ctx context.Context, req *llm.CompletionRequest) (string, error) {
	m.calls++
	if m.completeFn == nil {
		return "mock response", nil
	}
	return m.completeFn(ctx, req)
}

func (m *mockProvider) GetProviderName() string {
	return "mock"
}

func newTestGateway(t *testing.T, provider llm.Provider) *llm.Gateway {
	t.Helper()
	builder, err := prompts.NewBuilder()
	if err != nil {
		t.Fatalf("NewBuilder error: %v", err)
	}
	return llm.NewGateway(provider, builder, zap.NewNop())
}

func newTestStore() *session.Store {
	return session.NewStore(time.Hour)
}

func newSQLiteArchive(t *testing.T) *archive.Manager {
	t.Helper()
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.SessionArchive{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return archive.NewManager(db)
}

func performRequest(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}
