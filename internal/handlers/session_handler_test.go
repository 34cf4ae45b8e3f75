package handlers

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"interviewcoach/api/internal/middleware"
	"interviewcoach/api/internal/models"
	"interviewcoach/api/internal/session"
)

func newSessionRouter(h *SessionHandler) *chi.Mux {
	router := chi.NewRouter()
	router.Route("/api/v1/sessions", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.CreateSessionRequest]()).Post("/", h.CreateHandler)
		r.Get("/{session_id}", h.GetHandler)
		r.Get("/{session_id}/summary", h.SummaryHandler)
		r.Post("/{session_id}/end", h.EndHandler)
		r.Post("/{session_id}/restart", h.RestartHandler)
	})
	return router
}

func TestCreateSessionHandler(t *testing.T) {
	store := newTestStore()
	router := newSessionRouter(NewSessionHandler(store, zap.NewNop()))

	body := `{"name":"Sam","career_field":"software_engineering","experience_level":"entry","target_role":"backend engineer"}`
	rec := performRequest(router, http.MethodPost, "/api/v1/sessions/", body)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.CreateSessionResponse
	decodeBody(t, rec, &resp)
	if resp.SessionID == "" {
		t.Fatal("expected a session id")
	}
	if resp.Profile.InterviewType != "behavioral" {
		t.Fatalf("expected defaulted interview type, got %s", resp.Profile.InterviewType)
	}
	if _, ok := store.Get(resp.SessionID); !ok {
		t.Fatal("expected session to exist in the store")
	}
}

func TestCreateSessionHandlerInvalidCareerField(t *testing.T) {
	router := newSessionRouter(NewSessionHandler(newTestStore(), zap.NewNop()))

	rec := performRequest(router, http.MethodPost, "/api/v1/sessions/", `{"career_field":"wizardry"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetSessionHandler(t *testing.T) {
	store := newTestStore()
	id := store.Create(models.UserProfile{TargetRole: "backend engineer"})
	router := newSessionRouter(NewSessionHandler(store, zap.NewNop()))

	rec := performRequest(router, http.MethodGet, "/api/v1/sessions/"+id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var view session.View
	decodeBody(t, rec, &view)
	if view.ID != id || view.Profile.TargetRole != "backend engineer" {
		t.Fatalf("unexpected view: %+v", view)
	}

	rec = performRequest(router, http.MethodGet, "/api/v1/sessions/unknown", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown session, got %d", rec.Code)
	}
}

func TestSummaryHandler(t *testing.T) {
	store := newTestStore()
	id := store.Create(models.UserProfile{})
	store.AddResponse(id, "q1", "a1", models.EvaluationResult{Score: 6})
	store.AddResponse(id, "q2", "a2", models.EvaluationResult{Score: 8})
	router := newSessionRouter(NewSessionHandler(store, zap.NewNop()))

	rec := performRequest(router, http.MethodGet, "/api/v1/sessions/"+id+"/summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var summary models.Summary
	decodeBody(t, rec, &summary)
	if summary.AverageScore != 7.0 {
		t.Fatalf("expected average 7.0, got %v", summary.AverageScore)
	}
	if summary.TotalQuestions != 2 {
		t.Fatalf("expected 2 questions, got %d", summary.TotalQuestions)
	}
}

func TestEndSessionHandlerMarksCompleteWithoutDeleting(t *testing.T) {
	store := newTestStore()
	id := store.Create(models.UserProfile{})
	router := newSessionRouter(NewSessionHandler(store, zap.NewNop()))

	rec := performRequest(router, http.MethodPost, "/api/v1/sessions/"+id+"/end", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	view, ok := store.Get(id)
	if !ok {
		t.Fatal("expected ended session to still exist")
	}
	if !view.Complete {
		t.Fatal("expected session to be marked complete")
	}
}

func TestEndSessionHandlerUnknownSession(t *testing.T) {
	router := newSessionRouter(NewSessionHandler(newTestStore(), zap.NewNop()))

	rec := performRequest(router, http.MethodPost, "/api/v1/sessions/nope/end", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestEndSessionHandlerArchives(t *testing.T) {
	store := newTestStore()
	id := store.Create(models.UserProfile{Name: "Sam", CareerField: "software_engineering"})
	store.AddResponse(id, "q", "a", models.EvaluationResult{Score: 8})

	manager := newSQLiteArchive(t)
	handler := NewSessionHandler(store, zap.NewNop())
	handler.SetArchiveManager(manager)
	router := newSessionRouter(handler)

	rec := performRequest(router, http.MethodPost, "/api/v1/sessions/"+id+"/end", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	records, err := manager.Recent(5)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 archived session, got %d", len(records))
	}
	if records[0].SessionID != id || records[0].AverageScore != 8.0 {
		t.Fatalf("unexpected archive record: %+v", records[0])
	}
}

func TestRestartSessionHandlerDeletes(t *testing.T) {
	store := newTestStore()
	id := store.Create(models.UserProfile{})
	router := newSessionRouter(NewSessionHandler(store, zap.NewNop()))

	rec := performRequest(router, http.MethodPost, "/api/v1/sessions/"+id+"/restart", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if _, ok := store.Get(id); ok {
		t.Fatal("expected restarted session to be deleted")
	}

	// restarting an unknown session is still a 200, matching end-user flow
	rec = performRequest(router, http.MethodPost, "/api/v1/sessions/"+id+"/restart", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
