package practice

import (
	"net/http"
	"testing"

	"github.com/louisbranch/sip/internal/services/web/routepath"
)

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, handlers{})
}

func TestRoutesPathAndMethodContracts(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	set := seedSet(t, store, "Behavioral", "ada", "Why us?")
	f := newFixture(t, store, "ada")
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{name: "practice get", method: http.MethodGet, path: routepath.Practice, wantStatus: http.StatusOK},
		{name: "practice head", method: http.MethodHead, path: routepath.Practice, wantStatus: http.StatusOK},
		{name: "question sets get", method: http.MethodGet, path: routepath.QuestionSets, wantStatus: http.StatusOK},
		{name: "question set get", method: http.MethodGet, path: routepath.QuestionSet(set.ID), wantStatus: http.StatusOK},
		{name: "new set form", method: http.MethodGet, path: routepath.QuestionSetsNew, wantStatus: http.StatusOK},
		{name: "history get", method: http.MethodGet, path: routepath.History, wantStatus: http.StatusOK},
		{name: "practice post rejected", method: http.MethodPost, path: routepath.Practice, wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, HEAD"},
		{name: "question set post rejected", method: http.MethodPost, path: routepath.QuestionSet(set.ID), wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, HEAD"},
		{name: "edit set delete rejected", method: http.MethodDelete, path: routepath.QuestionSetEdit(set.ID), wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, POST"},
		{name: "start get rejected", method: http.MethodGet, path: routepath.PracticeStartSet(set.ID), wantStatus: http.StatusMethodNotAllowed, wantAllow: "POST"},
		{name: "session put rejected", method: http.MethodPut, path: routepath.PracticeSession(1), wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, POST"},
		{name: "unknown subpath", method: http.MethodGet, path: routepath.Practice + "other/x", wantStatus: http.StatusNotFound},
		{name: "unknown nested subpath", method: http.MethodGet, path: routepath.History + "a/b", wantStatus: http.StatusNotFound},
		{name: "non numeric set", method: http.MethodGet, path: routepath.QuestionSets + "abc/", wantStatus: http.StatusNotFound},
		{name: "zero set", method: http.MethodGet, path: routepath.QuestionSets + "0/", wantStatus: http.StatusNotFound},
		{name: "non numeric session", method: http.MethodGet, path: routepath.Practice + "start/", wantStatus: http.StatusNotFound},
		{name: "missing set", method: http.MethodGet, path: routepath.QuestionSet(set.ID + 100), wantStatus: http.StatusNotFound},
		{name: "question sets unknown", method: http.MethodGet, path: routepath.QuestionSets + "1/questions/", wantStatus: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := f.do(t, tc.method, tc.path)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if tc.wantAllow != "" {
				if got := rr.Header().Get("Allow"); got != tc.wantAllow {
					t.Fatalf("Allow = %q, want %q", got, tc.wantAllow)
				}
			}
		})
	}
}
