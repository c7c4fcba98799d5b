package practice

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/louisbranch/sip/internal/services/web/platform/csrf"
	apperrors "github.com/louisbranch/sip/internal/services/web/platform/errors"
	"github.com/louisbranch/sip/internal/services/web/platform/flash"
	"github.com/louisbranch/sip/internal/services/web/platform/httpx"
	"github.com/louisbranch/sip/internal/services/web/platform/pagerender"
	"github.com/louisbranch/sip/internal/services/web/routepath"
)

type handlers struct {
	service service
	pages   *pagerender.Renderer
	csrf    *csrf.Protector
	flash   flash.Store
}

// viewer returns the signed-in username, or "".
func (h handlers) viewer(r *http.Request) string {
	return strings.TrimSpace(h.pages.Viewer(r).Username)
}

// requireViewer returns the signed-in username. Anonymous requests are sent
// to the login page, which returns them to next afterwards.
func (h handlers) requireViewer(w http.ResponseWriter, r *http.Request, next string) (string, bool) {
	if username := h.viewer(r); username != "" {
		return username, true
	}
	h.flash.Add(w, r, flash.Info("flash.login_required"))
	httpx.WriteRedirect(w, r, routepath.LoginWithNext(next))
	return "", false
}

// verified checks the form token; on failure it queues a notice and
// redirects to retry.
func (h handlers) verified(w http.ResponseWriter, r *http.Request, retry string) bool {
	if err := h.csrf.Verify(r); err != nil {
		log.Printf("csrf rejected method=%s path=%s request_id=%s", r.Method, r.URL.Path, httpx.RequestIDFrom(r))
		h.flash.Add(w, r, flash.Danger(apperrors.LocalizationKey(err)))
		httpx.WriteRedirect(w, r, retry)
		return false
	}
	return true
}

// writeStoreError answers a failed store call with the matching error page.
func (h handlers) writeStoreError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("practice store failed op=%s path=%s request_id=%s err=%v", op, r.URL.Path, httpx.RequestIDFrom(r), err)
	}
	h.pages.WriteError(w, r, status)
}

func (h handlers) notFound(w http.ResponseWriter, r *http.Request) {
	h.pages.WriteError(w, r, http.StatusNotFound)
}

// pathID reads a positive numeric path wildcard.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// withSetID resolves the set wildcard or answers 404.
func (h handlers) withSetID(fn func(http.ResponseWriter, *http.Request, int64)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setID, ok := pathID(r, routepath.SetIDParam)
		if !ok {
			h.notFound(w, r)
			return
		}
		fn(w, r, setID)
	}
}

// withQuestionID resolves the set and question wildcards or answers 404.
func (h handlers) withQuestionID(fn func(http.ResponseWriter, *http.Request, int64, int64)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setID, ok := pathID(r, routepath.SetIDParam)
		if !ok {
			h.notFound(w, r)
			return
		}
		questionID, ok := pathID(r, routepath.QuestionIDParam)
		if !ok {
			h.notFound(w, r)
			return
		}
		fn(w, r, setID, questionID)
	}
}
