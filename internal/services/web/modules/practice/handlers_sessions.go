package practice

import (
	"net/http"
	"strconv"

	apperrors "github.com/louisbranch/sip/internal/services/web/platform/errors"
	"github.com/louisbranch/sip/internal/services/web/platform/flash"
	"github.com/louisbranch/sip/internal/services/web/platform/httpx"
	"github.com/louisbranch/sip/internal/services/web/platform/pagerender"
	"github.com/louisbranch/sip/internal/services/web/routepath"
)

func (h handlers) practiceIndex(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.listSets(httpx.RequestContext(r))
	if err != nil {
		h.writeStoreError(w, r, "list_sets", err)
		return
	}
	h.pages.Write(w, r, pagerender.Page{
		Page:   mapPracticeIndex(summaries),
		Active: routepath.LinkPractice,
	})
}

func (h handlers) startPractice(w http.ResponseWriter, r *http.Request, setID int64) {
	username, ok := h.requireViewer(w, r, routepath.Practice)
	if !ok {
		return
	}
	if !h.verified(w, r, routepath.Practice) {
		return
	}
	session, err := h.service.start(httpx.RequestContext(r), username, setID)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindInvalidInput {
			h.flash.Add(w, r, flash.Warning(apperrors.LocalizationKey(err)))
			httpx.WriteRedirect(w, r, routepath.Practice)
			return
		}
		h.writeStoreError(w, r, "start_session", err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.PracticeSession(session.ID))
}

// practiceSession asks the next unanswered question, records answers, and
// shows the summary once every question is answered or review is requested.
func (h handlers) practiceSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(r, routepath.SessionIDParam)
	if !ok {
		h.notFound(w, r)
		return
	}
	path := routepath.PracticeSession(sessionID)
	username, ok := h.requireViewer(w, r, path)
	if !ok {
		return
	}
	state, err := h.service.progress(httpx.RequestContext(r), username, sessionID)
	if err != nil {
		h.writeStoreError(w, r, "session", err)
		return
	}
	if r.Method != http.MethodPost {
		if state.complete || r.URL.Query().Get(routepath.ReviewQueryKey) != "" {
			h.pages.Write(w, r, pagerender.Page{Page: mapReview(state), Active: routepath.LinkHistory})
			return
		}
		h.renderQuestion(w, r, state, answerForm{}, problems{})
		return
	}
	if !h.verified(w, r, path) {
		return
	}
	// A stale or repeated submit must not answer the following question.
	if state.complete || r.PostFormValue(fieldQuestion) != strconv.FormatInt(state.current().ID, 10) {
		httpx.WriteRedirect(w, r, path)
		return
	}
	raw := answerForm{Text: r.PostFormValue(fieldResponse), Rating: r.PostFormValue(fieldRating)}
	text, rating, p := parseAnswer(raw)
	if !p.empty() {
		h.renderQuestion(w, r, state, raw, p)
		return
	}
	complete, err := h.service.answer(httpx.RequestContext(r), username, state, text, rating)
	if err != nil {
		if p, ok := storeProblems(err, answerFields); ok {
			h.renderQuestion(w, r, state, raw, p)
			return
		}
		h.writeStoreError(w, r, "save_response", err)
		return
	}
	if complete {
		h.flash.Add(w, r, flash.Success("practice.completed"))
	}
	httpx.WriteRedirect(w, r, path)
}

func (h handlers) history(w http.ResponseWriter, r *http.Request) {
	username, ok := h.requireViewer(w, r, routepath.History)
	if !ok {
		return
	}
	entries, err := h.service.history(httpx.RequestContext(r), username)
	if err != nil {
		h.writeStoreError(w, r, "history", err)
		return
	}
	h.pages.Write(w, r, pagerender.Page{Page: mapHistory(entries), Active: routepath.LinkHistory})
}

func (h handlers) renderQuestion(w http.ResponseWriter, r *http.Request, state progress, in answerForm, p problems) {
	form := answerFormFields(h.pages.Printer(r), in, p)
	form.Fields = append(form.Fields, hiddenQuestionField(state.current()))
	h.pages.Write(w, r, pagerender.Page{
		Page:   mapQuestionPage(state),
		Active: routepath.LinkPractice,
		Form:   form,
	})
}
