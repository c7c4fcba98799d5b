package practice

import (
	"net/http"

	"github.com/louisbranch/sip/internal/services/web/platform/httpx"
	"github.com/louisbranch/sip/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	read := httpx.AllowMethods(http.MethodGet, http.MethodHead)
	form := httpx.AllowMethods(http.MethodGet, http.MethodPost)
	post := httpx.AllowMethods(http.MethodPost)

	mux.Handle(routepath.QuestionSets+"{$}", read(http.HandlerFunc(h.questionSets)))
	mux.Handle(routepath.QuestionSetsNew+"{$}", form(http.HandlerFunc(h.newQuestionSet)))
	mux.Handle(routepath.QuestionSetPattern, read(h.withSetID(h.questionSet)))
	mux.Handle(routepath.QuestionSetEditPattern, form(h.withSetID(h.editQuestionSet)))
	mux.Handle(routepath.QuestionSetDeletePattern, form(h.withSetID(h.deleteQuestionSet)))
	mux.Handle(routepath.QuestionNewPattern, form(h.withSetID(h.newQuestion)))
	mux.Handle(routepath.QuestionEditPattern, form(h.withQuestionID(h.editQuestion)))
	mux.Handle(routepath.QuestionDeletePattern, form(h.withQuestionID(h.deleteQuestion)))

	mux.Handle(routepath.Practice+"{$}", read(http.HandlerFunc(h.practiceIndex)))
	mux.Handle(routepath.PracticeStartPattern, post(h.withSetID(h.startPractice)))
	mux.Handle(routepath.PracticeSessionPattern, form(http.HandlerFunc(h.practiceSession)))

	mux.Handle(routepath.History+"{$}", read(http.HandlerFunc(h.history)))

	for _, prefix := range []string{routepath.QuestionSets, routepath.Practice, routepath.History} {
		mux.Handle(prefix+"{rest...}", http.HandlerFunc(h.notFound))
	}
}
