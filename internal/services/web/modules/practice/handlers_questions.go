package practice

import (
	"net/http"

	"github.com/louisbranch/sip/internal/services/web/platform/flash"
	"github.com/louisbranch/sip/internal/services/web/platform/httpx"
	"github.com/louisbranch/sip/internal/services/web/platform/pagerender"
	"github.com/louisbranch/sip/internal/services/web/routepath"
	"github.com/louisbranch/sip/internal/services/web/templates"
)

func (h handlers) newQuestion(w http.ResponseWriter, r *http.Request, setID int64) {
	set, ok := h.editableSet(w, r, setID, "questions.cannot_add")
	if !ok {
		return
	}
	page := templates.FormPage{
		ID:         "question_new",
		TitleKey:   "questions.new_title",
		Icon:       "bi-plus-circle",
		Context:    set.Name,
		Action:     routepath.QuestionNew(setID),
		SubmitKey:  "questions.add",
		CancelHref: routepath.QuestionSet(setID),
	}
	if r.Method != http.MethodPost {
		h.renderQuestionForm(w, r, page, questionForm{}, problems{})
		return
	}
	if !h.verified(w, r, routepath.QuestionNew(setID)) {
		return
	}
	raw := submittedQuestion(r)
	in, p := parseQuestion(raw)
	if !p.empty() {
		h.renderQuestionForm(w, r, page, raw, p)
		return
	}
	if _, err := h.service.addQuestion(httpx.RequestContext(r), setID, in); err != nil {
		if p, ok := storeProblems(err, questionFields); ok {
			h.renderQuestionForm(w, r, page, raw, p)
			return
		}
		h.writeStoreError(w, r, "add_question", err)
		return
	}
	h.flash.Add(w, r, flash.Success("questions.added"))
	httpx.WriteRedirect(w, r, routepath.QuestionSet(setID))
}

func (h handlers) editQuestion(w http.ResponseWriter, r *http.Request, setID, questionID int64) {
	set, ok := h.editableSet(w, r, setID, "questions.cannot_edit")
	if !ok {
		return
	}
	question, err := h.service.question(httpx.RequestContext(r), setID, questionID)
	if err != nil {
		h.writeStoreError(w, r, "question", err)
		return
	}
	page := templates.FormPage{
		ID:         "question_edit",
		TitleKey:   "questions.edit_title",
		Icon:       "bi-pencil",
		Context:    set.Name,
		Action:     routepath.QuestionEdit(setID, questionID),
		SubmitKey:  "action.save",
		CancelHref: routepath.QuestionSet(setID),
	}
	if r.Method != http.MethodPost {
		h.renderQuestionForm(w, r, page, questionFormFrom(question), problems{})
		return
	}
	if !h.verified(w, r, routepath.QuestionEdit(setID, questionID)) {
		return
	}
	raw := submittedQuestion(r)
	in, p := parseQuestion(raw)
	if !p.empty() {
		h.renderQuestionForm(w, r, page, raw, p)
		return
	}
	if _, err := h.service.updateQuestion(httpx.RequestContext(r), setID, questionID, in); err != nil {
		if p, ok := storeProblems(err, questionFields); ok {
			h.renderQuestionForm(w, r, page, raw, p)
			return
		}
		h.writeStoreError(w, r, "update_question", err)
		return
	}
	h.flash.Add(w, r, flash.Success("questions.updated"))
	httpx.WriteRedirect(w, r, routepath.QuestionSet(setID))
}

func (h handlers) deleteQuestion(w http.ResponseWriter, r *http.Request, setID, questionID int64) {
	if _, ok := h.editableSet(w, r, setID, "questions.cannot_delete"); !ok {
		return
	}
	question, err := h.service.question(httpx.RequestContext(r), setID, questionID)
	if err != nil {
		h.writeStoreError(w, r, "question", err)
		return
	}
	if r.Method != http.MethodPost {
		h.pages.Write(w, r, pagerender.Page{
			Page: templates.ConfirmPage{
				ID:         "question_delete",
				TitleKey:   "questions.delete_title",
				PromptKey:  "questions.delete_prompt",
				Subject:    question.Text,
				Action:     routepath.QuestionDelete(setID, questionID),
				CancelHref: routepath.QuestionSet(setID),
			},
			Active: routepath.LinkQuestionSets,
		})
		return
	}
	if !h.verified(w, r, routepath.QuestionDelete(setID, questionID)) {
		return
	}
	if err := h.service.deleteQuestion(httpx.RequestContext(r), setID, questionID); err != nil {
		h.writeStoreError(w, r, "delete_question", err)
		return
	}
	h.flash.Add(w, r, flash.Success("questions.deleted"))
	httpx.WriteRedirect(w, r, routepath.QuestionSet(setID))
}

func submittedQuestion(r *http.Request) questionForm {
	return questionForm{
		Text:       r.PostFormValue(fieldText),
		Difficulty: r.PostFormValue(fieldDifficulty),
		Tags:       r.PostFormValue(fieldTags),
		Order:      r.PostFormValue(fieldOrder),
	}
}

func (h handlers) renderQuestionForm(w http.ResponseWriter, r *http.Request, page templates.FormPage, in questionForm, p problems) {
	h.pages.Write(w, r, pagerender.Page{
		Page:   page,
		Active: routepath.LinkQuestionSets,
		Form:   questionFormFields(h.pages.Printer(r), in, p),
	})
}
