package practice

import (
	"net/http"
	"strings"

	"github.com/louisbranch/sip/internal/services/web/platform/flash"
	"github.com/louisbranch/sip/internal/services/web/platform/httpx"
	"github.com/louisbranch/sip/internal/services/web/platform/pagerender"
	"github.com/louisbranch/sip/internal/services/web/routepath"
	"github.com/louisbranch/sip/internal/services/web/templates"
)

func (h handlers) questionSets(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.listSets(httpx.RequestContext(r))
	if err != nil {
		h.writeStoreError(w, r, "list_sets", err)
		return
	}
	h.pages.Write(w, r, pagerender.Page{
		Page:   mapQuestionSetList(summaries, h.viewer(r)),
		Active: routepath.LinkQuestionSets,
	})
}

func (h handlers) questionSet(w http.ResponseWriter, r *http.Request, setID int64) {
	set, questions, err := h.service.setWithQuestions(httpx.RequestContext(r), setID)
	if err != nil {
		h.writeStoreError(w, r, "question_set", err)
		return
	}
	h.pages.Write(w, r, pagerender.Page{
		Page:   mapQuestionSetPage(set, questions, h.viewer(r)),
		Active: routepath.LinkQuestionSets,
	})
}

func (h handlers) newQuestionSet(w http.ResponseWriter, r *http.Request) {
	username, ok := h.requireViewer(w, r, routepath.QuestionSetsNew)
	if !ok {
		return
	}
	page := templates.FormPage{
		ID:         "question_set_new",
		TitleKey:   "question_sets.new_title",
		Icon:       "bi-collection",
		Action:     routepath.QuestionSetsNew,
		SubmitKey:  "question_sets.create",
		CancelHref: routepath.QuestionSets,
	}
	if r.Method != http.MethodPost {
		h.renderSetForm(w, r, page, setInput{}, problems{})
		return
	}
	if !h.verified(w, r, routepath.QuestionSetsNew) {
		return
	}
	in := setInput{Name: strings.TrimSpace(r.PostFormValue(fieldName))}
	if p := validateSet(in); !p.empty() {
		h.renderSetForm(w, r, page, in, p)
		return
	}
	set, existed, err := h.service.createSet(httpx.RequestContext(r), in, username)
	if err != nil {
		if p, ok := storeProblems(err, setFields); ok {
			h.renderSetForm(w, r, page, in, p)
			return
		}
		h.writeStoreError(w, r, "create_set", err)
		return
	}
	if existed {
		if !canEdit(set, username) {
			h.flash.Add(w, r, flash.Danger("question_sets.exists_locked"))
			httpx.WriteRedirect(w, r, routepath.QuestionSets)
			return
		}
		h.flash.Add(w, r, flash.Info("question_sets.exists_append", set.Name))
		httpx.WriteRedirect(w, r, routepath.QuestionSet(set.ID))
		return
	}
	h.flash.Add(w, r, flash.Success("question_sets.created"))
	httpx.WriteRedirect(w, r, routepath.QuestionSet(set.ID))
}

func (h handlers) editQuestionSet(w http.ResponseWriter, r *http.Request, setID int64) {
	set, ok := h.editableSet(w, r, setID, "question_sets.cannot_edit")
	if !ok {
		return
	}
	page := templates.FormPage{
		ID:         "question_set_edit",
		TitleKey:   "question_sets.edit_title",
		Icon:       "bi-pencil",
		Context:    set.Name,
		Action:     routepath.QuestionSetEdit(setID),
		SubmitKey:  "action.save",
		CancelHref: routepath.QuestionSet(setID),
	}
	if r.Method != http.MethodPost {
		h.renderSetForm(w, r, page, setInput{Name: set.Name}, problems{})
		return
	}
	if !h.verified(w, r, routepath.QuestionSetEdit(setID)) {
		return
	}
	in := setInput{Name: strings.TrimSpace(r.PostFormValue(fieldName))}
	if p := validateSet(in); !p.empty() {
		h.renderSetForm(w, r, page, in, p)
		return
	}
	if _, err := h.service.renameSet(httpx.RequestContext(r), setID, in); err != nil {
		if p, ok := storeProblems(err, setFields); ok {
			h.renderSetForm(w, r, page, in, p)
			return
		}
		h.writeStoreError(w, r, "rename_set", err)
		return
	}
	h.flash.Add(w, r, flash.Success("question_sets.updated"))
	httpx.WriteRedirect(w, r, routepath.QuestionSets)
}

func (h handlers) deleteQuestionSet(w http.ResponseWriter, r *http.Request, setID int64) {
	set, ok := h.editableSet(w, r, setID, "question_sets.cannot_delete")
	if !ok {
		return
	}
	if r.Method != http.MethodPost {
		h.pages.Write(w, r, pagerender.Page{
			Page: templates.ConfirmPage{
				ID:         "question_set_delete",
				TitleKey:   "question_sets.delete_title",
				PromptKey:  "question_sets.delete_prompt",
				Subject:    set.Name,
				Action:     routepath.QuestionSetDelete(setID),
				CancelHref: routepath.QuestionSet(setID),
			},
			Active: routepath.LinkQuestionSets,
		})
		return
	}
	if !h.verified(w, r, routepath.QuestionSetDelete(setID)) {
		return
	}
	if err := h.service.deleteSet(httpx.RequestContext(r), setID); err != nil {
		h.writeStoreError(w, r, "delete_set", err)
		return
	}
	h.flash.Add(w, r, flash.Success("question_sets.deleted"))
	httpx.WriteRedirect(w, r, routepath.QuestionSets)
}

// editableSet loads a set the signed-in viewer may change. Otherwise it
// writes the response and reports false.
func (h handlers) editableSet(w http.ResponseWriter, r *http.Request, setID int64, deniedKey string) (QuestionSet, bool) {
	username, ok := h.requireViewer(w, r, r.URL.Path)
	if !ok {
		return QuestionSet{}, false
	}
	set, err := h.service.set(httpx.RequestContext(r), setID)
	if err != nil {
		h.writeStoreError(w, r, "question_set", err)
		return QuestionSet{}, false
	}
	if !canEdit(set, username) {
		h.flash.Add(w, r, flash.Danger(deniedKey))
		httpx.WriteRedirect(w, r, routepath.QuestionSets)
		return QuestionSet{}, false
	}
	return set, true
}

func (h handlers) renderSetForm(w http.ResponseWriter, r *http.Request, page templates.FormPage, in setInput, p problems) {
	h.pages.Write(w, r, pagerender.Page{
		Page:   page,
		Active: routepath.LinkQuestionSets,
		Form:   setForm(h.pages.Printer(r), in, p),
	})
}
