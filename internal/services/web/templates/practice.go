package templates

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/sip/internal/services/web/theme"
)

// QuestionSetRow is one set in the question set listing. Edit and delete
// links are empty when the viewer may not change the set.
type QuestionSetRow struct {
	Name       string
	Href       string
	Questions  int
	EditHref   string
	DeleteHref string
}

// QuestionSetListPage lists every question set.
type QuestionSetListPage struct {
	Sets    []QuestionSetRow
	NewHref string
}

// Name identifies the page in logs and traces.
func (QuestionSetListPage) Name() string { return "question_sets" }

// Blocks supplies the title and content blocks.
func (p QuestionSetListPage) Blocks(pc PageContext) ([]Block, error) {
	if p.NewHref == "" {
		return nil, missingContext("question set list requires a create link")
	}
	title := T(pc.Loc, "question_sets.title")
	content := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<div class="`, theme.ClassCard, `">`)
		m.raw(`<div class="d-flex justify-content-between align-items-center mb-3">`)
		writePageTitle(m, "bi-collection", title)
		writeLinkButton(m, p.NewHref, "btn "+theme.ClassButtonPrimary, "new-set", T(pc.Loc, "question_sets.new"))
		m.raw(`</div>`)
		if len(p.Sets) == 0 {
			writeEmpty(m, T(pc.Loc, "question_sets.empty"))
		} else {
			m.raw(`<ul class="list-group list-group-flush">`)
			for _, set := range p.Sets {
				m.raw(`<li class="list-group-item d-flex justify-content-between align-items-center" data-set>`)
				m.raw(`<div><a`)
				m.attr("href", set.Href)
				m.raw(`>`)
				m.text(set.Name)
				m.raw(`</a> <span class="badge text-bg-secondary">`)
				m.text(T(pc.Loc, "question_sets.question_count", set.Questions))
				m.raw(`</span></div><div class="btn-group btn-group-sm">`)
				if set.EditHref != "" {
					writeLinkButton(m, set.EditHref, "btn btn-outline-secondary", "edit", T(pc.Loc, "action.edit"))
				}
				if set.DeleteHref != "" {
					writeLinkButton(m, set.DeleteHref, "btn btn-outline-danger", "delete", T(pc.Loc, "action.delete"))
				}
				m.raw(`</div></li>`)
			}
			m.raw(`</ul>`)
		}
		m.raw(`</div>`)
		return m.err
	})
	return pageBlocks(title, content), nil
}

// QuestionRow is one question of a set. Edit and delete links are empty
// when the viewer may not change the set.
type QuestionRow struct {
	Number     int
	Text       string
	Difficulty string
	Tags       []string
	EditHref   string
	DeleteHref string
}

// QuestionSetPage shows one set with its questions in presentation order.
type QuestionSetPage struct {
	SetName     string
	Questions   []QuestionRow
	BackHref    string
	AddHref     string
	EditHref    string
	DeleteHref  string
	StartAction string
}

// Name identifies the page in logs and traces.
func (QuestionSetPage) Name() string { return "question_set" }

// Blocks supplies the title and content blocks.
func (p QuestionSetPage) Blocks(pc PageContext) ([]Block, error) {
	if strings.TrimSpace(p.SetName) == "" {
		return nil, missingContext("question set page requires a set name")
	}
	if p.StartAction != "" && pc.CSRFToken == "" {
		return nil, missingContext("question set page requires a csrf token")
	}
	content := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<div class="`, theme.ClassCard, `">`)
		writePageTitle(m, "bi-collection", p.SetName)
		m.raw(`<div class="d-flex flex-wrap gap-2 mb-3">`)
		if p.StartAction != "" && len(p.Questions) > 0 {
			writePostButton(m, p.StartAction, pc.CSRFToken, "btn "+theme.ClassButtonPrimary, "start", T(pc.Loc, "practice.start"))
		}
		if p.AddHref != "" {
			writeLinkButton(m, p.AddHref, "btn btn-outline-secondary", "add-question", T(pc.Loc, "questions.add"))
		}
		if p.EditHref != "" {
			writeLinkButton(m, p.EditHref, "btn btn-outline-secondary", "edit", T(pc.Loc, "question_sets.edit"))
		}
		if p.DeleteHref != "" {
			writeLinkButton(m, p.DeleteHref, "btn btn-outline-danger", "delete", T(pc.Loc, "question_sets.delete"))
		}
		m.raw(`</div>`)
		if len(p.Questions) == 0 {
			writeEmpty(m, T(pc.Loc, "questions.empty"))
		} else {
			m.raw(`<ol class="list-group list-group-numbered">`)
			for _, q := range p.Questions {
				m.raw(`<li class="list-group-item" data-question="`, strconv.Itoa(q.Number), `">`)
				m.raw(`<div class="d-flex justify-content-between align-items-start"><div>`)
				m.raw(`<p class="mb-1">`)
				m.text(q.Text)
				m.raw(`</p>`)
				writeDifficulty(m, pc, q.Difficulty)
				writeTags(m, q.Tags)
				m.raw(`</div><div class="btn-group btn-group-sm">`)
				if q.EditHref != "" {
					writeLinkButton(m, q.EditHref, "btn btn-outline-secondary", "edit", T(pc.Loc, "action.edit"))
				}
				if q.DeleteHref != "" {
					writeLinkButton(m, q.DeleteHref, "btn btn-outline-danger", "delete", T(pc.Loc, "action.delete"))
				}
				m.raw(`</div></div></li>`)
			}
			m.raw(`</ol>`)
		}
		if p.BackHref != "" {
			m.raw(`<p class="mt-3 mb-0"><a`)
			m.attr("href", p.BackHref)
			m.raw(`>`)
			m.text(T(pc.Loc, "question_sets.back"))
			m.raw(`</a></p>`)
		}
		m.raw(`</div>`)
		return m.err
	})
	return pageBlocks(p.SetName, content), nil
}

// FormPage renders a single form card from PageContext.Form. Context is an
// optional line of user content shown under the title.
type FormPage struct {
	ID         string
	TitleKey   string
	Icon       string
	Context    string
	Action     string
	SubmitKey  string
	CancelHref string
}

// Name identifies the page in logs and traces.
func (p FormPage) Name() string { return p.ID }

// Blocks supplies the title and content blocks.
func (p FormPage) Blocks(pc PageContext) ([]Block, error) {
	if p.TitleKey == "" || p.Action == "" || p.SubmitKey == "" {
		return nil, missingContext("form page %q requires a title, action, and submit label", p.ID)
	}
	if pc.Form == nil {
		return nil, missingContext("form page %q requires a form", p.ID)
	}
	if pc.CSRFToken == "" {
		return nil, missingContext("form page %q requires a csrf token", p.ID)
	}
	form := *pc.Form
	title := T(pc.Loc, p.TitleKey)
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<div class="row justify-content-center"><div class="col-lg-8">`)
		m.raw(`<div class="`, theme.ClassCard, `">`)
		writePageTitle(m, p.Icon, title)
		if p.Context != "" {
			m.raw(`<p class="`, theme.ClassTextMuted, `">`)
			m.text(p.Context)
			m.raw(`</p>`)
		}
		m.raw(`<form method="post" novalidate`)
		m.attr("action", p.Action)
		m.raw(`>`)
		writeCSRFInput(m, pc.CSRFToken)
		m.component(ctx, FormFields(form))
		m.raw(`<div class="d-flex gap-2 mt-4">`)
		m.raw(`<button type="submit" class="btn `, theme.ClassButtonPrimary, `">`)
		m.text(T(pc.Loc, p.SubmitKey))
		m.raw(`</button>`)
		if p.CancelHref != "" {
			writeLinkButton(m, p.CancelHref, "btn btn-outline-secondary", "cancel", T(pc.Loc, "action.cancel"))
		}
		m.raw(`</div></form></div></div></div>`)
		return m.err
	})
	return pageBlocks(title, content), nil
}

// ConfirmPage asks before a destructive POST.
type ConfirmPage struct {
	ID         string
	TitleKey   string
	PromptKey  string
	Subject    string
	Action     string
	CancelHref string
}

// Name identifies the page in logs and traces.
func (p ConfirmPage) Name() string { return p.ID }

// Blocks supplies the title and content blocks.
func (p ConfirmPage) Blocks(pc PageContext) ([]Block, error) {
	if p.TitleKey == "" || p.Action == "" {
		return nil, missingContext("confirm page %q requires a title and action", p.ID)
	}
	if pc.CSRFToken == "" {
		return nil, missingContext("confirm page %q requires a csrf token", p.ID)
	}
	title := T(pc.Loc, p.TitleKey)
	content := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<div class="`, theme.ClassCard, `">`)
		writePageTitle(m, "bi-trash", title)
		m.raw(`<p>`)
		m.text(T(pc.Loc, p.PromptKey))
		m.raw(`</p>`)
		if p.Subject != "" {
			m.raw(`<blockquote class="blockquote"><p class="mb-0">`)
			m.text(p.Subject)
			m.raw(`</p></blockquote>`)
		}
		m.raw(`<div class="d-flex gap-2">`)
		writePostButton(m, p.Action, pc.CSRFToken, "btn btn-danger", "confirm", T(pc.Loc, "action.confirm_delete"))
		if p.CancelHref != "" {
			writeLinkButton(m, p.CancelHref, "btn btn-outline-secondary", "cancel", T(pc.Loc, "action.cancel"))
		}
		m.raw(`</div></div>`)
		return m.err
	})
	return pageBlocks(title, content), nil
}

// PracticeSetRow is one set a viewer can start practicing.
type PracticeSetRow struct {
	Name        string
	Href        string
	Questions   int
	StartAction string
}

// PracticeIndexPage lists the sets available to practice.
type PracticeIndexPage struct {
	Sets []PracticeSetRow
}

// Name identifies the page in logs and traces.
func (PracticeIndexPage) Name() string { return "practice" }

// Blocks supplies the title and content blocks.
func (p PracticeIndexPage) Blocks(pc PageContext) ([]Block, error) {
	if len(p.Sets) > 0 && pc.CSRFToken == "" {
		return nil, missingContext("practice page requires a csrf token")
	}
	title := T(pc.Loc, "practice.title")
	content := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<div class="`, theme.ClassCard, `">`)
		writePageTitle(m, "bi-mic", title)
		m.raw(`<p class="`, theme.ClassTextMuted, `">`)
		m.text(T(pc.Loc, "practice.intro"))
		m.raw(`</p>`)
		if len(p.Sets) == 0 {
			writeEmpty(m, T(pc.Loc, "practice.empty"))
		} else {
			m.raw(`<ul class="list-group list-group-flush">`)
			for _, set := range p.Sets {
				m.raw(`<li class="list-group-item d-flex justify-content-between align-items-center" data-set>`)
				m.raw(`<div><a`)
				m.attr("href", set.Href)
				m.raw(`>`)
				m.text(set.Name)
				m.raw(`</a> <span class="badge text-bg-secondary">`)
				m.text(T(pc.Loc, "question_sets.question_count", set.Questions))
				m.raw(`</span></div>`)
				if set.StartAction != "" && set.Questions > 0 {
					writePostButton(m, set.StartAction, pc.CSRFToken, "btn btn-sm "+theme.ClassButtonPrimary, "start", T(pc.Loc, "practice.start"))
				}
				m.raw(`</li>`)
			}
			m.raw(`</ul>`)
		}
		m.raw(`</div>`)
		return m.err
	})
	return pageBlocks(title, content), nil
}

// PracticeQuestionPage asks the current question of a session. The answer
// fields come from PageContext.Form.
type PracticeQuestionPage struct {
	SetName    string
	Number     int
	Total      int
	Question   string
	Difficulty string
	Tags       []string
	Action     string
}

// Name identifies the page in logs and traces.
func (PracticeQuestionPage) Name() string { return "practice_question" }

// Blocks supplies the title and content blocks.
func (p PracticeQuestionPage) Blocks(pc PageContext) ([]Block, error) {
	if p.Action == "" || p.Number < 1 || p.Number > p.Total {
		return nil, missingContext("practice question page requires an action and a question position")
	}
	if pc.Form == nil {
		return nil, missingContext("practice question page requires a form")
	}
	if pc.CSRFToken == "" {
		return nil, missingContext("practice question page requires a csrf token")
	}
	form := *pc.Form
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<div class="row justify-content-center"><div class="col-lg-8">`)
		m.raw(`<div class="`, theme.ClassCard, `">`)
		writePageTitle(m, "bi-mic", p.SetName)
		m.raw(`<p class="`, theme.ClassTextMuted, `" data-progress>`)
		m.text(T(pc.Loc, "practice.progress", p.Number, p.Total))
		m.raw(`</p>`)
		m.raw(`<div class="progress mb-3" role="progressbar"`)
		m.attr("aria-valuenow", strconv.Itoa(p.Number-1))
		m.attr("aria-valuemax", strconv.Itoa(p.Total))
		m.raw(` aria-valuemin="0"><div class="progress-bar"`)
		m.attr("style", "width: "+strconv.Itoa((p.Number-1)*100/p.Total)+"%")
		m.raw(`></div></div>`)
		m.raw(`<p class="lead" data-question-text>`)
		m.text(p.Question)
		m.raw(`</p>`)
		writeDifficulty(m, pc, p.Difficulty)
		writeTags(m, p.Tags)
		m.raw(`<form method="post" class="mt-3" novalidate`)
		m.attr("action", p.Action)
		m.raw(`>`)
		writeCSRFInput(m, pc.CSRFToken)
		m.component(ctx, FormFields(form))
		m.raw(`<button type="submit" class="btn `, theme.ClassButtonPrimary, `">`)
		m.text(T(pc.Loc, "practice.save_next"))
		m.raw(`</button></form></div></div></div>`)
		return m.err
	})
	return pageBlocks(p.SetName, content), nil
}

// ReviewItem pairs a question with the recorded answer. Rating zero means
// unrated.
type ReviewItem struct {
	Number   int
	Question string
	Answer   string
	Rating   int
}

// PracticeReviewPage is the read-only summary of a session.
type PracticeReviewPage struct {
	SetName    string
	StartedAt  time.Time
	Items      []ReviewItem
	Complete   bool
	ResumeHref string
	BackHref   string
}

// Name identifies the page in logs and traces.
func (PracticeReviewPage) Name() string { return "practice_review" }

// Blocks supplies the title and content blocks.
func (p PracticeReviewPage) Blocks(pc PageContext) ([]Block, error) {
	if strings.TrimSpace(p.SetName) == "" {
		return nil, missingContext("practice review requires a set name")
	}
	titleKey := "practice.review_title"
	if p.Complete {
		titleKey = "practice.complete_title"
	}
	title := T(pc.Loc, titleKey)
	content := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<div class="`, theme.ClassCard, `">`)
		writePageTitle(m, "bi-check2-circle", title)
		m.raw(`<p class="`, theme.ClassTextMuted, `">`)
		m.text(p.SetName)
		m.raw(` &middot; `)
		writeTimestamp(m, p.StartedAt)
		m.raw(`</p>`)
		for _, item := range p.Items {
			m.raw(`<div class="mb-3" data-review="`, strconv.Itoa(item.Number), `">`)
			m.raw(`<h2 class="h6">`)
			m.text(strconv.Itoa(item.Number) + ". " + item.Question)
			m.raw(`</h2>`)
			if item.Answer == "" {
				m.raw(`<p class="`, theme.ClassTextMuted, ` fst-italic">`)
				m.text(T(pc.Loc, "practice.no_answer"))
				m.raw(`</p>`)
			} else {
				m.raw(`<p class="mb-1" style="white-space: pre-wrap">`)
				m.text(item.Answer)
				m.raw(`</p>`)
			}
			if item.Rating > 0 {
				m.raw(`<span class="badge text-bg-info">`)
				m.text(T(pc.Loc, "practice.rating", item.Rating))
				m.raw(`</span>`)
			}
			m.raw(`</div>`)
		}
		m.raw(`<div class="d-flex gap-2">`)
		if !p.Complete && p.ResumeHref != "" {
			writeLinkButton(m, p.ResumeHref, "btn "+theme.ClassButtonPrimary, "resume", T(pc.Loc, "practice.resume"))
		}
		if p.BackHref != "" {
			writeLinkButton(m, p.BackHref, "btn btn-outline-secondary", "back", T(pc.Loc, "practice.back_to_history"))
		}
		m.raw(`</div></div>`)
		return m.err
	})
	return pageBlocks(title, content), nil
}

// HistoryRow is one past practice session.
type HistoryRow struct {
	SetName    string
	StartedAt  time.Time
	Answered   int
	Total      int
	Complete   bool
	ReviewHref string
	ResumeHref string
}

// HistoryPage lists the viewer's practice sessions, newest first.
type HistoryPage struct {
	Entries []HistoryRow
}

// Name identifies the page in logs and traces.
func (HistoryPage) Name() string { return "history" }

// Blocks supplies the title and content blocks.
func (p HistoryPage) Blocks(pc PageContext) ([]Block, error) {
	title := T(pc.Loc, "history.title")
	content := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<div class="`, theme.ClassCard, `">`)
		writePageTitle(m, "bi-clock-history", title)
		if len(p.Entries) == 0 {
			writeEmpty(m, T(pc.Loc, "history.empty"))
		} else {
			m.raw(`<table class="table align-middle mb-0"><thead><tr><th scope="col">`)
			m.text(T(pc.Loc, "history.set"))
			m.raw(`</th><th scope="col">`)
			m.text(T(pc.Loc, "history.started"))
			m.raw(`</th><th scope="col">`)
			m.text(T(pc.Loc, "history.progress"))
			m.raw(`</th><th scope="col"></th></tr></thead><tbody>`)
			for _, entry := range p.Entries {
				m.raw(`<tr data-session><td>`)
				m.text(entry.SetName)
				m.raw(`</td><td>`)
				writeTimestamp(m, entry.StartedAt)
				m.raw(`</td><td>`)
				m.text(T(pc.Loc, "history.answered", entry.Answered, entry.Total))
				m.raw(`</td><td class="text-end"><div class="btn-group btn-group-sm">`)
				writeLinkButton(m, entry.ReviewHref, "btn btn-outline-secondary", "review", T(pc.Loc, "history.review"))
				if !entry.Complete && entry.ResumeHref != "" {
					writeLinkButton(m, entry.ResumeHref, "btn "+theme.ClassButtonPrimary, "resume", T(pc.Loc, "practice.resume"))
				}
				m.raw(`</div></td></tr>`)
			}
			m.raw(`</tbody></table>`)
		}
		m.raw(`</div>`)
		return m.err
	})
	return pageBlocks(title, content), nil
}

func pageBlocks(title string, content templ.Component) []Block {
	return []Block{
		{Name: BlockTitle, Component: Text(title)},
		{Name: BlockContent, Component: content},
	}
}

func writePageTitle(m *markup, icon, title string) {
	m.raw(`<h1 class="`, theme.ClassPageTitle, ` h3">`)
	m.icon(icon)
	m.text(title)
	m.raw(`</h1>`)
}

func writeEmpty(m *markup, text string) {
	m.raw(`<p class="`, theme.ClassTextMuted, ` mb-0" data-empty>`)
	m.text(text)
	m.raw(`</p>`)
}

func writeLinkButton(m *markup, href, class, action, label string) {
	m.raw(`<a`)
	m.attr("class", class)
	m.attr("href", href)
	m.attr("data-action", action)
	m.raw(`>`)
	m.text(label)
	m.raw(`</a>`)
}

func writePostButton(m *markup, action, token, class, name, label string) {
	m.raw(`<form method="post" class="d-inline"`)
	m.attr("action", action)
	m.raw(`>`)
	writeCSRFInput(m, token)
	m.raw(`<button type="submit"`)
	m.attr("class", class)
	m.attr("data-action", name)
	m.raw(`>`)
	m.text(label)
	m.raw(`</button></form>`)
}

func writeDifficulty(m *markup, pc PageContext, difficulty string) {
	if difficulty == "" {
		return
	}
	m.raw(`<span class="badge text-bg-light me-1"`)
	m.attr("data-difficulty", difficulty)
	m.raw(`>`)
	m.text(T(pc.Loc, "difficulty."+difficulty))
	m.raw(`</span>`)
}

func writeTags(m *markup, tags []string) {
	for _, tag := range tags {
		m.raw(`<span class="badge rounded-pill text-bg-secondary me-1" data-tag>`)
		m.text(tag)
		m.raw(`</span>`)
	}
}

func writeTimestamp(m *markup, at time.Time) {
	if at.IsZero() {
		return
	}
	at = at.UTC()
	m.raw(`<time`)
	m.attr("datetime", at.Format(time.RFC3339))
	m.raw(`>`)
	m.text(at.Format("2006-01-02 15:04") + " UTC")
	m.raw(`</time>`)
}
