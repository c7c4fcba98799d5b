package templates

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/sip/internal/services/web/routepath"
)

func TestQuestionSetListPageLinksOnlyEditableSets(t *testing.T) {
	t.Parallel()

	shell := newTestShell(t)
	got, err := shell.RenderString(context.Background(), QuestionSetListPage{
		NewHref: routepath.QuestionSetsNew,
		Sets: []QuestionSetRow{
			{Name: "Behavioral", Href: "/question-sets/1/", Questions: 3, EditHref: "/question-sets/1/edit/", DeleteHref: "/question-sets/1/delete/"},
			{Name: "System <design>", Href: "/question-sets/2/", Questions: 0},
		},
	}, PageContext{Active: routepath.LinkQuestionSets, Loc: englishPrinter()})
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}

	elements := parseElements(got)
	rows := filterElements(elements, func(el element) bool { _, ok := el.attrs["data-set"]; return ok })
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	edits := filterElements(elements, func(el element) bool { return el.attrs["data-action"] == "edit" })
	if len(edits) != 1 || edits[0].attrs["href"] != "/question-sets/1/edit/" {
		t.Fatalf("edit links = %+v", edits)
	}
	if !strings.Contains(got, "3 questions") {
		t.Fatalf("expected question count")
	}
	if strings.Contains(got, "System <design>") || !strings.Contains(got, "System &lt;design&gt;") {
		t.Fatalf("expected escaped set name")
	}
}

func TestQuestionSetListPageEmptyState(t *testing.T) {
	t.Parallel()

	shell := newTestShell(t)
	got, err := shell.RenderString(context.Background(), QuestionSetListPage{NewHref: routepath.QuestionSetsNew}, PageContext{Loc: englishPrinter()})
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}
	if !strings.Contains(got, "data-empty") || !strings.Contains(got, "No question sets yet.") {
		t.Fatalf("expected empty state")
	}
}

func TestQuestionSetPageShowsQuestionsInGivenOrder(t *testing.T) {
	t.Parallel()

	shell := newTestShell(t)
	got, err := shell.RenderString(context.Background(), QuestionSetPage{
		SetName: "Behavioral",
		Questions: []QuestionRow{
			{Number: 1, Text: "First", Difficulty: "easy", Tags: []string{"intro"}},
			{Number: 2, Text: "Second", Difficulty: "hard"},
		},
		StartAction: "/practice/start/1/",
	}, PageContext{CSRFToken: "tok", Loc: englishPrinter()})
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}

	first := strings.Index(got, `data-question="1"`)
	second := strings.Index(got, `data-question="2"`)
	if first < 0 || second < 0 || first > second {
		t.Fatalf("expected questions in order (first=%d second=%d)", first, second)
	}
	if !strings.Contains(got, `data-difficulty="easy"`) || !strings.Contains(got, "Hard") {
		t.Fatalf("expected difficulty badges")
	}
	if !strings.Contains(got, `action="/practice/start/1/"`) {
		t.Fatalf("expected start form")
	}
	if strings.Contains(got, `data-action="add-question"`) {
		t.Fatalf("expected no add link without an add href")
	}
}

func TestFormPageRendersControlsAndCancel(t *testing.T) {
	t.Parallel()

	shell := newTestShell(t)
	form := &Form{Fields: []FormField{
		{Name: "text", Label: "Question", Kind: KindTextarea, Value: "Why?"},
		{Name: "difficulty", Label: "Difficulty", Kind: KindSelect, Value: "hard", Options: []Option{
			{Value: "easy", Label: "Easy"}, {Value: "hard", Label: "Hard"},
		}},
		{Name: "order", Label: "Order", Kind: KindNumber, Value: "2"},
	}}
	got, err := shell.RenderString(context.Background(), FormPage{
		ID:         "question_new",
		TitleKey:   "questions.new_title",
		Context:    "Behavioral",
		Action:     "/question-sets/1/questions/new/",
		SubmitKey:  "questions.add",
		CancelHref: "/question-sets/1/",
	}, PageContext{Form: form, CSRFToken: "tok", Loc: englishPrinter()})
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}

	elements := parseElements(got)
	selected := filterElements(elements, func(el element) bool { _, ok := el.attrs["selected"]; return el.tag == "option" && ok })
	if len(selected) != 1 || selected[0].attrs["value"] != "hard" {
		t.Fatalf("selected options = %+v", selected)
	}
	textareas := filterElements(elements, func(el element) bool { return el.tag == "textarea" })
	if len(textareas) != 1 || textareas[0].text != "Why?" {
		t.Fatalf("textareas = %+v", textareas)
	}
	numbers := filterElements(elements, func(el element) bool { return el.tag == "input" && el.attrs["type"] == "number" })
	if len(numbers) != 1 || numbers[0].attrs["value"] != "2" {
		t.Fatalf("number inputs = %+v", numbers)
	}
	cancel := filterElements(elements, func(el element) bool { return el.attrs["data-action"] == "cancel" })
	if len(cancel) != 1 || cancel[0].attrs["href"] != "/question-sets/1/" {
		t.Fatalf("cancel links = %+v", cancel)
	}
	if !strings.Contains(got, "<title>New question | SIP</title>") {
		t.Fatalf("expected localized title")
	}
}

func TestPracticeQuestionPageShowsProgress(t *testing.T) {
	t.Parallel()

	shell := newTestShell(t)
	got, err := shell.RenderString(context.Background(), PracticeQuestionPage{
		SetName:    "Behavioral",
		Number:     2,
		Total:      4,
		Question:   "Tell me about a conflict.",
		Difficulty: "medium",
		Tags:       []string{"conflict", "teamwork"},
		Action:     "/practice/9/",
	}, PageContext{
		Form:      &Form{Fields: []FormField{{Name: "response_text", Label: "Your answer", Kind: KindTextarea}}},
		CSRFToken: "tok",
		Loc:       englishPrinter(),
	})
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}

	if !strings.Contains(got, "Question 2 of 4") {
		t.Fatalf("expected progress text")
	}
	if !strings.Contains(got, `aria-valuenow="1"`) || !strings.Contains(got, `style="width: 25%"`) {
		t.Fatalf("expected progress bar at one of four")
	}
	if n := strings.Count(got, "data-tag"); n != 2 {
		t.Fatalf("tags = %d, want 2", n)
	}
	if !strings.Contains(got, "Save and continue") {
		t.Fatalf("expected submit label")
	}
}

func TestPracticeReviewPageMarksMissingAnswers(t *testing.T) {
	t.Parallel()

	shell := newTestShell(t)
	started := time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC)
	got, err := shell.RenderString(context.Background(), PracticeReviewPage{
		SetName:   "Behavioral",
		StartedAt: started,
		Items: []ReviewItem{
			{Number: 1, Question: "First", Answer: "An answer", Rating: 4},
			{Number: 2, Question: "Second"},
		},
		ResumeHref: "/practice/9/",
		BackHref:   routepath.History,
	}, PageContext{Loc: englishPrinter()})
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}

	if !strings.Contains(got, "Session review") {
		t.Fatalf("expected review title")
	}
	if !strings.Contains(got, "Self rating: 4/5") || !strings.Contains(got, "No answer yet.") {
		t.Fatalf("expected rating and missing answer marker")
	}
	if !strings.Contains(got, "2026-03-01 14:30 UTC") {
		t.Fatalf("expected start time")
	}
	if !strings.Contains(got, `data-action="resume"`) {
		t.Fatalf("expected resume link for an open session")
	}
}

func TestPracticeReviewPageCompleteHidesResume(t *testing.T) {
	t.Parallel()

	shell := newTestShell(t)
	got, err := shell.RenderString(context.Background(), PracticeReviewPage{
		SetName:    "Behavioral",
		Items:      []ReviewItem{{Number: 1, Question: "First", Answer: "Done"}},
		Complete:   true,
		ResumeHref: "/practice/9/",
		BackHref:   routepath.History,
	}, PageContext{Loc: englishPrinter()})
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}
	if !strings.Contains(got, "Practice complete") || strings.Contains(got, `data-action="resume"`) {
		t.Fatalf("expected completed summary without resume")
	}
}

func TestHistoryPageRows(t *testing.T) {
	t.Parallel()

	shell := newTestShell(t)
	got, err := shell.RenderString(context.Background(), HistoryPage{Entries: []HistoryRow{
		{SetName: "Behavioral", Answered: 1, Total: 2, ReviewHref: "/practice/2/?review=1", ResumeHref: "/practice/2/"},
		{SetName: "Behavioral", Answered: 2, Total: 2, Complete: true, ReviewHref: "/practice/1/?review=1", ResumeHref: "/practice/1/"},
	}}, PageContext{Active: routepath.LinkHistory, Viewer: Viewer{Username: "ada"}, CSRFToken: "tok", Loc: englishPrinter()})
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}

	if n := strings.Count(got, "data-session"); n != 2 {
		t.Fatalf("rows = %d, want 2", n)
	}
	if n := strings.Count(got, `data-action="resume"`); n != 1 {
		t.Fatalf("resume links = %d, want 1", n)
	}
	if !strings.Contains(got, "1 of 2 answered") {
		t.Fatalf("expected answered counts")
	}
}

func TestPracticePagesRequireContext(t *testing.T) {
	t.Parallel()

	shell := newTestShell(t)
	questionForm := &Form{Fields: []FormField{{Name: "response_text", Label: "Answer"}}}
	tests := []struct {
		name string
		page Page
		pc   PageContext
	}{
		{name: "set list without create link", page: QuestionSetListPage{}},
		{name: "set page without name", page: QuestionSetPage{}},
		{name: "set page start without csrf", page: QuestionSetPage{SetName: "A", StartAction: "/practice/start/1/"}},
		{name: "form page without form", page: FormPage{ID: "x", TitleKey: "questions.new_title", Action: "/a/", SubmitKey: "questions.add"}, pc: PageContext{CSRFToken: "t"}},
		{name: "form page without csrf", page: FormPage{ID: "x", TitleKey: "questions.new_title", Action: "/a/", SubmitKey: "questions.add"}, pc: PageContext{Form: questionForm}},
		{name: "form page without action", page: FormPage{ID: "x", TitleKey: "questions.new_title", SubmitKey: "questions.add"}, pc: PageContext{Form: questionForm, CSRFToken: "t"}},
		{name: "confirm without csrf", page: ConfirmPage{ID: "x", TitleKey: "questions.delete_title", Action: "/a/"}},
		{name: "practice index start without csrf", page: PracticeIndexPage{Sets: []PracticeSetRow{{Name: "A", Questions: 1, StartAction: "/practice/start/1/"}}}},
		{name: "question out of range", page: PracticeQuestionPage{SetName: "A", Number: 3, Total: 2, Action: "/practice/1/"}, pc: PageContext{Form: questionForm, CSRFToken: "t"}},
		{name: "question without form", page: PracticeQuestionPage{SetName: "A", Number: 1, Total: 2, Action: "/practice/1/"}, pc: PageContext{CSRFToken: "t"}},
		{name: "review without set", page: PracticeReviewPage{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			err := shell.Render(context.Background(), &buf, tc.page, tc.pc)
			if !errors.Is(err, ErrMissingContext) {
				t.Fatalf("Render() error = %v, want ErrMissingContext", err)
			}
			if buf.Len() != 0 {
				t.Fatalf("expected no output")
			}
		})
	}
}
