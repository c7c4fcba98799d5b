package practice

import (
	"context"
	"strings"
	"testing"
	"time"

	apperrors "github.com/louisbranch/sip/internal/services/web/platform/errors"
)

// legacyStore serves sets that share a name, as older data may.
type legacyStore struct {
	unavailableStore
	sets []QuestionSet
}

func (s legacyStore) ListQuestionSets(context.Context) ([]QuestionSet, error) {
	return s.sets, nil
}

func (s legacyStore) Questions(_ context.Context, setID int64) ([]Question, error) {
	return make([]Question, setID), nil
}

func TestListSetsKeepsNewestSetPerName(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := newService(legacyStore{sets: []QuestionSet{
		{ID: 3, Name: "Behavioral", UpdatedAt: now.Add(2 * time.Hour)},
		{ID: 2, Name: "Leadership", UpdatedAt: now.Add(time.Hour)},
		{ID: 1, Name: "behavioral ", UpdatedAt: now},
	}})

	summaries, err := svc.listSets(context.Background())
	if err != nil {
		t.Fatalf("listSets() error = %v", err)
	}
	if len(summaries) != 2 || summaries[0].set.ID != 3 || summaries[1].set.ID != 2 {
		t.Fatalf("summaries = %+v, want sets 3 and 2", summaries)
	}
	if summaries[0].questions != 3 {
		t.Fatalf("questions = %d, want 3", summaries[0].questions)
	}
}

func TestCreateSetReturnsExistingByName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()
	existing, _ := store.CreateQuestionSet(ctx, "Behavioral", "grace")
	svc := newService(store)

	set, existed, err := svc.createSet(ctx, setInput{Name: " BEHAVIORAL "}, "ada")
	if err != nil || !existed || set.ID != existing.ID {
		t.Fatalf("createSet() = %+v, %v, %v", set, existed, err)
	}
	set, existed, err = svc.createSet(ctx, setInput{Name: "Leadership"}, "ada")
	if err != nil || existed || set.Owner != "ada" {
		t.Fatalf("createSet() = %+v, %v, %v", set, existed, err)
	}
}

func TestNilStoreIsUnavailable(t *testing.T) {
	t.Parallel()

	_, err := newService(nil).listSets(context.Background())
	if apperrors.KindOf(err) != apperrors.KindUnavailable || apperrors.LocalizationKey(err) != "flash.practice_unavailable" {
		t.Fatalf("listSets() error = %v, want unavailable", err)
	}
}

func TestCanEdit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		owner    string
		username string
		want     bool
	}{
		{name: "owner", owner: "ada", username: "ada", want: true},
		{name: "ownerless set", owner: "", username: "ada", want: true},
		{name: "other account", owner: "grace", username: "ada"},
		{name: "anonymous", owner: "", username: " "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := canEdit(QuestionSet{Owner: tc.owner}, tc.username); got != tc.want {
				t.Fatalf("canEdit() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseQuestion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        questionForm
		wantField string
		wantKey   string
		want      QuestionInput
	}{
		{
			name: "defaults",
			in:   questionForm{Text: "  Why?  "},
			want: QuestionInput{Text: "Why?", Difficulty: DifficultyMedium},
		},
		{
			name: "full",
			in:   questionForm{Text: "Why?", Difficulty: "easy", Tags: " a, b ,,A", Order: " 4 "},
			want: QuestionInput{Text: "Why?", Difficulty: DifficultyEasy, Tags: []string{"a", "b"}, Order: 4},
		},
		{name: "missing text", in: questionForm{}, wantField: fieldText, wantKey: "form.required"},
		{name: "bad difficulty", in: questionForm{Text: "q", Difficulty: "brutal"}, wantField: fieldDifficulty, wantKey: "form.invalid_choice"},
		{name: "bad order", in: questionForm{Text: "q", Order: "1.5"}, wantField: fieldOrder, wantKey: "form.invalid_number"},
		{name: "negative order", in: questionForm{Text: "q", Order: "-2"}, wantField: fieldOrder, wantKey: "form.min_value"},
		{name: "long tags", in: questionForm{Text: "q", Tags: strings.Repeat("x", maxTagsLength+1)}, wantField: fieldTags, wantKey: "form.too_long"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, p := parseQuestion(tc.in)
			if tc.wantField != "" {
				list := p.fields[tc.wantField]
				if len(list) != 1 || list[0].key != tc.wantKey {
					t.Fatalf("problems = %+v, want %s on %s", p, tc.wantKey, tc.wantField)
				}
				return
			}
			if !p.empty() {
				t.Fatalf("unexpected problems %+v", p)
			}
			if got.Text != tc.want.Text || got.Difficulty != tc.want.Difficulty || got.Order != tc.want.Order || strings.Join(got.Tags, ",") != strings.Join(tc.want.Tags, ",") {
				t.Fatalf("parseQuestion() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParseAnswer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         answerForm
		wantRating int
		wantErr    bool
	}{
		{name: "unrated", in: answerForm{Text: " text "}},
		{name: "rated", in: answerForm{Rating: "5"}, wantRating: 5},
		{name: "too high", in: answerForm{Rating: "6"}, wantErr: true},
		{name: "too low", in: answerForm{Rating: "0"}, wantErr: true},
		{name: "not a number", in: answerForm{Rating: "great"}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			text, rating, p := parseAnswer(tc.in)
			if tc.wantErr {
				if len(p.fields[fieldRating]) != 1 {
					t.Fatalf("problems = %+v, want rating error", p)
				}
				return
			}
			if !p.empty() || rating != tc.wantRating || text != strings.TrimSpace(tc.in.Text) {
				t.Fatalf("parseAnswer() = %q, %d, %+v", text, rating, p)
			}
		})
	}
}

func TestStoreProblems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantOK    bool
		wantField string
		wantForm  string
	}{
		{name: "conflict on rendered field", err: errNameTaken(), wantOK: true, wantField: fieldName},
		{name: "field not on form", err: apperrors.Invalid("owner", "form.required", "missing"), wantOK: true, wantForm: "form.required"},
		{name: "invalid without key", err: apperrors.E(apperrors.KindInvalidInput, "bad"), wantOK: true, wantForm: "form.invalid"},
		{name: "not found", err: errSetNotFound()},
		{name: "unavailable", err: errStoreUnavailable()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, ok := storeProblems(tc.err, setFields)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if tc.wantField != "" && len(p.fields[tc.wantField]) != 1 {
				t.Fatalf("problems = %+v, want one on %s", p, tc.wantField)
			}
			if tc.wantForm != "" && (len(p.form) != 1 || p.form[0].key != tc.wantForm) {
				t.Fatalf("problems = %+v, want form-wide %s", p, tc.wantForm)
			}
		})
	}
}

func TestAnswerReportsCompletion(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()
	set, _ := store.CreateQuestionSet(ctx, "Behavioral", "ada")
	first, _ := store.CreateQuestion(ctx, set.ID, QuestionInput{Text: "1", Order: 0})
	second, _ := store.CreateQuestion(ctx, set.ID, QuestionInput{Text: "2", Order: 1})
	session, _ := store.StartSession(ctx, "ada", set.ID)
	svc := newService(store)

	// Answer the second question out of band; the first stays next.
	if err := store.SaveResponse(ctx, "ada", Response{SessionID: session.ID, QuestionID: second.ID}); err != nil {
		t.Fatalf("SaveResponse() error = %v", err)
	}
	state, err := svc.progress(ctx, "ada", session.ID)
	if err != nil {
		t.Fatalf("progress() error = %v", err)
	}
	if state.complete || state.current().ID != first.ID {
		t.Fatalf("state = %+v, want first question next", state)
	}

	complete, err := svc.answer(ctx, "ada", state, "done", 2)
	if err != nil || !complete {
		t.Fatalf("answer() = %v, %v, want complete", complete, err)
	}
	state, _ = svc.progress(ctx, "ada", session.ID)
	if !state.complete || state.answers[first.ID].Rating != 2 {
		t.Fatalf("state = %+v, want complete with rating", state)
	}
}

func TestStartRequiresQuestions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()
	set, _ := store.CreateQuestionSet(ctx, "Empty", "ada")

	_, err := newService(store).start(ctx, "ada", set.ID)
	if apperrors.LocalizationKey(err) != "practice.no_questions" {
		t.Fatalf("start() error = %v, want no_questions", err)
	}
}
