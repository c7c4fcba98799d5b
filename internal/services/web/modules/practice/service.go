package practice

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/louisbranch/sip/internal/platform/timeouts"
	apperrors "github.com/louisbranch/sip/internal/services/web/platform/errors"
)

const (
	fieldName       = "name"
	fieldText       = "text"
	fieldDifficulty = "difficulty"
	fieldTags       = "tags"
	fieldOrder      = "order"
	fieldResponse   = "response_text"
	fieldRating     = "self_rating"
	fieldQuestion   = "question"

	maxNameLength = 200
	maxTagsLength = 255
	minRating     = 1
	maxRating     = 5
)

var (
	setFields      = []string{fieldName}
	questionFields = []string{fieldText, fieldDifficulty, fieldTags, fieldOrder}
	answerFields   = []string{fieldResponse, fieldRating}
)

func errNoQuestions() error {
	return apperrors.EK(apperrors.KindInvalidInput, "practice.no_questions", "question set has no questions")
}

// problem is one localized validation message.
type problem struct {
	key  string
	args []any
}

// problems collects validation failures per field plus form-wide ones.
type problems struct {
	fields map[string][]problem
	form   []problem
}

func (p *problems) addField(field, key string, args ...any) {
	if p.fields == nil {
		p.fields = map[string][]problem{}
	}
	p.fields[field] = append(p.fields[field], problem{key: key, args: args})
}

func (p *problems) addForm(key string, args ...any) {
	p.form = append(p.form, problem{key: key, args: args})
}

func (p problems) empty() bool {
	return len(p.fields) == 0 && len(p.form) == 0
}

// storeProblems converts a store failure about submitted input into form
// problems. It reports false for every other failure.
func storeProblems(err error, rendered []string) (problems, bool) {
	var p problems
	switch apperrors.KindOf(err) {
	case apperrors.KindInvalidInput, apperrors.KindConflict:
	default:
		return p, false
	}
	key := apperrors.LocalizationKey(err)
	if key == "" {
		key = "form.invalid"
	}
	if field := apperrors.FieldName(err); field != "" && slices.Contains(rendered, field) {
		p.addField(field, key)
	} else {
		p.addForm(key)
	}
	return p, true
}

type setInput struct {
	Name string
}

// questionForm holds question fields as submitted.
type questionForm struct {
	Text       string
	Difficulty string
	Tags       string
	Order      string
}

type answerForm struct {
	Text   string
	Rating string
}

func validateSet(in setInput) problems {
	var p problems
	switch name := strings.TrimSpace(in.Name); {
	case name == "":
		p.addField(fieldName, "form.required")
	case utf8.RuneCountInString(name) > maxNameLength:
		p.addField(fieldName, "form.too_long", maxNameLength)
	}
	return p
}

func parseQuestion(in questionForm) (QuestionInput, problems) {
	var p problems
	out := QuestionInput{
		Text:       strings.TrimSpace(in.Text),
		Difficulty: DifficultyMedium,
		Tags:       splitTags(in.Tags),
	}
	if out.Text == "" {
		p.addField(fieldText, "form.required")
	}
	if raw := strings.TrimSpace(in.Difficulty); raw != "" {
		out.Difficulty = Difficulty(raw)
		if !slices.Contains(Difficulties, out.Difficulty) {
			p.addField(fieldDifficulty, "form.invalid_choice")
		}
	}
	if utf8.RuneCountInString(joinTags(out.Tags)) > maxTagsLength {
		p.addField(fieldTags, "form.too_long", maxTagsLength)
	}
	if raw := strings.TrimSpace(in.Order); raw != "" {
		order, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			p.addField(fieldOrder, "form.invalid_number")
		case order < 0:
			p.addField(fieldOrder, "form.min_value", 0)
		default:
			out.Order = order
		}
	}
	return out, p
}

func parseAnswer(in answerForm) (string, int, problems) {
	var p problems
	rating := 0
	if raw := strings.TrimSpace(in.Rating); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < minRating || value > maxRating {
			p.addField(fieldRating, "form.range", minRating, maxRating)
		} else {
			rating = value
		}
	}
	return strings.TrimSpace(in.Text), rating, p
}

// splitTags parses a comma-separated tag list, dropping blanks and repeats.
func splitTags(raw string) []string {
	var out []string
	seen := map[string]bool{}
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		key := strings.ToLower(tag)
		if tag == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
	}
	return out
}

func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// uniqueByName keeps the first set per case-insensitive name. Callers pass
// sets most recently updated first, so the freshest set of a name wins.
func uniqueByName(sets []QuestionSet) []QuestionSet {
	seen := map[string]bool{}
	out := make([]QuestionSet, 0, len(sets))
	for _, set := range sets {
		key := nameKey(set.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, set)
	}
	return out
}

// canEdit reports whether username may change set.
func canEdit(set QuestionSet, username string) bool {
	username = strings.TrimSpace(username)
	if username == "" {
		return false
	}
	return set.Owner == "" || set.Owner == username
}

// nextQuestionIndex returns the position of the first question without an
// answer, or false when every question is answered.
func nextQuestionIndex(questions []Question, answered map[int64]Response) (int, bool) {
	for i, question := range questions {
		if _, ok := answered[question.ID]; !ok {
			return i, true
		}
	}
	return 0, false
}

// progress is the state of one practice session.
type progress struct {
	session   Session
	set       QuestionSet
	questions []Question
	answers   map[int64]Response
	next      int
	complete  bool
}

func (p progress) current() Question {
	return p.questions[p.next]
}

// setSummary pairs a set with its question count.
type setSummary struct {
	set       QuestionSet
	questions int
}

// historyEntry is one past session with its set and answer counts.
type historyEntry struct {
	session  Session
	set      QuestionSet
	answered int
	total    int
}

type service struct {
	store Store
}

func newService(store Store) service {
	if store == nil {
		store = unavailableStore{}
	}
	return service{store: store}
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeouts.StoreRequest)
}

func (s service) listSets(ctx context.Context) ([]setSummary, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	sets, err := s.store.ListQuestionSets(ctx)
	if err != nil {
		return nil, err
	}
	sets = uniqueByName(sets)
	out := make([]setSummary, 0, len(sets))
	for _, set := range sets {
		questions, err := s.store.Questions(ctx, set.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, setSummary{set: set, questions: len(questions)})
	}
	return out, nil
}

func (s service) set(ctx context.Context, id int64) (QuestionSet, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return s.store.QuestionSet(ctx, id)
}

func (s service) setWithQuestions(ctx context.Context, id int64) (QuestionSet, []Question, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	set, err := s.store.QuestionSet(ctx, id)
	if err != nil {
		return QuestionSet{}, nil, err
	}
	questions, err := s.store.Questions(ctx, id)
	if err != nil {
		return QuestionSet{}, nil, err
	}
	return set, questions, nil
}

// createSet adds a set owned by username. When a set with the same name
// already exists it is returned instead with existed set.
func (s service) createSet(ctx context.Context, in setInput, username string) (QuestionSet, bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	name := strings.TrimSpace(in.Name)
	sets, err := s.store.ListQuestionSets(ctx)
	if err != nil {
		return QuestionSet{}, false, err
	}
	for _, set := range sets {
		if nameKey(set.Name) == nameKey(name) {
			return set, true, nil
		}
	}
	set, err := s.store.CreateQuestionSet(ctx, name, username)
	return set, false, err
}

func (s service) renameSet(ctx context.Context, id int64, in setInput) (QuestionSet, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return s.store.RenameQuestionSet(ctx, id, strings.TrimSpace(in.Name))
}

func (s service) deleteSet(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return s.store.DeleteQuestionSet(ctx, id)
}

func (s service) question(ctx context.Context, setID, id int64) (Question, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return s.store.Question(ctx, setID, id)
}

func (s service) addQuestion(ctx context.Context, setID int64, in QuestionInput) (Question, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return s.store.CreateQuestion(ctx, setID, in)
}

func (s service) updateQuestion(ctx context.Context, setID, id int64, in QuestionInput) (Question, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return s.store.UpdateQuestion(ctx, setID, id, in)
}

func (s service) deleteQuestion(ctx context.Context, setID, id int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	return s.store.DeleteQuestion(ctx, setID, id)
}

// start opens a session for username. Sets without questions cannot be
// practiced.
func (s service) start(ctx context.Context, username string, setID int64) (Session, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	questions, err := s.store.Questions(ctx, setID)
	if err != nil {
		return Session{}, err
	}
	if len(questions) == 0 {
		return Session{}, errNoQuestions()
	}
	return s.store.StartSession(ctx, username, setID)
}

func (s service) progress(ctx context.Context, username string, sessionID int64) (progress, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	session, err := s.store.Session(ctx, username, sessionID)
	if err != nil {
		return progress{}, err
	}
	set, err := s.store.QuestionSet(ctx, session.SetID)
	if err != nil {
		return progress{}, err
	}
	questions, err := s.store.Questions(ctx, session.SetID)
	if err != nil {
		return progress{}, err
	}
	responses, err := s.store.Responses(ctx, username, sessionID)
	if err != nil {
		return progress{}, err
	}
	answers := make(map[int64]Response, len(responses))
	for _, resp := range responses {
		answers[resp.QuestionID] = resp
	}
	next, open := nextQuestionIndex(questions, answers)
	return progress{
		session:   session,
		set:       set,
		questions: questions,
		answers:   answers,
		next:      next,
		complete:  !open,
	}, nil
}

// answer records the response to the session's current question and
// reports whether the session is now complete.
func (s service) answer(ctx context.Context, username string, state progress, text string, rating int) (bool, error) {
	if state.complete {
		return true, nil
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	question := state.current()
	err := s.store.SaveResponse(ctx, username, Response{
		SessionID:  state.session.ID,
		QuestionID: question.ID,
		Text:       text,
		Rating:     rating,
	})
	if err != nil {
		return false, err
	}
	for _, q := range state.questions {
		if _, ok := state.answers[q.ID]; !ok && q.ID != question.ID {
			return false, nil
		}
	}
	return true, nil
}

func (s service) history(ctx context.Context, username string) ([]historyEntry, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	sessions, err := s.store.Sessions(ctx, username)
	if err != nil {
		return nil, err
	}
	out := make([]historyEntry, 0, len(sessions))
	for _, session := range sessions {
		set, err := s.store.QuestionSet(ctx, session.SetID)
		if err != nil {
			return nil, err
		}
		questions, err := s.store.Questions(ctx, session.SetID)
		if err != nil {
			return nil, err
		}
		responses, err := s.store.Responses(ctx, username, session.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, historyEntry{session: session, set: set, answered: len(responses), total: len(questions)})
	}
	return out, nil
}
