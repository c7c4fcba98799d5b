package practice

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	apperrors "github.com/louisbranch/sip/internal/services/web/platform/errors"
)

// MemoryStore keeps practice data in process memory.
type MemoryStore struct {
	now func() time.Time

	mu        sync.RWMutex
	lastID    int64
	sets      map[int64]QuestionSet
	questions map[int64]Question
	sessions  map[int64]Session
	responses map[responseKey]Response
}

type responseKey struct {
	sessionID  int64
	questionID int64
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return newMemoryStore(time.Now)
}

func newMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		now:       now,
		sets:      make(map[int64]QuestionSet),
		questions: make(map[int64]Question),
		sessions:  make(map[int64]Session),
		responses: make(map[responseKey]Response),
	}
}

func errSetNotFound() error {
	return apperrors.EK(apperrors.KindNotFound, "question_sets.not_found", "question set not found")
}

func errQuestionNotFound() error {
	return apperrors.EK(apperrors.KindNotFound, "questions.not_found", "question not found")
}

func errSessionNotFound() error {
	return apperrors.EK(apperrors.KindNotFound, "sessions.not_found", "practice session not found")
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (m *MemoryStore) nextIDLocked() int64 {
	m.lastID++
	return m.lastID
}

func (m *MemoryStore) timestamp() time.Time {
	return m.now().UTC()
}

// ListQuestionSets returns every set, most recently updated first.
func (m *MemoryStore) ListQuestionSets(ctx context.Context) ([]QuestionSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]QuestionSet, 0, len(m.sets))
	for _, set := range m.sets {
		out = append(out, set)
	}
	slices.SortFunc(out, func(a, b QuestionSet) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out, nil
}

// QuestionSet returns one set.
func (m *MemoryStore) QuestionSet(ctx context.Context, id int64) (QuestionSet, error) {
	if err := ctx.Err(); err != nil {
		return QuestionSet{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	set, ok := m.sets[id]
	if !ok {
		return QuestionSet{}, errSetNotFound()
	}
	return set, nil
}

// CreateQuestionSet adds a set. Names are unique regardless of case.
func (m *MemoryStore) CreateQuestionSet(ctx context.Context, name, owner string) (QuestionSet, error) {
	if err := ctx.Err(); err != nil {
		return QuestionSet{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.nameTakenLocked(name, 0) {
		return QuestionSet{}, errNameTaken()
	}
	now := m.timestamp()
	set := QuestionSet{
		ID:        m.nextIDLocked(),
		Name:      strings.TrimSpace(name),
		Owner:     strings.TrimSpace(owner),
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.sets[set.ID] = set
	return set, nil
}

// RenameQuestionSet changes a set's name.
func (m *MemoryStore) RenameQuestionSet(ctx context.Context, id int64, name string) (QuestionSet, error) {
	if err := ctx.Err(); err != nil {
		return QuestionSet{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	set, ok := m.sets[id]
	if !ok {
		return QuestionSet{}, errSetNotFound()
	}
	if m.nameTakenLocked(name, id) {
		return QuestionSet{}, errNameTaken()
	}
	set.Name = strings.TrimSpace(name)
	set.UpdatedAt = m.timestamp()
	m.sets[id] = set
	return set, nil
}

// DeleteQuestionSet removes a set with its questions and sessions.
func (m *MemoryStore) DeleteQuestionSet(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sets[id]; !ok {
		return errSetNotFound()
	}
	delete(m.sets, id)
	for qid, question := range m.questions {
		if question.SetID == id {
			delete(m.questions, qid)
		}
	}
	for sid, session := range m.sessions {
		if session.SetID == id {
			delete(m.sessions, sid)
		}
	}
	for key := range m.responses {
		if _, ok := m.sessions[key.sessionID]; !ok {
			delete(m.responses, key)
		}
	}
	return nil
}

func (m *MemoryStore) nameTakenLocked(name string, except int64) bool {
	key := nameKey(name)
	for id, set := range m.sets {
		if id != except && nameKey(set.Name) == key {
			return true
		}
	}
	return false
}

func errNameTaken() error {
	return apperrors.Error{
		Kind:    apperrors.KindConflict,
		Key:     "question_sets.name_taken",
		Field:   fieldName,
		Message: "question set name already in use",
	}
}

// Questions returns a set's questions in presentation order.
func (m *MemoryStore) Questions(ctx context.Context, setID int64) ([]Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.sets[setID]; !ok {
		return nil, errSetNotFound()
	}
	return m.questionsLocked(setID), nil
}

func (m *MemoryStore) questionsLocked(setID int64) []Question {
	var out []Question
	for _, question := range m.questions {
		if question.SetID == setID {
			out = append(out, cloneQuestion(question))
		}
	}
	slices.SortFunc(out, func(a, b Question) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Question returns one question of a set.
func (m *MemoryStore) Question(ctx context.Context, setID, id int64) (Question, error) {
	if err := ctx.Err(); err != nil {
		return Question{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	question, ok := m.questions[id]
	if !ok || question.SetID != setID {
		return Question{}, errQuestionNotFound()
	}
	return cloneQuestion(question), nil
}

// CreateQuestion adds a question to a set.
func (m *MemoryStore) CreateQuestion(ctx context.Context, setID int64, in QuestionInput) (Question, error) {
	if err := ctx.Err(); err != nil {
		return Question{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sets[setID]; !ok {
		return Question{}, errSetNotFound()
	}
	question := applyQuestionInput(Question{ID: m.nextIDLocked(), SetID: setID}, in)
	m.questions[question.ID] = question
	return cloneQuestion(question), nil
}

// UpdateQuestion replaces a question's editable fields.
func (m *MemoryStore) UpdateQuestion(ctx context.Context, setID, id int64, in QuestionInput) (Question, error) {
	if err := ctx.Err(); err != nil {
		return Question{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	question, ok := m.questions[id]
	if !ok || question.SetID != setID {
		return Question{}, errQuestionNotFound()
	}
	question = applyQuestionInput(question, in)
	m.questions[id] = question
	return cloneQuestion(question), nil
}

// DeleteQuestion removes a question and every answer to it.
func (m *MemoryStore) DeleteQuestion(ctx context.Context, setID, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	question, ok := m.questions[id]
	if !ok || question.SetID != setID {
		return errQuestionNotFound()
	}
	delete(m.questions, id)
	for key := range m.responses {
		if key.questionID == id {
			delete(m.responses, key)
		}
	}
	return nil
}

func applyQuestionInput(question Question, in QuestionInput) Question {
	question.Text = in.Text
	question.Difficulty = in.Difficulty
	question.Tags = slices.Clone(in.Tags)
	question.Order = in.Order
	return question
}

func cloneQuestion(question Question) Question {
	question.Tags = slices.Clone(question.Tags)
	return question
}

// StartSession opens a new attempt of a set for username.
func (m *MemoryStore) StartSession(ctx context.Context, username string, setID int64) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sets[setID]; !ok {
		return Session{}, errSetNotFound()
	}
	session := Session{
		ID:        m.nextIDLocked(),
		SetID:     setID,
		Username:  username,
		StartedAt: m.timestamp(),
	}
	m.sessions[session.ID] = session
	return session, nil
}

// Session returns one of username's sessions.
func (m *MemoryStore) Session(ctx context.Context, username string, id int64) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessionLocked(username, id)
}

func (m *MemoryStore) sessionLocked(username string, id int64) (Session, error) {
	session, ok := m.sessions[id]
	if !ok || session.Username != username {
		return Session{}, errSessionNotFound()
	}
	return session, nil
}

// Sessions returns username's sessions, newest first.
func (m *MemoryStore) Sessions(ctx context.Context, username string) ([]Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Session
	for _, session := range m.sessions {
		if session.Username == username {
			out = append(out, session)
		}
	}
	slices.SortFunc(out, func(a, b Session) int {
		if c := b.StartedAt.Compare(a.StartedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out, nil
}

// SaveResponse records or replaces the answer to one question of a session.
func (m *MemoryStore) SaveResponse(ctx context.Context, username string, resp Response) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	session, err := m.sessionLocked(username, resp.SessionID)
	if err != nil {
		return err
	}
	question, ok := m.questions[resp.QuestionID]
	if !ok || question.SetID != session.SetID {
		return errQuestionNotFound()
	}
	resp.SavedAt = m.timestamp()
	m.responses[responseKey{sessionID: resp.SessionID, questionID: resp.QuestionID}] = resp
	return nil
}

// Responses returns the answers recorded in one of username's sessions.
func (m *MemoryStore) Responses(ctx context.Context, username string, sessionID int64) ([]Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, err := m.sessionLocked(username, sessionID); err != nil {
		return nil, err
	}
	var out []Response
	for key, resp := range m.responses {
		if key.sessionID == sessionID {
			out = append(out, resp)
		}
	}
	slices.SortFunc(out, func(a, b Response) int {
		return cmp.Compare(a.QuestionID, b.QuestionID)
	})
	return out, nil
}
