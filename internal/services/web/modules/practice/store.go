package practice

import (
	"context"
	"time"

	apperrors "github.com/louisbranch/sip/internal/services/web/platform/errors"
)

// Difficulty grades a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the accepted grades in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// QuestionSet is a named collection of questions. An empty Owner means any
// signed-in account may edit it.
type QuestionSet struct {
	ID        int64
	Name      string
	Owner     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Question is one prompt within a set. Questions are presented by Order and
// then by ID.
type Question struct {
	ID         int64
	SetID      int64
	Text       string
	Difficulty Difficulty
	Tags       []string
	Order      int
}

// QuestionInput carries the editable fields of a question.
type QuestionInput struct {
	Text       string
	Difficulty Difficulty
	Tags       []string
	Order      int
}

// Session is one practice attempt of a set by an account.
type Session struct {
	ID        int64
	SetID     int64
	Username  string
	StartedAt time.Time
}

// Response is an account's answer to one question within a session. Rating
// is the optional 1-5 self assessment; zero means unrated.
type Response struct {
	SessionID  int64
	QuestionID int64
	Text       string
	Rating     int
	SavedAt    time.Time
}

// Store abstracts question set, question, and practice session storage.
//
// Lookups of missing records fail with KindNotFound. Renaming a set onto
// another set's name fails with KindConflict. Session lookups are scoped to
// the owning account; another account's session is reported as not found.
type Store interface {
	ListQuestionSets(ctx context.Context) ([]QuestionSet, error)
	QuestionSet(ctx context.Context, id int64) (QuestionSet, error)
	CreateQuestionSet(ctx context.Context, name, owner string) (QuestionSet, error)
	RenameQuestionSet(ctx context.Context, id int64, name string) (QuestionSet, error)
	DeleteQuestionSet(ctx context.Context, id int64) error

	Questions(ctx context.Context, setID int64) ([]Question, error)
	Question(ctx context.Context, setID, id int64) (Question, error)
	CreateQuestion(ctx context.Context, setID int64, in QuestionInput) (Question, error)
	UpdateQuestion(ctx context.Context, setID, id int64, in QuestionInput) (Question, error)
	DeleteQuestion(ctx context.Context, setID, id int64) error

	StartSession(ctx context.Context, username string, setID int64) (Session, error)
	Session(ctx context.Context, username string, id int64) (Session, error)
	Sessions(ctx context.Context, username string) ([]Session, error)
	SaveResponse(ctx context.Context, username string, resp Response) error
	Responses(ctx context.Context, username string, sessionID int64) ([]Response, error)
}

const practiceUnavailableMessage = "practice store is not configured"

func errStoreUnavailable() error {
	return apperrors.EK(apperrors.KindUnavailable, "flash.practice_unavailable", practiceUnavailableMessage)
}

// unavailableStore answers every call as if storage were down.
type unavailableStore struct{}

func (unavailableStore) ListQuestionSets(context.Context) ([]QuestionSet, error) {
	return nil, errStoreUnavailable()
}

func (unavailableStore) QuestionSet(context.Context, int64) (QuestionSet, error) {
	return QuestionSet{}, errStoreUnavailable()
}

func (unavailableStore) CreateQuestionSet(context.Context, string, string) (QuestionSet, error) {
	return QuestionSet{}, errStoreUnavailable()
}

func (unavailableStore) RenameQuestionSet(context.Context, int64, string) (QuestionSet, error) {
	return QuestionSet{}, errStoreUnavailable()
}

func (unavailableStore) DeleteQuestionSet(context.Context, int64) error {
	return errStoreUnavailable()
}

func (unavailableStore) Questions(context.Context, int64) ([]Question, error) {
	return nil, errStoreUnavailable()
}

func (unavailableStore) Question(context.Context, int64, int64) (Question, error) {
	return Question{}, errStoreUnavailable()
}

func (unavailableStore) CreateQuestion(context.Context, int64, QuestionInput) (Question, error) {
	return Question{}, errStoreUnavailable()
}

func (unavailableStore) UpdateQuestion(context.Context, int64, int64, QuestionInput) (Question, error) {
	return Question{}, errStoreUnavailable()
}

func (unavailableStore) DeleteQuestion(context.Context, int64, int64) error {
	return errStoreUnavailable()
}

func (unavailableStore) StartSession(context.Context, string, int64) (Session, error) {
	return Session{}, errStoreUnavailable()
}

func (unavailableStore) Session(context.Context, string, int64) (Session, error) {
	return Session{}, errStoreUnavailable()
}

func (unavailableStore) Sessions(context.Context, string) ([]Session, error) {
	return nil, errStoreUnavailable()
}

func (unavailableStore) SaveResponse(context.Context, string, Response) error {
	return errStoreUnavailable()
}

func (unavailableStore) Responses(context.Context, string, int64) ([]Response, error) {
	return nil, errStoreUnavailable()
}

// UnavailableStore returns the store used when no storage is configured.
func UnavailableStore() Store {
	return unavailableStore{}
}
