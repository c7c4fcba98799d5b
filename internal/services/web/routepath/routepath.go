// Package routepath stores canonical HTTP paths and the logical link
// identifiers that templates resolve against them.
package routepath

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	Root         = "/"
	Health       = "/up"
	Register     = "/register/"
	Login        = "/login/"
	Logout       = "/logout/"
	Practice     = "/practice/"
	QuestionSets = "/question-sets/"
	History      = "/history/"
)

// NextQueryKey carries the post-login destination.
const NextQueryKey = "next"

// ReviewQueryKey opens a practice session as a read-only summary.
const ReviewQueryKey = "review"

// Question set and practice session paths.
const (
	QuestionSetsNew = QuestionSets + "new/"
	PracticeStart   = Practice + "start/"
)

// ServeMux patterns for the practice routes. Wildcards are read with
// http.Request.PathValue.
const (
	SetIDParam      = "setID"
	QuestionIDParam = "questionID"
	SessionIDParam  = "sessionID"

	QuestionSetPattern       = QuestionSets + "{" + SetIDParam + "}/{$}"
	QuestionSetEditPattern   = QuestionSets + "{" + SetIDParam + "}/edit/{$}"
	QuestionSetDeletePattern = QuestionSets + "{" + SetIDParam + "}/delete/{$}"
	QuestionNewPattern       = QuestionSets + "{" + SetIDParam + "}/questions/new/{$}"
	QuestionEditPattern      = QuestionSets + "{" + SetIDParam + "}/questions/{" + QuestionIDParam + "}/edit/{$}"
	QuestionDeletePattern    = QuestionSets + "{" + SetIDParam + "}/questions/{" + QuestionIDParam + "}/delete/{$}"
	PracticeStartPattern     = PracticeStart + "{" + SetIDParam + "}/{$}"
	PracticeSessionPattern   = Practice + "{" + SessionIDParam + "}/{$}"
)

// LinkID is a logical link identifier used by templates and navigation.
type LinkID string

const (
	LinkNone         LinkID = ""
	LinkPractice     LinkID = "practice"
	LinkQuestionSets LinkID = "question_sets"
	LinkHistory      LinkID = "history"
	LinkLogin        LinkID = "login"
	LinkRegister     LinkID = "register"
	LinkLogout       LinkID = "logout"
)

// Routes maps link identifiers to concrete paths. It is built once at
// startup and read-only afterwards.
type Routes struct {
	paths map[LinkID]string
}

// NewRoutes copies paths into a Routes value, rejecting blank ids and paths
// that are not rooted.
func NewRoutes(paths map[LinkID]string) (Routes, error) {
	out := Routes{paths: make(map[LinkID]string, len(paths))}
	for id, path := range paths {
		if strings.TrimSpace(string(id)) == "" {
			return Routes{}, fmt.Errorf("link id is required")
		}
		path = strings.TrimSpace(path)
		if !strings.HasPrefix(path, "/") {
			return Routes{}, fmt.Errorf("link %q path %q must start with /", id, path)
		}
		out.paths[id] = path
	}
	return out, nil
}

// DefaultRoutes returns the path table served by the web service.
func DefaultRoutes() Routes {
	routes, err := NewRoutes(map[LinkID]string{
		LinkPractice:     Practice,
		LinkQuestionSets: QuestionSets,
		LinkHistory:      History,
		LinkLogin:        Login,
		LinkRegister:     Register,
		LinkLogout:       Logout,
	})
	if err != nil {
		panic(err)
	}
	return routes
}

// Path resolves id to its path.
func (r Routes) Path(id LinkID) (string, bool) {
	path, ok := r.paths[id]
	return path, ok
}

// Len returns the number of mapped links.
func (r Routes) Len() int {
	return len(r.paths)
}

// LoginWithNext returns the login path carrying a post-login destination.
func LoginWithNext(next string) string {
	next = SafeNext(next)
	if next == "" {
		return Login
	}
	return Login + "?" + NextQueryKey + "=" + url.QueryEscape(next)
}

// SafeNext returns next when it is a same-site absolute path, or "".
func SafeNext(next string) string {
	next = strings.TrimSpace(next)
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	parsed, err := url.Parse(next)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" {
		return ""
	}
	return next
}

func formatID(v int64) string {
	return strconv.FormatInt(v, 10)
}

// QuestionSet returns the detail path of a set.
func QuestionSet(setID int64) string {
	return QuestionSets + formatID(setID) + "/"
}

// QuestionSetEdit returns the rename path of a set.
func QuestionSetEdit(setID int64) string {
	return QuestionSet(setID) + "edit/"
}

// QuestionSetDelete returns the delete path of a set.
func QuestionSetDelete(setID int64) string {
	return QuestionSet(setID) + "delete/"
}

// QuestionNew returns the path that adds a question to a set.
func QuestionNew(setID int64) string {
	return QuestionSet(setID) + "questions/new/"
}

// QuestionEdit returns the edit path of a question.
func QuestionEdit(setID, questionID int64) string {
	return QuestionSet(setID) + "questions/" + formatID(questionID) + "/edit/"
}

// QuestionDelete returns the delete path of a question.
func QuestionDelete(setID, questionID int64) string {
	return QuestionSet(setID) + "questions/" + formatID(questionID) + "/delete/"
}

// PracticeStartSet returns the path that starts a session for a set.
func PracticeStartSet(setID int64) string {
	return PracticeStart + formatID(setID) + "/"
}

// PracticeSession returns the path of a practice session.
func PracticeSession(sessionID int64) string {
	return Practice + formatID(sessionID) + "/"
}

// PracticeReview returns the read-only summary path of a session.
func PracticeReview(sessionID int64) string {
	return PracticeSession(sessionID) + "?" + ReviewQueryKey + "=1"
}
