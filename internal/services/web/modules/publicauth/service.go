package publicauth

import (
	"context"
	"net/mail"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/louisbranch/sip/internal/platform/timeouts"
	apperrors "github.com/louisbranch/sip/internal/services/web/platform/errors"
)

const (
	fieldUsername  = "username"
	fieldEmail     = "email"
	fieldPassword  = "password"
	fieldPassword1 = "password1"
	fieldPassword2 = "password2"
	fieldNext      = "next"

	minPasswordLength = 8
	maxUsernameLength = 150
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// Fields each form renders; gateway errors naming any other field are shown
// form-wide.
var (
	registerFields = []string{fieldUsername, fieldEmail, fieldPassword1, fieldPassword2}
	loginFields    = []string{fieldUsername, fieldPassword}
)

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

type registerInput struct {
	Username  string
	Email     string
	Password1 string
	Password2 string
}

type loginInput struct {
	Username string
	Password string
	Next     string
}

type service struct {
	auth AuthGateway
}

func newServiceWithGateway(gateway AuthGateway) service {
	if gateway == nil {
		gateway = unavailableAuthGateway{}
	}
	return service{auth: gateway}
}

func validateRegistration(in registerInput) problems {
	var p problems
	switch username := strings.TrimSpace(in.Username); {
	case username == "":
		p.addField(fieldUsername, "form.required")
	case utf8.RuneCountInString(username) > maxUsernameLength || !usernamePattern.MatchString(username):
		p.addField(fieldUsername, "form.username_invalid")
	}
	switch email := strings.TrimSpace(in.Email); {
	case email == "":
		p.addField(fieldEmail, "form.required")
	case !validEmail(email):
		p.addField(fieldEmail, "form.invalid_email")
	}
	if in.Password1 == "" {
		p.addField(fieldPassword1, "form.required")
	} else if utf8.RuneCountInString(in.Password1) < minPasswordLength {
		p.addField(fieldPassword1, "form.password_too_short", minPasswordLength)
	}
	if in.Password2 == "" {
		p.addField(fieldPassword2, "form.required")
	} else if in.Password1 != "" && in.Password1 != in.Password2 {
		p.addField(fieldPassword2, "form.password_mismatch")
	}
	return p
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email && strings.Contains(email, ".")
}

func validateLogin(in loginInput) problems {
	var p problems
	if strings.TrimSpace(in.Username) == "" {
		p.addField(fieldUsername, "form.required")
	}
	if in.Password == "" {
		p.addField(fieldPassword, "form.required")
	}
	return p
}

func (s service) register(ctx context.Context, in registerInput) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.AuthRequest)
	defer cancel()
	sessionID, err := s.auth.Register(ctx, Registration{
		Username: strings.TrimSpace(in.Username),
		Email:    strings.TrimSpace(in.Email),
		Password: in.Password1,
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(sessionID) == "" {
		return "", apperrors.E(apperrors.KindUnknown, "auth did not return a session")
	}
	return sessionID, nil
}

func (s service) login(ctx context.Context, in loginInput) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.AuthRequest)
	defer cancel()
	sessionID, err := s.auth.Login(ctx, strings.TrimSpace(in.Username), in.Password)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(sessionID) == "" {
		return "", apperrors.E(apperrors.KindUnknown, "auth did not return a session")
	}
	return sessionID, nil
}

func (s service) logout(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.AuthRequest)
	defer cancel()
	return s.auth.Logout(ctx, sessionID)
}

// gatewayProblems converts a gateway failure into form problems. It reports
// false when the failure is not about the submitted input. Errors naming a
// field missing from rendered are reported form-wide.
func gatewayProblems(err error, fallbackKey string, rendered []string) (problems, bool) {
	var p problems
	key := apperrors.LocalizationKey(err)
	switch apperrors.KindOf(err) {
	case apperrors.KindInvalidInput, apperrors.KindConflict:
		if key == "" {
			key = fallbackKey
		}
		if field := apperrors.FieldName(err); field != "" && slices.Contains(rendered, field) {
			p.addField(field, key)
		} else {
			p.addForm(key)
		}
		return p, true
	case apperrors.KindUnauthorized:
		p.addForm(fallbackKey)
		return p, true
	default:
		return p, false
	}
}
