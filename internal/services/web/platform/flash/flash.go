// Package flash carries one-time notices across a redirect in a cookie.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/louisbranch/sip/internal/services/web/platform/requestmeta"
)

// CookieName is the cookie holding pending notices.
const CookieName = "sip_flash"

// maxNotices bounds the queue so the cookie stays small.
const maxNotices = 8

// Kind classifies notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindDanger  Kind = "danger"
)

// Notice references localized copy by key; Args fill its format verbs.
type Notice struct {
	Kind Kind     `json:"kind"`
	Key  string   `json:"key"`
	Args []string `json:"args,omitempty"`
}

// Success creates a success notice.
func Success(key string, args ...string) Notice {
	return Notice{Kind: KindSuccess, Key: key, Args: args}
}

// Info creates an info notice.
func Info(key string, args ...string) Notice {
	return Notice{Kind: KindInfo, Key: key, Args: args}
}

// Warning creates a warning notice.
func Warning(key string, args ...string) Notice {
	return Notice{Kind: KindWarning, Key: key, Args: args}
}

// Danger creates a danger notice.
func Danger(key string, args ...string) Notice {
	return Notice{Kind: KindDanger, Key: key, Args: args}
}

// Store reads and writes the notice cookie.
type Store struct {
	Policy requestmeta.SchemePolicy
}

// Add queues notices after any still pending on the request, keeping the
// newest maxNotices.
func (s Store) Add(w http.ResponseWriter, r *http.Request, notices ...Notice) {
	if w == nil {
		return
	}
	queue := pending(r)
	for _, notice := range notices {
		if normalized, ok := normalize(notice); ok {
			queue = append(queue, normalized)
		}
	}
	if len(queue) == 0 {
		return
	}
	if len(queue) > maxNotices {
		queue = queue[len(queue)-maxNotices:]
	}
	payload, err := json.Marshal(queue)
	if err != nil {
		return
	}
	http.SetCookie(w, s.cookie(r, base64.RawURLEncoding.EncodeToString(payload), 0))
}

// ReadAndClear returns pending notices in the order they were added and
// expires the cookie. Undecodable cookies are cleared and yield nothing.
func (s Store) ReadAndClear(w http.ResponseWriter, r *http.Request) []Notice {
	if r == nil {
		return nil
	}
	if _, err := r.Cookie(CookieName); err != nil {
		return nil
	}
	s.Clear(w, r)
	return pending(r)
}

// Clear expires the notice cookie.
func (s Store) Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, s.cookie(r, "", -1))
}

func (s Store) cookie(r *http.Request, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.Policy.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
}

func pending(r *http.Request) []Notice {
	if r == nil {
		return nil
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}
	return decode(cookie.Value)
}

func decode(raw string) []Notice {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var notices []Notice
	if err := json.Unmarshal(decoded, &notices); err != nil {
		return nil
	}
	out := make([]Notice, 0, len(notices))
	for _, notice := range notices {
		if normalized, ok := normalize(notice); ok {
			out = append(out, normalized)
		}
	}
	return out
}

func normalize(notice Notice) (Notice, bool) {
	notice.Key = strings.TrimSpace(notice.Key)
	if notice.Key == "" {
		return Notice{}, false
	}
	kind := Kind(strings.ToLower(strings.TrimSpace(string(notice.Kind))))
	switch kind {
	case KindSuccess, KindInfo, KindWarning, KindDanger:
	case "error":
		kind = KindDanger
	default:
		return Notice{}, false
	}
	notice.Kind = kind
	return notice, true
}
