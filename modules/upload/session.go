package upload

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ers-returns/fileupload/pkg/cookie"
)

// SessionCookie holds the signed upload session id.
const SessionCookie = "ers_session"

// Sessions identifies upload sessions by a signed UUID cookie.
type Sessions struct {
	cookies *cookie.Manager
}

// NewSessions creates Sessions signing with cookies.
func NewSessions(cookies *cookie.Manager) *Sessions {
	return &Sessions{cookies: cookies}
}

// Lookup returns the session id of r. Missing, forged and malformed
// cookies report false.
func (s *Sessions) Lookup(r *http.Request) (string, bool) {
	id, err := s.cookies.GetSigned(r, SessionCookie)
	if err != nil || uuid.Validate(id) != nil {
		return "", false
	}
	return id, true
}

// Ensure returns the session id of r, starting a new session when r has none.
func (s *Sessions) Ensure(w http.ResponseWriter, r *http.Request) string {
	if id, ok := s.Lookup(r); ok {
		return id
	}
	id := uuid.NewString()
	s.cookies.SetSigned(w, SessionCookie, id)
	return id
}

// End expires the session cookie.
func (s *Sessions) End(w http.ResponseWriter) {
	s.cookies.Delete(w, SessionCookie)
}
