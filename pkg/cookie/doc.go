// Package cookie writes and reads HTTP cookies with shared defaults and
// optional HMAC signatures.
//
//	m, err := cookie.NewFromConfig(cfg)
//	m.SetSigned(w, "ers_session", id)
//	id, err := m.GetSigned(r, "ers_session")
//
// Several secrets may be configured for rotation. The first one signs new
// values and any of them verifies.
package cookie
