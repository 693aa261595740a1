package session

// User is the account record the backend returns at login. Permission checks
// client-side are plain lookups into Permissions; the backend remains the
// authority.
type User struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	Role        string          `json:"role"`
	Permissions map[string]bool `json:"permissions,omitempty"`
}

// Session pairs the bearer token with the user it belongs to. The two travel
// as one record: they are always written and cleared together, so readers can
// never observe a token without its user or vice versa.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Valid reports whether the session represents an authenticated state.
// A record missing either half fails closed and reads as anonymous.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.User.ID != ""
}

// Can reports whether the session's user holds the named permission.
func (s *Session) Can(permission string) bool {
	return s.Valid() && s.User.Permissions[permission]
}
