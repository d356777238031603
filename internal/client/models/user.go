package models

type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	PhotoURL   string `json:"photoUrl,omitempty"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}

type SessionMode string

const (
	SessionModeOnline  SessionMode = "online"
	SessionModeOffline SessionMode = "offline"
)

// Session is the signed-in identity handed to components that act on
// behalf of a user.
type Session struct {
	User         User        `json:"user"`
	AccessToken  string      `json:"accessToken,omitempty"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	Mode         SessionMode `json:"mode"`
}

// Active reports whether s carries a signed-in user.
func (s *Session) Active() bool {
	return s != nil && s.User.ID != "" && s.User.IsLoggedIn
}

// Credential is the offline login record cached after a successful online
// login. Only the argon2id hash of the password is kept.
type Credential struct {
	User         User   `json:"user"`
	PasswordHash string `json:"passwordHash"`
}
