package models

import "time"

// Session is the CLI client's persisted login state. It lives in a local
// SQLite file between invocations so that consecutive commands do not require
// a fresh login.
type Session struct {
	UserID    int64     `json:"user_id" db:"user_id"`
	Token     string    `json:"token" db:"token"`
	ServerURL string    `json:"server_url" db:"server_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the name of the table in the client database.
func (s *Session) TableName() string {
	return "session"
}
