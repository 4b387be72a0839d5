package domain

import "time"

// AccessEvent is one recorded file access, as kept in the history log.
type AccessEvent struct {
	SessionID string
	File      string
	Op        string
	At        time.Time
}

// FileCount pairs a file identifier with an aggregate access count.
type FileCount struct {
	File  string
	Count int
}
