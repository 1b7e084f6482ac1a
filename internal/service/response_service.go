package service

import "time"

// LogFilter supports history filtering by time range, type and size.
type LogFilter struct {
	From  time.Time // inclusive; zero means no lower bound
	To    time.Time // inclusive; zero means no upper bound
	Type  string    // "", "SELECT_VESSEL", "PLAY", "PAUSE", "RESET", "COMPLETE"
	Limit int       // 0 means no limit
}
