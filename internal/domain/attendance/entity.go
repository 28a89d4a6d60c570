package attendance

import "time"

// Record is one member's presence flag for one meeting.
type Record struct {
	MeetingID  string
	RollNo     string
	IsAttended bool
	UpdatedAt  time.Time
}

// RosterEntry is a member joined with their attendance flag for a specific
// meeting. IsAttended is nil when no record has been taken yet.
type RosterEntry struct {
	RollNo     string `json:"roll_no"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Year       int    `json:"year"`
	Vertical   string `json:"vertical"`
	IsAttended *bool  `json:"is_attended"`
}
