package member

import "time"

// Member is a tracked attendee within a vertical. Roll number is the natural
// key; it is what attendance records reference.
type Member struct {
	RollNo     string     `json:"roll_no"`
	Name       string     `json:"name"`
	Department string     `json:"department"`
	Year       int        `json:"year"`
	Vertical   string     `json:"vertical"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	DeletedBy  *string    `json:"deleted_by,omitempty"`
	CreatedAt  time.Time  `json:"-"`
	UpdatedAt  time.Time  `json:"-"`
}
