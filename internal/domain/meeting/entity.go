package meeting

import "time"

// Meeting is one attendance opportunity. The count of meetings in a scope is
// the denominator of every attendance percentage in that scope.
type Meeting struct {
	ID          string    `json:"id"`
	MeetingName string    `json:"meeting_name"`
	Date        time.Time `json:"date"`
	MOM         string    `json:"m_o_m,omitempty"`
	Vertical    string    `json:"vertical"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
