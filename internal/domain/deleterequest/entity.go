package deleterequest

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// DeleteRequest is a vertical-lead-initiated, admin-reviewed member removal.
// Approval soft-deletes the member; the request row stays as the audit trail.
type DeleteRequest struct {
	ID          string     `json:"id"`
	RollNo      string     `json:"roll_no"`
	MemberName  string     `json:"member_name"`
	Vertical    string     `json:"vertical"`
	Reason      string     `json:"reason,omitempty"`
	Status      Status     `json:"status"`
	RequestedBy string     `json:"requested_by"`
	ReviewedBy  *string    `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
