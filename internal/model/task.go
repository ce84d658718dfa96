package model

// Priority is the user-facing importance level of a task.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is the core scheduling entity. JSON tags define the persisted blob
// layout, so they must stay stable across schema revisions.
//
// Invariants (enforced by the normalizer, relied on everywhere else):
//   - AllDay true  ⇒ FromTime == "" && ToTime == ""
//   - AllDay false ⇒ FromTime and ToTime hold "HH:MM" strings
//   - Title is stored trimmed, whitespace-collapsed and upper-cased
//   - Date is a canonical local "YYYY-MM-DD" string
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    Priority `json:"priority"`
	Date        string   `json:"date"`
	AllDay      bool     `json:"allDay"`
	FromTime    string   `json:"fromTime"`
	ToTime      string   `json:"toTime"`
	Completed   bool     `json:"completed"`

	// CreatedAt is epoch milliseconds, used only for audit ordering.
	// Bucket derivation never looks at it.
	CreatedAt int64 `json:"createdAt"`

	// Overdue is transient: set only on shallow copies returned by the
	// overdue view. Tasks held in the collection always carry false, so
	// the flag never reaches the persisted blob.
	Overdue bool `json:"overdue,omitempty"`
}
