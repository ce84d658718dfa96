package tasks

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"personal-task-planner/internal/model"
	"personal-task-planner/pkg/dateutil"
)

// Normalizer enforces the task record invariants on every write. It is
// idempotent: Normalize(Normalize(t)) == Normalize(t).
type Normalizer struct {
	cal *dateutil.Calendar
}

// NewNormalizer creates a Normalizer resolving dates in cal's timezone.
func NewNormalizer(cal *dateutil.Calendar) *Normalizer {
	return &Normalizer{cal: cal}
}

// NormalizeNew turns a draft into a stored task: fresh time-ordered id,
// creation stamp, canonical date, normalized title and time fields.
func (n *Normalizer) NormalizeNew(input CreateTaskInput, now time.Time) (model.Task, error) {
	task := model.Task{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Date:        input.Date,
		AllDay:      input.AllDay,
		FromTime:    input.FromTime,
		ToTime:      input.ToTime,
		CreatedAt:   now.UnixMilli(),
	}

	task, err := n.Normalize(task)
	if err != nil {
		return model.Task{}, err
	}

	// UUIDv7 is time-ordered, so insertion order stays recoverable from ids.
	id, err := uuid.NewV7()
	if err != nil {
		return model.Task{}, err
	}
	task.ID = id.String()
	return task, nil
}

// NormalizeUpdate re-applies full normalization to a replacement record.
// The caller supplies the original creation stamp; id must already be set.
func (n *Normalizer) NormalizeUpdate(input UpdateTaskInput, createdAt int64) (model.Task, error) {
	task := model.Task{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Date:        input.Date,
		AllDay:      input.AllDay,
		FromTime:    input.FromTime,
		ToTime:      input.ToTime,
		Completed:   input.Completed,
		CreatedAt:   createdAt,
	}
	return n.Normalize(task)
}

// Normalize enforces the record invariants on t:
//   - title trimmed, inner whitespace collapsed, upper-cased; empty ⇒ ErrEmptyTitle
//   - allDay ⇒ both time fields cleared
//   - date canonicalized to local YYYY-MM-DD
//   - empty priority defaults to MEDIUM, unknown values ⇒ ErrInvalidPriority
//   - the transient overdue flag never survives a write
func (n *Normalizer) Normalize(t model.Task) (model.Task, error) {
	title := strings.Join(strings.Fields(t.Title), " ")
	if title == "" {
		return model.Task{}, ErrEmptyTitle
	}
	t.Title = strings.ToUpper(title)

	if t.AllDay {
		t.FromTime = ""
		t.ToTime = ""
	}

	date, err := n.canonicalDate(t.Date)
	if err != nil {
		return model.Task{}, err
	}
	t.Date = date

	switch {
	case t.Priority == "":
		t.Priority = model.PriorityMedium
	case !t.Priority.Valid():
		return model.Task{}, ErrInvalidPriority
	}

	t.Overdue = false
	return t, nil
}

// canonicalDate passes canonical strings through untouched and converts
// timestamp-style values to the local calendar date.
func (n *Normalizer) canonicalDate(raw string) (string, error) {
	if dateutil.IsCanonicalDate(raw) {
		return raw, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return n.cal.FormatLocalDate(parsed), nil
		}
	}
	return "", ErrInvalidDate
}
