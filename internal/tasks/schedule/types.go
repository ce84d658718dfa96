package schedule

import "personal-task-planner/internal/model"

// Classification windows, in minutes relative to a task's start time.
const (
	startingSoonHorizon = 60
	reminderLookBehind  = 30
	reminderLookAhead   = 120
)

// Stats aggregates completion counters over the whole collection.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	// Progress is completed/total as a rounded percentage, 0 for an empty
	// collection.
	Progress int `json:"progress"`
}

// Views holds every derived bucket for one (collection, instant) pair.
// Buckets hold copies; mutating them never touches the collection.
type Views struct {
	// Today, Tomorrow and Upcoming hold incomplete tasks bucketed by their
	// calendar date relative to the reference instant. Upcoming includes
	// tomorrow and everything beyond it.
	Today    []model.Task `json:"today"`
	Tomorrow []model.Task `json:"tomorrow"`
	Upcoming []model.Task `json:"upcoming"`

	// All is every incomplete task regardless of date.
	All []model.Task `json:"all"`

	// Completed is sorted most recently dated first.
	Completed []model.Task `json:"completed"`

	// StartingSoon: today's timed tasks starting within the next hour.
	// Reminders: today's timed tasks from 30 minutes past to 2 hours ahead.
	// The two windows overlap; both are consumed independently.
	StartingSoon []model.Task `json:"startingSoon"`
	Reminders    []model.Task `json:"reminders"`

	// Overdue tasks are shallow copies carrying the transient overdue flag,
	// sorted by date descending.
	Overdue []model.Task `json:"overdue"`

	Stats Stats `json:"stats"`
}
