package schedule

import (
	"math"
	"time"

	"personal-task-planner/internal/model"
	"personal-task-planner/pkg/dateutil"
)

// Derive classifies the collection against a reference instant and returns
// every time bucket plus aggregate statistics. It is pure: no side effects,
// no retained state, and identical inputs produce identical output, so it is
// safe to call with arbitrary (even stale) instants at any time.
func Derive(collection []model.Task, now time.Time, cal *dateutil.Calendar) Views {
	today := cal.FormatLocalDate(now)
	tomorrow := cal.FormatLocalDate(now.Add(24 * time.Hour))
	currentMinutes := cal.MinutesSinceMidnight(now)

	var v Views
	for _, t := range collection {
		if t.Completed {
			v.Completed = append(v.Completed, t)
			continue
		}

		v.All = append(v.All, t)

		switch {
		case t.Date == today:
			v.Today = append(v.Today, t)
		case t.Date == tomorrow:
			v.Tomorrow = append(v.Tomorrow, t)
			v.Upcoming = append(v.Upcoming, t)
		case t.Date > today:
			v.Upcoming = append(v.Upcoming, t)
		}

		if t.Date == today && !t.AllDay {
			diff := dateutil.TimeToMinutes(t.FromTime) - currentMinutes
			if diff >= 0 && diff <= startingSoonHorizon {
				v.StartingSoon = append(v.StartingSoon, t)
			}
			if diff >= -reminderLookBehind && diff <= reminderLookAhead {
				v.Reminders = append(v.Reminders, t)
			}
		}

		if isOverdue(t, today, currentMinutes) {
			// shallow copy with the transient flag; never written back
			overdue := t
			overdue.Overdue = true
			v.Overdue = append(v.Overdue, overdue)
		}
	}

	sortByDateTime(v.Today)
	sortByDateTime(v.Tomorrow)
	sortByDateTime(v.Upcoming)
	sortByDateTime(v.All)
	sortByDateTime(v.StartingSoon)
	sortByDateTime(v.Reminders)
	sortByDateDesc(v.Completed)
	sortByDateDesc(v.Overdue)

	v.Stats = deriveStats(len(collection), len(v.Completed))
	return v
}

// isOverdue: any past date, or a timed task today whose start has passed.
// All-day tasks are never overdue on their own day.
func isOverdue(t model.Task, today string, currentMinutes int) bool {
	if t.Date < today {
		return true
	}
	if t.Date == today && !t.AllDay {
		return dateutil.TimeToMinutes(t.FromTime) < currentMinutes
	}
	return false
}

func deriveStats(total, completed int) Stats {
	progress := 0
	if total > 0 {
		progress = int(math.Round(float64(completed) / float64(total) * 100))
	}
	return Stats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  progress,
	}
}
