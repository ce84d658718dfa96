package schedule

import (
	"sort"

	"personal-task-planner/internal/model"
	"personal-task-planner/pkg/dateutil"
)

// Less is the canonical task ordering: date first (lexicographic comparison
// is chronological for canonical YYYY-MM-DD), all-day tasks before timed
// tasks on the same date, then ascending start time. An absent start time
// counts as midnight.
func Less(a, b model.Task) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	if a.AllDay != b.AllDay {
		return a.AllDay
	}
	return dateutil.TimeToMinutes(a.FromTime) < dateutil.TimeToMinutes(b.FromTime)
}

// sortByDateTime orders ts by Less, stably, in place.
func sortByDateTime(ts []model.Task) []model.Task {
	sort.SliceStable(ts, func(i, j int) bool { return Less(ts[i], ts[j]) })
	return ts
}

// sortByDateDesc orders ts by date descending, stably, ignoring time of day.
func sortByDateDesc(ts []model.Task) []model.Task {
	sort.SliceStable(ts, func(i, j int) bool { return ts[i].Date > ts[j].Date })
	return ts
}
