package http

import (
	"personal-task-planner/internal/model"
	"personal-task-planner/internal/tasks"
	"personal-task-planner/internal/tasks/schedule"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"       binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Priority    string `json:"priority"    binding:"omitempty"`
	Date        string `json:"date"        binding:"required"`
	AllDay      bool   `json:"allDay"`
	FromTime    string `json:"fromTime"    binding:"omitempty,len=5"`
	ToTime      string `json:"toTime"      binding:"omitempty,len=5"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() tasks.CreateTaskInput {
	return tasks.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    model.Priority(r.Priority),
		Date:        r.Date,
		AllDay:      r.AllDay,
		FromTime:    r.FromTime,
		ToTime:      r.ToTime,
	}
}

// ---

type updateReq struct {
	ID          string `json:"-"` // populated from URI param
	Title       string `json:"title"       binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Priority    string `json:"priority"    binding:"omitempty"`
	Date        string `json:"date"        binding:"required"`
	AllDay      bool   `json:"allDay"`
	FromTime    string `json:"fromTime"    binding:"omitempty,len=5"`
	ToTime      string `json:"toTime"      binding:"omitempty,len=5"`
	Completed   bool   `json:"completed"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() tasks.UpdateTaskInput {
	return tasks.UpdateTaskInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    model.Priority(r.Priority),
		Date:        r.Date,
		AllDay:      r.AllDay,
		FromTime:    r.FromTime,
		ToTime:      r.ToTime,
		Completed:   r.Completed,
	}
}

// ---

type viewsReq struct {
	// At is an optional RFC 3339 reference instant. Empty means "now" as
	// seen by the store clock.
	At string `form:"at" binding:"omitempty"`
}

// --- Response DTOs ---

type taskResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority"`
	Date        string `json:"date"`
	AllDay      bool   `json:"allDay"`
	FromTime    string `json:"fromTime"`
	ToTime      string `json:"toTime"`
	Completed   bool   `json:"completed"`
	CreatedAt   int64  `json:"createdAt"`
	Overdue     bool   `json:"overdue,omitempty"`
}

func newTaskResp(task model.Task) taskResp {
	return taskResp{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		Date:        task.Date,
		AllDay:      task.AllDay,
		FromTime:    task.FromTime,
		ToTime:      task.ToTime,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		Overdue:     task.Overdue,
	}
}

func newTaskList(collection []model.Task) []taskResp {
	out := make([]taskResp, len(collection))
	for i, task := range collection {
		out[i] = newTaskResp(task)
	}
	return out
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out tasks.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(collection []model.Task) listResp {
	return listResp{
		Tasks: newTaskList(collection),
		Total: len(collection),
	}
}

type statsResp struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Progress  int `json:"progress"`
}

type viewsResp struct {
	Today        []taskResp `json:"today"`
	Tomorrow     []taskResp `json:"tomorrow"`
	Upcoming     []taskResp `json:"upcoming"`
	All          []taskResp `json:"all"`
	Completed    []taskResp `json:"completed"`
	StartingSoon []taskResp `json:"startingSoon"`
	Reminders    []taskResp `json:"reminders"`
	Overdue      []taskResp `json:"overdue"`
	Stats        statsResp  `json:"stats"`
}

func (h *handler) newViewsResp(views schedule.Views) viewsResp {
	return viewsResp{
		Today:        newTaskList(views.Today),
		Tomorrow:     newTaskList(views.Tomorrow),
		Upcoming:     newTaskList(views.Upcoming),
		All:          newTaskList(views.All),
		Completed:    newTaskList(views.Completed),
		StartingSoon: newTaskList(views.StartingSoon),
		Reminders:    newTaskList(views.Reminders),
		Overdue:      newTaskList(views.Overdue),
		Stats: statsResp{
			Total:     views.Stats.Total,
			Completed: views.Stats.Completed,
			Pending:   views.Stats.Pending,
			Progress:  views.Stats.Progress,
		},
	}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out tasks.UpdateTaskOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}

type toggleResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newToggleResp(task model.Task) toggleResp {
	return toggleResp{Task: newTaskResp(task)}
}
