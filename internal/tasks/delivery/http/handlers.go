package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"personal-task-planner/internal/middleware"
	"personal-task-planner/internal/model"
	"personal-task-planner/internal/tasks/schedule"
	"personal-task-planner/pkg/response"
)

// scope pulls the request scope resolved by the middleware. Requests that
// somehow bypass the middleware get a zero scope, which the use case rejects.
func (h *handler) scope(c *gin.Context) model.Scope {
	sc, _ := middleware.ScopeFromContext(c)
	return sc
}

func (h *handler) deriveViews(ctx context.Context, c *gin.Context, at time.Time) (schedule.Views, error) {
	if at.IsZero() {
		return h.uc.Views(ctx, h.scope(c))
	}
	return h.uc.ViewsAt(ctx, h.scope(c), at)
}

// Create godoc
// @Summary     Create a new task
// @Description Normalizes the draft, assigns an id, and prepends it to the collection.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task draft"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "No active session"
// @Failure     403 {object} response.Resp "Scope mismatch"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns the raw collection in storage order, newest-first.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "No active session"
// @Failure     403 {object} response.Resp "Scope mismatch"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	collection, err := h.uc.List(ctx, h.scope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(collection))
}

// Views godoc
// @Summary     Derived task views
// @Description Returns all time buckets (today, tomorrow, upcoming, overdue, starting soon, reminders) and completion statistics.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       at query string false "Reference instant (RFC 3339); defaults to now"
// @Success     200 {object} viewsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "No active session"
// @Failure     403 {object} response.Resp "Scope mismatch"
// @Router      /api/v1/tasks/views [GET]
func (h *handler) Views(c *gin.Context) {
	ctx := c.Request.Context()

	at, err := h.processViewsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	views, err := h.deriveViews(ctx, c, at)
	if err != nil {
		h.l.Errorf(ctx, "uc.Views: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newViewsResp(views))
}

// Update godoc
// @Summary     Update a task
// @Description Replaces the task in place, keeping its collection position and creation stamp.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Replacement record"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by ID.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, h.scope(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Toggle godoc
// @Summary     Toggle task completion
// @Description Flips the completed flag and returns the updated task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} toggleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	task, err := h.uc.ToggleComplete(ctx, h.scope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleComplete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newToggleResp(task))
}
