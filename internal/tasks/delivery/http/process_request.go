package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
)

var errMissingID = errors.New("id is required")

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update task request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, req.validate()
}

// processViewsReq binds the optional reference instant. A zero time means
// the store clock decides.
func (h *handler) processViewsReq(c *gin.Context) (time.Time, error) {
	var req viewsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return time.Time{}, err
	}
	if req.At == "" {
		return time.Time{}, nil
	}
	at, err := time.Parse(time.RFC3339, req.At)
	if err != nil {
		return time.Time{}, err
	}
	return at, nil
}
