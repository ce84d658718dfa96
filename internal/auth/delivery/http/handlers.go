package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-planner/pkg/response"
)

// Login godoc
// @Summary     Sign in
// @Description Activates the account, creating a profile on first sign-in. Dependent stores are swapped to the account's data.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Account identity"
// @Success     200 {object} loginResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoginResp(output))
}

// Logout godoc
// @Summary     Sign out
// @Description Ends the session. Profiles and task data are kept for the next sign-in.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "No session"
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Logout(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Me godoc
// @Summary     Current profile
// @Description Returns the signed-in account's profile.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Success     200 {object} meResp
// @Failure     401 {object} response.Resp "No session"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	profile, err := h.uc.Current(ctx)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMeResp(profile))
}

// UpdateProfile godoc
// @Summary     Update profile
// @Description Patches the signed-in profile. Omitted fields are left unchanged.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body updateProfileReq true "Fields to update"
// @Success     200 {object} updateProfileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "No session"
// @Router      /api/v1/auth/profile [PUT]
func (h *handler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateProfileReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateProfile(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateProfile: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateProfileResp(output))
}
