package http

import (
	"personal-task-planner/internal/auth"
)

// --- Request DTOs ---

type loginReq struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"  binding:"required,min=1,max=255"`
}

func (r loginReq) validate() error { return nil }

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Email: r.Email,
		Name:  r.Name,
	}
}

type updateProfileReq struct {
	Name  string `json:"name"  binding:"omitempty,min=1,max=255"`
	Phone string `json:"phone" binding:"omitempty,max=32"`
	Age   int    `json:"age"   binding:"omitempty,gte=1,lte=150"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

func (r updateProfileReq) validate() error { return nil }

func (r updateProfileReq) toInput() auth.UpdateProfileInput {
	return auth.UpdateProfileInput{
		Name:  r.Name,
		Phone: r.Phone,
		Age:   r.Age,
		Color: r.Color,
	}
}

// --- Response DTOs ---

type profileResp struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Age          int    `json:"age,omitempty"`
	Color        string `json:"color"`
	AvatarLetter string `json:"avatarLetter"`
	CreatedAt    int64  `json:"createdAt"`
}

func newProfileResp(p auth.Profile) profileResp {
	return profileResp{
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		Age:          p.Age,
		Color:        p.Color,
		AvatarLetter: p.AvatarLetter,
		CreatedAt:    p.CreatedAt,
	}
}

type loginResp struct {
	Profile profileResp `json:"profile"`
}

func (h *handler) newLoginResp(out auth.LoginOutput) loginResp {
	return loginResp{Profile: newProfileResp(out.Profile)}
}

type meResp struct {
	Profile profileResp `json:"profile"`
}

func (h *handler) newMeResp(p auth.Profile) meResp {
	return meResp{Profile: newProfileResp(p)}
}

type updateProfileResp struct {
	Profile profileResp `json:"profile"`
}

func (h *handler) newUpdateProfileResp(out auth.UpdateProfileOutput) updateProfileResp {
	return updateProfileResp{Profile: newProfileResp(out.Profile)}
}
