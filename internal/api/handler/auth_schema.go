package handler

import "github.com/dayplan-app/planner-api/internal/core/domain"

type signupRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token,omitempty"`
}

// configView is the subset of the account shown on the settings form.
type configView struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	ProfilePic  string `json:"profile_pic,omitempty"`
}

func toConfigView(u *domain.User) configView {
	return configView{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		DisplayName: u.DisplayName,
		ProfilePic:  u.ProfilePic,
	}
}

// updateConfigRequest: nil pointers leave a field untouched; a password change
// must carry the current password.
type updateConfigRequest struct {
	DisplayName     *string `json:"display_name"`
	Name            *string `json:"name"`
	CurrentPassword string  `json:"current_password"`
	NewPassword     string  `json:"new_password"`
}

type updateConfigResponse struct {
	Message string     `json:"message"`
	User    configView `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}
