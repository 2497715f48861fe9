package dto

import (
	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/service"
)

type CreateUserRequest struct {
	Username    string  `json:"username" binding:"required,min=1,max=255"`
	Password    string  `json:"password" binding:"required,min=1,max=255"`
	DisplayName string  `json:"display_name,omitempty" binding:"omitempty,max=255"`
	AvatarURL   *string `json:"avatar_url,omitempty" binding:"omitempty,url,max=2048"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email,max=255"`
	Role        *string `json:"role,omitempty" binding:"omitempty,oneof=user admin"`
}

func (r CreateUserRequest) ToParams() service.CreateUserParams {
	params := service.CreateUserParams{
		Username:    r.Username,
		Password:    r.Password,
		DisplayName: r.DisplayName,
		AvatarURL:   r.AvatarURL,
		Email:       r.Email,
	}
	if r.Role != nil {
		role := model.Role(*r.Role)
		params.Role = &role
	}
	return params
}
