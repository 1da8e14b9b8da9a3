package model

import "github.com/socialai-lab/backend/internal/entity"

// AccessToken is the payload carried inside a JWT access token.
type AccessToken struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	User        entity.SessionUser `json:"user"`
	AccessToken string             `json:"access_token"`
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type LoginResponse struct {
	User        entity.SessionUser `json:"user"`
	AccessToken string             `json:"access_token"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}

type GetMeRequest struct{}

type GetMeResponse struct {
	User entity.SessionUser `json:"user"`
}

type UpdateProfileRequest struct {
	Name       *string `json:"name,omitempty"`
	Username   *string `json:"username,omitempty"`
	Bio        *string `json:"bio,omitempty"`
	Avatar     *string `json:"avatar,omitempty"`
	CoverImage *string `json:"cover_image,omitempty"`
}

type UpdateProfileResponse struct {
	User entity.SessionUser `json:"user"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type ChangePasswordResponse struct {
	Success bool `json:"success"`
}

type SaveAPIKeyRequest struct {
	Key string `json:"key"`
}

type SaveAPIKeyResponse struct{}

type GetAPIKeyRequest struct{}

type GetAPIKeyResponse struct {
	Key string `json:"key"`
}

type UpgradeTierRequest struct {
	Tier string `json:"tier"`
}

type UpgradeTierResponse struct {
	User entity.SessionUser `json:"user"`
}
