package dto

import "bountyboard_backend/internal/models"

// UserInfo - публичная часть профиля.
type UserInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Address  string `json:"address"`
	ImageURL string `json:"image_url,omitempty"`
}

func NewUserInfo(u *models.User) *UserInfo {
	if u == nil || u.ID == "" {
		return nil
	}
	return &UserInfo{
		ID:       u.ID,
		Name:     u.Name,
		Address:  u.PublicAddress,
		ImageURL: u.SmallProfileImageURL,
	}
}
