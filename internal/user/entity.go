package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username                    string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	DisplayName                 string    `gorm:"size:255" json:"display_name,omitempty"`
	IsAdmin                     bool      `gorm:"not null;default:false" json:"is_admin"`
	EncryptedGoogleAccessToken  string    `gorm:"type:text" json:"-"`
	EncryptedGoogleRefreshToken string    `gorm:"type:text" json:"-"`
	CreatedAt                   time.Time `json:"created_at"`
	UpdatedAt                   time.Time `json:"updated_at"`
}

// Name is what other records show for this user.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

func (u *User) Role() string {
	if u.IsAdmin {
		return "admin"
	}
	return "user"
}
