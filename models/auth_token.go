package models

import "time"

// AuthToken stores the one reusable bearer token per user. Login returns the
// stored token while it is still valid and only mints a new one after expiry,
// so repeated logins see the same credential.
type AuthToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	Key       string    `json:"-" gorm:"size:512;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

func (AuthToken) TableName() string {
	return "auth_tokens"
}
