package model

import (
	"time"
)

// ConfirmEmailTokenModel mirrors the 'confirm_email_tokens' table. A user can
// hold several outstanding tokens; all of them go away once one is consumed.
type ConfirmEmailTokenModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Key       string `gorm:"type:varchar(64);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConfirmEmailTokenModel) TableName() string {
	return "confirm_email_tokens"
}

// AccessTokenModel mirrors the 'access_tokens' table. The unique user id
// keeps it to exactly one bearer credential per user.
type AccessTokenModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"unique;not null"`
	Key       string `gorm:"type:varchar(64);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccessTokenModel) TableName() string {
	return "access_tokens"
}
