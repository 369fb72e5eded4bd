package model

import (
	"time"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	FirstName    string `gorm:"type:varchar(100)"`
	LastName     string `gorm:"type:varchar(100)"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Company      string `gorm:"type:varchar(100)"`
	Position     string `gorm:"type:varchar(100)"`
	Type         string `gorm:"type:varchar(10);not null;default:buyer"`
	IsActive     bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	ConfirmEmailTokens []ConfirmEmailTokenModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	AccessToken        *AccessTokenModel        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Contact            *ContactModel            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
