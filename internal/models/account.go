package models

import "time"

// Account is a local identity for the authentication boundary. The ledger
// itself only sees the numeric ID.
type Account struct {
	ID          uint64     `gorm:"primaryKey" json:"id"`
	Username    string     `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Password    string     `gorm:"size:255" json:"-"` // bcrypt hash
	DisplayName string     `gorm:"size:100" json:"display_name"`
	Role        string     `gorm:"size:50;default:member" json:"role"` // admin, member
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	LastLogin   *time.Time `json:"last_login"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Account) TableName() string { return "accounts" }
