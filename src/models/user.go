package models

import "hms/src/types"

type User struct {
	ID       uint       `gorm:"primarykey" json:"id"`
	Name     string     `json:"name,omitempty"`
	Email    string     `gorm:"uniqueIndex" json:"email,omitempty"`
	Password string     `json:"-"`
	Plan     types.Plan `gorm:"default:'free'" json:"plan,omitempty"`

	Hotels []Hotel `gorm:"foreignKey:admin_id" json:"hotels,omitempty"`

	types.Timestamps
}
