package models

import "hms/src/types"

type Hotel struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Name     string `json:"name,omitempty"`
	Location string `json:"location,omitempty"`
	Slug     string `json:"slug,omitempty"`
	AdminID  uint   `json:"admin_id,omitempty"`

	Admin User   `gorm:"foreignKey:admin_id" json:"-"`
	Rooms []Room `gorm:"foreignKey:hotel_id" json:"rooms,omitempty"`

	types.Timestamps
}
