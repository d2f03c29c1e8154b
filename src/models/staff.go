package models

import (
	"time"

	"hms/src/types"
)

type Staff struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	HotelID uint   `gorm:"index" json:"hotel_id,omitempty"`
	Name    string `json:"name,omitempty"`
	Role    string `json:"role,omitempty"`

	Shifts []Shift `gorm:"foreignKey:staff_id" json:"shifts,omitempty"`

	types.Timestamps
}

type Shift struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	StaffID   uint      `gorm:"index" json:"staff_id,omitempty"`
	HotelID   uint      `gorm:"index" json:"hotel_id,omitempty"`
	StartTime time.Time `json:"start_time,omitempty"`
	EndTime   time.Time `json:"end_time,omitempty"`
	TaskNotes string    `json:"task_notes,omitempty"`

	Staff Staff `gorm:"foreignKey:staff_id" json:"-"`

	types.Timestamps
}
