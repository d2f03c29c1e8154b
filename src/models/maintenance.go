package models

import "hms/src/types"

type MaintenanceTask struct {
	ID       uint                      `gorm:"primarykey" json:"id"`
	RoomID   uint                      `gorm:"index" json:"room_id,omitempty"`
	HotelID  uint                      `gorm:"index" json:"hotel_id,omitempty"`
	Issue    string                    `json:"issue,omitempty"`
	Priority types.MaintenancePriority `gorm:"default:'medium'" json:"priority,omitempty"`
	Status   types.MaintenanceStatus   `gorm:"default:'pending'" json:"status,omitempty"`

	Room Room `gorm:"foreignKey:room_id" json:"room,omitempty"`

	types.Timestamps
}
