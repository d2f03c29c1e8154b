package models

import "hms/src/types"

type KitchenOrder struct {
	ID         uint                     `gorm:"primarykey" json:"id"`
	HotelID    uint                     `gorm:"index" json:"hotel_id,omitempty"`
	RoomNumber string                   `json:"room_number,omitempty"`
	Items      types.OrderItems         `gorm:"type:text" json:"items,omitempty"`
	Status     types.KitchenOrderStatus `gorm:"default:'pending'" json:"status,omitempty"`

	types.Timestamps
}
