package models

import "hms/src/types"

// Room carries a uniqueIndex over (hotel_id, number): two rooms with the
// same number can never exist on one property.
type Room struct {
	ID           uint             `gorm:"primarykey" json:"id"`
	HotelID      uint             `gorm:"uniqueIndex:idx_rooms_hotel_number" json:"hotel_id,omitempty"`
	Number       string           `gorm:"uniqueIndex:idx_rooms_hotel_number" json:"number,omitempty"`
	Type         string           `json:"type,omitempty"`
	Status       types.RoomStatus `gorm:"default:'available'" json:"status,omitempty"`
	CurrentGuest *string          `json:"current_guest,omitempty"`

	Hotel    Hotel     `gorm:"foreignKey:hotel_id" json:"-"`
	Bookings []Booking `gorm:"foreignKey:room_id" json:"bookings,omitempty"`

	types.Timestamps
}
