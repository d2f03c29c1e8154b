package models

import "hms/src/types"

type RoomCharge struct {
	ID          uint             `gorm:"primarykey" json:"id"`
	BookingID   uint             `gorm:"index" json:"booking_id,omitempty"`
	HotelID     uint             `gorm:"index" json:"hotel_id,omitempty"`
	Amount      float64          `json:"amount,omitempty"`
	Type        types.ChargeType `gorm:"default:'extra'" json:"type,omitempty"`
	Description string           `json:"description,omitempty"`

	Booking Booking `gorm:"foreignKey:booking_id" json:"-"`

	types.Timestamps
}
