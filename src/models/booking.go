package models

import (
	"time"

	"hms/src/types"
)

type Booking struct {
	ID         uint                `gorm:"primarykey" json:"id"`
	HotelID    uint                `gorm:"index" json:"hotel_id,omitempty"`
	RoomID     uint                `gorm:"index" json:"room_id,omitempty"`
	GuestName  string              `gorm:"index" json:"guest_name,omitempty"`
	CheckIn    time.Time           `json:"check_in,omitempty"`
	CheckOut   time.Time           `json:"check_out,omitempty"`
	TotalPrice float64             `json:"total_price,omitempty"`
	Status     types.BookingStatus `gorm:"default:'reserved'" json:"status,omitempty"`

	// ConfirmationCode is the reference printed on the guest's folio.
	ConfirmationCode string `gorm:"index" json:"confirmation_code,omitempty"`

	// LastAuditedOn holds the business date (YYYY-MM-DD) of the most recent
	// night audit that posted a charge for this stay.
	LastAuditedOn *string `json:"last_audited_on,omitempty"`

	Hotel   Hotel        `gorm:"foreignKey:hotel_id" json:"-"`
	Room    Room         `gorm:"foreignKey:room_id" json:"room,omitempty"`
	Charges []RoomCharge `gorm:"foreignKey:booking_id" json:"charges,omitempty"`

	types.Timestamps
}
