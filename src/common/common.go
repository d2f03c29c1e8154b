package common

import (
	"errors"

	"hms/src/models"
	"hms/src/types"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrNotOwner          = errors.New("caller does not own this property")
	ErrInvalidTransition = errors.New("room status transition not allowed")
	ErrRoomNotAvailable  = errors.New("room is not available")
	ErrRoomNotOccupied   = errors.New("room is not occupied")
	ErrNoActiveBooking   = errors.New("no active booking for room")
	ErrBookingNotOpen    = errors.New("booking can no longer be cancelled")
	ErrDuplicateRoom     = errors.New("room number already exists for this property")
	ErrDatesOverlap      = errors.New("room already booked for the requested dates")
)

// AuthorizeHotel resolves the hotel and verifies the caller owns it. Every
// property-scoped operation goes through here instead of trusting the
// hotel id supplied by the client.
func AuthorizeHotel(tx *gorm.DB, auth types.AuthContext, hotelID uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := tx.
		Model(&models.Hotel{}).
		Where(&models.Hotel{ID: hotelID}).
		First(&hotel).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if hotel.AdminID != auth.UserID {
		return nil, ErrNotOwner
	}
	return &hotel, nil
}

// lockForUpdate takes a row lock where the dialect supports it. sqlite has
// no FOR UPDATE; its writes are serialized anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{
			Strength: "UPDATE",
			Table:    clause.Table{Name: clause.CurrentTable},
		})
	}
	return tx
}
