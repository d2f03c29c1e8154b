package common

import (
	"errors"
	"time"

	"hms/src/models"
	"hms/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// hasOverlappingStay reports whether the room already has a non-terminal
// booking whose [check_in, check_out] intersects the requested window.
func hasOverlappingStay(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	var count int64
	err := tx.
		Model(&models.Booking{}).
		Where("room_id = ? AND status IN (?)", roomID, []types.BookingStatus{
			types.BOOKING_RESERVED,
			types.BOOKING_CHECKED_IN,
		}).
		Where("check_in <= ? AND check_out >= ?", checkOut, checkIn).
		Count(&count).
		Error
	return count > 0, err
}

// CheckInGuest creates the stay and marks the room occupied in one
// transaction. The room must be available; a second check-in racing this
// one loses on the guarded status update.
func CheckInGuest(auth types.AuthContext, gdb *gorm.DB, hotelID, roomID uint, guestName string, checkIn, checkOut time.Time, totalPrice float64) (*models.Booking, error) {
	var booking models.Booking
	err := gdb.Transaction(func(tx *gorm.DB) error {
		if _, err := AuthorizeHotel(tx, auth, hotelID); err != nil {
			return err
		}
		room, err := GetRoom(tx, hotelID, roomID)
		if err != nil {
			return err
		}
		if room.Status != types.ROOM_AVAILABLE {
			return ErrRoomNotAvailable
		}
		booking = models.Booking{
			HotelID:          hotelID,
			RoomID:           roomID,
			GuestName:        guestName,
			CheckIn:          checkIn,
			CheckOut:         checkOut,
			TotalPrice:       totalPrice,
			Status:           types.BOOKING_CHECKED_IN,
			ConfirmationCode: uuid.NewString(),
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		return transitionRoom(tx, room, types.ROOM_OCCUPIED, map[string]any{
			"current_guest": guestName,
		})
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CheckOutGuest transitions the stay and the room together: booking goes
// to checked_out, room goes to cleaning with the guest link cleared.
func CheckOutGuest(auth types.AuthContext, gdb *gorm.DB, hotelID, roomID uint) (*models.Booking, error) {
	var booking models.Booking
	err := gdb.Transaction(func(tx *gorm.DB) error {
		if _, err := AuthorizeHotel(tx, auth, hotelID); err != nil {
			return err
		}
		room, err := GetRoom(tx, hotelID, roomID)
		if err != nil {
			return err
		}
		if room.Status != types.ROOM_OCCUPIED {
			return ErrRoomNotOccupied
		}
		if err := lockForUpdate(tx).
			Where(&models.Booking{RoomID: roomID, HotelID: hotelID, Status: types.BOOKING_CHECKED_IN}).
			Order("created_at DESC").
			First(&booking).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoActiveBooking
			}
			return err
		}
		if err := tx.
			Model(&models.Booking{}).
			Where(&models.Booking{ID: booking.ID}).
			Update("status", types.BOOKING_CHECKED_OUT).
			Error; err != nil {
			return err
		}
		booking.Status = types.BOOKING_CHECKED_OUT
		return transitionRoom(tx, room, types.ROOM_CLEANING, map[string]any{
			"current_guest": nil,
		})
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CreateReservation records a forward booking without touching the room;
// the room state only changes when the guest actually arrives.
func CreateReservation(auth types.AuthContext, gdb *gorm.DB, hotelID, roomID uint, guestName string, checkIn, checkOut time.Time, totalPrice float64) (*models.Booking, error) {
	var booking models.Booking
	err := gdb.Transaction(func(tx *gorm.DB) error {
		if _, err := AuthorizeHotel(tx, auth, hotelID); err != nil {
			return err
		}
		if _, err := GetRoom(tx, hotelID, roomID); err != nil {
			return err
		}
		overlaps, err := hasOverlappingStay(tx, roomID, checkIn, checkOut)
		if err != nil {
			return err
		}
		if overlaps {
			return ErrDatesOverlap
		}
		booking = models.Booking{
			HotelID:          hotelID,
			RoomID:           roomID,
			GuestName:        guestName,
			CheckIn:          checkIn,
			CheckOut:         checkOut,
			TotalPrice:       totalPrice,
			Status:           types.BOOKING_RESERVED,
			ConfirmationCode: uuid.NewString(),
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelBooking cancels a reservation that has not been checked in yet.
func CancelBooking(auth types.AuthContext, gdb *gorm.DB, hotelID, bookingID uint) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		if _, err := AuthorizeHotel(tx, auth, hotelID); err != nil {
			return err
		}
		res := tx.
			Model(&models.Booking{}).
			Where("id = ? AND hotel_id = ? AND status = ?", bookingID, hotelID, types.BOOKING_RESERVED).
			Update("status", types.BOOKING_CANCELLED)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			tx.Model(&models.Booking{}).
				Where("id = ? AND hotel_id = ?", bookingID, hotelID).
				Count(&count)
			if count == 0 {
				return ErrNotFound
			}
			return ErrBookingNotOpen
		}
		return nil
	})
}

// GetGuestHistory returns past stays for a guest, newest first.
func GetGuestHistory(gdb *gorm.DB, hotelID uint, guestName string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := gdb.
		Where(&models.Booking{HotelID: hotelID, GuestName: guestName}).
		Order("check_in DESC").
		Find(&bookings).
		Error
	return bookings, err
}

// GetDateRangeBookings returns bookings whose stay overlaps [start, end],
// used for the room calendar.
func GetDateRangeBookings(gdb *gorm.DB, hotelID uint, start, end time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := gdb.
		Where("hotel_id = ?", hotelID).
		Where("check_in <= ? AND check_out >= ?", end, start).
		Find(&bookings).
		Error
	return bookings, err
}

// AddCharge appends a folio charge to a stay.
func AddCharge(auth types.AuthContext, gdb *gorm.DB, hotelID, bookingID uint, amount float64, description string) (*models.RoomCharge, error) {
	var charge models.RoomCharge
	err := gdb.Transaction(func(tx *gorm.DB) error {
		if _, err := AuthorizeHotel(tx, auth, hotelID); err != nil {
			return err
		}
		var booking models.Booking
		if err := tx.
			Where(&models.Booking{ID: bookingID, HotelID: hotelID}).
			First(&booking).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		charge = models.RoomCharge{
			BookingID:   bookingID,
			HotelID:     hotelID,
			Amount:      amount,
			Type:        types.CHARGE_EXTRA,
			Description: description,
		}
		return tx.Create(&charge).Error
	})
	if err != nil {
		return nil, err
	}
	return &charge, nil
}
