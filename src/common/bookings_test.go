package common

import (
	"testing"

	"hms/src/models"
	"hms/src/types"

	"github.com/stretchr/testify/assert"
)

func TestCheckInAndCheckOut(t *testing.T) {
	gdb := newTestDB(t)
	auth, hotel, rooms := seedHotel(t, gdb, 1)
	roomID := rooms[0].ID

	booking, err := CheckInGuest(auth, gdb, hotel.ID, roomID, "Alice", mustDate(t, "2026-03-01"), mustDate(t, "2026-03-05"), 150)
	assert.Nil(t, err)
	assert.Equal(t, types.BOOKING_CHECKED_IN, booking.Status)

	room, err := GetRoom(gdb, hotel.ID, roomID)
	assert.Nil(t, err)
	assert.Equal(t, types.ROOM_OCCUPIED, room.Status)
	if assert.NotNil(t, room.CurrentGuest) {
		assert.Equal(t, "Alice", *room.CurrentGuest)
	}

	// Second arrival for the same room must bounce off the occupied state.
	_, err = CheckInGuest(auth, gdb, hotel.ID, roomID, "Bob", mustDate(t, "2026-03-02"), mustDate(t, "2026-03-06"), 200)
	assert.ErrorIs(t, err, ErrRoomNotAvailable)

	out, err := CheckOutGuest(auth, gdb, hotel.ID, roomID)
	assert.Nil(t, err)
	assert.Equal(t, types.BOOKING_CHECKED_OUT, out.Status)

	room, err = GetRoom(gdb, hotel.ID, roomID)
	assert.Nil(t, err)
	assert.Equal(t, types.ROOM_CLEANING, room.Status)
	assert.Nil(t, room.CurrentGuest)

	// Room comes back into service through housekeeping.
	room, err = SetRoomStatus(auth, gdb, hotel.ID, roomID, types.ROOM_AVAILABLE)
	assert.Nil(t, err)
	assert.Equal(t, types.ROOM_AVAILABLE, room.Status)
}

func TestCheckOutWithoutActiveStay(t *testing.T) {
	gdb := newTestDB(t)
	auth, hotel, rooms := seedHotel(t, gdb, 1)

	_, err := CheckOutGuest(auth, gdb, hotel.ID, rooms[0].ID)
	assert.ErrorIs(t, err, ErrRoomNotOccupied)
}

func TestReservationOverlap(t *testing.T) {
	gdb := newTestDB(t)
	auth, hotel, rooms := seedHotel(t, gdb, 1)
	roomID := rooms[0].ID

	first, err := CreateReservation(auth, gdb, hotel.ID, roomID, "Alice", mustDate(t, "2026-04-10"), mustDate(t, "2026-04-15"), 500)
	assert.Nil(t, err)
	assert.Equal(t, types.BOOKING_RESERVED, first.Status)

	// A reservation never touches the room itself.
	room, err := GetRoom(gdb, hotel.ID, roomID)
	assert.Nil(t, err)
	assert.Equal(t, types.ROOM_AVAILABLE, room.Status)

	_, err = CreateReservation(auth, gdb, hotel.ID, roomID, "Bob", mustDate(t, "2026-04-14"), mustDate(t, "2026-04-20"), 600)
	assert.ErrorIs(t, err, ErrDatesOverlap)

	// A disjoint window on the same room is fine.
	_, err = CreateReservation(auth, gdb, hotel.ID, roomID, "Bob", mustDate(t, "2026-04-16"), mustDate(t, "2026-04-20"), 600)
	assert.Nil(t, err)
}

func TestCancelBooking(t *testing.T) {
	gdb := newTestDB(t)
	auth, hotel, rooms := seedHotel(t, gdb, 1)

	res, err := CreateReservation(auth, gdb, hotel.ID, rooms[0].ID, "Alice", mustDate(t, "2026-05-01"), mustDate(t, "2026-05-03"), 200)
	assert.Nil(t, err)

	assert.Nil(t, CancelBooking(auth, gdb, hotel.ID, res.ID))

	var cancelled models.Booking
	assert.Nil(t, gdb.First(&cancelled, res.ID).Error)
	assert.Equal(t, types.BOOKING_CANCELLED, cancelled.Status)

	// Cancelling twice is rejected, as is cancelling a checked-in stay.
	assert.ErrorIs(t, CancelBooking(auth, gdb, hotel.ID, res.ID), ErrBookingNotOpen)
	assert.ErrorIs(t, CancelBooking(auth, gdb, hotel.ID, 9999), ErrNotFound)
}

func TestGuestHistoryAndCalendar(t *testing.T) {
	gdb := newTestDB(t)
	auth, hotel, rooms := seedHotel(t, gdb, 2)

	_, err := CreateReservation(auth, gdb, hotel.ID, rooms[0].ID, "Alice", mustDate(t, "2026-06-01"), mustDate(t, "2026-06-05"), 400)
	assert.Nil(t, err)
	_, err = CreateReservation(auth, gdb, hotel.ID, rooms[1].ID, "Alice", mustDate(t, "2026-07-01"), mustDate(t, "2026-07-03"), 250)
	assert.Nil(t, err)
	_, err = CreateReservation(auth, gdb, hotel.ID, rooms[1].ID, "Bob", mustDate(t, "2026-06-10"), mustDate(t, "2026-06-12"), 100)
	assert.Nil(t, err)

	history, err := GetGuestHistory(gdb, hotel.ID, "Alice")
	assert.Nil(t, err)
	if assert.Len(t, history, 2) {
		// Newest stay first.
		assert.True(t, history[0].CheckIn.After(history[1].CheckIn))
	}

	june, err := GetDateRangeBookings(gdb, hotel.ID, mustDate(t, "2026-06-01"), mustDate(t, "2026-06-30"))
	assert.Nil(t, err)
	assert.Len(t, june, 2)
}

func TestAddCharge(t *testing.T) {
	gdb := newTestDB(t)
	auth, hotel, rooms := seedHotel(t, gdb, 1)

	booking, err := CheckInGuest(auth, gdb, hotel.ID, rooms[0].ID, "Alice", mustDate(t, "2026-03-01"), mustDate(t, "2026-03-05"), 150)
	assert.Nil(t, err)

	charge, err := AddCharge(auth, gdb, hotel.ID, booking.ID, 42.50, "Minibar")
	assert.Nil(t, err)
	assert.Equal(t, types.CHARGE_EXTRA, charge.Type)

	_, err = AddCharge(auth, gdb, hotel.ID, 9999, 10, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
