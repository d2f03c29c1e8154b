package common

import (
	"testing"

	"hms/src/types"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    types.RoomStatus
		to      types.RoomStatus
		allowed bool
	}{
		{types.ROOM_AVAILABLE, types.ROOM_OCCUPIED, true},
		{types.ROOM_AVAILABLE, types.ROOM_MAINTENANCE, true},
		{types.ROOM_AVAILABLE, types.ROOM_CLEANING, false},
		{types.ROOM_OCCUPIED, types.ROOM_CLEANING, true},
		{types.ROOM_OCCUPIED, types.ROOM_MAINTENANCE, true},
		{types.ROOM_OCCUPIED, types.ROOM_AVAILABLE, false},
		{types.ROOM_CLEANING, types.ROOM_AVAILABLE, true},
		{types.ROOM_CLEANING, types.ROOM_OCCUPIED, false},
		{types.ROOM_CLEANING, types.ROOM_MAINTENANCE, false},
		{types.ROOM_MAINTENANCE, types.ROOM_CLEANING, true},
		{types.ROOM_MAINTENANCE, types.ROOM_AVAILABLE, false},
		{types.ROOM_MAINTENANCE, types.ROOM_OCCUPIED, false},
	}
	for _, c := range cases {
		got := CanTransition(c.from, c.to)
		assert.Equalf(t, c.allowed, got, "%s -> %s", c.from, c.to)
	}
}

func TestCreateRoomRejectsDuplicateNumber(t *testing.T) {
	gdb := newTestDB(t)
	auth, hotel, _ := seedHotel(t, gdb, 1)

	_, err := CreateRoom(auth, gdb, hotel.ID, "101", "standard")
	assert.ErrorIs(t, err, ErrDuplicateRoom)

	room, err := CreateRoom(auth, gdb, hotel.ID, "201", "suite")
	assert.Nil(t, err)
	assert.Equal(t, types.ROOM_AVAILABLE, room.Status)
}

func TestSetRoomStatusRejectsInvalidTransition(t *testing.T) {
	gdb := newTestDB(t)
	auth, hotel, rooms := seedHotel(t, gdb, 1)

	_, err := SetRoomStatus(auth, gdb, hotel.ID, rooms[0].ID, types.ROOM_CLEANING)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	room, err := SetRoomStatus(auth, gdb, hotel.ID, rooms[0].ID, types.ROOM_MAINTENANCE)
	assert.Nil(t, err)
	assert.Equal(t, types.ROOM_MAINTENANCE, room.Status)
}

func TestSetRoomStatusCannotForceOccupied(t *testing.T) {
	gdb := newTestDB(t)
	auth, hotel, rooms := seedHotel(t, gdb, 1)

	// Only check-in may occupy a room; a bare status write would leave
	// an occupied room with no stay behind it.
	_, err := SetRoomStatus(auth, gdb, hotel.ID, rooms[0].ID, types.ROOM_OCCUPIED)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	room, err := GetRoom(gdb, hotel.ID, rooms[0].ID)
	assert.Nil(t, err)
	assert.Equal(t, types.ROOM_AVAILABLE, room.Status)
}

func TestSetRoomStatusRequiresOwnership(t *testing.T) {
	gdb := newTestDB(t)
	_, hotel, rooms := seedHotel(t, gdb, 1)

	stranger := types.AuthContext{UserID: 999, Email: "other@example.com"}
	_, err := SetRoomStatus(stranger, gdb, hotel.ID, rooms[0].ID, types.ROOM_MAINTENANCE)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestMaintenanceLifecycle(t *testing.T) {
	gdb := newTestDB(t)
	auth, hotel, rooms := seedHotel(t, gdb, 1)

	task, err := ReportMaintenance(auth, gdb, hotel.ID, rooms[0].ID, "leaking faucet", "")
	assert.Nil(t, err)
	assert.Equal(t, types.MAINTENANCE_PENDING, task.Status)
	assert.Equal(t, types.PRIORITY_HIGH, task.Priority)

	room, err := GetRoom(gdb, hotel.ID, rooms[0].ID)
	assert.Nil(t, err)
	assert.Equal(t, types.ROOM_MAINTENANCE, room.Status)

	resolved, err := ResolveMaintenance(auth, gdb, hotel.ID, task.ID)
	assert.Nil(t, err)
	assert.Equal(t, types.MAINTENANCE_COMPLETED, resolved.Status)

	room, err = GetRoom(gdb, hotel.ID, rooms[0].ID)
	assert.Nil(t, err)
	assert.Equal(t, types.ROOM_CLEANING, room.Status)
}
