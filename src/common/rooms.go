package common

import (
	"errors"
	"log"
	"strings"

	"hms/src/models"
	"hms/src/types"

	"gorm.io/gorm"
)

// roomTransitions is the full lifecycle a room can move through:
//
//	available -> occupied     (check-in)
//	occupied  -> cleaning     (check-out)
//	cleaning  -> available    (housekeeping done)
//	available -> maintenance  (issue reported)
//	occupied  -> maintenance  (issue reported)
//	maintenance -> cleaning   (repair confirmed)
//
// Anything else is rejected before a write happens.
var roomTransitions = map[types.RoomStatus][]types.RoomStatus{
	types.ROOM_AVAILABLE:   {types.ROOM_OCCUPIED, types.ROOM_MAINTENANCE},
	types.ROOM_OCCUPIED:    {types.ROOM_CLEANING, types.ROOM_MAINTENANCE},
	types.ROOM_CLEANING:    {types.ROOM_AVAILABLE},
	types.ROOM_MAINTENANCE: {types.ROOM_CLEANING},
}

func CanTransition(from, to types.RoomStatus) bool {
	for _, next := range roomTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// GetRoom fetches one room scoped to a hotel.
func GetRoom(tx *gorm.DB, hotelID, roomID uint) (*models.Room, error) {
	var room models.Room
	if err := lockForUpdate(tx).
		Where(&models.Room{ID: roomID, HotelID: hotelID}).
		First(&room).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

// transitionRoom applies a validated status change. The previous status is
// part of the WHERE clause so a concurrent writer that got there first
// makes this a zero-row update instead of a silent overwrite.
func transitionRoom(tx *gorm.DB, room *models.Room, to types.RoomStatus, updates map[string]any) error {
	if !CanTransition(room.Status, to) {
		log.Printf("Rejected room transition: room=%d %s -> %s\n", room.ID, room.Status, to)
		return ErrInvalidTransition
	}
	if updates == nil {
		updates = map[string]any{}
	}
	updates["status"] = to
	res := tx.
		Model(&models.Room{}).
		Where("id = ? AND hotel_id = ? AND status = ?", room.ID, room.HotelID, room.Status).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	room.Status = to
	return nil
}

// SetRoomStatus is the externally triggered transition (housekeeping and
// front-desk status changes go through the same table as check-in/out).
func SetRoomStatus(auth types.AuthContext, gdb *gorm.DB, hotelID, roomID uint, to types.RoomStatus) (*models.Room, error) {
	// Occupied is only reachable through check-in, which creates the
	// stay the status implies. A bare status write would leave an
	// occupied room with no booking behind it.
	if to == types.ROOM_OCCUPIED {
		return nil, ErrInvalidTransition
	}
	var room *models.Room
	err := gdb.Transaction(func(tx *gorm.DB) error {
		if _, err := AuthorizeHotel(tx, auth, hotelID); err != nil {
			return err
		}
		r, err := GetRoom(tx, hotelID, roomID)
		if err != nil {
			return err
		}
		updates := map[string]any{}
		if to != types.ROOM_OCCUPIED {
			updates["current_guest"] = nil
		}
		if err := transitionRoom(tx, r, to, updates); err != nil {
			return err
		}
		room = r
		return nil
	})
	return room, err
}

// CreateRoom registers a room on a property. The (hotel, number) unique
// index backs the duplicate check under concurrency.
func CreateRoom(auth types.AuthContext, gdb *gorm.DB, hotelID uint, number, roomType string) (*models.Room, error) {
	var room models.Room
	err := gdb.Transaction(func(tx *gorm.DB) error {
		if _, err := AuthorizeHotel(tx, auth, hotelID); err != nil {
			return err
		}
		var count int64
		if err := tx.
			Model(&models.Room{}).
			Where(&models.Room{HotelID: hotelID, Number: number}).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateRoom
		}
		room = models.Room{
			HotelID: hotelID,
			Number:  number,
			Type:    roomType,
			Status:  types.ROOM_AVAILABLE,
		}
		if err := tx.Create(&room).Error; err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "unique") {
				return ErrDuplicateRoom
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// ReportMaintenance files a ticket and forces the room into maintenance in
// a single transaction.
func ReportMaintenance(auth types.AuthContext, gdb *gorm.DB, hotelID, roomID uint, issue string, priority types.MaintenancePriority) (*models.MaintenanceTask, error) {
	if priority == "" {
		priority = types.PRIORITY_HIGH
	}
	var task models.MaintenanceTask
	err := gdb.Transaction(func(tx *gorm.DB) error {
		if _, err := AuthorizeHotel(tx, auth, hotelID); err != nil {
			return err
		}
		room, err := GetRoom(tx, hotelID, roomID)
		if err != nil {
			return err
		}
		task = models.MaintenanceTask{
			RoomID:   roomID,
			HotelID:  hotelID,
			Issue:    issue,
			Priority: priority,
			Status:   types.MAINTENANCE_PENDING,
		}
		if err := tx.Create(&task).Error; err != nil {
			return err
		}
		return transitionRoom(tx, room, types.ROOM_MAINTENANCE, map[string]any{"current_guest": nil})
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ResolveMaintenance completes the ticket and hands the room to
// housekeeping. Rooms come back into service through cleaning, never
// straight to available.
func ResolveMaintenance(auth types.AuthContext, gdb *gorm.DB, hotelID, taskID uint) (*models.MaintenanceTask, error) {
	var task models.MaintenanceTask
	err := gdb.Transaction(func(tx *gorm.DB) error {
		if _, err := AuthorizeHotel(tx, auth, hotelID); err != nil {
			return err
		}
		if err := tx.
			Where(&models.MaintenanceTask{ID: taskID, HotelID: hotelID}).
			First(&task).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.
			Model(&models.MaintenanceTask{}).
			Where(&models.MaintenanceTask{ID: task.ID}).
			Update("status", types.MAINTENANCE_COMPLETED).
			Error; err != nil {
			return err
		}
		room, err := GetRoom(tx, hotelID, task.RoomID)
		if err != nil {
			return err
		}
		return transitionRoom(tx, room, types.ROOM_CLEANING, nil)
	})
	if err != nil {
		return nil, err
	}
	task.Status = types.MAINTENANCE_COMPLETED
	return &task, nil
}
