package common

import (
	"fmt"
	"log"
	"testing"
	"time"

	"hms/src/models"
	"hms/src/types"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("error opening database: %s", err.Error())
	}
	inner, err := gdb.DB()
	if err != nil {
		t.Fatalf("error accessing inner db instance: %s", err.Error())
	}
	inner.SetMaxOpenConns(1)
	err = gdb.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
		&models.RoomCharge{},
		&models.MaintenanceTask{},
		&models.DailyReport{},
		&models.InventoryItem{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}
	return gdb
}

// seedHotel creates an admin, their property and n available rooms,
// returning the auth context the admin would carry.
func seedHotel(t *testing.T, gdb *gorm.DB, n int) (types.AuthContext, *models.Hotel, []models.Room) {
	t.Helper()
	admin := models.User{Name: "Front Desk", Email: "desk@example.com", Plan: types.PLAN_FREE}
	if err := gdb.Create(&admin).Error; err != nil {
		t.Fatalf("error creating user: %s", err.Error())
	}
	hotel := models.Hotel{Name: "Seaside Inn", Location: "Shore Rd", Slug: "seaside-inn", AdminID: admin.ID}
	if err := gdb.Create(&hotel).Error; err != nil {
		t.Fatalf("error creating hotel: %s", err.Error())
	}
	rooms := make([]models.Room, 0, n)
	for i := 0; i < n; i++ {
		room := models.Room{
			HotelID: hotel.ID,
			Number:  fmt.Sprintf("%d", 101+i),
			Type:    "standard",
			Status:  types.ROOM_AVAILABLE,
		}
		if err := gdb.Create(&room).Error; err != nil {
			t.Fatalf("error creating room: %s", err.Error())
		}
		rooms = append(rooms, room)
	}
	auth := types.AuthContext{UserID: admin.ID, Email: admin.Email, Plan: admin.Plan}
	return auth, &hotel, rooms
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %s", s, err.Error())
	}
	return d
}
