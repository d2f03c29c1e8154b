package common

import (
	"testing"

	"hms/src/models"
	"hms/src/types"

	"github.com/stretchr/testify/assert"
)

func TestNightAuditPostsChargesOnce(t *testing.T) {
	gdb := newTestDB(t)
	auth, hotel, rooms := seedHotel(t, gdb, 10)

	_, err := CheckInGuest(auth, gdb, hotel.ID, rooms[0].ID, "Alice", mustDate(t, "2026-03-01"), mustDate(t, "2026-03-05"), 150)
	assert.Nil(t, err)

	businessDate := mustDate(t, "2026-03-01")
	result, err := RunNightAudit(gdb, hotel.ID, businessDate)
	assert.Nil(t, err)
	assert.False(t, result.AlreadyRun)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 150.0, result.TotalRevenue)

	var report models.DailyReport
	assert.Nil(t, gdb.First(&report, result.ReportID).Error)
	assert.Equal(t, "2026-03-01", report.ReportDate)
	assert.Equal(t, 10.0, report.OccupancyRate)
	assert.Equal(t, 1, report.RoomsOccupied)

	// Re-running the same business date must not post anything new.
	again, err := RunNightAudit(gdb, hotel.ID, businessDate)
	assert.Nil(t, err)
	assert.True(t, again.AlreadyRun)
	assert.Equal(t, result.ReportID, again.ReportID)

	var charges int64
	assert.Nil(t, gdb.Model(&models.RoomCharge{}).Where("hotel_id = ?", hotel.ID).Count(&charges).Error)
	assert.Equal(t, int64(1), charges)

	var reports int64
	assert.Nil(t, gdb.Model(&models.DailyReport{}).Where("hotel_id = ?", hotel.ID).Count(&reports).Error)
	assert.Equal(t, int64(1), reports)
}

func TestNightAuditNextDayPostsAgain(t *testing.T) {
	gdb := newTestDB(t)
	auth, hotel, rooms := seedHotel(t, gdb, 2)

	_, err := CheckInGuest(auth, gdb, hotel.ID, rooms[0].ID, "Alice", mustDate(t, "2026-03-01"), mustDate(t, "2026-03-05"), 150)
	assert.Nil(t, err)

	_, err = RunNightAudit(gdb, hotel.ID, mustDate(t, "2026-03-01"))
	assert.Nil(t, err)
	second, err := RunNightAudit(gdb, hotel.ID, mustDate(t, "2026-03-02"))
	assert.Nil(t, err)
	assert.False(t, second.AlreadyRun)
	assert.Equal(t, 1, second.Processed)

	var charges int64
	assert.Nil(t, gdb.Model(&models.RoomCharge{}).Where("hotel_id = ?", hotel.ID).Count(&charges).Error)
	assert.Equal(t, int64(2), charges)
}

func TestNightAuditSkipsReservedAndCheckedOut(t *testing.T) {
	gdb := newTestDB(t)
	auth, hotel, rooms := seedHotel(t, gdb, 3)

	_, err := CreateReservation(auth, gdb, hotel.ID, rooms[0].ID, "Future Guest", mustDate(t, "2026-09-01"), mustDate(t, "2026-09-03"), 300)
	assert.Nil(t, err)
	_, err = CheckInGuest(auth, gdb, hotel.ID, rooms[1].ID, "Gone Guest", mustDate(t, "2026-02-20"), mustDate(t, "2026-02-22"), 99)
	assert.Nil(t, err)
	_, err = CheckOutGuest(auth, gdb, hotel.ID, rooms[1].ID)
	assert.Nil(t, err)

	result, err := RunNightAudit(gdb, hotel.ID, mustDate(t, "2026-03-01"))
	assert.Nil(t, err)
	assert.Equal(t, 0, result.Processed)
	assert.Equal(t, 0.0, result.TotalRevenue)
}

func TestDashboardAggregates(t *testing.T) {
	gdb := newTestDB(t)
	auth, hotel, rooms := seedHotel(t, gdb, 2)

	_, err := CheckInGuest(auth, gdb, hotel.ID, rooms[0].ID, "Alice", mustDate(t, "2026-03-01"), mustDate(t, "2026-03-05"), 150)
	assert.Nil(t, err)
	_, err = RunNightAudit(gdb, hotel.ID, mustDate(t, "2026-03-01"))
	assert.Nil(t, err)

	data, err := GetAdminDashboardData(gdb, hotel.ID)
	assert.Nil(t, err)
	assert.Equal(t, 150.0, data.Stats.TotalRevenue)
}

func TestMonthlyRevenueGroupsByMonth(t *testing.T) {
	gdb := newTestDB(t)
	auth, hotel, rooms := seedHotel(t, gdb, 2)

	_, err := CreateReservation(auth, gdb, hotel.ID, rooms[0].ID, "Alice", mustDate(t, "2026-03-01"), mustDate(t, "2026-03-05"), 400)
	assert.Nil(t, err)
	_, err = CreateReservation(auth, gdb, hotel.ID, rooms[0].ID, "Bob", mustDate(t, "2026-03-10"), mustDate(t, "2026-03-12"), 100)
	assert.Nil(t, err)
	_, err = CreateReservation(auth, gdb, hotel.ID, rooms[1].ID, "Cara", mustDate(t, "2026-04-01"), mustDate(t, "2026-04-03"), 250)
	assert.Nil(t, err)

	// Same calendar month a year earlier stays in its own bucket.
	_, err = CreateReservation(auth, gdb, hotel.ID, rooms[1].ID, "Dev", mustDate(t, "2025-03-01"), mustDate(t, "2025-03-04"), 75)
	assert.Nil(t, err)

	// Cancelled stays carry no revenue.
	cancelled, err := CreateReservation(auth, gdb, hotel.ID, rooms[1].ID, "Eve", mustDate(t, "2026-04-10"), mustDate(t, "2026-04-12"), 999)
	assert.Nil(t, err)
	assert.Nil(t, CancelBooking(auth, gdb, hotel.ID, cancelled.ID))

	revenue, err := GetMonthlyRevenue(gdb, hotel.ID)
	assert.Nil(t, err)
	if assert.Len(t, revenue, 3) {
		assert.Equal(t, types.MonthlyRevenue{Month: "Mar 2025", Revenue: 75}, revenue[0])
		assert.Equal(t, types.MonthlyRevenue{Month: "Mar 2026", Revenue: 500}, revenue[1])
		assert.Equal(t, types.MonthlyRevenue{Month: "Apr 2026", Revenue: 250}, revenue[2])
	}
}
