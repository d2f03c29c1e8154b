package common

import (
	"errors"
	"fmt"
	"log"
	"time"

	"hms/src/config"
	"hms/src/models"
	"hms/src/types"

	"gorm.io/gorm"
)

// RunNightAudit posts one room charge per checked-in stay and writes the
// daily snapshot, all inside a single transaction. The run is idempotent
// per business date: a (hotel, date) report that already exists makes the
// whole call a no-op, and each booking carries a last-audited marker so a
// partial overlap can never double-post. The charge is the stored
// full-stay price, not a per-night rate.
func RunNightAudit(gdb *gorm.DB, hotelID uint, businessDate time.Time) (*types.AuditResult, error) {
	dateKey := businessDate.Format(config.DATE_FORMAT)
	var result types.AuditResult
	err := gdb.Transaction(func(tx *gorm.DB) error {
		var existing models.DailyReport
		err := tx.
			Where(&models.DailyReport{HotelID: hotelID, ReportDate: dateKey}).
			First(&existing).
			Error
		if err == nil {
			result = types.AuditResult{
				AlreadyRun:   true,
				TotalRevenue: existing.TotalRevenue,
				ReportID:     existing.ID,
			}
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var active []models.Booking
		if err := lockForUpdate(tx).
			Where("hotel_id = ? AND status = ?", hotelID, types.BOOKING_CHECKED_IN).
			Find(&active).
			Error; err != nil {
			return err
		}

		var totalRevenue float64
		processed := 0
		for _, booking := range active {
			if booking.LastAuditedOn != nil && *booking.LastAuditedOn == dateKey {
				continue
			}
			charge := models.RoomCharge{
				BookingID:   booking.ID,
				HotelID:     hotelID,
				Amount:      booking.TotalPrice,
				Type:        types.CHARGE_ROOM,
				Description: fmt.Sprintf("Night Audit Room Charge - %s", dateKey),
			}
			if err := tx.Create(&charge).Error; err != nil {
				return err
			}
			if err := tx.
				Model(&models.Booking{}).
				Where(&models.Booking{ID: booking.ID}).
				Update("last_audited_on", dateKey).
				Error; err != nil {
				return err
			}
			totalRevenue += booking.TotalPrice
			processed++
		}

		var totalRooms int64
		if err := tx.
			Model(&models.Room{}).
			Where("hotel_id = ?", hotelID).
			Count(&totalRooms).
			Error; err != nil {
			return err
		}
		var occupancy float64
		if totalRooms > 0 {
			occupancy = float64(len(active)) / float64(totalRooms) * 100
		}

		report := models.DailyReport{
			HotelID:       hotelID,
			ReportDate:    dateKey,
			TotalRevenue:  totalRevenue,
			OccupancyRate: occupancy,
			RoomsOccupied: len(active),
		}
		if err := tx.Create(&report).Error; err != nil {
			return err
		}
		result = types.AuditResult{
			Processed:    processed,
			TotalRevenue: totalRevenue,
			ReportID:     report.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RunNightAuditForAllHotels is the scheduled entrypoint. Failures on one
// property do not stop the rest.
func RunNightAuditForAllHotels(gdb *gorm.DB) {
	var hotels []models.Hotel
	if err := gdb.Find(&hotels).Error; err != nil {
		log.Printf("Night audit: error listing hotels: %s\n", err.Error())
		return
	}
	today := time.Now()
	for _, hotel := range hotels {
		result, err := RunNightAudit(gdb, hotel.ID, today)
		if err != nil {
			log.Printf("Night audit failed for hotel %d: %s\n", hotel.ID, err.Error())
			continue
		}
		log.Printf("Night audit hotel=%d processed=%d revenue=%.2f alreadyRun=%v\n",
			hotel.ID, result.Processed, result.TotalRevenue, result.AlreadyRun)
	}
}

type DashboardStats struct {
	TotalRevenue     float64 `json:"total_revenue"`
	AvgOccupancy     float64 `json:"avg_occupancy"`
	LastAuditRevenue float64 `json:"last_audit_revenue"`
	LastAuditDate    string  `json:"last_audit_date,omitempty"`
}

type DashboardData struct {
	Reports []models.DailyReport `json:"reports"`
	Stats   DashboardStats       `json:"stats"`
}

// GetAdminDashboardData returns the last seven days of reports plus
// lifetime revenue aggregates.
func GetAdminDashboardData(gdb *gorm.DB, hotelID uint) (*DashboardData, error) {
	sevenDaysAgo := time.Now().AddDate(0, 0, -7).Format(config.DATE_FORMAT)

	var reports []models.DailyReport
	if err := gdb.
		Where("hotel_id = ? AND report_date >= ?", hotelID, sevenDaysAgo).
		Order("report_date DESC").
		Find(&reports).
		Error; err != nil {
		return nil, err
	}

	var lifetime struct{ Total float64 }
	if err := gdb.
		Model(&models.RoomCharge{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("hotel_id = ?", hotelID).
		Scan(&lifetime).
		Error; err != nil {
		return nil, err
	}

	stats := DashboardStats{TotalRevenue: lifetime.Total}
	if len(reports) > 0 {
		var sum float64
		for _, r := range reports {
			sum += r.OccupancyRate
		}
		stats.AvgOccupancy = sum / float64(len(reports))
		stats.LastAuditRevenue = reports[0].TotalRevenue
		stats.LastAuditDate = reports[0].ReportDate
	}
	return &DashboardData{Reports: reports, Stats: stats}, nil
}

// GetAllDailyReports returns every audit snapshot for a property, oldest
// first, for the xlsx export.
func GetAllDailyReports(gdb *gorm.DB, hotelID uint) ([]models.DailyReport, error) {
	var reports []models.DailyReport
	err := gdb.
		Where("hotel_id = ?", hotelID).
		Order("report_date ASC").
		Find(&reports).
		Error
	return reports, err
}

// GetMonthlyRevenue groups booking revenue by check-in month for the
// revenue chart. Cancelled stays carry no revenue and are left out, and
// buckets are keyed by year plus month so a January never absorbs the
// previous year's. Aggregation happens in Go so the query stays portable
// across dialects.
func GetMonthlyRevenue(gdb *gorm.DB, hotelID uint) ([]types.MonthlyRevenue, error) {
	var bookings []models.Booking
	if err := gdb.
		Where("hotel_id = ? AND status <> ?", hotelID, types.BOOKING_CANCELLED).
		Order("check_in ASC").
		Find(&bookings).
		Error; err != nil {
		return nil, err
	}
	totals := make(map[string]float64)
	var order []string
	for _, b := range bookings {
		month := b.CheckIn.Format("Jan 2006")
		if _, ok := totals[month]; !ok {
			order = append(order, month)
		}
		totals[month] += b.TotalPrice
	}
	if len(order) > 6 {
		order = order[len(order)-6:]
	}
	out := make([]types.MonthlyRevenue, 0, len(order))
	for _, month := range order {
		out = append(out, types.MonthlyRevenue{Month: month, Revenue: totals[month]})
	}
	return out, nil
}
