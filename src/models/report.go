package models

import "hms/src/types"

// DailyReport is an append-only snapshot produced by one night audit run.
// The uniqueIndex over (hotel_id, report_date) is what makes a second run
// for the same business date a no-op.
type DailyReport struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	HotelID       uint    `gorm:"uniqueIndex:idx_reports_hotel_date" json:"hotel_id,omitempty"`
	ReportDate    string  `gorm:"uniqueIndex:idx_reports_hotel_date" json:"report_date,omitempty"`
	TotalRevenue  float64 `json:"total_revenue"`
	OccupancyRate float64 `json:"occupancy_rate"`
	RoomsOccupied int     `json:"rooms_occupied"`

	types.Timestamps
}
