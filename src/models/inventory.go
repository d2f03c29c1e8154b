package models

import "hms/src/types"

type InventoryItem struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	HotelID       uint   `gorm:"index" json:"hotel_id,omitempty"`
	ItemName      string `json:"item_name,omitempty"`
	Category      string `json:"category,omitempty"`
	Quantity      int    `json:"quantity"`
	Unit          string `json:"unit,omitempty"`
	MinStockLevel int    `gorm:"default:5" json:"min_stock_level,omitempty"`

	types.Timestamps
}
