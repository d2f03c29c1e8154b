package models

import "hms/src/types"

type Category struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	HotelID uint   `gorm:"index" json:"hotel_id,omitempty"`
	Name    string `json:"name,omitempty"`

	Products []Product `gorm:"foreignKey:category_id" json:"products,omitempty"`

	types.Timestamps
}

type Product struct {
	ID         uint    `gorm:"primarykey" json:"id"`
	HotelID    uint    `gorm:"index" json:"hotel_id,omitempty"`
	CategoryID uint    `json:"category_id,omitempty"`
	Name       string  `json:"name,omitempty"`
	Price      float64 `json:"price,omitempty"`
	Color      string  `gorm:"default:'bg-slate-100'" json:"color,omitempty"`

	Category Category `gorm:"foreignKey:category_id" json:"-"`

	types.Timestamps
}
