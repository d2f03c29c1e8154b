package common

import (
	"errors"
	"fmt"
	"strings"

	"hms/src/models"
	"hms/src/types"

	"gorm.io/gorm"
)

var ErrInsufficientStock = errors.New("not enough stock on hand")

// AdjustStock applies a signed delta to an inventory item inside the
// caller's transaction. Stock never goes negative.
func AdjustStock(tx *gorm.DB, hotelID, itemID uint, delta int) error {
	var item models.InventoryItem
	if err := lockForUpdate(tx).
		Where(&models.InventoryItem{ID: itemID, HotelID: hotelID}).
		First(&item).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	next := item.Quantity + delta
	if next < 0 {
		return ErrInsufficientStock
	}
	return tx.
		Model(&models.InventoryItem{}).
		Where(&models.InventoryItem{ID: item.ID}).
		Update("quantity", next).
		Error
}

// UpdateStock is the endpoint-facing adjustment wrapper.
func UpdateStock(auth types.AuthContext, gdb *gorm.DB, hotelID, itemID uint, delta int) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := gdb.Transaction(func(tx *gorm.DB) error {
		if _, err := AuthorizeHotel(tx, auth, hotelID); err != nil {
			return err
		}
		if err := AdjustStock(tx, hotelID, itemID, delta); err != nil {
			return err
		}
		return tx.
			Where(&models.InventoryItem{ID: itemID}).
			First(&item).
			Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetLowStockItems returns items at or below their reorder threshold.
func GetLowStockItems(gdb *gorm.DB, hotelID uint) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := gdb.
		Where("hotel_id = ? AND quantity <= min_stock_level", hotelID).
		Order("quantity ASC").
		Find(&items).
		Error
	return items, err
}

// BuildLowStockDigest renders the alert body for one property, or ""
// when everything is above threshold.
func BuildLowStockDigest(gdb *gorm.DB, hotel *models.Hotel) (string, error) {
	items, err := GetLowStockItems(gdb, hotel.ID)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Low stock report for %s\n\n", hotel.Name)
	for _, item := range items {
		fmt.Fprintf(&b, "- %s: %d %s on hand (reorder at %d)\n", item.ItemName, item.Quantity, item.Unit, item.MinStockLevel)
	}
	return b.String(), nil
}
