package common

import (
	"testing"

	"hms/src/models"

	"github.com/stretchr/testify/assert"
)

func TestUpdateStockNeverGoesNegative(t *testing.T) {
	gdb := newTestDB(t)
	auth, hotel, _ := seedHotel(t, gdb, 1)

	item := models.InventoryItem{HotelID: hotel.ID, ItemName: "Coffee Beans", Quantity: 10, Unit: "kg", MinStockLevel: 5}
	assert.Nil(t, gdb.Create(&item).Error)

	updated, err := UpdateStock(auth, gdb, hotel.ID, item.ID, -4)
	assert.Nil(t, err)
	assert.Equal(t, 6, updated.Quantity)

	_, err = UpdateStock(auth, gdb, hotel.ID, item.ID, -7)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// Failed adjustment leaves the count untouched.
	var current models.InventoryItem
	assert.Nil(t, gdb.First(&current, item.ID).Error)
	assert.Equal(t, 6, current.Quantity)

	_, err = UpdateStock(auth, gdb, hotel.ID, 9999, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLowStockDigest(t *testing.T) {
	gdb := newTestDB(t)
	_, hotel, _ := seedHotel(t, gdb, 1)

	items := []models.InventoryItem{
		{HotelID: hotel.ID, ItemName: "Towels", Quantity: 2, Unit: "pcs", MinStockLevel: 10},
		{HotelID: hotel.ID, ItemName: "Soap", Quantity: 50, Unit: "bars", MinStockLevel: 20},
	}
	assert.Nil(t, gdb.Create(&items).Error)

	low, err := GetLowStockItems(gdb, hotel.ID)
	assert.Nil(t, err)
	if assert.Len(t, low, 1) {
		assert.Equal(t, "Towels", low[0].ItemName)
	}

	digest, err := BuildLowStockDigest(gdb, hotel)
	assert.Nil(t, err)
	assert.Contains(t, digest, "Towels")
	assert.NotContains(t, digest, "Soap")
}

func TestLowStockDigestEmptyWhenStocked(t *testing.T) {
	gdb := newTestDB(t)
	_, hotel, _ := seedHotel(t, gdb, 1)

	digest, err := BuildLowStockDigest(gdb, hotel)
	assert.Nil(t, err)
	assert.Equal(t, "", digest)
}
