package main

import (
	"log"
	"net/http"
	"os"

	"hms/src/common"
	"hms/src/db"
	"hms/src/lib"
	"hms/src/middlewares"
	"hms/src/models"
	"hms/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func inventoryHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/hotels/:hotelId/inventory", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.AddInventoryItemRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			gdb := db.GetDb()
			var item models.InventoryItem
			err := gdb.Transaction(func(tx *gorm.DB) error {
				if _, err := common.AuthorizeHotel(tx, auth, params.HotelID); err != nil {
					return err
				}
				item = models.InventoryItem{
					HotelID:       params.HotelID,
					ItemName:      body.ItemName,
					Category:      body.Category,
					Quantity:      body.Quantity,
					Unit:          body.Unit,
					MinStockLevel: body.MinStockLevel,
				}
				return tx.Create(&item).Error
			})
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": item})
		}).
		GET("/hotels/:hotelId/inventory", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if !requireHotelAccess(ctx, params.HotelID) {
				return
			}
			gdb := db.GetDb()
			var items []models.InventoryItem
			if err := gdb.
				Model(&models.InventoryItem{}).
				Where(&models.InventoryItem{HotelID: params.HotelID}).
				Order("item_name ASC").
				Find(&items).
				Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": items, "count": len(items)})
		}).
		PUT("/hotels/:hotelId/inventory/:id/stock", func(ctx *gin.Context) {
			var params types.HotelResourceURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateStockRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			item, err := common.UpdateStock(auth, db.GetDb(), params.HotelID, params.ID, body.Amount)
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": item})
		}).
		GET("/hotels/:hotelId/inventory/alerts", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if !requireHotelAccess(ctx, params.HotelID) {
				return
			}
			items, err := common.GetLowStockItems(db.GetDb(), params.HotelID)
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": items, "count": len(items)})
		})
	return g
}

// sendLowStockDigests mails each property admin the items under their
// reorder threshold. Runs on the daily schedule.
func sendLowStockDigests() {
	gdb := db.GetDb()
	var hotels []models.Hotel
	if err := gdb.Preload("Admin").Find(&hotels).Error; err != nil {
		log.Printf("Low stock digest: error listing hotels: %s\n", err.Error())
		return
	}
	for _, hotel := range hotels {
		body, err := common.BuildLowStockDigest(gdb, &hotel)
		if err != nil {
			log.Printf("Low stock digest failed for hotel %d: %s\n", hotel.ID, err.Error())
			continue
		}
		if body == "" {
			continue
		}
		to := hotel.Admin.Email
		if to == "" {
			to = os.Getenv("SMTP_FROM")
		}
		subject := "Low stock alert: " + hotel.Name
		if err := lib.SendMail(to, subject, body); err != nil {
			log.Printf("Error mailing digest for hotel %d: %s\n", hotel.ID, err.Error())
		}
	}
}
