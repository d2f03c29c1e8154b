package main

import (
	"log"
	"net/http"

	"hms/src/common"
	"hms/src/db"
	"hms/src/middlewares"
	"hms/src/models"
	"hms/src/types"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func hotelHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/hotels", func(ctx *gin.Context) {
			var body types.CreateHotelRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			gdb := db.GetDb()
			hotel := models.Hotel{
				Name:     body.Name,
				Location: body.Location,
				Slug:     slug.Make(body.Name),
				AdminID:  auth.UserID,
			}
			if err := gdb.Create(&hotel).Error; err != nil {
				log.Printf("Error creating hotel: %s\n", err.Error())
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": hotel})
		}).
		GET("/hotels", func(ctx *gin.Context) {
			auth := middlewares.GetAuthContext(ctx)
			gdb := db.GetDb()
			var hotels []models.Hotel
			if err := gdb.
				Model(&models.Hotel{}).
				Where(&models.Hotel{AdminID: auth.UserID}).
				Find(&hotels).
				Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": hotels, "count": len(hotels)})
		}).
		GET("/hotels/:hotelId", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			gdb := db.GetDb()
			var hotel *models.Hotel
			err := gdb.Transaction(func(tx *gorm.DB) error {
				h, err := common.AuthorizeHotel(tx, auth, params.HotelID)
				if err != nil {
					return err
				}
				if err := tx.
					Model(&models.Hotel{}).
					Where(&models.Hotel{ID: params.HotelID}).
					Preload("Rooms").
					First(h).
					Error; err != nil {
					return err
				}
				hotel = h
				return nil
			})
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": hotel})
		})
	return g
}
