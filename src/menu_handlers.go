package main

import (
	"net/http"

	"hms/src/common"
	"hms/src/db"
	"hms/src/middlewares"
	"hms/src/models"
	"hms/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func menuHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/hotels/:hotelId/menu/categories", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateCategoryRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			gdb := db.GetDb()
			var category models.Category
			err := gdb.Transaction(func(tx *gorm.DB) error {
				if _, err := common.AuthorizeHotel(tx, auth, params.HotelID); err != nil {
					return err
				}
				category = models.Category{HotelID: params.HotelID, Name: body.Name}
				return tx.Create(&category).Error
			})
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": category})
		}).
		GET("/hotels/:hotelId/menu", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if !requireHotelAccess(ctx, params.HotelID) {
				return
			}
			gdb := db.GetDb()
			var categories []models.Category
			if err := gdb.
				Model(&models.Category{}).
				Where(&models.Category{HotelID: params.HotelID}).
				Preload("Products").
				Find(&categories).
				Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": categories, "count": len(categories)})
		}).
		POST("/hotels/:hotelId/menu/items", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateMenuItemRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			gdb := db.GetDb()
			var product models.Product
			err := gdb.Transaction(func(tx *gorm.DB) error {
				if _, err := common.AuthorizeHotel(tx, auth, params.HotelID); err != nil {
					return err
				}
				var category models.Category
				if err := tx.
					Where(&models.Category{ID: body.CategoryID, HotelID: params.HotelID}).
					First(&category).
					Error; err != nil {
					if err == gorm.ErrRecordNotFound {
						return common.ErrNotFound
					}
					return err
				}
				product = models.Product{
					HotelID:    params.HotelID,
					CategoryID: body.CategoryID,
					Name:       body.Name,
					Price:      body.Price,
					Color:      body.Color,
				}
				return tx.Create(&product).Error
			})
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": product})
		})
	return g
}
