package main

import (
	"net/http"
	"time"

	"hms/src/common"
	"hms/src/config"
	"hms/src/db"
	"hms/src/middlewares"
	"hms/src/models"
	"hms/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func staffHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/hotels/:hotelId/staff", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.AddStaffRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			gdb := db.GetDb()
			var staff models.Staff
			err := gdb.Transaction(func(tx *gorm.DB) error {
				if _, err := common.AuthorizeHotel(tx, auth, params.HotelID); err != nil {
					return err
				}
				staff = models.Staff{HotelID: params.HotelID, Name: body.Name, Role: body.Role}
				return tx.Create(&staff).Error
			})
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": staff})
		}).
		GET("/hotels/:hotelId/staff", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if !requireHotelAccess(ctx, params.HotelID) {
				return
			}
			gdb := db.GetDb()
			var staff []models.Staff
			if err := gdb.
				Model(&models.Staff{}).
				Where(&models.Staff{HotelID: params.HotelID}).
				Preload("Shifts").
				Order("name ASC").
				Find(&staff).
				Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": staff, "count": len(staff)})
		}).
		POST("/hotels/:hotelId/shifts", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateShiftRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			start, err := time.Parse(config.TIME_PARSE_FORMAT, body.StartTime)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			end, err := time.Parse(config.TIME_PARSE_FORMAT, body.EndTime)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if !end.After(start) {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "shift must end after it starts"})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			gdb := db.GetDb()
			var shift models.Shift
			err = gdb.Transaction(func(tx *gorm.DB) error {
				if _, err := common.AuthorizeHotel(tx, auth, params.HotelID); err != nil {
					return err
				}
				var staff models.Staff
				if err := tx.
					Where(&models.Staff{ID: body.StaffID, HotelID: params.HotelID}).
					First(&staff).
					Error; err != nil {
					if err == gorm.ErrRecordNotFound {
						return common.ErrNotFound
					}
					return err
				}
				shift = models.Shift{
					StaffID:   body.StaffID,
					HotelID:   params.HotelID,
					StartTime: start,
					EndTime:   end,
					TaskNotes: body.TaskNotes,
				}
				return tx.Create(&shift).Error
			})
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": shift})
		}).
		GET("/hotels/:hotelId/shifts", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if !requireHotelAccess(ctx, params.HotelID) {
				return
			}
			gdb := db.GetDb()
			var shifts []models.Shift
			if err := gdb.
				Model(&models.Shift{}).
				Where(&models.Shift{HotelID: params.HotelID}).
				Order("start_time ASC").
				Find(&shifts).
				Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": shifts, "count": len(shifts)})
		})
	return g
}
