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

func roomHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/hotels/:hotelId/rooms", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateRoomRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			room, err := common.CreateRoom(auth, db.GetDb(), params.HotelID, body.Number, body.Type)
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": room})
		}).
		GET("/hotels/:hotelId/rooms", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			gdb := db.GetDb()
			var rooms []models.Room
			err := gdb.Transaction(func(tx *gorm.DB) error {
				if _, err := common.AuthorizeHotel(tx, auth, params.HotelID); err != nil {
					return err
				}
				return tx.
					Model(&models.Room{}).
					Where(&models.Room{HotelID: params.HotelID}).
					Order("number ASC").
					Find(&rooms).
					Error
			})
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": rooms, "count": len(rooms)})
		}).
		GET("/hotels/:hotelId/housekeeping", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			gdb := db.GetDb()
			var rooms []models.Room
			var cleaners []models.Staff
			err := gdb.Transaction(func(tx *gorm.DB) error {
				if _, err := common.AuthorizeHotel(tx, auth, params.HotelID); err != nil {
					return err
				}
				if err := tx.
					Model(&models.Room{}).
					Where("hotel_id = ? AND status IN (?)", params.HotelID, []types.RoomStatus{
						types.ROOM_CLEANING,
						types.ROOM_MAINTENANCE,
					}).
					Order("number ASC").
					Find(&rooms).
					Error; err != nil {
					return err
				}
				return tx.
					Model(&models.Staff{}).
					Where(&models.Staff{HotelID: params.HotelID, Role: "housekeeping"}).
					Find(&cleaners).
					Error
			})
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"rooms": rooms, "staff": cleaners}})
		}).
		PUT("/hotels/:hotelId/rooms/:id/clean", func(ctx *gin.Context) {
			var params types.HotelResourceURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			room, err := common.SetRoomStatus(auth, db.GetDb(), params.HotelID, params.ID, types.ROOM_AVAILABLE)
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": room})
		}).
		PUT("/hotels/:hotelId/rooms/:id/status", func(ctx *gin.Context) {
			var params types.HotelResourceURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateRoomStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			room, err := common.SetRoomStatus(auth, db.GetDb(), params.HotelID, params.ID, body.Status)
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": room})
		}).
		POST("/hotels/:hotelId/rooms/:id/maintenance", func(ctx *gin.Context) {
			var params types.HotelResourceURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.ReportMaintenanceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			task, err := common.ReportMaintenance(auth, db.GetDb(), params.HotelID, params.ID, body.Issue, body.Priority)
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": task})
		}).
		GET("/hotels/:hotelId/maintenance", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			gdb := db.GetDb()
			var tasks []models.MaintenanceTask
			err := gdb.Transaction(func(tx *gorm.DB) error {
				if _, err := common.AuthorizeHotel(tx, auth, params.HotelID); err != nil {
					return err
				}
				return tx.
					Model(&models.MaintenanceTask{}).
					Where(&models.MaintenanceTask{HotelID: params.HotelID}).
					Preload("Room").
					Order("created_at DESC").
					Find(&tasks).
					Error
			})
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": tasks, "count": len(tasks)})
		}).
		PUT("/hotels/:hotelId/maintenance/:id/resolve", func(ctx *gin.Context) {
			var params types.HotelResourceURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			task, err := common.ResolveMaintenance(auth, db.GetDb(), params.HotelID, params.ID)
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": task})
		})
	return g
}
