package main

import (
	"net/http"

	"hms/src/common"
	"hms/src/db"
	"hms/src/lib"
	"hms/src/middlewares"
	"hms/src/types"

	"github.com/gin-gonic/gin"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/hotels/:hotelId/checkin", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CheckInRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			checkIn, checkOut, err := parseStayDates(body.CheckIn, body.CheckOut)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			booking, err := common.CheckInGuest(auth, db.GetDb(), params.HotelID, body.RoomID, body.GuestName, checkIn, checkOut, body.TotalPrice)
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			lib.IncCheckIn()
			ctx.JSON(http.StatusCreated, gin.H{"data": booking})
		}).
		POST("/hotels/:hotelId/rooms/:id/checkout", func(ctx *gin.Context) {
			var params types.HotelResourceURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			booking, err := common.CheckOutGuest(auth, db.GetDb(), params.HotelID, params.ID)
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			lib.IncCheckOut()
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		POST("/hotels/:hotelId/reservations", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateReservationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			checkIn, checkOut, err := parseStayDates(body.CheckIn, body.CheckOut)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			booking, err := common.CreateReservation(auth, db.GetDb(), params.HotelID, body.RoomID, body.GuestName, checkIn, checkOut, body.TotalPrice)
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": booking})
		}).
		PUT("/hotels/:hotelId/bookings/:id/cancel", func(ctx *gin.Context) {
			var params types.HotelResourceURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			if err := common.CancelBooking(auth, db.GetDb(), params.HotelID, params.ID); err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"status": types.BOOKING_CANCELLED}})
		}).
		POST("/hotels/:hotelId/bookings/:id/charges", func(ctx *gin.Context) {
			var params types.HotelResourceURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.AddChargeRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			charge, err := common.AddCharge(auth, db.GetDb(), params.HotelID, params.ID, body.Amount, body.Description)
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": charge})
		}).
		GET("/hotels/:hotelId/bookings/history", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var query types.GuestHistoryQueryParams
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if !requireHotelAccess(ctx, params.HotelID) {
				return
			}
			bookings, err := common.GetGuestHistory(db.GetDb(), params.HotelID, query.Guest)
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		GET("/hotels/:hotelId/bookings/calendar", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var query types.CalendarQueryParams
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			start, end, err := parseStayDates(query.Start, query.End)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if !requireHotelAccess(ctx, params.HotelID) {
				return
			}
			bookings, err := common.GetDateRangeBookings(db.GetDb(), params.HotelID, start, end)
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		GET("/hotels/:hotelId/revenue/monthly", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if !requireHotelAccess(ctx, params.HotelID) {
				return
			}
			revenue, err := common.GetMonthlyRevenue(db.GetDb(), params.HotelID)
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": revenue})
		})
	return g
}
