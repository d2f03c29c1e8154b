package main

import (
	"errors"
	"net/http"
	"time"

	"hms/src/common"
	"hms/src/db"
	"hms/src/middlewares"
	"hms/src/utils"

	"github.com/gin-gonic/gin"
)

// errorStatus maps domain errors onto HTTP status codes. Unknown errors
// fall through to 500 so callers never see a misleading 4xx.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, common.ErrInvalidTransition),
		errors.Is(err, common.ErrRoomNotAvailable),
		errors.Is(err, common.ErrRoomNotOccupied),
		errors.Is(err, common.ErrNoActiveBooking),
		errors.Is(err, common.ErrBookingNotOpen),
		errors.Is(err, common.ErrDuplicateRoom),
		errors.Is(err, common.ErrDatesOverlap),
		errors.Is(err, common.ErrInsufficientStock):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// requireHotelAccess verifies the caller owns the property and writes
// the error response when they do not. Read handlers call this before
// touching any rows; write handlers run the same check inside their
// transactions.
func requireHotelAccess(ctx *gin.Context, hotelID uint) bool {
	auth := middlewares.GetAuthContext(ctx)
	if _, err := common.AuthorizeHotel(db.GetDb(), auth, hotelID); err != nil {
		ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return false
	}
	return true
}

func parseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := utils.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := utils.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return in, out, nil
}
