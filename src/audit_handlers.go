package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"hms/src/common"
	"hms/src/config"
	"hms/src/db"
	"hms/src/lib"
	"hms/src/middlewares"
	"hms/src/types"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

func auditHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/hotels/:hotelId/audit", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.RunAuditRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil && err.Error() != "EOF" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			businessDate := time.Now()
			if body.BusinessDate != "" {
				parsed, err := time.Parse(config.DATE_FORMAT, body.BusinessDate)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				businessDate = parsed
			}
			auth := middlewares.GetAuthContext(ctx)
			gdb := db.GetDb()
			if _, err := common.AuthorizeHotel(gdb, auth, params.HotelID); err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			result, err := common.RunNightAudit(gdb, params.HotelID, businessDate)
			if err != nil {
				lib.IncAuditRun("error")
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			if result.AlreadyRun {
				lib.IncAuditRun("noop")
			} else {
				lib.IncAuditRun("ok")
			}
			ctx.JSON(http.StatusOK, gin.H{"data": result})
		}).
		GET("/hotels/:hotelId/dashboard", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			gdb := db.GetDb()
			if _, err := common.AuthorizeHotel(gdb, auth, params.HotelID); err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			data, err := common.GetAdminDashboardData(gdb, params.HotelID)
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": data})
		}).
		GET("/hotels/:hotelId/reports", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			gdb := db.GetDb()
			if _, err := common.AuthorizeHotel(gdb, auth, params.HotelID); err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			reports, err := common.GetAllDailyReports(gdb, params.HotelID)
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": reports, "count": len(reports)})
		}).
		GET("/hotels/:hotelId/reports/export", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			gdb := db.GetDb()
			if _, err := common.AuthorizeHotel(gdb, auth, params.HotelID); err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			reports, err := common.GetAllDailyReports(gdb, params.HotelID)
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}

			f := excelize.NewFile()
			defer func() {
				if err := f.Close(); err != nil {
					log.Printf("Error closing workbook: %s\n", err.Error())
				}
			}()
			sheet := "Daily Reports"
			index, err := f.NewSheet(sheet)
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			f.SetActiveSheet(index)
			f.DeleteSheet("Sheet1")

			headers := []string{"Date", "Total Revenue", "Occupancy Rate (%)", "Rooms Occupied"}
			for i, h := range headers {
				cell, _ := excelize.CoordinatesToCellName(i+1, 1)
				f.SetCellValue(sheet, cell, h)
			}
			for row, r := range reports {
				values := []any{r.ReportDate, r.TotalRevenue, r.OccupancyRate, r.RoomsOccupied}
				for col, v := range values {
					cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
					f.SetCellValue(sheet, cell, v)
				}
			}

			filename := fmt.Sprintf("daily-reports-%d-%s.xlsx", params.HotelID, time.Now().Format(config.DATE_FORMAT))
			ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
			ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			if err := f.Write(ctx.Writer); err != nil {
				log.Printf("Error writing workbook: %s\n", err.Error())
			}
		})
	return g
}
