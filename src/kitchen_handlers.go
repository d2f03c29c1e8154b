package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"hms/src/common"
	"hms/src/db"
	"hms/src/lib"
	"hms/src/middlewares"
	"hms/src/models"
	"hms/src/types"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const pendingOrdersTTL = 5 * time.Second

func pendingOrdersKey(hotelID uint) string {
	return fmt.Sprintf("kitchen:pending:%d", hotelID)
}

func kitchenHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/hotels/:hotelId/kitchen/orders", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.PlaceKitchenOrderRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			gdb := db.GetDb()
			var order models.KitchenOrder
			err := gdb.Transaction(func(tx *gorm.DB) error {
				if _, err := common.AuthorizeHotel(tx, auth, params.HotelID); err != nil {
					return err
				}
				var count int64
				if err := tx.
					Model(&models.Room{}).
					Where(&models.Room{HotelID: params.HotelID, Number: body.RoomNumber}).
					Count(&count).
					Error; err != nil {
					return err
				}
				if count == 0 {
					return common.ErrNotFound
				}
				order = models.KitchenOrder{
					HotelID:    params.HotelID,
					RoomNumber: body.RoomNumber,
					Items:      body.Items,
					Status:     types.ORDER_PENDING,
				}
				return tx.Create(&order).Error
			})
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			if rdb := lib.GetRedisClient(); rdb != nil {
				rdb.Del(context.Background(), pendingOrdersKey(params.HotelID))
			}
			lib.IncKitchenOrder()
			ctx.JSON(http.StatusCreated, gin.H{"data": order})
		}).
		GET("/hotels/:hotelId/kitchen/orders", func(ctx *gin.Context) {
			var params types.HotelURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if !requireHotelAccess(ctx, params.HotelID) {
				return
			}
			// The kitchen display polls this endpoint, so the pending list
			// is served from a short-lived cache when redis is around.
			rdb := lib.GetRedisClient()
			if rdb != nil {
				cached, err := rdb.Get(context.Background(), pendingOrdersKey(params.HotelID)).Result()
				if err == nil {
					var orders []models.KitchenOrder
					if err := json.Unmarshal([]byte(cached), &orders); err == nil {
						ctx.JSON(http.StatusOK, gin.H{"data": orders, "count": len(orders), "cached": true})
						return
					}
				} else if err != redis.Nil {
					log.Printf("Error reading pending orders cache: %s\n", err.Error())
				}
			}
			gdb := db.GetDb()
			var orders []models.KitchenOrder
			if err := gdb.
				Model(&models.KitchenOrder{}).
				Where(&models.KitchenOrder{HotelID: params.HotelID, Status: types.ORDER_PENDING}).
				Order("created_at ASC").
				Find(&orders).
				Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if rdb != nil {
				if raw, err := json.Marshal(orders); err == nil {
					rdb.Set(context.Background(), pendingOrdersKey(params.HotelID), raw, pendingOrdersTTL)
				}
			}
			ctx.JSON(http.StatusOK, gin.H{"data": orders, "count": len(orders)})
		}).
		PUT("/hotels/:hotelId/kitchen/orders/:id/complete", func(ctx *gin.Context) {
			var params types.HotelResourceURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			auth := middlewares.GetAuthContext(ctx)
			gdb := db.GetDb()
			var order models.KitchenOrder
			err := gdb.Transaction(func(tx *gorm.DB) error {
				if _, err := common.AuthorizeHotel(tx, auth, params.HotelID); err != nil {
					return err
				}
				if err := tx.
					Where(&models.KitchenOrder{ID: params.ID, HotelID: params.HotelID}).
					First(&order).
					Error; err != nil {
					if err == gorm.ErrRecordNotFound {
						return common.ErrNotFound
					}
					return err
				}
				if err := tx.
					Model(&models.KitchenOrder{}).
					Where(&models.KitchenOrder{ID: order.ID}).
					Update("status", types.ORDER_READY).
					Error; err != nil {
					return err
				}
				// Items linked to stock deduct on completion, not on order,
				// so cancelled tickets never consume inventory.
				for _, item := range order.Items {
					if item.InventoryID == nil {
						continue
					}
					if err := common.AdjustStock(tx, params.HotelID, *item.InventoryID, -item.Qty); err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				ctx.JSON(errorStatus(err), gin.H{"error": err.Error()})
				return
			}
			if rdb := lib.GetRedisClient(); rdb != nil {
				rdb.Del(context.Background(), pendingOrdersKey(params.HotelID))
			}
			order.Status = types.ORDER_READY
			ctx.JSON(http.StatusOK, gin.H{"data": order})
		})
	return g
}
