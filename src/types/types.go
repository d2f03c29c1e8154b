package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

// OrderItem is one line of a kitchen order. Orders used to travel around as
// loose maps; every field the kitchen or inventory flow reads is declared here.
type OrderItem struct {
	Name        string  `json:"name" binding:"required"`
	Qty         int     `json:"qty" binding:"required,gt=0"`
	Price       float64 `json:"price,omitempty"`
	InventoryID *uint   `json:"inventory_id,omitempty"`
}

type OrderItems []OrderItem

func (a OrderItems) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *OrderItems) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return errors.New("type assertion to []byte failed")
	}
}

type RoomStatus string

const (
	ROOM_AVAILABLE   RoomStatus = "available"
	ROOM_OCCUPIED    RoomStatus = "occupied"
	ROOM_CLEANING    RoomStatus = "cleaning"
	ROOM_MAINTENANCE RoomStatus = "maintenance"
)

type BookingStatus string

const (
	BOOKING_RESERVED    BookingStatus = "reserved"
	BOOKING_CHECKED_IN  BookingStatus = "checked_in"
	BOOKING_CHECKED_OUT BookingStatus = "checked_out"
	BOOKING_CANCELLED   BookingStatus = "cancelled"
)

type MaintenanceStatus string

const (
	MAINTENANCE_PENDING     MaintenanceStatus = "pending"
	MAINTENANCE_IN_PROGRESS MaintenanceStatus = "in_progress"
	MAINTENANCE_COMPLETED   MaintenanceStatus = "completed"
)

type MaintenancePriority string

const (
	PRIORITY_LOW    MaintenancePriority = "low"
	PRIORITY_MEDIUM MaintenancePriority = "medium"
	PRIORITY_HIGH   MaintenancePriority = "high"
	PRIORITY_URGENT MaintenancePriority = "urgent"
)

type KitchenOrderStatus string

const (
	ORDER_PENDING KitchenOrderStatus = "pending"
	ORDER_READY   KitchenOrderStatus = "ready"
)

type ChargeType string

const (
	CHARGE_ROOM  ChargeType = "room_charge"
	CHARGE_EXTRA ChargeType = "extra"
)

type Plan string

const (
	PLAN_FREE  Plan = "free"
	PLAN_PRO   Plan = "pro"
	PLAN_ADMIN Plan = "admin"
)

// AuthContext is the resolved identity of the caller. Handlers receive it
// through the gin context instead of reading raw claims off the session.
type AuthContext struct {
	UserID uint
	Email  string
	Plan   Plan
}

type Claims struct {
	Email string `json:"email"`
	Plan  string `json:"plan"`
	jwt.RegisteredClaims
}

type RegisterUserRequestBody struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateHotelRequestBody struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location,omitempty"`
}

type HotelURIParams struct {
	HotelID uint `uri:"hotelId" binding:"required"`
}

type HotelResourceURIParams struct {
	HotelID uint `uri:"hotelId" binding:"required"`
	ID      uint `uri:"id" binding:"required"`
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateRoomRequestBody struct {
	Number string `json:"number" binding:"required"`
	Type   string `json:"type" binding:"required"`
}

type UpdateRoomStatusRequestBody struct {
	Status RoomStatus `json:"status" binding:"required,oneof=available occupied cleaning maintenance"`
}

type CheckInRequestBody struct {
	RoomID     uint    `json:"room_id" binding:"required"`
	GuestName  string  `json:"guest_name" binding:"required"`
	CheckIn    string  `json:"check_in" binding:"required" time_format:"2006-01-02"`
	CheckOut   string  `json:"check_out" binding:"required,afterdate=CheckIn" time_format:"2006-01-02"`
	TotalPrice float64 `json:"total_price" binding:"required,gt=0"`
}

type CreateReservationRequestBody struct {
	RoomID     uint    `json:"room_id" binding:"required"`
	GuestName  string  `json:"guest_name" binding:"required"`
	CheckIn    string  `json:"check_in" binding:"required" time_format:"2006-01-02"`
	CheckOut   string  `json:"check_out" binding:"required,afterdate=CheckIn" time_format:"2006-01-02"`
	TotalPrice float64 `json:"total_price" binding:"required,gt=0"`
}

type AddChargeRequestBody struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required"`
}

type GuestHistoryQueryParams struct {
	Guest string `form:"guest" binding:"required"`
}

type CalendarQueryParams struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required,afterdate=Start"`
}

type ReportMaintenanceRequestBody struct {
	Issue    string              `json:"issue" binding:"required"`
	Priority MaintenancePriority `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
}

type RunAuditRequestBody struct {
	BusinessDate string `json:"business_date,omitempty"`
}

type CreateCategoryRequestBody struct {
	Name string `json:"name" binding:"required"`
}

type CreateMenuItemRequestBody struct {
	Name       string  `json:"name" binding:"required"`
	Price      float64 `json:"price" binding:"required,gt=0"`
	CategoryID uint    `json:"category_id" binding:"required"`
	Color      string  `json:"color,omitempty"`
}

type PlaceKitchenOrderRequestBody struct {
	RoomNumber string     `json:"room_number" binding:"required"`
	Items      OrderItems `json:"items" binding:"required,min=1,dive"`
}

type AddInventoryItemRequestBody struct {
	ItemName      string `json:"item_name" binding:"required"`
	Category      string `json:"category,omitempty"`
	Quantity      int    `json:"quantity" binding:"required,gte=0"`
	Unit          string `json:"unit,omitempty"`
	MinStockLevel int    `json:"min_stock_level" binding:"omitempty,gte=0"`
}

type UpdateStockRequestBody struct {
	Amount int `json:"amount" binding:"required"`
}

type AddStaffRequestBody struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"required"`
}

type CreateShiftRequestBody struct {
	StaffID   uint   `json:"staff_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required" time_format:"2006-01-02 15:04:05 -07:00"`
	EndTime   string `json:"end_time" binding:"required" time_format:"2006-01-02 15:04:05 -07:00"`
	TaskNotes string `json:"task_notes,omitempty"`
}

// AuditResult is what a night audit run reports back to the caller.
type AuditResult struct {
	Processed    int     `json:"processed"`
	TotalRevenue float64 `json:"total_revenue"`
	AlreadyRun   bool    `json:"already_run,omitempty"`
	ReportID     uint    `json:"report_id,omitempty"`
}

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}
