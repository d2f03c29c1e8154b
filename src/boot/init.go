package boot

import (
	"log"

	"hms/src/common"
	"hms/src/db"
	"hms/src/lib"
	"hms/src/models"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
		&models.RoomCharge{},
		&models.MaintenanceTask{},
		&models.DailyReport{},
		&models.Category{},
		&models.Product{},
		&models.KitchenOrder{},
		&models.InventoryItem{},
		&models.Staff{},
		&models.Shift{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

// InitScheduler registers the recurring background jobs. The night audit
// runs after the business day rolls over; the stock digest goes out in
// the morning.
func InitScheduler(nightAuditJob func(), lowStockJob func()) {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	if _, err := lib.CreateDailyJob(3, 0, nightAuditJob); err != nil {
		log.Printf("Error scheduling night audit: %s\n", err.Error())
	}
	if _, err := lib.CreateDailyJob(7, 0, lowStockJob); err != nil {
		log.Printf("Error scheduling low stock digest: %s\n", err.Error())
	}
	jobsWaitingInQueue := len(sched.Jobs())
	log.Println("Jobs in queue:", jobsWaitingInQueue)
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	err = sched.Shutdown()
	if err != nil {
		log.Println("An error has occurred while shutting stopping Scheduler. Check logs for info")
		return
	}
}

// RunNightAudits is the scheduled wrapper around the per-hotel audit.
func RunNightAudits() {
	common.RunNightAuditForAllHotels(db.GetDb())
}
