package helper

import (
	"context"
	"log"
	"restro_pos/model"
	"time"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// BillReaper deletes expired bills and their externally stored images. Image
// deletion failures are logged and never block the row deletion; deleting an
// already-deleted image is a no-op on the store side, so runs are idempotent
// and need no locking against concurrent bill creation.
type BillReaper struct {
	db        *gorm.DB
	store     ImageStore
	scheduler gocron.Scheduler
}

func NewBillReaper(db *gorm.DB, store ImageStore) *BillReaper {
	return &BillReaper{db: db, store: store}
}

// Run reaps every bill whose expiry has passed. One bill's failure does not
// abort the batch.
func (r *BillReaper) Run() {
	log.Println("[CRON] BillReaper triggered")

	var expired []model.Bill
	if err := r.db.Where("expires_at <= ?", time.Now()).Find(&expired).Error; err != nil {
		log.Printf("failed to scan expired bills: %v", err)
		return
	}
	if len(expired) == 0 {
		return
	}

	reaped := 0
	for _, bill := range expired {
		if err := r.reapOne(bill); err != nil {
			log.Printf("failed to delete bill %d: %v", bill.ID, err)
			continue
		}
		reaped++
	}
	log.Printf("Reaped %d expired bills", reaped)
}

func (r *BillReaper) reapOne(bill model.Bill) error {
	ctx := context.Background()
	if bill.StoreItemID != nil {
		if err := r.store.Destroy(ctx, *bill.StoreItemID); err != nil {
			log.Printf("failed to delete stored image %s of bill %d: %v", *bill.StoreItemID, bill.ID, err)
		}
	}
	if bill.ModifiedStoreItemID != nil {
		if err := r.store.Destroy(ctx, *bill.ModifiedStoreItemID); err != nil {
			log.Printf("failed to delete modified image %s of bill %d: %v", *bill.ModifiedStoreItemID, bill.ID, err)
		}
	}
	return r.db.Delete(&model.Bill{}, bill.ID).Error
}

// Start schedules the reaper hourly.
func (r *BillReaper) Start() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}
	r.scheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(r.Run),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Bill reaper started (hourly)")
}

func (r *BillReaper) Stop() {
	if r.scheduler != nil {
		if err := r.scheduler.Shutdown(); err != nil {
			log.Printf("failed to stop bill reaper: %v", err)
		}
	}
}
