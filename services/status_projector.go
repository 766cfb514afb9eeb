package services

import (
	"time"

	"hsg-reporting/repository"

	"gorm.io/gorm"
)

// ProjectorService คำนวณ Available/Booked ของทุก asset ใหม่จาก booking ledger
// recompute ทั้งตาราง ไม่ incremental (จำนวน asset น้อย เอาความถูกต้องก่อน)
type ProjectorService struct {
	DB       *gorm.DB
	Assets   *repository.AssetRepository
	Bookings *repository.BookingRepository
}

func NewProjectorService(db *gorm.DB, assets *repository.AssetRepository, bookings *repository.BookingRepository) *ProjectorService {
	return &ProjectorService{DB: db, Assets: assets, Bookings: bookings}
}

// Refresh ทำใน transaction เดียว จะได้ไม่มีใครเห็นสถานะครึ่ง ๆ กลาง ๆ
func (p *ProjectorService) Refresh(now time.Time) error {
	return p.DB.Transaction(func(tx *gorm.DB) error {
		if err := p.Assets.ResetAll(tx); err != nil {
			return err
		}

		active, err := p.Bookings.ListActive(tx, now)
		if err != nil {
			return err
		}
		if len(active) == 0 {
			return nil
		}

		seen := make(map[string]bool)
		var ids []string
		for _, b := range active {
			if !seen[b.AssetID] {
				seen[b.AssetID] = true
				ids = append(ids, b.AssetID)
			}
		}
		if err := p.Assets.MarkBooked(tx, ids); err != nil {
			return err
		}

		// จองห้อง → ของใน location เดียวกันถูกจองด้วย (propagate ชั้นเดียว)
		for _, id := range ids {
			asset, err := p.Assets.FindByID(tx, id)
			if err != nil {
				return err
			}
			if asset.IsRoom() {
				if err := p.Assets.MarkLocationBooked(tx, asset.LocationID); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
