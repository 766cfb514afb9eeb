package repository

import (
	"time"

	"hsg-reporting/entity"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(tx *gorm.DB, b *entity.Booking) error {
	return tx.Create(b).Error
}

// CountOverlap นับ booking ที่ทับช่วง [start, end) แบบ half-open
// ชนขอบพอดี (end เดิม == start ใหม่) ไม่ถือว่าทับ
func (r *BookingRepository) CountOverlap(tx *gorm.DB, assetID string, start, end time.Time) (int64, error) {
	var n int64
	err := tx.Model(&entity.Booking{}).
		Where("asset_id = ? AND start_time < ? AND end_time > ?", assetID, end, start).
		Count(&n).Error
	return n, err
}

// NextEndAfter หา end_time ที่เร็วที่สุดหลัง now = เวลาที่ asset จะว่าง
func (r *BookingRepository) NextEndAfter(assetID string, now time.Time) (*time.Time, error) {
	var b entity.Booking
	err := r.db.Where("asset_id = ? AND end_time > ?", assetID, now).
		Order("end_time ASC").
		First(&b).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &b.EndTime, nil
}

// ListActive คืน booking ที่ช่วงเวลาครอบ now อยู่
func (r *BookingRepository) ListActive(tx *gorm.DB, now time.Time) ([]entity.Booking, error) {
	var out []entity.Booking
	err := tx.Where("start_time <= ? AND end_time > ?", now, now).Find(&out).Error
	return out, err
}

func (r *BookingRepository) ListAll() ([]entity.Booking, error) {
	var out []entity.Booking
	err := r.db.Order("start_time ASC").Find(&out).Error
	return out, err
}
