package services

import (
	"errors"
	"strings"
	"time"

	"hsg-reporting/entity"
	"hsg-reporting/pkg/clock"
	"hsg-reporting/repository"

	"gorm.io/gorm"
)

var (
	ErrAssetNotFound     = errors.New("asset not found")
	ErrBookingConflict   = errors.New("requested interval overlaps an existing booking")
	ErrInvalidInterval   = errors.New("end must be after start")
	ErrStartInPast       = errors.New("start must not be in the past")
	ErrRequesterRequired = errors.New("requester name is required")
)

type BookingService struct {
	DB        *gorm.DB
	Bookings  *repository.BookingRepository
	Assets    *repository.AssetRepository
	Projector *ProjectorService
	Clock     clock.Clock
}

func NewBookingService(db *gorm.DB, bookings *repository.BookingRepository, assets *repository.AssetRepository, projector *ProjectorService, clk clock.Clock) *BookingService {
	return &BookingService{DB: db, Bookings: bookings, Assets: assets, Projector: projector, Clock: clk}
}

// Create จอง asset ช่วง [start, end)
// เช็ค overlap และ insert อยู่ใน transaction เดียว กัน check-then-act ชนกัน
func (s *BookingService) Create(assetID, userName string, start, end time.Time) (*entity.Booking, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return nil, ErrRequesterRequired
	}
	if !end.After(start) {
		return nil, ErrInvalidInterval
	}
	now := s.Clock.Now()
	if start.Before(now) {
		return nil, ErrStartInPast
	}

	var booking *entity.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Assets.FindByID(tx, assetID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssetNotFound
			}
			return err
		}

		n, err := s.Bookings.CountOverlap(tx, assetID, start, end)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrBookingConflict
		}

		b := &entity.Booking{
			AssetID:   assetID,
			UserName:  userName,
			StartTime: start,
			EndTime:   end,
			CreatedAt: now,
		}
		if err := s.Bookings.Create(tx, b); err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	// การจองสำเร็จแล้วค่อย refresh สถานะ asset ทุกตัว
	if err := s.Projector.Refresh(now); err != nil {
		return nil, err
	}
	return booking, nil
}

// IsAvailable เช็คว่า [start, end) ว่างไหม (ชนขอบพอดีไม่นับว่าทับ)
// asset ที่ไม่มีอยู่ → ErrAssetNotFound ไม่เงียบ
func (s *BookingService) IsAvailable(assetID string, start, end time.Time) (bool, error) {
	if _, err := s.Assets.FindByID(s.DB, assetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrAssetNotFound
		}
		return false, err
	}
	n, err := s.Bookings.CountOverlap(s.DB, assetID, start, end)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// NextAvailableTime คืนเวลาที่ asset จะว่าง (nil = ไม่มี booking ค้างในอนาคต)
func (s *BookingService) NextAvailableTime(assetID string) (*time.Time, error) {
	if _, err := s.Assets.FindByID(s.DB, assetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	return s.Bookings.NextEndAfter(assetID, s.Clock.Now())
}

func (s *BookingService) ListBookings() ([]entity.Booking, error) {
	return s.Bookings.ListAll()
}
