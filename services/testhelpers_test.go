package services

import (
	"fmt"
	"testing"
	"time"

	"hsg-reporting/entity"
	"hsg-reporting/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// zurich ตรึง offset ไว้ จะได้ไม่พึ่ง tzdata ของเครื่องที่รันเทส
var zurich = time.FixedZone("CET", 3600)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Location{}, &entity.Asset{},
		&entity.Submission{}, &entity.StatusLog{},
		&entity.Booking{},
		&entity.ReportLog{},
	))
	return db
}

type fakeClock struct {
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time           { return c.now }
func (c *fakeClock) Location() *time.Location { return c.now.Location() }
func (c *fakeClock) Advance(d time.Duration)  { c.now = c.now.Add(d) }
func (c *fakeClock) Set(now time.Time)        { c.now = now }

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeSender struct {
	sent     []sentMail
	failWith error
}

func (s *fakeSender) Send(to, subject, body string) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.sent = append(s.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

// seedBookingFixtures: ห้อง ROOM_A มีบีเมอร์อยู่ข้างใน ส่วน LAPTOP_1 อยู่คนละที่
func seedBookingFixtures(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&entity.Location{LocationID: "ROOM_A", Label: "Room A (Main Building)"}).Error)
	require.NoError(t, db.Create(&entity.Location{LocationID: "STORAGE_1", Label: "Equipment Storage"}).Error)

	require.NoError(t, db.Create(&entity.Asset{AssetID: "ROOM_A", AssetName: "Room A", AssetType: entity.AssetTypeRoom, LocationID: "ROOM_A", Status: entity.AssetAvailable}).Error)
	require.NoError(t, db.Create(&entity.Asset{AssetID: "BEAMER_1", AssetName: "Beamer 1", AssetType: "IT Equipment", LocationID: "ROOM_A", Status: entity.AssetAvailable}).Error)
	require.NoError(t, db.Create(&entity.Asset{AssetID: "LAPTOP_1", AssetName: "Loaner Laptop 1", AssetType: "IT Equipment", LocationID: "STORAGE_1", Status: entity.AssetAvailable}).Error)
}

func newBookingService(db *gorm.DB, clk *fakeClock) *BookingService {
	assets := repository.NewAssetRepository(db)
	bookings := repository.NewBookingRepository(db)
	projector := NewProjectorService(db, assets, bookings)
	return NewBookingService(db, bookings, assets, projector, clk)
}
