package controllers

import (
	"errors"
	"time"

	"hsg-reporting/pkg/clock"
	"hsg-reporting/pkg/resp"
	"hsg-reporting/repository"
	"hsg-reporting/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	bookings  *services.BookingService
	projector *services.ProjectorService
	assets    *repository.AssetRepository
	clock     clock.Clock
}

func NewBookingController(bookings *services.BookingService, projector *services.ProjectorService, assets *repository.AssetRepository, clk clock.Clock) *BookingController {
	return &BookingController{bookings: bookings, projector: projector, assets: assets, clock: clk}
}

// GET /assets → refresh ก่อนเสมอ ให้สถานะในตารางตรงกับ ledger ณ ตอนนี้
func (bc *BookingController) ListAssets(c *gin.Context) {
	if err := bc.projector.Refresh(bc.clock.Now()); err != nil {
		resp.ServerError(c, err)
		return
	}
	assets, err := bc.assets.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	rows := make([]gin.H, 0, len(assets))
	for i := range assets {
		a := &assets[i]
		rows = append(rows, gin.H{
			"assetId":       a.AssetID,
			"assetName":     a.AssetName,
			"assetType":     a.AssetType,
			"locationId":    a.LocationID,
			"locationLabel": a.Location.Label,
			"status":        a.Status,
		})
	}
	resp.OK(c, gin.H{"assets": rows})
}

// GET /assets/:id/availability?start=...&end=... (RFC3339)
func (bc *BookingController) Availability(c *gin.Context) {
	assetID := c.Param("id")

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		resp.BadRequest(c, "start must be RFC3339, e.g. 2025-01-10T10:00:00+01:00")
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		resp.BadRequest(c, "end must be RFC3339, e.g. 2025-01-10T11:00:00+01:00")
		return
	}
	if !end.After(start) {
		resp.BadRequest(c, "end must be after start")
		return
	}

	available, err := bc.bookings.IsAvailable(assetID, start, end)
	if err != nil {
		if errors.Is(err, services.ErrAssetNotFound) {
			resp.NotFound(c, "asset not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"assetId": assetID, "start": start, "end": end, "available": available})
}

// GET /assets/:id/next-available (null = ไม่มี booking ค้างในอนาคต)
func (bc *BookingController) NextAvailable(c *gin.Context) {
	assetID := c.Param("id")

	next, err := bc.bookings.NextAvailableTime(assetID)
	if err != nil {
		if errors.Is(err, services.ErrAssetNotFound) {
			resp.NotFound(c, "asset not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"assetId": assetID, "nextAvailableAt": next})
}

// POST /bookings
func (bc *BookingController) Create(c *gin.Context) {
	var req struct {
		AssetID   string    `json:"assetId"`
		UserName  string    `json:"userName"`
		StartTime time.Time `json:"startTime"`
		EndTime   time.Time `json:"endTime"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	booking, err := bc.bookings.Create(req.AssetID, req.UserName, req.StartTime, req.EndTime)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAssetNotFound):
			resp.NotFound(c, "asset not found")
		case errors.Is(err, services.ErrBookingConflict):
			resp.Conflict(c, "requested interval overlaps an existing booking")
		case errors.Is(err, services.ErrInvalidInterval),
			errors.Is(err, services.ErrStartInPast),
			errors.Is(err, services.ErrRequesterRequired):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, booking)
}

// GET /bookings
func (bc *BookingController) List(c *gin.Context) {
	bookings, err := bc.bookings.ListBookings()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"bookings": bookings})
}
