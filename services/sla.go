package services

import (
	"time"

	"hsg-reporting/entity"
)

// SLAOffsets มาจาก config ไม่ hard-code
type SLAOffsets struct {
	High   time.Duration
	Medium time.Duration
	Low    time.Duration
}

// ExpectedResolution เป็น pure function: priority → deadline
// priority ที่ไม่รู้จักหรือ createdAt ว่าง → nil
func ExpectedResolution(createdAt time.Time, importance string, offsets SLAOffsets) *time.Time {
	if createdAt.IsZero() {
		return nil
	}
	var d time.Duration
	switch importance {
	case entity.ImportanceHigh:
		d = offsets.High
	case entity.ImportanceMedium:
		d = offsets.Medium
	case entity.ImportanceLow:
		d = offsets.Low
	default:
		return nil
	}
	t := createdAt.Add(d)
	return &t
}
