package entity

import "time"

// Booking คือช่วงเวลาจองแบบ half-open [StartTime, EndTime)
// ไม่มีการแก้ไขหรือลบ (ไม่มี flow ยกเลิกการจอง)
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"bookingId"`
	AssetID   string    `json:"assetId"`
	UserName  string    `json:"userName"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
}
