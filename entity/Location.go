package entity

import "strings"

// identifier ที่ขึ้นต้นด้วย ROOM_ ถือเป็นห้อง
const RoomLocationPrefix = "ROOM_"

type Location struct {
	LocationID string `gorm:"primaryKey" json:"locationId"`
	Label      string `json:"label"`

	Assets []Asset `gorm:"foreignKey:LocationID;references:LocationID" json:"-"`
}

// IsRoomLike บอกว่าการจองห้องนี้ต้อง propagate ไปยังของที่อยู่ข้างในหรือไม่
func (l *Location) IsRoomLike() bool {
	return strings.HasPrefix(l.LocationID, RoomLocationPrefix)
}
