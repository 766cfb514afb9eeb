package entity

const (
	AssetTypeRoom = "Room"

	AssetAvailable = "Available"
	AssetBooked    = "Booked"
)

// Asset คือห้องหรืออุปกรณ์ที่จองได้
// Status เป็นค่า cache ที่คำนวณจาก bookings ไม่ใช่ source of truth
type Asset struct {
	AssetID    string `gorm:"primaryKey" json:"assetId"`
	AssetName  string `json:"assetName"`
	AssetType  string `json:"assetType"`
	LocationID string `json:"locationId"`
	Status     string `gorm:"default:Available" json:"status"`

	Location Location  `gorm:"foreignKey:LocationID;references:LocationID" json:"-"`
	Bookings []Booking `gorm:"foreignKey:AssetID;references:AssetID" json:"-"`
}

func (a *Asset) IsRoom() bool {
	return a.AssetType == AssetTypeRoom
}
