package configs

import (
	"hsg-reporting/entity"
)

// Seed ค่า location/asset เริ่มต้น
func SeedLookups() error {
	db := DB()

	// Locations (ROOM_ prefix = ห้อง การจองจะ propagate ไปของข้างใน)
	db.FirstOrCreate(&entity.Location{}, entity.Location{LocationID: "ROOM_A", Label: "Room A (Main Building)"})
	db.FirstOrCreate(&entity.Location{}, entity.Location{LocationID: "ROOM_B", Label: "Room B (Library Wing)"})
	db.FirstOrCreate(&entity.Location{}, entity.Location{LocationID: "STORAGE_1", Label: "Equipment Storage, Ground Floor"})

	// Assets
	db.FirstOrCreate(&entity.Asset{}, entity.Asset{AssetID: "ROOM_A", AssetName: "Room A", AssetType: entity.AssetTypeRoom, LocationID: "ROOM_A"})
	db.FirstOrCreate(&entity.Asset{}, entity.Asset{AssetID: "ROOM_B", AssetName: "Room B", AssetType: entity.AssetTypeRoom, LocationID: "ROOM_B"})
	db.FirstOrCreate(&entity.Asset{}, entity.Asset{AssetID: "BEAMER_1", AssetName: "Beamer 1", AssetType: "IT Equipment", LocationID: "ROOM_A"})
	db.FirstOrCreate(&entity.Asset{}, entity.Asset{AssetID: "WHITEBOARD_1", AssetName: "Mobile Whiteboard", AssetType: "Furniture", LocationID: "ROOM_A"})
	db.FirstOrCreate(&entity.Asset{}, entity.Asset{AssetID: "BEAMER_2", AssetName: "Beamer 2", AssetType: "IT Equipment", LocationID: "ROOM_B"})
	db.FirstOrCreate(&entity.Asset{}, entity.Asset{AssetID: "LAPTOP_1", AssetName: "Loaner Laptop 1", AssetType: "IT Equipment", LocationID: "STORAGE_1"})

	return db.Error
}
