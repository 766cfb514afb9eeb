package repository

import (
	"hsg-reporting/entity"

	"gorm.io/gorm"
)

type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) FindByID(tx *gorm.DB, assetID string) (*entity.Asset, error) {
	var a entity.Asset
	if err := tx.First(&a, "asset_id = ?", assetID).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssetRepository) List() ([]entity.Asset, error) {
	var out []entity.Asset
	err := r.db.Preload("Location").Order("asset_id ASC").Find(&out).Error
	return out, err
}

// ResetAll ตั้งทุก asset กลับเป็น Available ก่อน recompute
func (r *AssetRepository) ResetAll(tx *gorm.DB) error {
	return tx.Model(&entity.Asset{}).
		Where("1 = 1").
		Update("status", entity.AssetAvailable).Error
}

func (r *AssetRepository) MarkBooked(tx *gorm.DB, assetIDs []string) error {
	if len(assetIDs) == 0 {
		return nil
	}
	return tx.Model(&entity.Asset{}).
		Where("asset_id IN ?", assetIDs).
		Update("status", entity.AssetBooked).Error
}

// MarkLocationBooked ใช้ propagate การจองห้องไปยังของที่อยู่ในห้อง (ไม่รวมตัวห้องเอง)
func (r *AssetRepository) MarkLocationBooked(tx *gorm.DB, locationID string) error {
	return tx.Model(&entity.Asset{}).
		Where("location_id = ? AND asset_type <> ?", locationID, entity.AssetTypeRoom).
		Update("status", entity.AssetBooked).Error
}
