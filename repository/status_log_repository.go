package repository

import (
	"hsg-reporting/entity"

	"gorm.io/gorm"
)

type StatusLogRepository struct {
	db *gorm.DB
}

func NewStatusLogRepository(db *gorm.DB) *StatusLogRepository {
	return &StatusLogRepository{db: db}
}

// Append เขียน audit log หนึ่งแถวต่อหนึ่งการเปลี่ยนสถานะ (ไม่มีการแก้ทีหลัง)
func (r *StatusLogRepository) Append(tx *gorm.DB, log *entity.StatusLog) error {
	return tx.Create(log).Error
}

func (r *StatusLogRepository) ListRecent(limit int) ([]entity.StatusLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []entity.StatusLog
	err := r.db.Order("changed_at DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *StatusLogRepository) ListForSubmission(submissionID uint) ([]entity.StatusLog, error) {
	var out []entity.StatusLog
	err := r.db.Where("submission_id = ?", submissionID).Order("changed_at ASC").Find(&out).Error
	return out, err
}
