package repository

import (
	"hsg-reporting/entity"

	"gorm.io/gorm"
)

type ReportLogRepository struct {
	db *gorm.DB
}

func NewReportLogRepository(db *gorm.DB) *ReportLogRepository {
	return &ReportLogRepository{db: db}
}

func (r *ReportLogRepository) LastOfType(reportType string) (*entity.ReportLog, error) {
	var l entity.ReportLog
	err := r.db.Where("report_type = ?", reportType).Order("sent_at DESC").First(&l).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *ReportLogRepository) Append(l *entity.ReportLog) error {
	return r.db.Create(l).Error
}
