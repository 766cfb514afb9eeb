package repository

import (
	"time"

	"hsg-reporting/entity"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(sub *entity.Submission) error {
	return r.db.Create(sub).Error
}

func (r *SubmissionRepository) FindByID(id uint) (*entity.Submission, error) {
	var sub entity.Submission
	if err := r.db.First(&sub, id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// List เรียงตาม issue type แล้ว importance (High ก่อน) แล้วอันใหม่สุดก่อน
func (r *SubmissionRepository) List(statuses []string) ([]entity.Submission, error) {
	q := r.db.Model(&entity.Submission{})
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	var out []entity.Submission
	err := q.Order("issue_type ASC").
		Order("CASE importance WHEN 'High' THEN 0 WHEN 'Medium' THEN 1 WHEN 'Low' THEN 2 ELSE 99 END").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// UpdateStatusGuard อัปเดตเฉพาะตอนสถานะเดิมยังตรงอยู่ กัน update ชนกัน
func (r *SubmissionRepository) UpdateStatusGuard(tx *gorm.DB, id uint, oldStatus, newStatus string, now time.Time) (int64, error) {
	res := tx.Model(&entity.Submission{}).
		Where("id = ? AND status = ?", id, oldStatus).
		Updates(map[string]any{"status": newStatus, "updated_at": now})
	return res.RowsAffected, res.Error
}

// MarkResolvedAt set resolved_at ครั้งแรกครั้งเดียว (sticky)
func (r *SubmissionRepository) MarkResolvedAt(tx *gorm.DB, id uint, now time.Time) error {
	return tx.Model(&entity.Submission{}).
		Where("id = ? AND resolved_at IS NULL", id).
		Update("resolved_at", now).Error
}

func (r *SubmissionRepository) CountTotal() (int64, error) {
	var n int64
	err := r.db.Model(&entity.Submission{}).Count(&n).Error
	return n, err
}

func (r *SubmissionRepository) CountSince(t time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&entity.Submission{}).Where("created_at >= ?", t).Count(&n).Error
	return n, err
}

type fieldCount struct {
	Value string
	N     int64
}

// CountsBy นับจำนวนต่อค่าในคอลัมน์เดียว (ใช้กับ status/issue_type/importance)
func (r *SubmissionRepository) CountsBy(column string) (map[string]int64, error) {
	var rows []fieldCount
	err := r.db.Model(&entity.Submission{}).
		Select(column + " AS value, COUNT(*) AS n").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Value] = row.N
	}
	return out, nil
}

// ListCreatedAt ดึง created_at ทั้งหมดไว้ทำกราฟรายวัน
func (r *SubmissionRepository) ListCreatedAt() ([]time.Time, error) {
	var out []time.Time
	err := r.db.Model(&entity.Submission{}).Order("created_at ASC").Pluck("created_at", &out).Error
	return out, err
}
