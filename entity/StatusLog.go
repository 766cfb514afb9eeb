package entity

import "time"

// StatusLog เป็น audit log ของการเปลี่ยนสถานะ (append-only)
type StatusLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SubmissionID uint      `json:"submissionId"`
	OldStatus    string    `json:"oldStatus"`
	NewStatus    string    `json:"newStatus"`
	ChangedAt    time.Time `json:"changedAt"`
}
