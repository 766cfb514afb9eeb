package entity

import "time"

const ReportTypeWeeklySummary = "weekly_summary"

// ReportLog กันไม่ให้ส่ง summary ซ้ำ (อย่างมากวันละครั้ง)
type ReportLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ReportType string    `json:"reportType"`
	SentAt     time.Time `json:"sentAt"`
}
