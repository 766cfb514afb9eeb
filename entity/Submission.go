package entity

import (
	"time"

	"gorm.io/gorm"
)

// สถานะของ issue ที่ระบบรองรับ
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
)

const (
	ImportanceLow    = "Low"
	ImportanceMedium = "Medium"
	ImportanceHigh   = "High"
)

type Submission struct {
	gorm.Model
	Name        string `json:"name"`
	HsgEmail    string `json:"hsgEmail"`
	IssueType   string `json:"issueType"`
	RoomNumber  string `json:"roomNumber"`
	Importance  string `json:"importance"`
	Status      string `gorm:"default:Pending" json:"status"`
	UserComment string `json:"userComment"`
	AssignedTo  string `json:"assignedTo"`

	// set ครั้งเดียวตอนเข้าสถานะ Resolved ครั้งแรก ไม่ถูกล้างทีหลัง
	ResolvedAt *time.Time `json:"resolvedAt"`

	StatusLogs []StatusLog `gorm:"foreignKey:SubmissionID" json:"-"`
}
