package services

import (
	"fmt"
	"strings"
	"time"

	"hsg-reporting/entity"
	"hsg-reporting/pkg/clock"
	"hsg-reporting/pkg/mailer"
	"hsg-reporting/repository"

	"gorm.io/gorm"
)

type SubmissionService struct {
	repo   *repository.SubmissionRepository
	mailer mailer.Sender
	clock  clock.Clock
	sla    SLAOffsets
}

func NewSubmissionService(repo *repository.SubmissionRepository, sender mailer.Sender, clk clock.Clock, sla SLAOffsets) *SubmissionService {
	return &SubmissionService{repo: repo, mailer: sender, clock: clk, sla: sla}
}

// Submit: normalize → validate → เก็บเป็น Pending → ส่งเมลยืนยัน (best effort)
func (s *SubmissionService) Submit(in SubmissionInput) (*entity.Submission, bool, []FieldError, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.HsgEmail = NormalizeEmail(in.HsgEmail)
	in.RoomNumber = NormalizeRoom(in.RoomNumber)
	in.UserComment = strings.TrimSpace(in.UserComment)

	if errs := ValidateSubmission(in); len(errs) > 0 {
		return nil, false, errs, nil
	}

	now := s.clock.Now()
	sub := &entity.Submission{
		Model:       gorm.Model{CreatedAt: now, UpdatedAt: now},
		Name:        in.Name,
		HsgEmail:    in.HsgEmail,
		IssueType:   in.IssueType,
		RoomNumber:  in.RoomNumber,
		Importance:  in.Importance,
		Status:      entity.StatusPending,
		UserComment: in.UserComment,
	}
	if err := s.repo.Create(sub); err != nil {
		return nil, false, nil, err
	}

	// เมลยืนยันส่งไม่ได้ submission ก็ยังสำเร็จ
	subject, body := confirmationEmailText(in.Name)
	emailSent := s.mailer.Send(in.HsgEmail, subject, body) == nil

	return sub, emailSent, nil, nil
}

func (s *SubmissionService) List(statuses []string) ([]entity.Submission, error) {
	return s.repo.List(statuses)
}

func (s *SubmissionService) FindByID(id uint) (*entity.Submission, error) {
	return s.repo.FindByID(id)
}

// Deadline คืน SLA deadline ของ submission ตาม importance
func (s *SubmissionService) Deadline(sub *entity.Submission) *time.Time {
	return ExpectedResolution(sub.CreatedAt, sub.Importance, s.sla)
}

type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type SubmissionStats struct {
	Total        int64            `json:"total"`
	ByIssueType  map[string]int64 `json:"byIssueType"`
	ByImportance map[string]int64 `json:"byImportance"`
	ByStatus     map[string]int64 `json:"byStatus"`
	PerDay       []DayCount       `json:"perDay"`
}

// Stats รวมตัวเลขให้ฝั่ง UI เอาไปวาดกราฟ
// นับศูนย์ให้ครบทุกหมวด และเติมวันว่างให้กราฟรายวันต่อเนื่อง
func (s *SubmissionService) Stats() (*SubmissionStats, error) {
	total, err := s.repo.CountTotal()
	if err != nil {
		return nil, err
	}

	byType, err := s.repo.CountsBy("issue_type")
	if err != nil {
		return nil, err
	}
	byImportance, err := s.repo.CountsBy("importance")
	if err != nil {
		return nil, err
	}
	byStatus, err := s.repo.CountsBy("status")
	if err != nil {
		return nil, err
	}

	stats := &SubmissionStats{
		Total:        total,
		ByIssueType:  make(map[string]int64, len(IssueTypes)),
		ByImportance: make(map[string]int64, len(ImportanceLevels)),
		ByStatus:     make(map[string]int64, len(StatusLevels)),
	}
	for _, t := range IssueTypes {
		stats.ByIssueType[t] = byType[t]
	}
	for _, l := range ImportanceLevels {
		stats.ByImportance[l] = byImportance[l]
	}
	for _, l := range StatusLevels {
		stats.ByStatus[l] = byStatus[l]
	}

	createdAts, err := s.repo.ListCreatedAt()
	if err != nil {
		return nil, err
	}
	stats.PerDay = perDayCounts(createdAts, s.clock.Location())
	return stats, nil
}

const dayFormat = "2006-01-02"

func perDayCounts(createdAts []time.Time, loc *time.Location) []DayCount {
	if len(createdAts) == 0 {
		return nil
	}

	counts := make(map[string]int64)
	first := createdAts[0].In(loc)
	last := first
	for _, t := range createdAts {
		t = t.In(loc)
		counts[t.Format(dayFormat)]++
		if t.Before(first) {
			first = t
		}
		if t.After(last) {
			last = t
		}
	}

	start := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, loc)
	end := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, loc)

	var out []DayCount
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(dayFormat)
		out = append(out, DayCount{Date: key, Count: counts[key]})
	}
	return out
}

func confirmationEmailText(recipientName string) (string, string) {
	subject := "Issue received!"
	body := fmt.Sprintf(`Dear %s,

Thank you for contacting us regarding your concern. We hereby confirm that we have received your issue report and that it is currently under review by the responsible team.

We will keep you informed about the progress and notify you once the matter has been resolved. Should we require any additional information, we will contact you accordingly.

Thank you for your understanding and cooperation.

Kind regards,
HSG Service Team
`, recipientName)
	return subject, body
}
