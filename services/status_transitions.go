package services

import (
	"errors"
	"fmt"

	"hsg-reporting/entity"
	"hsg-reporting/pkg/clock"
	"hsg-reporting/pkg/mailer"
	"hsg-reporting/repository"

	"gorm.io/gorm"
)

var (
	ErrUnknownStatus = errors.New("unknown status")
	// Resolved เป็นสถานะปลายทาง ถอยกลับไม่ได้
	ErrResolvedTerminal = errors.New("resolved issues cannot change status")
	ErrStatusConflict   = errors.New("status was changed concurrently, retry")
)

type StatusService struct {
	DB      *gorm.DB
	Repo    *repository.SubmissionRepository
	LogRepo *repository.StatusLogRepository
	Mailer  mailer.Sender
	Clock   clock.Clock
}

func NewStatusService(db *gorm.DB, repo *repository.SubmissionRepository, logRepo *repository.StatusLogRepository, sender mailer.Sender, clk clock.Clock) *StatusService {
	return &StatusService{DB: db, Repo: repo, LogRepo: logRepo, Mailer: sender, Clock: clk}
}

type StatusChange struct {
	Submission *entity.Submission `json:"submission"`
	OldStatus  string             `json:"oldStatus"`
	Changed    bool               `json:"changed"`
	EmailSent  bool               `json:"emailSent"`
}

// UpdateStatus ทำทั้ง transition + audit log ใน transaction เดียว
// สถานะเดิม == ใหม่ → no-op ไม่เขียน log (assignee ยังอัปเดตได้)
func (s *StatusService) UpdateStatus(id uint, newStatus string, assignedTo *string) (*StatusChange, error) {
	if !isKnownStatus(newStatus) {
		return nil, ErrUnknownStatus
	}

	now := s.Clock.Now()
	var oldStatus string
	changed := false

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var cur entity.Submission
		if err := tx.First(&cur, id).Error; err != nil {
			return err
		}
		oldStatus = cur.Status

		if assignedTo != nil {
			if err := tx.Model(&entity.Submission{}).
				Where("id = ?", cur.ID).
				Updates(map[string]any{"assigned_to": *assignedTo, "updated_at": now}).Error; err != nil {
				return err
			}
		}

		if cur.Status == newStatus {
			return nil
		}
		if cur.Status == entity.StatusResolved {
			return ErrResolvedTerminal
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, cur.ID, cur.Status, newStatus, now)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStatusConflict
		}

		if newStatus == entity.StatusResolved {
			if err := s.Repo.MarkResolvedAt(tx, cur.ID, now); err != nil {
				return err
			}
		}

		if err := s.LogRepo.Append(tx, &entity.StatusLog{
			SubmissionID: cur.ID,
			OldStatus:    cur.Status,
			NewStatus:    newStatus,
			ChangedAt:    now,
		}); err != nil {
			return err
		}

		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	sub, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	// แจ้งผู้รายงานเฉพาะตอน Resolved; ส่งไม่ได้ไม่ rollback สถานะ
	emailSent := false
	if changed && newStatus == entity.StatusResolved {
		name := sub.Name
		if name == "" {
			name = "there"
		}
		subject, body := resolvedEmailText(name)
		emailSent = s.Mailer.Send(sub.HsgEmail, subject, body) == nil
	}

	return &StatusChange{Submission: sub, OldStatus: oldStatus, Changed: changed, EmailSent: emailSent}, nil
}

func resolvedEmailText(recipientName string) (string, string) {
	subject := "Issue resolved!"
	body := fmt.Sprintf(`Hello %s,

We are pleased to inform you that the issue you reported via the HSG Reporting Tool has been resolved.

If you have further questions or require assistance in the future, please do not hesitate to contact us.

Kind regards,
HSG Service Team
`, recipientName)
	return subject, body
}
