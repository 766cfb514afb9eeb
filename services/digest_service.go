package services

import (
	"fmt"
	"strings"
	"time"

	"hsg-reporting/entity"
	"hsg-reporting/pkg/clock"
	"hsg-reporting/pkg/mailer"
	"hsg-reporting/repository"
)

const digestPeriod = 7 * 24 * time.Hour

// DigestService ส่งสรุปรายสัปดาห์ให้ทีม facility
// idempotent ผ่าน report_log: อย่างมากวันละหนึ่งฉบับ
type DigestService struct {
	Submissions *repository.SubmissionRepository
	Reports     *repository.ReportLogRepository
	Mailer      mailer.Sender
	Clock       clock.Clock
	AdminInbox  string
}

func NewDigestService(subs *repository.SubmissionRepository, reports *repository.ReportLogRepository, sender mailer.Sender, clk clock.Clock, adminInbox string) *DigestService {
	return &DigestService{Submissions: subs, Reports: reports, Mailer: sender, Clock: clk, AdminInbox: adminInbox}
}

// RunIfDue เรียกจาก cron รายชั่วโมงหรือจาก admin endpoint ก็ปลอดภัยเท่ากัน
// คืน true เฉพาะตอนส่งจริง
func (d *DigestService) RunIfDue() (bool, error) {
	now := d.Clock.Now()

	last, err := d.Reports.LastOfType(entity.ReportTypeWeeklySummary)
	if err != nil {
		return false, err
	}
	if last != nil {
		if sameCalendarDay(last.SentAt, now, d.Clock.Location()) {
			return false, nil
		}
		if now.Sub(last.SentAt) < digestPeriod {
			return false, nil
		}
	}

	total, err := d.Submissions.CountTotal()
	if err != nil {
		return false, err
	}
	byStatus, err := d.Submissions.CountsBy("status")
	if err != nil {
		return false, err
	}
	recent, err := d.Submissions.CountSince(now.Add(-digestPeriod))
	if err != nil {
		return false, err
	}

	subject, body := weeklySummaryText(now, total, recent, byStatus)
	if err := d.Mailer.Send(d.AdminInbox, subject, body); err != nil {
		// ส่งไม่ได้ = ยังไม่บันทึก dispatch รอบหน้าลองใหม่
		return false, err
	}

	if err := d.Reports.Append(&entity.ReportLog{ReportType: entity.ReportTypeWeeklySummary, SentAt: now}); err != nil {
		return false, err
	}
	return true, nil
}

func sameCalendarDay(a, b time.Time, loc *time.Location) bool {
	ya, ma, da := a.In(loc).Date()
	yb, mb, db := b.In(loc).Date()
	return ya == yb && ma == mb && da == db
}

func weeklySummaryText(now time.Time, total, recent int64, byStatus map[string]int64) (string, string) {
	subject := fmt.Sprintf("Weekly facility report summary (%s)", now.Format("2006-01-02"))

	var sb strings.Builder
	fmt.Fprintf(&sb, "Facility reporting summary as of %s\n\n", now.Format(time.RFC3339))
	fmt.Fprintf(&sb, "Total issues: %d\n", total)
	fmt.Fprintf(&sb, "New issues in the last 7 days: %d\n\n", recent)
	sb.WriteString("By status:\n")
	for _, status := range StatusLevels {
		fmt.Fprintf(&sb, "  %-12s %d\n", status, byStatus[status])
	}
	sb.WriteString("\nKind regards,\nHSG Reporting Tool\n")
	return subject, sb.String()
}
