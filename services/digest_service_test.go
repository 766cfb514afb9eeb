package services

import (
	"errors"
	"testing"
	"time"

	"hsg-reporting/entity"
	"hsg-reporting/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDigestService(db *gorm.DB, clk *fakeClock, sender *fakeSender) *DigestService {
	return NewDigestService(
		repository.NewSubmissionRepository(db),
		repository.NewReportLogRepository(db),
		sender, clk, "facility-team@unisg.ch",
	)
}

func TestDigestSendsAtMostOncePerDay(t *testing.T) {
	db := newTestDB(t)
	clk := newFakeClock(time.Date(2025, 1, 10, 8, 0, 0, 0, zurich))
	sender := &fakeSender{}
	svc := newDigestService(db, clk, sender)

	sent, err := svc.RunIfDue()
	require.NoError(t, err)
	assert.True(t, sent)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "facility-team@unisg.ch", sender.sent[0].To)

	// ยิงซ้ำวันเดียวกัน → no-op
	clk.Advance(5 * time.Hour)
	sent, err = svc.RunIfDue()
	require.NoError(t, err)
	assert.False(t, sent)
	assert.Len(t, sender.sent, 1)

	var n int64
	require.NoError(t, db.Model(&entity.ReportLog{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestDigestWaitsAFullWeek(t *testing.T) {
	db := newTestDB(t)
	clk := newFakeClock(time.Date(2025, 1, 10, 8, 0, 0, 0, zurich))
	sender := &fakeSender{}
	svc := newDigestService(db, clk, sender)

	sent, err := svc.RunIfDue()
	require.NoError(t, err)
	require.True(t, sent)

	// สามวันผ่านไป ยังไม่ครบสัปดาห์
	clk.Advance(3 * 24 * time.Hour)
	sent, err = svc.RunIfDue()
	require.NoError(t, err)
	assert.False(t, sent)

	// ครบเจ็ดวัน → ส่งฉบับถัดไป
	clk.Advance(4 * 24 * time.Hour)
	sent, err = svc.RunIfDue()
	require.NoError(t, err)
	assert.True(t, sent)
	assert.Len(t, sender.sent, 2)
}

func TestDigestSendFailureLeavesNoDispatchRecord(t *testing.T) {
	db := newTestDB(t)
	clk := newFakeClock(time.Date(2025, 1, 10, 8, 0, 0, 0, zurich))
	sender := &fakeSender{failWith: errors.New("smtp down")}
	svc := newDigestService(db, clk, sender)

	sent, err := svc.RunIfDue()
	assert.Error(t, err)
	assert.False(t, sent)

	// ไม่มี dispatch record → รอบถัดไปลองใหม่ได้
	var n int64
	require.NoError(t, db.Model(&entity.ReportLog{}).Count(&n).Error)
	assert.Zero(t, n)

	sender.failWith = nil
	sent, err = svc.RunIfDue()
	require.NoError(t, err)
	assert.True(t, sent)
}

func TestDigestBodyCountsByStatus(t *testing.T) {
	db := newTestDB(t)
	clk := newFakeClock(time.Date(2025, 1, 10, 8, 0, 0, 0, zurich))
	sender := &fakeSender{}
	svc := newDigestService(db, clk, sender)

	seedSubmission(t, db, clk.Now().Add(-48*time.Hour))
	old := seedSubmission(t, db, clk.Now().Add(-30*24*time.Hour))
	require.NoError(t, db.Model(old).Update("status", entity.StatusResolved).Error)

	sent, err := svc.RunIfDue()
	require.NoError(t, err)
	require.True(t, sent)

	body := sender.sent[0].Body
	assert.Contains(t, body, "Total issues: 2")
	assert.Contains(t, body, "New issues in the last 7 days: 1")
	assert.Contains(t, body, "Pending")
	assert.Contains(t, body, "Resolved")
}
