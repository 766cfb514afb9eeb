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

func newStatusService(db *gorm.DB, clk *fakeClock, sender *fakeSender) *StatusService {
	return NewStatusService(db, repository.NewSubmissionRepository(db), repository.NewStatusLogRepository(db), sender, clk)
}

func seedSubmission(t *testing.T, db *gorm.DB, createdAt time.Time) *entity.Submission {
	t.Helper()
	sub := &entity.Submission{
		Model: gorm.Model{CreatedAt: createdAt, UpdatedAt: createdAt},
		Name:  "Jane Doe", HsgEmail: "jane.doe@unisg.ch",
		IssueType: "Lighting issues", RoomNumber: "A 09-001",
		Importance: "High", Status: entity.StatusPending,
		UserComment: "The lights flicker constantly.",
	}
	require.NoError(t, db.Create(sub).Error)
	return sub
}

func countLogs(t *testing.T, db *gorm.DB, submissionID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&entity.StatusLog{}).Where("submission_id = ?", submissionID).Count(&n).Error)
	return n
}

func TestUpdateStatusWritesOneLogPerTransition(t *testing.T) {
	db := newTestDB(t)
	clk := newFakeClock(time.Date(2025, 1, 10, 9, 0, 0, 0, zurich))
	sender := &fakeSender{}
	svc := newStatusService(db, clk, sender)
	sub := seedSubmission(t, db, clk.Now())

	change, err := svc.UpdateStatus(sub.ID, entity.StatusInProgress, nil)
	require.NoError(t, err)
	assert.True(t, change.Changed)
	assert.Equal(t, entity.StatusPending, change.OldStatus)
	assert.Equal(t, entity.StatusInProgress, change.Submission.Status)
	assert.EqualValues(t, 1, countLogs(t, db, sub.ID))
	assert.Empty(t, sender.sent) // ไม่ใช่ Resolved ไม่มีเมล

	// สถานะเดิม → no-op ไม่เพิ่ม log
	change, err = svc.UpdateStatus(sub.ID, entity.StatusInProgress, nil)
	require.NoError(t, err)
	assert.False(t, change.Changed)
	assert.EqualValues(t, 1, countLogs(t, db, sub.ID))
}

func TestResolveSetsStickyResolvedAtAndNotifies(t *testing.T) {
	db := newTestDB(t)
	clk := newFakeClock(time.Date(2025, 1, 10, 9, 0, 0, 0, zurich))
	sender := &fakeSender{}
	svc := newStatusService(db, clk, sender)
	sub := seedSubmission(t, db, clk.Now())

	clk.Advance(2 * time.Hour)
	resolvedAt := clk.Now()

	change, err := svc.UpdateStatus(sub.ID, entity.StatusResolved, nil)
	require.NoError(t, err)
	assert.True(t, change.Changed)
	assert.True(t, change.EmailSent)
	require.NotNil(t, change.Submission.ResolvedAt)
	assert.True(t, resolvedAt.Equal(*change.Submission.ResolvedAt))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "jane.doe@unisg.ch", sender.sent[0].To)
	assert.Equal(t, "Issue resolved!", sender.sent[0].Subject)

	// Resolved เป็นปลายทาง ถอยกลับไม่ได้ resolved_at ไม่ขยับ
	clk.Advance(time.Hour)
	_, err = svc.UpdateStatus(sub.ID, entity.StatusPending, nil)
	assert.ErrorIs(t, err, ErrResolvedTerminal)

	var fresh entity.Submission
	require.NoError(t, db.First(&fresh, sub.ID).Error)
	assert.Equal(t, entity.StatusResolved, fresh.Status)
	require.NotNil(t, fresh.ResolvedAt)
	assert.True(t, resolvedAt.Equal(*fresh.ResolvedAt))
	assert.EqualValues(t, 1, countLogs(t, db, sub.ID))
}

func TestResolveSurvivesEmailFailure(t *testing.T) {
	db := newTestDB(t)
	clk := newFakeClock(time.Date(2025, 1, 10, 9, 0, 0, 0, zurich))
	sender := &fakeSender{failWith: errors.New("smtp down")}
	svc := newStatusService(db, clk, sender)
	sub := seedSubmission(t, db, clk.Now())

	change, err := svc.UpdateStatus(sub.ID, entity.StatusResolved, nil)
	require.NoError(t, err)
	assert.True(t, change.Changed)
	assert.False(t, change.EmailSent)

	// state change ไม่ rollback เพราะเมลล้ม
	var fresh entity.Submission
	require.NoError(t, db.First(&fresh, sub.ID).Error)
	assert.Equal(t, entity.StatusResolved, fresh.Status)
	assert.NotNil(t, fresh.ResolvedAt)
}

func TestUpdateStatusSetsAssignee(t *testing.T) {
	db := newTestDB(t)
	clk := newFakeClock(time.Date(2025, 1, 10, 9, 0, 0, 0, zurich))
	svc := newStatusService(db, clk, &fakeSender{})
	sub := seedSubmission(t, db, clk.Now())

	team := "Facilities Team"
	change, err := svc.UpdateStatus(sub.ID, entity.StatusInProgress, &team)
	require.NoError(t, err)
	assert.True(t, change.Changed)
	assert.Equal(t, team, change.Submission.AssignedTo)

	// assignee เปลี่ยนได้แม้สถานะไม่เปลี่ยน
	other := "IT Support"
	change, err = svc.UpdateStatus(sub.ID, entity.StatusInProgress, &other)
	require.NoError(t, err)
	assert.False(t, change.Changed)
	assert.Equal(t, other, change.Submission.AssignedTo)
	assert.EqualValues(t, 1, countLogs(t, db, sub.ID))
}

func TestUpdateStatusErrors(t *testing.T) {
	db := newTestDB(t)
	clk := newFakeClock(time.Date(2025, 1, 10, 9, 0, 0, 0, zurich))
	svc := newStatusService(db, clk, &fakeSender{})
	sub := seedSubmission(t, db, clk.Now())

	_, err := svc.UpdateStatus(sub.ID, "Closed", nil)
	assert.ErrorIs(t, err, ErrUnknownStatus)

	_, err = svc.UpdateStatus(99999, entity.StatusResolved, nil)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
