package controllers

import (
	"errors"
	"strconv"

	"hsg-reporting/configs"
	"hsg-reporting/entity"
	"hsg-reporting/pkg/resp"
	"hsg-reporting/repository"
	"hsg-reporting/services"
	"hsg-reporting/utils"
	"hsg-reporting/ws"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminController struct {
	cfg     *configs.Config
	DB      *gorm.DB
	status  *services.StatusService
	subs    *services.SubmissionService
	logs    *repository.StatusLogRepository
	digest  *services.DigestService
	feedHub *ws.FeedHub
}

func NewAdminController(cfg *configs.Config, db *gorm.DB, status *services.StatusService, subs *services.SubmissionService, logs *repository.StatusLogRepository, digest *services.DigestService, feedHub *ws.FeedHub) *AdminController {
	return &AdminController{cfg: cfg, DB: db, status: status, subs: subs, logs: logs, digest: digest, feedHub: feedHub}
}

// POST /admin/login → แลก password เป็น token
// bcrypt compare ไม่รั่ว timing ของ password
func (ac *AdminController) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if bcrypt.CompareHashAndPassword(ac.cfg.AdminPasswordHash, []byte(req.Password)) != nil {
		resp.Unauthorized(c, "wrong password")
		return
	}

	token, err := utils.GenerateToken("admin", ac.cfg.JWTSecret, ac.cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token})
}

// GET /admin/issues → default เฉพาะงานที่ยังเปิดอยู่
func (ac *AdminController) Issues(c *gin.Context) {
	statuses := parseStatusFilter(c.Query("status"))
	if c.Query("status") == "" {
		statuses = []string{entity.StatusPending, entity.StatusInProgress}
	}

	subs, err := ac.subs.List(statuses)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	rows := make([]issueRow, 0, len(subs))
	for i := range subs {
		rows = append(rows, issueRow{
			Submission:         subs[i],
			ExpectedResolution: ac.subs.Deadline(&subs[i]),
		})
	}
	resp.OK(c, gin.H{"total": len(rows), "issues": rows})
}

// PATCH /admin/issues/:id/status
func (ac *AdminController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid issue id")
		return
	}

	var req struct {
		Status     string  `json:"status"`
		AssignedTo *string `json:"assignedTo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	change, err := ac.status.UpdateStatus(uint(id), req.Status, req.AssignedTo)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "issue not found")
		case errors.Is(err, services.ErrUnknownStatus),
			errors.Is(err, services.ErrResolvedTerminal):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrStatusConflict):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	if change.Changed {
		ac.feedHub.Broadcast(ws.StatusEvent{
			SubmissionID: change.Submission.ID,
			OldStatus:    change.OldStatus,
			NewStatus:    change.Submission.Status,
			ChangedAt:    change.Submission.UpdatedAt,
		})
	}
	resp.OK(c, change)
}

// GET /admin/status-log
func (ac *AdminController) StatusLog(c *gin.Context) {
	logs, err := ac.logs.ListRecent(200)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"statusLog": logs})
}

// Dashboard: ตัวเลขรวม ๆ
func (ac *AdminController) Dashboard(c *gin.Context) {
	db := ac.DB

	var totalIssues, openIssues, resolvedIssues int64
	var totalBookings, bookedAssets int64

	if err := db.Model(&entity.Submission{}).Count(&totalIssues).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.Submission{}).
		Where("status IN ?", []string{entity.StatusPending, entity.StatusInProgress}).
		Count(&openIssues).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.Submission{}).
		Where("status = ?", entity.StatusResolved).
		Count(&resolvedIssues).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.Booking{}).Count(&totalBookings).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.Asset{}).
		Where("status = ?", entity.AssetBooked).
		Count(&bookedAssets).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"totalIssues":    totalIssues,
		"openIssues":     openIssues,
		"resolvedIssues": resolvedIssues,
		"totalBookings":  totalBookings,
		"bookedAssets":   bookedAssets,
	})
}

// POST /admin/digest/run → trigger ด้วยมือ ปลอดภัยเท่าการยิงจาก cron
func (ac *AdminController) RunDigest(c *gin.Context) {
	sent, err := ac.digest.RunIfDue()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"sent": sent})
}

// GET /admin/feed (websocket)
func (ac *AdminController) Feed(c *gin.Context) {
	ac.feedHub.HandleFeed(c)
}
