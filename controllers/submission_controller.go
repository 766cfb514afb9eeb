package controllers

import (
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"hsg-reporting/entity"
	"hsg-reporting/pkg/resp"
	"hsg-reporting/services"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	service *services.SubmissionService
}

func NewSubmissionController(service *services.SubmissionService) *SubmissionController {
	return &SubmissionController{service: service}
}

// POST /issues
func (sc *SubmissionController) Create(c *gin.Context) {
	var req services.SubmissionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sub, emailSent, fieldErrs, err := sc.service.Submit(req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		resp.ValidationErrors(c, fieldErrs)
		return
	}

	resp.Created(c, gin.H{
		"submission":         sub,
		"expectedResolution": sc.service.Deadline(sub),
		"emailSent":          emailSent,
	})
}

type issueRow struct {
	entity.Submission
	ExpectedResolution *time.Time `json:"expectedResolution"`
}

// GET /issues?status=Pending,In Progress
func (sc *SubmissionController) List(c *gin.Context) {
	subs, err := sc.service.List(parseStatusFilter(c.Query("status")))
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	rows := make([]issueRow, 0, len(subs))
	for i := range subs {
		rows = append(rows, issueRow{
			Submission:         subs[i],
			ExpectedResolution: sc.service.Deadline(&subs[i]),
		})
	}
	resp.OK(c, gin.H{"total": len(rows), "issues": rows})
}

// GET /issues/stats → ตัวเลขดิบให้ UI วาดกราฟเอง
func (sc *SubmissionController) Stats(c *gin.Context) {
	stats, err := sc.service.Stats()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /issues/export → CSV สำหรับทีม facility เอาไปทำรายงาน
func (sc *SubmissionController) ExportCSV(c *gin.Context) {
	subs, err := sc.service.List(nil)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="hsg_reporting_issues.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{
		"id", "name", "hsg_email", "issue_type", "room_number", "importance",
		"status", "user_comment", "assigned_to", "created_at", "updated_at", "resolved_at",
	})
	for i := range subs {
		sub := &subs[i]
		resolvedAt := ""
		if sub.ResolvedAt != nil {
			resolvedAt = sub.ResolvedAt.Format(time.RFC3339)
		}
		_ = w.Write([]string{
			strconv.FormatUint(uint64(sub.ID), 10),
			sub.Name,
			sub.HsgEmail,
			sub.IssueType,
			sub.RoomNumber,
			sub.Importance,
			sub.Status,
			sub.UserComment,
			sub.AssignedTo,
			sub.CreatedAt.Format(time.RFC3339),
			sub.UpdatedAt.Format(time.RFC3339),
			resolvedAt,
		})
	}
	w.Flush()
}

func parseStatusFilter(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "all" {
		return nil
	}
	var statuses []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			statuses = append(statuses, s)
		}
	}
	return statuses
}
