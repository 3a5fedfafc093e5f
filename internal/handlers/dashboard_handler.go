package handlers

import (
	"net/http"

	"github.com/firstshift/jobboard/internal/auth"
	"github.com/firstshift/jobboard/internal/config"
	"github.com/firstshift/jobboard/internal/dtos"
	"github.com/firstshift/jobboard/internal/models"
	"github.com/firstshift/jobboard/internal/services"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	Dash *services.DashboardService
	Jobs *services.JobService
	Cfg  *config.Config
}

func NewDashboardHandler(dash *services.DashboardService, jobs *services.JobService, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{Dash: dash, Jobs: jobs, Cfg: cfg}
}

// Dashboard is GET /dashboard (business role).
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	resp, err := h.Dash.Metrics(c.Request.Context(), &user)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// JobList is GET /dashboard/jobs (business role). Unlike the public
// listing it returns the owner's jobs in every publication state.
func (h *DashboardHandler) JobList(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	var q dtos.DashboardJobsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query: " + err.Error()})
		return
	}

	jobs, err := h.Dash.Jobs(c.Request.Context(), &user, q.Search, models.JobStatus(q.Status))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dtos.JobSummary, 0, len(jobs))
	for i := range jobs {
		out = append(out, dtos.NewJobSummary(&jobs[i]))
	}
	c.JSON(http.StatusOK, out)
}

// UpdateJobStatus is PUT /dashboard/jobs/:id/status (business role).
func (h *DashboardHandler) UpdateJobStatus(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dtos.JobStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	job, err := h.Jobs.UpdateStatus(c.Request.Context(), &user, jobID, models.JobStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "job status updated", "job_id": job.ID, "status": job.Status})
}

// Archive is POST /dashboard/jobs/:id/archive (business role).
func (h *DashboardHandler) Archive(c *gin.Context) {
	h.setJobStatus(c, models.JobStatusArchived, "job archived")
}

// Unarchive is POST /dashboard/jobs/:id/unarchive (business role).
func (h *DashboardHandler) Unarchive(c *gin.Context) {
	h.setJobStatus(c, models.JobStatusActive, "job unarchived")
}

func (h *DashboardHandler) setJobStatus(c *gin.Context, status models.JobStatus, message string) {
	user, _ := auth.CurrentUser(c)
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}

	job, err := h.Jobs.UpdateStatus(c.Request.Context(), &user, jobID, status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "job_id": job.ID, "status": job.Status})
}

// AdminStats is GET /admin/stats (admin role, non-production only).
// Read-only: schema changes happen at startup, never through HTTP.
func (h *DashboardHandler) AdminStats(c *gin.Context) {
	if h.Cfg.IsProduction() {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	stats, err := h.Dash.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"stats":       stats,
		"environment": h.Cfg.Server.Environment,
	})
}
