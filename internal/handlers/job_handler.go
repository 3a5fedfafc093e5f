package handlers

import (
	"net/http"
	"strconv"

	"github.com/firstshift/jobboard/internal/auth"
	"github.com/firstshift/jobboard/internal/dtos"
	"github.com/firstshift/jobboard/internal/services"
	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	Jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

// List is GET /jobs
func (h *JobHandler) List(c *gin.Context) {
	var q dtos.JobListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query: " + err.Error()})
		return
	}

	jobs, err := h.Jobs.List(c.Request.Context(), q)
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

// Get is GET /jobs/:id
func (h *JobHandler) Get(c *gin.Context) {
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}
	job, err := h.Jobs.Get(c.Request.Context(), jobID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewJobDetail(job))
}

// Create is POST /jobs
func (h *JobHandler) Create(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	var req dtos.JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	job, err := h.Jobs.Create(c.Request.Context(), &user, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "job created", "job_id": job.ID})
}

// Update is PUT /jobs/:id
func (h *JobHandler) Update(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dtos.JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	job, err := h.Jobs.Update(c.Request.Context(), &user, jobID, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "job updated", "job_id": job.ID})
}

// Delete is DELETE /jobs/:id
func (h *JobHandler) Delete(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.Jobs.Delete(c.Request.Context(), &user, jobID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "job deleted", "job_id": jobID})
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return 0, false
	}
	return uint(id), true
}
