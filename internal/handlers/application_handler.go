package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/firstshift/jobboard/internal/auth"
	"github.com/firstshift/jobboard/internal/dtos"
	"github.com/firstshift/jobboard/internal/models"
	"github.com/firstshift/jobboard/internal/services"
	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	Apps *services.ApplicationService
}

func NewApplicationHandler(apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Apps: apps}
}

// Apply is POST /jobs/:id/apply (multipart form, optional "resume" file part).
func (h *ApplicationHandler) Apply(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var form dtos.ApplicationForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form: " + err.Error()})
		return
	}

	var resume []byte
	var resumeExt string
	if file, err := c.FormFile("resume"); err == nil && file != nil {
		// Oversize uploads are rejected here, before any row is written.
		if file.Size > h.Apps.Files.MaxSize() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "resume exceeds the maximum upload size"})
			return
		}
		f, err := file.Open()
		if err != nil {
			writeError(c, err)
			return
		}
		defer f.Close()
		resume, err = io.ReadAll(io.LimitReader(f, h.Apps.Files.MaxSize()+1))
		if err != nil {
			writeError(c, err)
			return
		}
		resumeExt = filepath.Ext(file.Filename)
	}

	app, err := h.Apps.Apply(c.Request.Context(), &user, jobID, &form, resume, resumeExt)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":        "application submitted",
		"application_id": app.ID,
		"status":         app.Status,
	})
}

// ListMine is GET /jobs/applications/my
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	page, limit := pageQuery(c)

	apps, err := h.Apps.ListMine(c.Request.Context(), &user, page, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dtos.ApplicationOut, 0, len(apps))
	for i := range apps {
		out = append(out, dtos.NewApplicationOut(&apps[i]))
	}
	c.JSON(http.StatusOK, out)
}

// ListForJob is GET /jobs/:id/applications
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}
	page, limit := pageQuery(c)

	apps, err := h.Apps.ListForJob(c.Request.Context(), &user, jobID, page, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dtos.ApplicationDetail, 0, len(apps))
	for i := range apps {
		out = append(out, dtos.NewApplicationDetail(&apps[i]))
	}
	c.JSON(http.StatusOK, out)
}

// UpdateStatus is PUT /jobs/applications/:id/status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	appID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	app, err := h.Apps.UpdateStatus(c.Request.Context(), &user, appID, models.Status(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "status updated",
		"application_id": app.ID,
		"status":         app.Status,
	})
}

func pageQuery(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	return page, limit
}
