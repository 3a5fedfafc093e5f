package dtos

import (
	"time"

	"github.com/firstshift/jobboard/internal/models"
)

// ApplicationForm is the multipart form body for POST /jobs/:id/apply.
// The resume file itself travels as the "resume" file part.
type ApplicationForm struct {
	CoverLetter       string `form:"cover_letter"`
	Experience        string `form:"relevant_experience"`
	Education         string `form:"education"`
	Availability      string `form:"availability"`
	References        string `form:"references"`
	TermsAccepted     bool   `form:"terms_accepted"`
	ContactPermission bool   `form:"contact_permission"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// ApplicationOut is the applicant-facing view of an application.
type ApplicationOut struct {
	ID          uint          `json:"id"`
	JobID       uint          `json:"job_id"`
	Status      models.Status `json:"status"`
	AppliedAt   time.Time     `json:"applied_at"`
	JobTitle    string        `json:"job_title"`
	CompanyName string        `json:"company_name"`
	ResumePath  string        `json:"resume_path,omitempty"`
}

// ApplicationDetail is the business-facing view, including applicant info
// and the submitted form fields.
type ApplicationDetail struct {
	ApplicationOut
	UpdatedAt         time.Time    `json:"updated_at"`
	CoverLetter       string       `json:"cover_letter"`
	Experience        string       `json:"relevant_experience"`
	Education         string       `json:"education"`
	Availability      string       `json:"availability"`
	References        string       `json:"references"`
	ContactPermission bool         `json:"contact_permission"`
	Applicant         UserResponse `json:"applicant"`
}

func NewApplicationOut(app *models.Application) ApplicationOut {
	return ApplicationOut{
		ID:          app.ID,
		JobID:       app.JobID,
		Status:      app.Status,
		AppliedAt:   app.AppliedAt,
		JobTitle:    app.Job.Title,
		CompanyName: app.Job.CompanyName,
		ResumePath:  app.ResumePath,
	}
}

func NewApplicationDetail(app *models.Application) ApplicationDetail {
	return ApplicationDetail{
		ApplicationOut:    NewApplicationOut(app),
		UpdatedAt:         app.UpdatedAt,
		CoverLetter:       app.CoverLetter,
		Experience:        app.Experience,
		Education:         app.Education,
		Availability:      app.Availability,
		References:        app.References,
		ContactPermission: app.ContactPermission,
		Applicant:         NewUserResponse(&app.User),
	}
}

// DashboardMetrics are the headline numbers for a business user.
type DashboardMetrics struct {
	ActiveJobs           int64   `json:"active_jobs"`
	TotalApplications    int64   `json:"total_applications"`
	NewApplicationsMonth int64   `json:"new_applications_this_month"`
	ResponseRate         float64 `json:"response_rate"`
}

// DashboardJobsQuery are the filters for the owner's own job listing,
// which includes drafts and archived postings.
type DashboardJobsQuery struct {
	Search string `form:"search"`
	Status string `form:"status"`
}

type DashboardJob struct {
	JobSummary
	ApplicationCount int64 `json:"application_count"`
}

type DashboardResponse struct {
	Metrics DashboardMetrics `json:"metrics"`
	Jobs    []DashboardJob   `json:"jobs"`
}
