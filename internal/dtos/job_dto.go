package dtos

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/firstshift/jobboard/internal/models"
)

type JobCreateRequest struct {
	// Action decides the publication state on save: "save" keeps a draft,
	// "preview" stages it, "save_and_publish" makes it publicly listed.
	Action string `json:"action" binding:"omitempty,oneof=save preview save_and_publish"`

	Title              string   `json:"title" binding:"required"`
	CompanyName        string   `json:"company_name" binding:"required"`
	CompanyAddress     string   `json:"company_address"`
	CompanyDescription string   `json:"company_description"`
	JobType            []string `json:"job_type"`
	Tags               []string `json:"tags"`
	LocationStreet     string   `json:"location_street"`
	LocationCity       string   `json:"location_city"`
	LocationState      string   `json:"location_state"`
	LocationZip        string   `json:"location_zip"`
	Description        string   `json:"description" binding:"required"`
	Responsibilities   []string `json:"key_responsibilities"`
	Requirements       []string `json:"requirements_qualifications"`
	Offerings          []string `json:"offerings"`
}

// JobListQuery are the recognized filters for GET /jobs.
type JobListQuery struct {
	Search   string `form:"search"`
	JobType  string `form:"job_type"`
	Location string `form:"location"`
	Tag      string `form:"tag"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

type JobLocation struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type JobStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

type JobSummary struct {
	ID         uint        `json:"id"`
	Status     string      `json:"status"`
	Title      string      `json:"title"`
	Company    string      `json:"company"`
	JobType    []string    `json:"job_type"`
	Tags       []string    `json:"tags"`
	Location   JobLocation `json:"location"`
	Applicants int         `json:"applicants"`
	Posted     string      `json:"posted"`
}

type JobDetail struct {
	JobSummary
	CompanyAddress     string   `json:"company_address"`
	CompanyDescription string   `json:"company_description"`
	Description        string   `json:"description"`
	Responsibilities   []string `json:"key_responsibilities"`
	Requirements       []string `json:"requirements_qualifications"`
	Offerings          []string `json:"offerings"`
	PostedDate         string   `json:"posted_date"`
}

func NewJobSummary(job *models.Job) JobSummary {
	return JobSummary{
		ID:      job.ID,
		Status:  string(job.Status),
		Title:   job.Title,
		Company: job.CompanyName,
		JobType: SplitList(job.JobType),
		Tags:    SplitList(job.Tags),
		Location: JobLocation{
			Street: job.LocationStreet,
			City:   job.LocationCity,
			State:  job.LocationState,
			Zip:    job.LocationZip,
		},
		Applicants: job.Applicants,
		Posted:     daysAgo(job.CreatedAt),
	}
}

func NewJobDetail(job *models.Job) JobDetail {
	return JobDetail{
		JobSummary:         NewJobSummary(job),
		CompanyAddress:     job.CompanyAddress,
		CompanyDescription: job.CompanyDescription,
		Description:        job.Description,
		Responsibilities:   DecodeList(job.Responsibilities),
		Requirements:       DecodeList(job.Requirements),
		Offerings:          DecodeList(job.Offerings),
		PostedDate:         job.CreatedAt.Format("2006-01-02"),
	}
}

// StatusForAction maps the save action on a job form to a publication
// state. An empty action saves a draft.
func StatusForAction(action string) models.JobStatus {
	switch action {
	case "save_and_publish":
		return models.JobStatusActive
	case "preview":
		return models.JobStatusPreview
	default:
		return models.JobStatusDraft
	}
}

// SplitList splits a comma-joined column into its parts.
func SplitList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinList joins parts into a comma-joined column value.
func JoinList(parts []string) string {
	return strings.Join(parts, ",")
}

// EncodeList marshals a string list into its JSON text column form.
func EncodeList(parts []string) string {
	if parts == nil {
		parts = []string{}
	}
	b, _ := json.Marshal(parts)
	return string(b)
}

// DecodeList unmarshals a JSON text column into a string list.
func DecodeList(s string) []string {
	if s == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return []string{}
	}
	return out
}

func daysAgo(t time.Time) string {
	days := int(time.Since(t).Hours() / 24)
	if days <= 0 {
		return "Today"
	}
	return fmt.Sprintf("%d days ago", days)
}
