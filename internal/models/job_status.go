package models

// JobStatus is the publication state of a Job. Only active jobs appear in
// public listings; drafts and previews are reachable from the owner's
// dashboard, and archived jobs drop out of circulation without being deleted.
type JobStatus string

const (
	JobStatusDraft    JobStatus = "draft"
	JobStatusPreview  JobStatus = "preview"
	JobStatusActive   JobStatus = "active"
	JobStatusArchived JobStatus = "archived"
)

// Valid reports whether s is a recognized publication state.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusDraft, JobStatusPreview, JobStatusActive, JobStatusArchived:
		return true
	}
	return false
}
