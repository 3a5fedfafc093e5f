package services

import (
	"context"
	"errors"
	"time"

	"github.com/firstshift/jobboard/internal/apperr"
	"github.com/firstshift/jobboard/internal/dtos"
	"github.com/firstshift/jobboard/internal/models"
	"github.com/firstshift/jobboard/internal/storage"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB    *gorm.DB
	Files storage.FileStore
}

func NewApplicationService(db *gorm.DB, files storage.FileStore) *ApplicationService {
	return &ApplicationService{DB: db, Files: files}
}

// Apply creates an application in state applied. The resume, if supplied,
// is handed to the file store before the transaction so an oversize upload
// never writes a row. Duplicate (user, job) pairs are rejected by the
// composite unique index, which also settles concurrent applies.
func (s *ApplicationService) Apply(ctx context.Context, applicant *models.User, jobID uint, form *dtos.ApplicationForm, resume []byte, resumeExt string) (*models.Application, error) {
	if applicant.Role != models.RoleApplicant {
		return nil, apperr.Forbidden("only applicants can apply to jobs")
	}
	if !form.TermsAccepted {
		return nil, apperr.Validation("terms_accepted: terms and conditions must be accepted")
	}

	resumePath := ""
	if len(resume) > 0 {
		path, err := s.Files.Store(resume, resumeExt, "resumes")
		if err != nil {
			return nil, err
		}
		resumePath = path
	}

	app := &models.Application{
		UserID:            applicant.ID,
		JobID:             jobID,
		Status:            models.StatusApplied,
		CoverLetter:       form.CoverLetter,
		ResumePath:        resumePath,
		Experience:        form.Experience,
		Education:         form.Education,
		Availability:      form.Availability,
		References:        form.References,
		TermsAccepted:     form.TermsAccepted,
		ContactPermission: form.ContactPermission,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var job models.Job
		if err := tx.First(&job, jobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("job not found")
			}
			return err
		}
		// Unpublished jobs are invisible to applicants.
		if job.Status != models.JobStatusActive {
			return apperr.NotFound("job not found")
		}

		if err := tx.Create(app).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Conflict("you have already applied to this job")
			}
			return err
		}

		return tx.Model(&models.Job{}).
			Where("id = ?", jobID).
			UpdateColumn("applicants", gorm.Expr("applicants + 1")).Error
	})
	if err != nil {
		// No row was written; the stored resume goes with it.
		if resumePath != "" {
			_ = s.Files.Remove(resumePath)
		}
		return nil, err
	}
	return app, nil
}

// UpdateStatus transitions an application along the status state machine.
// Only the owner of the referenced job may transition it. The write is
// optimistic: it succeeds only if the status still matches the state the
// transition was validated against, otherwise the caller gets a conflict.
func (s *ApplicationService) UpdateStatus(ctx context.Context, actor *models.User, applicationID uint, next models.Status) (*models.Application, error) {
	if !next.Valid() {
		return nil, apperr.Validation("status: unknown status %q", string(next))
	}

	var app models.Application
	err := s.DB.WithContext(ctx).First(&app, applicationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("application not found")
		}
		return nil, err
	}

	var job models.Job
	if err := s.DB.WithContext(ctx).First(&job, app.JobID).Error; err != nil {
		return nil, err
	}
	if job.OwnerID != actor.ID {
		return nil, apperr.Forbidden("application belongs to another user's job")
	}

	if app.Status.Terminal() {
		return nil, apperr.Conflict("application is already %s", string(app.Status))
	}
	if !app.Status.CanTransitionTo(next) {
		return nil, apperr.Conflict("cannot transition from %s to %s", string(app.Status), string(next))
	}

	res := s.DB.WithContext(ctx).Model(&models.Application{}).
		Where("id = ? AND status = ?", app.ID, app.Status).
		Updates(map[string]any{"status": next, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.Conflict("application status changed concurrently, retry")
	}

	app.Status = next
	return &app, nil
}

// ListMine returns the applicant's own applications, newest first.
func (s *ApplicationService) ListMine(ctx context.Context, applicant *models.User, page, limit int) ([]models.Application, error) {
	offset, size := pageBounds(page, limit)
	var apps []models.Application
	err := s.DB.WithContext(ctx).
		Preload("Job").
		Where("user_id = ?", applicant.ID).
		Order("applied_at DESC, id ASC").
		Offset(offset).
		Limit(size).
		Find(&apps).Error
	return apps, err
}

// ListForJob returns the applications for a job the actor owns.
func (s *ApplicationService) ListForJob(ctx context.Context, actor *models.User, jobID uint, page, limit int) ([]models.Application, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).First(&job, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("job not found")
		}
		return nil, err
	}
	if job.OwnerID != actor.ID {
		return nil, apperr.Forbidden("job belongs to another user")
	}

	offset, size := pageBounds(page, limit)
	var apps []models.Application
	err = s.DB.WithContext(ctx).
		Preload("Job").
		Preload("User").
		Where("job_id = ?", jobID).
		Order("applied_at DESC, id ASC").
		Offset(offset).
		Limit(size).
		Find(&apps).Error
	return apps, err
}
