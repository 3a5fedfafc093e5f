package services

import (
	"context"
	"errors"
	"strings"

	"github.com/firstshift/jobboard/internal/apperr"
	"github.com/firstshift/jobboard/internal/dtos"
	"github.com/firstshift/jobboard/internal/models"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// Create persists a job posting owned by the given business user.
func (s *JobService) Create(ctx context.Context, owner *models.User, req *dtos.JobCreateRequest) (*models.Job, error) {
	if owner.Role != models.RoleBusiness {
		return nil, apperr.Forbidden("only business users can post jobs")
	}

	job := &models.Job{
		OwnerID: owner.ID,
		Status:  dtos.StatusForAction(req.Action),
	}
	applyJobFields(job, req)

	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Update mutates a job. Only the posting owner may do so. A save action in
// the request moves the publication state; without one the state is kept.
func (s *JobService) Update(ctx context.Context, owner *models.User, jobID uint, req *dtos.JobCreateRequest) (*models.Job, error) {
	job, err := s.find(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.OwnerID != owner.ID {
		return nil, apperr.Forbidden("job belongs to another user")
	}

	if req.Action != "" {
		job.Status = dtos.StatusForAction(req.Action)
	}
	applyJobFields(job, req)
	if err := s.DB.WithContext(ctx).Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes a job and, by policy, its applications with it.
func (s *JobService) Delete(ctx context.Context, owner *models.User, jobID uint) error {
	job, err := s.find(ctx, jobID)
	if err != nil {
		return err
	}
	if job.OwnerID != owner.ID {
		return apperr.Forbidden("job belongs to another user")
	}

	// The FK carries ON DELETE CASCADE; the explicit delete keeps the
	// policy visible and holds on engines without the constraint enforced.
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", jobID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Job{}, jobID).Error
	})
}

// Get loads a single job for public consumption. Jobs that are not active
// do not exist as far as the public surface is concerned.
func (s *JobService) Get(ctx context.Context, jobID uint) (*models.Job, error) {
	job, err := s.find(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusActive {
		return nil, apperr.NotFound("job not found")
	}
	return job, nil
}

// UpdateStatus flips an owned job between active and archived. Draft and
// preview are reached through the save action on the job form instead.
func (s *JobService) UpdateStatus(ctx context.Context, owner *models.User, jobID uint, status models.JobStatus) (*models.Job, error) {
	if status != models.JobStatusActive && status != models.JobStatusArchived {
		return nil, apperr.Validation("status: must be active or archived")
	}

	job, err := s.find(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.OwnerID != owner.ID {
		return nil, apperr.Forbidden("job belongs to another user")
	}

	if err := s.DB.WithContext(ctx).Model(job).Update("status", status).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// find loads a job regardless of publication state, for owner-side use.
func (s *JobService) find(ctx context.Context, jobID uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).First(&job, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("job not found")
		}
		return nil, err
	}
	return &job, nil
}

// List returns a page of jobs matching the filters. Ordering is
// created_at DESC with id ASC as tie-break, so repeated queries paginate
// deterministically.
func (s *JobService) List(ctx context.Context, q dtos.JobListQuery) ([]models.Job, error) {
	// Public listings only ever show published jobs.
	query := s.DB.WithContext(ctx).Model(&models.Job{}).
		Where("status = ?", models.JobStatusActive)

	if q.Search != "" {
		like := "%" + strings.ToLower(q.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(company_name) LIKE ? OR LOWER(tags) LIKE ?",
			like, like, like, like,
		)
	}
	if q.JobType != "" {
		query = query.Where("LOWER(job_type) LIKE ?", "%"+strings.ToLower(q.JobType)+"%")
	}
	if q.Location != "" {
		like := "%" + strings.ToLower(q.Location) + "%"
		query = query.Where("LOWER(location_city) LIKE ? OR LOWER(location_state) LIKE ?", like, like)
	}
	if q.Tag != "" {
		query = query.Where("LOWER(tags) LIKE ?", "%"+strings.ToLower(q.Tag)+"%")
	}

	offset, limit := pageBounds(q.Page, q.Limit)
	var jobs []models.Job
	err := query.
		Order("created_at DESC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

func applyJobFields(job *models.Job, req *dtos.JobCreateRequest) {
	job.Title = req.Title
	job.CompanyName = req.CompanyName
	job.CompanyAddress = req.CompanyAddress
	job.CompanyDescription = req.CompanyDescription
	job.JobType = dtos.JoinList(req.JobType)
	job.Tags = dtos.JoinList(req.Tags)
	job.LocationStreet = req.LocationStreet
	job.LocationCity = req.LocationCity
	job.LocationState = req.LocationState
	job.LocationZip = req.LocationZip
	job.Description = req.Description
	job.Responsibilities = dtos.EncodeList(req.Responsibilities)
	job.Requirements = dtos.EncodeList(req.Requirements)
	job.Offerings = dtos.EncodeList(req.Offerings)
}

func pageBounds(page, limit int) (offset, size int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit, limit
}
