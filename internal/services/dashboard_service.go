package services

import (
	"context"
	"strings"
	"time"

	"github.com/firstshift/jobboard/internal/dtos"
	"github.com/firstshift/jobboard/internal/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

// Metrics aggregates the business user's dashboard numbers and job list.
func (s *DashboardService) Metrics(ctx context.Context, owner *models.User) (*dtos.DashboardResponse, error) {
	db := s.DB.WithContext(ctx)

	var activeJobs int64
	if err := db.Model(&models.Job{}).
		Where("owner_id = ? AND status = ?", owner.ID, models.JobStatusActive).
		Count(&activeJobs).Error; err != nil {
		return nil, err
	}

	ownedApps := db.Model(&models.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.owner_id = ?", owner.ID)

	var totalApps int64
	if err := ownedApps.Session(&gorm.Session{}).Count(&totalApps).Error; err != nil {
		return nil, err
	}

	monthStart := time.Now().UTC()
	monthStart = time.Date(monthStart.Year(), monthStart.Month(), 1, 0, 0, 0, 0, time.UTC)
	var newThisMonth int64
	if err := ownedApps.Session(&gorm.Session{}).
		Where("applications.applied_at >= ?", monthStart).
		Count(&newThisMonth).Error; err != nil {
		return nil, err
	}

	// Response rate: share of applications moved past the initial state.
	var reviewed int64
	if err := ownedApps.Session(&gorm.Session{}).
		Where("applications.status <> ?", models.StatusApplied).
		Count(&reviewed).Error; err != nil {
		return nil, err
	}
	responseRate := 0.0
	if totalApps > 0 {
		responseRate = float64(reviewed) / float64(totalApps) * 100
	}

	var jobs []models.Job
	if err := db.Where("owner_id = ?", owner.ID).
		Order("created_at DESC, id ASC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}

	// One aggregate query covers every job's applicant count.
	var counts []struct {
		JobID uint
		N     int64
	}
	if err := db.Model(&models.Application{}).
		Select("applications.job_id AS job_id, COUNT(*) AS n").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.owner_id = ?", owner.ID).
		Group("applications.job_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	countByJob := make(map[uint]int64, len(counts))
	for _, c := range counts {
		countByJob[c.JobID] = c.N
	}

	dashJobs := make([]dtos.DashboardJob, 0, len(jobs))
	for i := range jobs {
		dashJobs = append(dashJobs, dtos.DashboardJob{
			JobSummary:       dtos.NewJobSummary(&jobs[i]),
			ApplicationCount: countByJob[jobs[i].ID],
		})
	}

	return &dtos.DashboardResponse{
		Metrics: dtos.DashboardMetrics{
			ActiveJobs:           activeJobs,
			TotalApplications:    totalApps,
			NewApplicationsMonth: newThisMonth,
			ResponseRate:         responseRate,
		},
		Jobs: dashJobs,
	}, nil
}

// Jobs lists the owner's postings for the dashboard, drafts and archived
// included, optionally narrowed by a text search or a publication state.
func (s *DashboardService) Jobs(ctx context.Context, owner *models.User, search string, status models.JobStatus) ([]models.Job, error) {
	query := s.DB.WithContext(ctx).Where("owner_id = ?", owner.ID)
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(company_name) LIKE ?", like, like)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var jobs []models.Job
	err := query.Order("created_at DESC, id ASC").Find(&jobs).Error
	return jobs, err
}

// Stats returns per-table row counts for the admin surface.
func (s *DashboardService) Stats(ctx context.Context) (map[string]int64, error) {
	db := s.DB.WithContext(ctx)
	stats := map[string]int64{}

	counts := []struct {
		name  string
		model any
	}{
		{"users", &models.User{}},
		{"jobs", &models.Job{}},
		{"applications", &models.Application{}},
	}
	for _, c := range counts {
		var n int64
		if err := db.Model(c.model).Count(&n).Error; err != nil {
			return nil, err
		}
		stats[c.name] = n
	}
	return stats, nil
}
