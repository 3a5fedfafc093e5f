package services

import (
	"context"
	"testing"

	"github.com/firstshift/jobboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardMetricsAndCounts(t *testing.T) {
	db := newTestDB(t)
	dash := NewDashboardService(db)
	apps := newAppService(t, db)
	ctx := context.Background()

	owner := newTestUser(t, db, "b@y.com", models.RoleBusiness)
	other := newTestUser(t, db, "c@z.com", models.RoleBusiness)
	alice := newTestUser(t, db, "alice@x.com", models.RoleApplicant)
	bob := newTestUser(t, db, "bob@x.com", models.RoleApplicant)

	cashier := newTestJob(t, db, owner, "Cashier")
	stocker := newTestJob(t, db, owner, "Stocker")
	draft := newTestJob(t, db, owner, "Unlisted")
	require.NoError(t, db.Model(draft).Update("status", models.JobStatusDraft).Error)
	otherJob := newTestJob(t, db, other, "Barista")

	_, err := apps.Apply(ctx, alice, cashier.ID, testForm(), nil, "")
	require.NoError(t, err)
	_, err = apps.Apply(ctx, bob, cashier.ID, testForm(), nil, "")
	require.NoError(t, err)
	_, err = apps.Apply(ctx, alice, stocker.ID, testForm(), nil, "")
	require.NoError(t, err)
	_, err = apps.Apply(ctx, bob, otherJob.ID, testForm(), nil, "")
	require.NoError(t, err)

	resp, err := dash.Metrics(ctx, owner)
	require.NoError(t, err)

	// Drafts and other owners' jobs stay out of the headline numbers.
	assert.EqualValues(t, 2, resp.Metrics.ActiveJobs)
	assert.EqualValues(t, 3, resp.Metrics.TotalApplications)

	counts := map[string]int64{}
	for _, j := range resp.Jobs {
		counts[j.Title] = j.ApplicationCount
	}
	assert.EqualValues(t, 2, counts["Cashier"])
	assert.EqualValues(t, 1, counts["Stocker"])
	assert.EqualValues(t, 0, counts["Unlisted"])
	assert.NotContains(t, counts, "Barista")
}

func TestDashboardJobsFiltered(t *testing.T) {
	db := newTestDB(t)
	dash := NewDashboardService(db)
	ctx := context.Background()

	owner := newTestUser(t, db, "b@y.com", models.RoleBusiness)
	newTestJob(t, db, owner, "Cashier")
	archived := newTestJob(t, db, owner, "Stocker")
	require.NoError(t, db.Model(archived).Update("status", models.JobStatusArchived).Error)

	jobs, err := dash.Jobs(ctx, owner, "", "")
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	jobs, err = dash.Jobs(ctx, owner, "", models.JobStatusArchived)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Stocker", jobs[0].Title)

	jobs, err = dash.Jobs(ctx, owner, "cash", "")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Cashier", jobs[0].Title)
}
