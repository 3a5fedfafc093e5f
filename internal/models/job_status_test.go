package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobStatusValid(t *testing.T) {
	for _, s := range []JobStatus{JobStatusDraft, JobStatusPreview, JobStatusActive, JobStatusArchived} {
		assert.True(t, s.Valid(), "status %s", s)
	}
	assert.False(t, JobStatus("published").Valid())
	assert.False(t, JobStatus("").Valid())
}
