package workers

import (
	"context"
	"testing"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDigestWorker_ValidatesConfig(t *testing.T) {
	db := testutil.NewTestDB(t)

	_, err := NewDigestWorker(db, "not a cron", "UTC")
	assert.Error(t, err)

	_, err = NewDigestWorker(db, "53 11 * * *", "Mars/Olympus")
	assert.Error(t, err)

	w, err := NewDigestWorker(db, "53 11 * * *", "Asia/Kolkata")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", w.location.String())
}

func TestDigestWorker_RunOnce(t *testing.T) {
	db := testutil.NewTestDB(t)
	employer := testutil.CreateUser(t, db, models.UserRoleEmployer)
	seeker := testutil.CreateUser(t, db, models.UserRoleJobSeeker)

	active := testutil.CreateJob(t, db, employer)
	testutil.CreateJob(t, db, employer)
	closed := testutil.CreateJob(t, db, employer)
	// false - нулевое значение, при Create gorm подставил бы default:true
	require.NoError(t, db.Model(closed).Update("is_active", false).Error)

	require.NoError(t, db.Create(&models.Application{JobID: active.ID, ApplicantID: seeker.ID, Resume: "resumes/a.pdf"}).Error)
	old := &models.Application{JobID: active.ID, ApplicantID: employer.ID, Resume: "resumes/b.pdf"}
	old.CreatedAt = time.Now().UTC().Add(-48 * time.Hour)
	require.NoError(t, db.Create(old).Error)

	w, err := NewDigestWorker(db, "@daily", "UTC")
	require.NoError(t, err)

	var jobsBefore, appsBefore int64
	require.NoError(t, db.Model(&models.Job{}).Count(&jobsBefore).Error)
	require.NoError(t, db.Model(&models.Application{}).Count(&appsBefore).Error)

	digest, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), digest.ActiveJobs)
	assert.Equal(t, int64(1), digest.RecentApplications)

	var jobsAfter, appsAfter int64
	require.NoError(t, db.Model(&models.Job{}).Count(&jobsAfter).Error)
	require.NoError(t, db.Model(&models.Application{}).Count(&appsAfter).Error)
	assert.Equal(t, jobsBefore, jobsAfter)
	assert.Equal(t, appsBefore, appsAfter)
}

func TestDigestWorker_StartStop(t *testing.T) {
	db := testutil.NewTestDB(t)
	w, err := NewDigestWorker(db, "53 11 * * *", "UTC")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	require.NoError(t, w.Start(ctx))

	cancel()
	w.Stop()

	w.mu.Lock()
	defer w.mu.Unlock()
	assert.Nil(t, w.sched)
}
