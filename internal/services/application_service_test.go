package services_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/testutil"
	"jobboard_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyRequest(t *testing.T, jobID string) *dto.ApplyRequest {
	return &dto.ApplyRequest{
		JobID:       jobID,
		Resume:      testutil.FileHeader(t, "resume", "My CV.pdf", testutil.PDFContent),
		CoverLetter: "  Hire me  ",
	}
}

func countStubs(t *testing.T, f *fixture, jobID string) int64 {
	var n int64
	require.NoError(t, f.db.Model(&models.JobApplicant{}).Where("job_id = ?", jobID).Count(&n).Error)
	return n
}

func TestApply_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	employer := testutil.CreateUser(t, f.db, models.UserRoleEmployer)
	seeker := testutil.CreateUser(t, f.db, models.UserRoleJobSeeker)
	job := testutil.CreateJob(t, f.db, employer)

	app, err := f.svc.ApplicationService.Apply(ctx, f.db, seeker, applyRequest(t, job.ID))
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusApplied, app.Status)
	assert.Equal(t, "Hire me", app.CoverLetter)
	assert.True(t, strings.HasPrefix(app.Resume, "resumes/resume-my-cv-"), app.Resume)
	assert.True(t, strings.HasSuffix(app.Resume, ".pdf"))
	assert.Equal(t, int64(1), countStubs(t, f, job.ID))

	exists, err := f.store.Exists(ctx, app.Resume)
	require.NoError(t, err)
	assert.True(t, exists)

	profile, err := f.svc.ProfileService.GetProfile(f.db, seeker)
	require.NoError(t, err)
	require.Len(t, profile.AppliedJobs, 1)
	assert.Equal(t, job.ID, profile.AppliedJobs[0].ID)

	f.svc.NotificationService.Wait()
	sent := f.mail.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{employer.Email}, sent[0].To)
}

func TestApply_Twice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	employer := testutil.CreateUser(t, f.db, models.UserRoleEmployer)
	seeker := testutil.CreateUser(t, f.db, models.UserRoleJobSeeker)
	job := testutil.CreateJob(t, f.db, employer)

	_, err := f.svc.ApplicationService.Apply(ctx, f.db, seeker, applyRequest(t, job.ID))
	require.NoError(t, err)

	_, err = f.svc.ApplicationService.Apply(ctx, f.db, seeker, applyRequest(t, job.ID))
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
	assert.Equal(t, int64(1), countStubs(t, f, job.ID))
}

func TestApply_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	employer := testutil.CreateUser(t, f.db, models.UserRoleEmployer)
	seeker := testutil.CreateUser(t, f.db, models.UserRoleJobSeeker)
	job := testutil.CreateJob(t, f.db, employer)

	t.Run("unknown job", func(t *testing.T) {
		_, err := f.svc.ApplicationService.Apply(ctx, f.db, seeker, applyRequest(t, uuid.NewString()))
		assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
	})

	t.Run("malformed job id", func(t *testing.T) {
		_, err := f.svc.ApplicationService.Apply(ctx, f.db, seeker, applyRequest(t, "123"))
		assert.ErrorIs(t, err, apperrors.ErrInvalidJobID)
	})

	t.Run("no resume", func(t *testing.T) {
		_, err := f.svc.ApplicationService.Apply(ctx, f.db, seeker, &dto.ApplyRequest{JobID: job.ID})
		assert.ErrorIs(t, err, apperrors.ErrResumeRequired)
	})

	t.Run("resume is not a pdf", func(t *testing.T) {
		req := &dto.ApplyRequest{
			JobID:  job.ID,
			Resume: testutil.FileHeader(t, "resume", "cv.pdf", []byte("plain text pretending to be a pdf")),
		}
		_, err := f.svc.ApplicationService.Apply(ctx, f.db, seeker, req)
		assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
	})

	assert.Equal(t, int64(0), countStubs(t, f, job.ID))
}

func TestGetJobApplicants(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := testutil.CreateUser(t, f.db, models.UserRoleEmployer)
	other := testutil.CreateUser(t, f.db, models.UserRoleEmployer)
	seekerA := testutil.CreateUser(t, f.db, models.UserRoleJobSeeker)
	seekerB := testutil.CreateUser(t, f.db, models.UserRoleJobSeeker)
	job := testutil.CreateJob(t, f.db, owner)

	for _, s := range []*models.User{seekerA, seekerB} {
		_, err := f.svc.ApplicationService.Apply(ctx, f.db, s, applyRequest(t, job.ID))
		require.NoError(t, err)
	}

	_, err := f.svc.ApplicationService.GetJobApplicants(f.db, other, job.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotJobOwnerView)

	res, err := f.svc.ApplicationService.GetJobApplicants(f.db, owner, job.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total)
	require.Len(t, res.Applications, 2)
	for _, item := range res.Applications {
		require.NotNil(t, item.ApplicantID)
		assert.Equal(t, "5550100", item.ApplicantID.ContactNumber)
		assert.Len(t, item.AppliedAt, len(dto.AppliedAtLayout))
	}

	mine, err := f.svc.ApplicationService.GetMyApplications(f.db, seekerA)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.NotNil(t, mine[0].JobID)
	assert.Equal(t, job.JobTitle, mine[0].JobID.JobTitle)
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := testutil.CreateUser(t, f.db, models.UserRoleEmployer)
	other := testutil.CreateUser(t, f.db, models.UserRoleEmployer)
	seeker := testutil.CreateUser(t, f.db, models.UserRoleJobSeeker)
	job := testutil.CreateJob(t, f.db, owner)

	app, err := f.svc.ApplicationService.Apply(ctx, f.db, seeker, applyRequest(t, job.ID))
	require.NoError(t, err)

	// письмо об отклике уходит асинхронно; дожидаемся его, чтобы порядок писем был определен
	f.svc.NotificationService.Wait()
	require.Len(t, f.mail.Sent(), 1)
	assert.Equal(t, []string{owner.Email}, f.mail.Sent()[0].To)

	_, err = f.svc.ApplicationService.UpdateStatus(ctx, f.db, other, app.ID, &dto.UpdateStatusRequest{Status: models.ApplicationStatusHired})
	assert.ErrorIs(t, err, apperrors.ErrStatusUpdateForbidden)

	_, err = f.svc.ApplicationService.UpdateStatus(ctx, f.db, owner, app.ID, &dto.UpdateStatusRequest{Status: "promoted"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidApplicationStatus)

	_, err = f.svc.ApplicationService.UpdateStatus(ctx, f.db, owner, uuid.NewString(), &dto.UpdateStatusRequest{Status: models.ApplicationStatusHired})
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)

	updated, err := f.svc.ApplicationService.UpdateStatus(ctx, f.db, owner, app.ID, &dto.UpdateStatusRequest{Status: models.ApplicationStatusInterviewed})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusInterviewed, updated.Status)

	f.svc.NotificationService.Wait()
	sent := f.mail.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, []string{seeker.Email}, sent[1].To)
}

func TestDownloadResume(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := testutil.CreateUser(t, f.db, models.UserRoleEmployer)
	other := testutil.CreateUser(t, f.db, models.UserRoleEmployer)
	seeker := testutil.CreateUser(t, f.db, models.UserRoleJobSeeker)
	job := testutil.CreateJob(t, f.db, owner)

	app, err := f.svc.ApplicationService.Apply(ctx, f.db, seeker, applyRequest(t, job.ID))
	require.NoError(t, err)

	t.Run("owner streams the file", func(t *testing.T) {
		file, err := f.svc.ApplicationService.DownloadResume(ctx, f.db, owner, app.ID)
		require.NoError(t, err)
		defer file.Content.Close()

		data, err := io.ReadAll(file.Content)
		require.NoError(t, err)
		assert.Equal(t, testutil.PDFContent, data)
		assert.Equal(t, int64(len(testutil.PDFContent)), file.Size)
		assert.False(t, strings.Contains(file.Name, "/"))
	})

	t.Run("forbidden for others", func(t *testing.T) {
		_, err := f.svc.ApplicationService.DownloadResume(ctx, f.db, other, app.ID)
		assert.ErrorIs(t, err, apperrors.ErrResumeDownloadForbidden)

		_, err = f.svc.ApplicationService.DownloadResume(ctx, f.db, seeker, app.ID)
		assert.ErrorIs(t, err, apperrors.ErrResumeDownloadForbidden)
	})

	t.Run("unknown application", func(t *testing.T) {
		_, err := f.svc.ApplicationService.DownloadResume(ctx, f.db, owner, uuid.NewString())
		assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
	})

	t.Run("file missing in storage", func(t *testing.T) {
		require.NoError(t, f.store.Delete(ctx, app.Resume))
		_, err := f.svc.ApplicationService.DownloadResume(ctx, f.db, owner, app.ID)
		assert.ErrorIs(t, err, apperrors.ErrResumeFileNotFound)
	})
}

func TestApply_EmployerForbidden(t *testing.T) {
	// 1. Подготовка
	f := newFixture(t)
	owner := testutil.CreateUser(t, f.db, models.UserRoleEmployer)
	other := testutil.CreateUser(t, f.db, models.UserRoleEmployer)
	job := testutil.CreateJob(t, f.db, owner)

	// 2. Действие
	_, err := f.svc.ApplicationService.Apply(context.Background(), f.db, other, applyRequest(t, job.ID))

	// 3. Проверка
	assert.ErrorIs(t, err, apperrors.ErrApplyForbidden)
	assert.Equal(t, int64(0), countStubs(t, f, job.ID))
	f.svc.NotificationService.Wait()
	assert.Empty(t, f.mail.Sent())
}
