package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/telemetry"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const digestWorkerName = "board_digest"

// Digest - сводка по доске за последние сутки
type Digest struct {
	ActiveJobs         int64
	RecentApplications int64
	Since              time.Time
}

// DigestWorker по расписанию считает активные вакансии и свежие отклики.
// Ничего не меняет в БД, только пишет в лог и метрики.
type DigestWorker struct {
	db              *gorm.DB
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository

	spec     string
	location *time.Location
	now      func() time.Time

	mu    sync.Mutex
	sched *cron.Cron
}

// NewDigestWorker проверяет cron-выражение и часовой пояс заранее,
// чтобы ошибка конфигурации всплыла при старте
func NewDigestWorker(db *gorm.DB, spec, timezone string) (*DigestWorker, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduler timezone %q: %w", timezone, err)
	}
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("invalid scheduler spec %q: %w", spec, err)
	}

	return &DigestWorker{
		db:              db,
		jobRepo:         repositories.NewJobRepository(),
		applicationRepo: repositories.NewApplicationRepository(),
		spec:            spec,
		location:        loc,
		now:             time.Now,
	}, nil
}

// Start регистрирует задачу и запускает планировщик; останавливается по ctx
func (w *DigestWorker) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.sched != nil {
		return nil
	}

	sched := cron.New(
		cron.WithLocation(w.location),
		cron.WithChain(cron.Recover(cron.DiscardLogger)),
	)
	if _, err := sched.AddFunc(w.spec, func() {
		_, _ = w.RunOnce(ctx)
	}); err != nil {
		return fmt.Errorf("failed to schedule digest: %w", err)
	}
	sched.Start()
	w.sched = sched

	logger.Info("Scheduler started", "worker", digestWorkerName, "spec", w.spec, "timezone", w.location.String())

	go func() {
		<-ctx.Done()
		w.Stop()
	}()
	return nil
}

// Stop останавливает планировщик и ждет завершения текущего запуска
func (w *DigestWorker) Stop() {
	w.mu.Lock()
	sched := w.sched
	w.sched = nil
	w.mu.Unlock()

	if sched == nil {
		return
	}
	<-sched.Stop().Done()
	logger.Info("Scheduler stopped", "worker", digestWorkerName)
}

// RunOnce считает сводку за последние 24 часа
func (w *DigestWorker) RunOnce(ctx context.Context) (*Digest, error) {
	db := w.db.WithContext(ctx)
	since := w.now().Add(-24 * time.Hour)

	active, err := w.jobRepo.CountActive(db)
	if err != nil {
		telemetry.RecordDigest(err, 0)
		logger.WorkerLog(digestWorkerName, "count_active_jobs", err)
		return nil, err
	}

	recent, err := w.applicationRepo.CountSince(db, since)
	if err != nil {
		telemetry.RecordDigest(err, 0)
		logger.WorkerLog(digestWorkerName, "count_recent_applications", err)
		return nil, err
	}

	telemetry.RecordDigest(nil, active)
	logger.WorkerLog(digestWorkerName, "digest", nil,
		"active_jobs", active,
		"applications_last_24h", recent,
	)

	return &Digest{ActiveJobs: active, RecentApplications: recent, Since: since}, nil
}
