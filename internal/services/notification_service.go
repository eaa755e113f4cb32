package services

import (
	"context"
	"fmt"
	"sync"

	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
)

// NotificationService отправляет письма о событиях откликов.
// Отправка асинхронная: ошибки только логируются и не влияют на запрос.
type NotificationService interface {
	ApplicationReceived(ctx context.Context, poster, applicant *models.User, job *models.Job)
	StatusChanged(ctx context.Context, applicant *models.User, job *models.Job, status models.ApplicationStatus)

	// Wait дожидается завершения отправок (graceful shutdown, тесты)
	Wait()
}

type notificationService struct {
	provider email.Provider
	wg       sync.WaitGroup
}

func NewNotificationService(provider email.Provider) NotificationService {
	return &notificationService{provider: provider}
}

func (s *notificationService) ApplicationReceived(ctx context.Context, poster, applicant *models.User, job *models.Job) {
	if poster == nil || applicant == nil || job == nil {
		return
	}
	s.send(ctx, "application_received", []string{poster.Email},
		fmt.Sprintf("New application for %s", job.JobTitle),
		email.TemplateApplicationReceived,
		email.TemplateData{
			"PosterName":    poster.FullName(),
			"ApplicantName": applicant.FullName(),
			"JobTitle":      job.JobTitle,
			"CompanyName":   job.CompanyName,
		})
}

func (s *notificationService) StatusChanged(ctx context.Context, applicant *models.User, job *models.Job, status models.ApplicationStatus) {
	if applicant == nil || job == nil {
		return
	}
	s.send(ctx, "application_status_changed", []string{applicant.Email},
		fmt.Sprintf("Your application for %s was %s", job.JobTitle, status),
		email.TemplateStatusChanged,
		email.TemplateData{
			"ApplicantName": applicant.FullName(),
			"JobTitle":      job.JobTitle,
			"CompanyName":   job.CompanyName,
			"Status":        string(status),
		})
}

func (s *notificationService) Wait() {
	s.wg.Wait()
}

func (s *notificationService) send(ctx context.Context, event string, to []string, subject, template string, data email.TemplateData) {
	// запрос завершится раньше письма, отмену его контекста не наследуем
	ctx = context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				logger.CtxError(ctx, "Notification panic", "event", event, "panic", r)
			}
		}()

		if err := s.provider.SendTemplate(to, subject, template, data); err != nil {
			logger.CtxWithError(ctx, "Failed to send notification", err, "event", event)
			return
		}
		logger.CtxDebug(ctx, "Notification sent", "event", event)
	}()
}
