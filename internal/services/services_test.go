package services_test

import (
	"testing"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fixture - сервисы поверх in-memory БД, локального хранилища во временной папке и лог-почты
type fixture struct {
	db     *gorm.DB
	svc    *services.ServiceContainer
	store  *storage.LocalStorage
	mail   *email.LogProvider
	tokens *auth.TokenManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewTestDB(t)

	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir(), BaseURL: "/uploads"})
	require.NoError(t, err)

	tokens, err := auth.NewTokenManager("test-secret", time.Minute)
	require.NoError(t, err)

	mail := email.NewLogProvider(email.NewTemplateManager())

	svc := services.NewServiceContainer(services.Dependencies{
		Storage:       store,
		EmailProvider: mail,
		Tokens:        tokens,
	})
	t.Cleanup(svc.NotificationService.Wait)

	return &fixture{db: db, svc: svc, store: store, mail: mail, tokens: tokens}
}

func ptr[T any](v T) *T {
	return &v
}
