package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/models/request_models"
	"inkwell/internal/repositories"
	mem "inkwell/pkg/memcache"
	"inkwell/pkg/utils"
)

type recordingMailService struct {
	resetTokens []string
	fail        bool
}

func (m *recordingMailService) SendMailToNotifyUser(to, subject, body, ctaText, ctaURL string) error {
	return nil
}

func (m *recordingMailService) SendMailToResetPassword(to string, token string) error {
	if m.fail {
		return assert.AnError
	}
	m.resetTokens = append(m.resetTokens, token)
	return nil
}

func newAccountService(t *testing.T) (AccountServiceInterface, *recordingMailService) {
	db := setupTestDB(t)
	mail := &recordingMailService{}
	service := NewAccountService(repositories.NewAccountRepository(db), mail, mem.NewResetTokens())
	return service, mail
}

func signUp(t *testing.T, service AccountServiceInterface, email string) {
	err := service.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Reader",
		Email:       email,
		Password:    "hunter22",
	})
	require.NoError(t, err)
}

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("register then log in", func(t *testing.T) {
		service, _ := newAccountService(t)
		signUp(t, service, "reader@example.com")

		token, err := service.Login(ctx, request_models.LoginRequest{
			Email:    "reader@example.com",
			Password: "hunter22",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		service, _ := newAccountService(t)
		signUp(t, service, "reader@example.com")

		err := service.CreateAccount(ctx, request_models.SignUpRequest{
			DisplayName: "Impostor",
			Email:       "reader@example.com",
			Password:    "different",
		})
		assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored account", func(t *testing.T) {
		db := setupTestDB(t)
		service := NewAccountService(repositories.NewAccountRepository(db), &recordingMailService{}, mem.NewResetTokens())
		account := createTestAccount(t, db, "reader@example.com")

		profile, err := service.GetProfile(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, "reader@example.com", profile.Email)
		assert.Equal(t, "user", profile.Role)
	})

	t.Run("unknown account", func(t *testing.T) {
		service, _ := newAccountService(t)

		_, err := service.GetProfile(ctx, uuid.New())
		assert.ErrorIs(t, err, utils.ErrAccountNotFound)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong password", func(t *testing.T) {
		service, _ := newAccountService(t)
		signUp(t, service, "reader@example.com")

		_, err := service.Login(ctx, request_models.LoginRequest{
			Email:    "reader@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		service, _ := newAccountService(t)

		_, err := service.Login(ctx, request_models.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})
}

func TestPasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("full reset round trip", func(t *testing.T) {
		service, mail := newAccountService(t)
		signUp(t, service, "reader@example.com")

		require.NoError(t, service.RequestPasswordReset(ctx, "reader@example.com"))
		require.Len(t, mail.resetTokens, 1)

		err := service.ResetPassword(ctx, request_models.ForgotPasswordRequest{
			Email:       "reader@example.com",
			NewPassword: "newsecret",
			Token:       mail.resetTokens[0],
		})
		require.NoError(t, err)

		_, err = service.Login(ctx, request_models.LoginRequest{Email: "reader@example.com", Password: "hunter22"})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

		token, err := service.Login(ctx, request_models.LoginRequest{Email: "reader@example.com", Password: "newsecret"})
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("tokens are single use", func(t *testing.T) {
		service, mail := newAccountService(t)
		signUp(t, service, "reader@example.com")
		require.NoError(t, service.RequestPasswordReset(ctx, "reader@example.com"))

		req := request_models.ForgotPasswordRequest{
			Email:       "reader@example.com",
			NewPassword: "newsecret",
			Token:       mail.resetTokens[0],
		}
		require.NoError(t, service.ResetPassword(ctx, req))
		assert.ErrorIs(t, service.ResetPassword(ctx, req), utils.ErrInvalidResetToken)
	})

	t.Run("token bound to the requesting email", func(t *testing.T) {
		service, mail := newAccountService(t)
		signUp(t, service, "reader@example.com")
		signUp(t, service, "other@example.com")
		require.NoError(t, service.RequestPasswordReset(ctx, "reader@example.com"))

		err := service.ResetPassword(ctx, request_models.ForgotPasswordRequest{
			Email:       "other@example.com",
			NewPassword: "stolen",
			Token:       mail.resetTokens[0],
		})
		assert.ErrorIs(t, err, utils.ErrInvalidResetToken)
	})

	t.Run("unknown email does not leak", func(t *testing.T) {
		service, mail := newAccountService(t)

		assert.NoError(t, service.RequestPasswordReset(ctx, "ghost@example.com"))
		assert.Empty(t, mail.resetTokens)
	})

	t.Run("mail failure does not fail the request", func(t *testing.T) {
		service, mail := newAccountService(t)
		mail.fail = true
		signUp(t, service, "reader@example.com")

		assert.NoError(t, service.RequestPasswordReset(ctx, "reader@example.com"))
	})
}
