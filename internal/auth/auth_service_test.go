package auth_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-wemall-api/internal/auth"
	autherrors "go-wemall-api/internal/auth/errors"
	mock "go-wemall-api/internal/mock/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := auth.NewService(repo)
	ctx := context.Background()

	t.Run("success_lowercases_email", func(t *testing.T) {
		repo.EXPECT().
			Create(ctx, "jane@example.com", "Jane", gomock.Any(), "CUSTOMER").
			Return(auth.User{ID: uuid.New(), Email: "jane@example.com", Name: "Jane", Role: "CUSTOMER"}, nil)

		res, err := svc.Register(ctx, auth.RegisterRequest{
			Email:    "Jane@Example.COM",
			Name:     "Jane",
			Password: "secret123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "jane@example.com", res.Email)
		assert.Equal(t, "CUSTOMER", res.Role)
	})

	t.Run("duplicate_email", func(t *testing.T) {
		repo.EXPECT().
			Create(ctx, "jane@example.com", "Jane", gomock.Any(), "CUSTOMER").
			Return(auth.User{}, errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`))

		_, err := svc.Register(ctx, auth.RegisterRequest{
			Email:    "jane@example.com",
			Name:     "Jane",
			Password: "secret123",
		})

		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := auth.NewService(repo)
	ctx := context.Background()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	user := auth.User{
		ID:       uuid.New(),
		Email:    "jane@example.com",
		Name:     "Jane",
		Password: string(hashed),
		Role:     "CUSTOMER",
	}

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().GetByEmail(ctx, "jane@example.com").Return(user, nil)

		res, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "jane@example.com",
			Password: "secret123",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.Equal(t, user.ID.String(), res.User.ID)
	})

	t.Run("wrong_password", func(t *testing.T) {
		repo.EXPECT().GetByEmail(ctx, "jane@example.com").Return(user, nil)

		_, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "jane@example.com",
			Password: "wrong",
		})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown_email_same_error_as_wrong_password", func(t *testing.T) {
		repo.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(auth.User{}, sql.ErrNoRows)

		_, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "ghost@example.com",
			Password: "whatever",
		})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := auth.NewService(repo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		userID := uuid.New()

		repo.EXPECT().GetByID(ctx, userID).
			Return(auth.User{ID: userID, Email: "jane@example.com", Role: "CUSTOMER"}, nil)

		res, err := svc.GetMe(ctx, userID.String())
		assert.NoError(t, err)
		assert.Equal(t, userID.String(), res.ID)
	})

	t.Run("not_found", func(t *testing.T) {
		userID := uuid.New()

		repo.EXPECT().GetByID(ctx, userID).Return(auth.User{}, sql.ErrNoRows)

		_, err := svc.GetMe(ctx, userID.String())
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})

	t.Run("invalid_user_id", func(t *testing.T) {
		_, err := svc.GetMe(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})
}
