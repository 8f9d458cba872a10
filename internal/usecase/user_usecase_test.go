package usecase_test

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/incident-intake/internal/domain"
	"github.com/incident-intake/internal/domain/repository"
	"github.com/incident-intake/internal/pkg/errors"
	"github.com/incident-intake/internal/usecase"
	"github.com/incident-intake/internal/usecase/dto"
)

func requireAppError(t *testing.T, err error, kind *errors.AppError, message string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := errors.As(err)
	require.True(t, ok, "expected *AppError, got %T", err)
	assert.True(t, stderrors.Is(err, kind), "expected %s, got %s", kind.Code, appErr.Code)
	if message != "" {
		assert.Equal(t, message, appErr.Message)
	}
}

func TestUserUseCase_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with is_active defaulting to true", func(t *testing.T) {
		in := newIntake()
		req := userRequest("a@example.com")

		ack, err := in.users.CreateUser(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "User created successfully", ack.Message)
		assert.Equal(t, "user_id", ack.IDKey)
		assert.Equal(t, req.ID, ack.ID)

		var stored domain.User
		found, err := in.store.FindOne(ctx, domain.CollectionUsers, bson.M{"_id": req.ID}, &stored)
		require.NoError(t, err)
		require.True(t, found)
		assert.True(t, stored.IsActive)
		assert.Equal(t, domain.RoleCitizen, stored.Role)
		assert.Equal(t, "$2b$12$hash", stored.PasswordHash)
		assert.True(t, stored.CreatedAt.Equal(fixtureTime))
	})

	t.Run("keeps explicit is_active false", func(t *testing.T) {
		in := newIntake()
		req := userRequest("b@example.com")
		req.IsActive = boolPtr(false)

		_, err := in.users.CreateUser(ctx, req)
		require.NoError(t, err)

		var stored domain.User
		_, err = in.store.FindOne(ctx, domain.CollectionUsers, bson.M{"_id": req.ID}, &stored)
		require.NoError(t, err)
		assert.False(t, stored.IsActive)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		in := newIntake()
		_, err := in.users.CreateUser(ctx, userRequest("dup@example.com"))
		require.NoError(t, err)

		_, err = in.users.CreateUser(ctx, userRequest("dup@example.com"))
		requireAppError(t, err, errors.ErrConflict, "Email already exists")

		appErr, _ := errors.As(err)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
		assert.Equal(t, 1, in.store.Count(domain.CollectionUsers))
	})

	t.Run("rejects duplicate id", func(t *testing.T) {
		in := newIntake()
		first := userRequest("first@example.com")
		_, err := in.users.CreateUser(ctx, first)
		require.NoError(t, err)

		second := userRequest("second@example.com")
		second.ID = first.ID
		_, err = in.users.CreateUser(ctx, second)
		requireAppError(t, err, errors.ErrConflict, "User already exists")
		assert.Equal(t, 1, in.store.Count(domain.CollectionUsers))
	})

	t.Run("validation errors", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*dto.CreateUserRequest)
			field  string
		}{
			{"role outside enum", func(r *dto.CreateUserRequest) { r.Role = "superuser" }, "role"},
			{"malformed email", func(r *dto.CreateUserRequest) { r.Email = "not-an-email" }, "email"},
			{"missing name", func(r *dto.CreateUserRequest) { r.Name = "" }, "name"},
			{"missing created_at", func(r *dto.CreateUserRequest) { r.CreatedAt = dto.Timestamp{} }, "created_at"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				in := newIntake()
				req := userRequest("valid@example.com")
				tt.mutate(&req)

				_, err := in.users.CreateUser(ctx, req)
				requireAppError(t, err, errors.ErrValidation, "")

				appErr, _ := errors.As(err)
				assert.Equal(t, http.StatusUnprocessableEntity, appErr.StatusCode)
				assert.Contains(t, appErr.Details, tt.field)
				assert.Zero(t, in.store.Count(domain.CollectionUsers))
			})
		}
	})

	t.Run("duplicate key on insert resolves to the email conflict", func(t *testing.T) {
		store := &MockDocumentStore{}
		uc := usecase.NewUserUseCase(store, zap.NewNop())
		req := userRequest("race@example.com")

		store.On("FindOne", mock.Anything, domain.CollectionUsers, bson.M{"email": req.Email}, nil).Return(false, nil).Once()
		store.On("FindOne", mock.Anything, domain.CollectionUsers, bson.M{"_id": req.ID}, nil).Return(false, nil).Once()
		store.On("InsertOne", mock.Anything, domain.CollectionUsers, mock.Anything).Return(nil, repository.ErrDuplicateKey).Once()
		store.On("FindOne", mock.Anything, domain.CollectionUsers, bson.M{"email": req.Email}, nil).Return(true, nil).Once()

		_, err := uc.CreateUser(ctx, req)
		requireAppError(t, err, errors.ErrConflict, "Email already exists")
		store.AssertExpectations(t)
	})

	t.Run("store failure is a database error without insert", func(t *testing.T) {
		store := &MockDocumentStore{}
		uc := usecase.NewUserUseCase(store, zap.NewNop())

		store.On("FindOne", mock.Anything, domain.CollectionUsers, mock.Anything, nil).Return(false, stderrors.New("connection reset"))

		_, err := uc.CreateUser(ctx, userRequest("down@example.com"))
		requireAppError(t, err, errors.ErrDatabaseError, "")

		appErr, _ := errors.As(err)
		assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
		store.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserUseCase_AssignUserToArea(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns and returns generated id", func(t *testing.T) {
		in := newIntake()
		s := in.seed(t)

		ack, err := in.users.AssignUserToArea(ctx, dto.CreateUserAreaRequest{UserID: s.userID, AreaID: int64Ptr(s.areaID)})
		require.NoError(t, err)
		assert.Equal(t, "User assigned to area successfully", ack.Message)
		assert.Equal(t, "id", ack.IDKey)

		id, ok := ack.ID.(string)
		require.True(t, ok, "relation id must be rendered as string")
		assert.Len(t, id, 24)
		assert.Equal(t, 1, in.store.Count(domain.CollectionUserAreas))
	})

	t.Run("user is checked before area", func(t *testing.T) {
		in := newIntake()

		_, err := in.users.AssignUserToArea(ctx, dto.CreateUserAreaRequest{UserID: "missing", AreaID: int64Ptr(99)})
		requireAppError(t, err, errors.ErrNotFound, "User not found")
		assert.Zero(t, in.store.Count(domain.CollectionUserAreas))
	})

	t.Run("missing area", func(t *testing.T) {
		in := newIntake()
		s := in.seed(t)

		_, err := in.users.AssignUserToArea(ctx, dto.CreateUserAreaRequest{UserID: s.userID, AreaID: int64Ptr(99)})
		requireAppError(t, err, errors.ErrNotFound, "Area not found")

		appErr, _ := errors.As(err)
		assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
	})

	t.Run("rejects repeated pair", func(t *testing.T) {
		in := newIntake()
		s := in.seed(t)
		req := dto.CreateUserAreaRequest{UserID: s.userID, AreaID: int64Ptr(s.areaID)}

		_, err := in.users.AssignUserToArea(ctx, req)
		require.NoError(t, err)

		_, err = in.users.AssignUserToArea(ctx, req)
		requireAppError(t, err, errors.ErrConflict, "User already assigned to this area")
		assert.Equal(t, 1, in.store.Count(domain.CollectionUserAreas))
	})

	t.Run("missing area_id is a validation error", func(t *testing.T) {
		in := newIntake()

		_, err := in.users.AssignUserToArea(ctx, dto.CreateUserAreaRequest{UserID: "u"})
		requireAppError(t, err, errors.ErrValidation, "")
	})

	t.Run("duplicate key from the index maps to the same conflict", func(t *testing.T) {
		store := &MockDocumentStore{}
		uc := usecase.NewUserUseCase(store, zap.NewNop())

		store.On("FindOne", mock.Anything, domain.CollectionUsers, mock.Anything, nil).Return(true, nil)
		store.On("FindOne", mock.Anything, domain.CollectionAreas, mock.Anything, nil).Return(true, nil)
		store.On("FindOne", mock.Anything, domain.CollectionUserAreas, mock.Anything, nil).Return(false, nil)
		store.On("InsertOne", mock.Anything, domain.CollectionUserAreas, mock.Anything).Return(nil, repository.ErrDuplicateKey)

		_, err := uc.AssignUserToArea(ctx, dto.CreateUserAreaRequest{UserID: "u", AreaID: int64Ptr(1)})
		requireAppError(t, err, errors.ErrConflict, "User already assigned to this area")
	})
}
