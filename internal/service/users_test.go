package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SensorGrid.mongoDB/internal/models"
	"SensorGrid.mongoDB/internal/repository"
)

func newUserService() *UserService {
	return NewUserService(repository.NewMemoryUserRepository())
}

func validUser() models.CreateUserInput {
	return models.CreateUserInput{
		Name:     "Ana Torres",
		Email:    "ana@example.com",
		Password: "secret123",
		Role:     "admin",
	}
}

func TestUserCreateAndGet(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validUser())
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())
	assert.Empty(t, created.Password)

	got, err := svc.GetByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Ana Torres", got.Name)
	assert.Equal(t, "ana@example.com", got.Email)
	assert.Equal(t, "admin", got.Role)
	assert.Empty(t, got.Password)
}

func TestUserPasswordNeverSerialized(t *testing.T) {
	svc := newUserService()

	created, err := svc.Create(context.Background(), validUser())
	require.NoError(t, err)

	body, err := json.Marshal(created)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")
	assert.NotContains(t, string(body), "secret123")
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	_, err := svc.Create(ctx, validUser())
	require.NoError(t, err)

	in := validUser()
	in.Name = "Someone Else"
	_, err = svc.Create(ctx, in)
	requireAPIErrorCode(t, err, models.ErrorCodeConflict)
}

func TestUserCreateValidation(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.CreateUserInput)
	}{
		{"missing name", func(in *models.CreateUserInput) { in.Name = "" }},
		{"missing email", func(in *models.CreateUserInput) { in.Email = "" }},
		{"malformed email", func(in *models.CreateUserInput) { in.Email = "not-an-email" }},
		{"short password", func(in *models.CreateUserInput) { in.Password = "abc" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validUser()
			tt.mutate(&in)
			_, err := svc.Create(ctx, in)
			requireAPIErrorCode(t, err, models.ErrorCodeBadRequest)
		})
	}
}

func TestUserGetMalformedID(t *testing.T) {
	svc := newUserService()

	_, err := svc.GetByID(context.Background(), "not-a-hex-id")
	requireAPIErrorCode(t, err, models.ErrorCodeBadRequest)
}

func TestUserUpdatePartial(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validUser())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID.Hex(), models.UpdateUserInput{Role: strPtr("viewer")})
	require.NoError(t, err)
	assert.Equal(t, "viewer", updated.Role)
	assert.Equal(t, "Ana Torres", updated.Name)
	assert.Equal(t, "ana@example.com", updated.Email)
}

func TestUserUpdateEmptyChangeSet(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validUser())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID.Hex(), models.UpdateUserInput{})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Ana Torres", updated.Name)
}

func TestUserUpdatePasswordRehash(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validUser())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID.Hex(), models.UpdateUserInput{Password: strPtr("newsecret9")})
	require.NoError(t, err)
	assert.Empty(t, updated.Password)
}

func TestUserUpdateDuplicateEmail(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	_, err := svc.Create(ctx, validUser())
	require.NoError(t, err)

	other, err := svc.Create(ctx, models.CreateUserInput{
		Name:     "Someone Else",
		Email:    "else@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// Email updates have no pre-check; the duplicate-key guard in the
	// store must still come back as a Conflict.
	_, err = svc.Update(ctx, other.ID.Hex(), models.UpdateUserInput{Email: strPtr("ana@example.com")})
	requireAPIErrorCode(t, err, models.ErrorCodeConflict)
}

func TestUserUpdateMissing(t *testing.T) {
	svc := newUserService()

	_, err := svc.Update(context.Background(), "ffffffffffffffffffffffff", models.UpdateUserInput{Name: strPtr("x")})
	requireAPIErrorCode(t, err, models.ErrorCodeNotFound)
}

func TestUserDeleteIdempotence(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validUser())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID.Hex()))

	err = svc.Delete(ctx, created.ID.Hex())
	requireAPIErrorCode(t, err, models.ErrorCodeNotFound)

	_, err = svc.GetByID(ctx, created.ID.Hex())
	requireAPIErrorCode(t, err, models.ErrorCodeNotFound)
}
