package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"SensorGrid.mongoDB/internal/models"
	"SensorGrid.mongoDB/internal/repository"
	"SensorGrid.mongoDB/internal/validation"
)

// bcryptCost matches the cost the legacy API used for its password hashes.
const bcryptCost = 10

// UserService enforces the user business rules: unique email, one-way
// password hashing on create and on password change, password never
// present in anything the service returns.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, storeError(ctx, err, "list users")
	}
	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, apiErr := parseID(id)
	if apiErr != nil {
		return nil, apiErr
	}
	user, err := s.users.FindByID(ctx, oid)
	if err != nil {
		return nil, storeError(ctx, err, "find user")
	}
	if user == nil {
		return nil, models.NotFound("user not found")
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, in models.CreateUserInput) (*models.User, error) {
	if apiErr := validation.ValidateStruct(in); apiErr != nil {
		return nil, apiErr
	}

	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, storeError(ctx, err, "check user email")
	}
	if existing != nil {
		return nil, models.Conflict("email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, storeError(ctx, err, "hash password")
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Role:     in.Role,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, models.Conflict("email is already registered")
		}
		return nil, storeError(ctx, err, "create user")
	}

	user.Password = ""
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, in models.UpdateUserInput) (*models.User, error) {
	oid, apiErr := parseID(id)
	if apiErr != nil {
		return nil, apiErr
	}
	if apiErr := validation.ValidateStruct(in); apiErr != nil {
		return nil, apiErr
	}

	set := bson.M{}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Email != nil {
		set["email"] = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcryptCost)
		if err != nil {
			return nil, storeError(ctx, err, "hash password")
		}
		set["password"] = string(hash)
	}
	if in.Role != nil {
		set["role"] = *in.Role
	}

	if len(set) == 0 {
		return s.GetByID(ctx, id)
	}

	user, err := s.users.UpdateByID(ctx, oid, set)
	if err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, models.Conflict("email is already registered")
		}
		return nil, storeError(ctx, err, "update user")
	}
	if user == nil {
		return nil, models.NotFound("user not found")
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	oid, apiErr := parseID(id)
	if apiErr != nil {
		return apiErr
	}
	deleted, err := s.users.DeleteByID(ctx, oid)
	if err != nil {
		return storeError(ctx, err, "delete user")
	}
	if !deleted {
		return models.NotFound("user not found")
	}
	return nil
}
