package repository

import (
	"context"
	"errors"
	"fmt"
	"taskboard/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrDuplicateUsername error = errors.New("username already exists")

type UserRepository struct {
	db Database
}

func NewUserRepository(db Database) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Insert(ctx context.Context, username, passwordHash, role string) (User, error) {
	user := User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}

	err := r.db.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return User{}, ErrDuplicateUsername
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

// FindByCredentials matches exactly on both username and password hash. A
// missing user and a wrong hash are indistinguishable to the caller.
func (r *UserRepository) FindByCredentials(ctx context.Context, username, passwordHash string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, map[string]any{
		"username":      username,
		"password_hash": passwordHash,
	}, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by credentials: %w", err)
	}

	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]User, error) {
	var users []User
	if err := r.db.GetAll(ctx, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.DeleteBy(ctx, &User{}, map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
