package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"shoply-be/internal/entities"
)

//go:generate mockgen -source=user_repository.go -destination=mocks/mock_user_repository.go -package=mocks

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(name, email, passwordHash string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	FindByID(id string) (*entities.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(name, email, passwordHash string) (*entities.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, password_hash, created_at
	`

	var user entities.User
	err := r.db.QueryRow(query, name, email, passwordHash).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// FindByEmail finds a user by email, compared exactly as stored.
// Returns (nil, nil) when no user exists.
func (r *userRepository) FindByEmail(email string) (*entities.User, error) {
	return r.findOne(`
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`, email)
}

// FindByID finds a user by ID. Returns (nil, nil) when no user exists.
func (r *userRepository) FindByID(id string) (*entities.User, error) {
	return r.findOne(`
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE id = $1
	`, id)
}

func (r *userRepository) findOne(query string, arg any) (*entities.User, error) {
	var user entities.User
	err := r.db.QueryRow(query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}
