package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Zerogne/Haneducation-sub000/internal/db"
	"github.com/Zerogne/Haneducation-sub000/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for unknown users and wrong passwords
// alike, so login responses do not reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserService handles admin accounts.
type UserService struct {
	col store.Collection
}

// NewUserService creates a UserService instance.
func NewUserService(col store.Collection) *UserService {
	return &UserService{col: col}
}

// Authenticate checks a username/password pair against the users collection.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*db.User, error) {
	var user db.User
	err := s.col.FindOne(ctx, bson.M{"username": strings.TrimSpace(username)}, &user)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// EnsureAdmin creates the bootstrap admin account when it does not exist
// yet. Called at startup with credentials from the environment; a blank
// username or password skips the bootstrap.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil
	}

	var existing db.User
	err := s.col.FindOne(ctx, bson.M{"username": username}, &existing)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("look up admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC()
	_, err = s.col.InsertOne(ctx, db.User{
		Username:  username,
		Password:  string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	return nil
}
