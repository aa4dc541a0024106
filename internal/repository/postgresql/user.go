package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/grishma-roka/Campus-Cart/internal/db"
	"github.com/grishma-roka/Campus-Cart/internal/repository"
	"github.com/grishma-roka/Campus-Cart/internal/storage"
)

type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) storage.UserRepository {
	return &UserRepo{db: db}
}

func (r *UserRepo) CreateUser(ctx context.Context, username, password, role string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		"INSERT INTO users (id, username, password, role, created_at) VALUES ($1, $2, $3, $4, $5)",
		uuid.New().String(), username, string(hashedPassword), role, time.Now().UTC())
	return err
}

// Authenticate resolves basic-auth credentials to the actor identity the
// lifecycle operations check against.
func (r *UserRepo) Authenticate(ctx context.Context, username, password string) (*storage.Actor, error) {
	var row struct {
		ID       string `db:"id"`
		Role     string `db:"role"`
		Password string `db:"password"`
	}
	err := r.db.Get(ctx, &row,
		"SELECT id, role, password FROM users WHERE username = $1", username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.Password), []byte(password)); err != nil {
		return nil, repository.ErrObjectNotFound
	}
	return &storage.Actor{ID: row.ID, Role: row.Role}, nil
}
