package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/softjack/futebol-api/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserEmailConflict = errors.New("user email conflict")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByResetToken(ctx context.Context, token string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type postgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

func (r *postgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, nome, email, password_hash, ativo, conta_google)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		user.ID,
		user.Nome,
		user.Email,
		user.PasswordHash,
		user.Ativo,
		user.ContaGoogle,
	).Scan(&user.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "users_email_key" {
				return ErrUserEmailConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, nome, email, password_hash, reset_password_token, reset_password_token_expiry,
		       ativo, conta_google, created_at
		FROM users
		WHERE id = $1`
	return r.scanUser(ctx, query, id)
}

func (r *postgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, nome, email, password_hash, reset_password_token, reset_password_token_expiry,
		       ativo, conta_google, created_at
		FROM users
		WHERE email = $1`
	return r.scanUser(ctx, query, email)
}

func (r *postgresUserRepository) GetByResetToken(ctx context.Context, token string) (*models.User, error) {
	query := `
		SELECT id, nome, email, password_hash, reset_password_token, reset_password_token_expiry,
		       ativo, conta_google, created_at
		FROM users
		WHERE reset_password_token = $1`
	return r.scanUser(ctx, query, token)
}

func (r *postgresUserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET
			nome = $1,
			email = $2,
			password_hash = $3,
			reset_password_token = $4,
			reset_password_token_expiry = $5,
			ativo = $6,
			conta_google = $7
		WHERE id = $8`

	result, err := r.db.ExecContext(ctx, query,
		user.Nome,
		user.Email,
		user.PasswordHash,
		user.ResetPasswordToken,
		user.ResetPasswordTokenExpiry,
		user.Ativo,
		user.ContaGoogle,
		user.ID,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "users_email_key" {
				return ErrUserEmailConflict
			}
		}
		return err
	}

	return checkAffectedRows(result, ErrUserNotFound)
}

// scanUser executa uma consulta que retorna no máximo um usuário.
func (r *postgresUserRepository) scanUser(ctx context.Context, query string, args ...interface{}) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Nome,
		&user.Email,
		&user.PasswordHash,
		&user.ResetPasswordToken,
		&user.ResetPasswordTokenExpiry,
		&user.Ativo,
		&user.ContaGoogle,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
