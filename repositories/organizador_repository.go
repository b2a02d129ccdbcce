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
	ErrOrganizadorNotFound       = errors.New("organizador not found")
	ErrOrganizadorCodigoConflict = errors.New("organizador codigo conflict")
)

type OrganizadorRepository interface {
	Create(ctx context.Context, organizador *models.Organizador) error
	GetByID(ctx context.Context, id int) (*models.Organizador, error)
	// GetActiveByUserID retorna o organizador ativo do usuário, se houver.
	GetActiveByUserID(ctx context.Context, userID uuid.UUID) (*models.Organizador, error)
	GetByCodigo(ctx context.Context, codigo string) (*models.Organizador, error)
	CodigoExists(ctx context.Context, codigo string) (bool, error)
	UpdateNome(ctx context.Context, id int, nome string) error
	UpdateCodigo(ctx context.Context, id int, codigo string) error
}

type postgresOrganizadorRepository struct {
	db *sql.DB
}

func NewPostgresOrganizadorRepository(db *sql.DB) OrganizadorRepository {
	return &postgresOrganizadorRepository{db: db}
}

func (r *postgresOrganizadorRepository) Create(ctx context.Context, organizador *models.Organizador) error {
	query := `
		INSERT INTO organizadores (user_id, nome, codigo, ativo)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		organizador.UserID,
		organizador.Nome,
		organizador.Codigo,
		organizador.Ativo,
	).Scan(&organizador.ID, &organizador.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "organizadores_codigo_key" {
				return ErrOrganizadorCodigoConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresOrganizadorRepository) GetByID(ctx context.Context, id int) (*models.Organizador, error) {
	query := `
		SELECT id, user_id, nome, codigo, ativo, created_at
		FROM organizadores
		WHERE id = $1`
	return r.scanOrganizador(ctx, query, id)
}

func (r *postgresOrganizadorRepository) GetActiveByUserID(ctx context.Context, userID uuid.UUID) (*models.Organizador, error) {
	query := `
		SELECT id, user_id, nome, codigo, ativo, created_at
		FROM organizadores
		WHERE user_id = $1 AND ativo = TRUE`
	return r.scanOrganizador(ctx, query, userID)
}

func (r *postgresOrganizadorRepository) GetByCodigo(ctx context.Context, codigo string) (*models.Organizador, error) {
	query := `
		SELECT id, user_id, nome, codigo, ativo, created_at
		FROM organizadores
		WHERE codigo = $1`
	return r.scanOrganizador(ctx, query, codigo)
}

func (r *postgresOrganizadorRepository) CodigoExists(ctx context.Context, codigo string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM organizadores WHERE codigo = $1)`
	if err := r.db.QueryRowContext(ctx, query, codigo).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresOrganizadorRepository) UpdateNome(ctx context.Context, id int, nome string) error {
	query := `UPDATE organizadores SET nome = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, nome, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrOrganizadorNotFound)
}

func (r *postgresOrganizadorRepository) UpdateCodigo(ctx context.Context, id int, codigo string) error {
	query := `UPDATE organizadores SET codigo = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, codigo, id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "organizadores_codigo_key" {
				return ErrOrganizadorCodigoConflict
			}
		}
		return err
	}
	return checkAffectedRows(result, ErrOrganizadorNotFound)
}

func (r *postgresOrganizadorRepository) scanOrganizador(ctx context.Context, query string, args ...interface{}) (*models.Organizador, error) {
	organizador := &models.Organizador{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&organizador.ID,
		&organizador.UserID,
		&organizador.Nome,
		&organizador.Codigo,
		&organizador.Ativo,
		&organizador.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrganizadorNotFound
		}
		return nil, err
	}
	return organizador, nil
}
