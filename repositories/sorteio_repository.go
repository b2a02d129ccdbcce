package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/softjack/futebol-api/models"
)

var ErrSorteioNotFound = errors.New("sorteio not found")

type SorteioRepository interface {
	Create(ctx context.Context, sorteio *models.Sorteio) error
	GetByID(ctx context.Context, id int) (*models.Sorteio, error)
	Exists(ctx context.Context, id int) (bool, error)
	ListByOrganizador(ctx context.Context, organizadorID int) ([]models.Sorteio, error)
	// UpdateQuantidadeTimes sobrescreve a contagem de times do sorteio.
	// Aceita um SQLExecutor para participar da transação de criação de times.
	UpdateQuantidadeTimes(ctx context.Context, exec SQLExecutor, id, quantidade int) error
	UpdateStatus(ctx context.Context, id int, status models.SorteioStatus) error
}

type postgresSorteioRepository struct {
	db *sql.DB
}

func NewPostgresSorteioRepository(db *sql.DB) SorteioRepository {
	return &postgresSorteioRepository{db: db}
}

func (r *postgresSorteioRepository) Create(ctx context.Context, sorteio *models.Sorteio) error {
	query := `
		INSERT INTO sorteios (organizador_id, nome, quantidade_times, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		sorteio.OrganizadorID,
		sorteio.Nome,
		sorteio.QuantidadeTimes,
		sorteio.Status,
	).Scan(&sorteio.ID, &sorteio.CreatedAt)
}

func (r *postgresSorteioRepository) GetByID(ctx context.Context, id int) (*models.Sorteio, error) {
	query := `
		SELECT id, organizador_id, nome, quantidade_times, status, created_at
		FROM sorteios
		WHERE id = $1`

	sorteio := &models.Sorteio{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&sorteio.ID,
		&sorteio.OrganizadorID,
		&sorteio.Nome,
		&sorteio.QuantidadeTimes,
		&sorteio.Status,
		&sorteio.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSorteioNotFound
		}
		return nil, err
	}
	return sorteio, nil
}

func (r *postgresSorteioRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM sorteios WHERE id = $1)`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresSorteioRepository) ListByOrganizador(ctx context.Context, organizadorID int) ([]models.Sorteio, error) {
	query := `
		SELECT id, organizador_id, nome, quantidade_times, status, created_at
		FROM sorteios
		WHERE organizador_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, organizadorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sorteios := make([]models.Sorteio, 0)
	for rows.Next() {
		var sorteio models.Sorteio
		scanErr := rows.Scan(
			&sorteio.ID,
			&sorteio.OrganizadorID,
			&sorteio.Nome,
			&sorteio.QuantidadeTimes,
			&sorteio.Status,
			&sorteio.CreatedAt,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		sorteios = append(sorteios, sorteio)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sorteios, nil
}

func (r *postgresSorteioRepository) UpdateQuantidadeTimes(ctx context.Context, exec SQLExecutor, id, quantidade int) error {
	if exec == nil {
		exec = r.db
	}
	query := `UPDATE sorteios SET quantidade_times = $1 WHERE id = $2`
	result, err := exec.ExecContext(ctx, query, quantidade, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrSorteioNotFound)
}

func (r *postgresSorteioRepository) UpdateStatus(ctx context.Context, id int, status models.SorteioStatus) error {
	query := `UPDATE sorteios SET status = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrSorteioNotFound)
}
