package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/softjack/futebol-api/models"
)

var (
	ErrTimeNotFound        = errors.New("time not found")
	ErrTimeJogadorConflict = errors.New("jogador already assigned to this time")
	ErrTimeJogadorInvalid  = errors.New("time ou jogador inexistente")
	ErrTimeSorteioInvalid  = errors.New("sorteio inexistente para o time")
)

type TimeRepository interface {
	// Create insere o time usando o executor informado (transação do lote).
	Create(ctx context.Context, exec SQLExecutor, time *models.Time) error
	// AddJogador insere uma linha de escalação. O par (time, jogador) é único.
	AddJogador(ctx context.Context, exec SQLExecutor, entry *models.TimeJogador) error
	ListBySorteio(ctx context.Context, sorteioID int) ([]models.Time, error)
	ListJogadoresByTime(ctx context.Context, timeID int) ([]models.Jogador, error)
}

type postgresTimeRepository struct {
	db *sql.DB
}

func NewPostgresTimeRepository(db *sql.DB) TimeRepository {
	return &postgresTimeRepository{db: db}
}

func (r *postgresTimeRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresTimeRepository) Create(ctx context.Context, exec SQLExecutor, time *models.Time) error {
	executor := r.getExecutor(exec)
	query := `INSERT INTO times (sorteio_id, nome) VALUES ($1, $2) RETURNING id`

	err := executor.QueryRowContext(ctx, query, time.SorteioID, time.Nome).Scan(&time.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			if pqErr.Constraint == "times_sorteio_id_fkey" {
				return ErrTimeSorteioInvalid
			}
		}
		return err
	}
	return nil
}

func (r *postgresTimeRepository) AddJogador(ctx context.Context, exec SQLExecutor, entry *models.TimeJogador) error {
	executor := r.getExecutor(exec)
	query := `INSERT INTO times_jogadores (time_id, jogador_id) VALUES ($1, $2) RETURNING id`

	err := executor.QueryRowContext(ctx, query, entry.TimeID, entry.JogadorID).Scan(&entry.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				if pqErr.Constraint == "times_jogadores_time_id_jogador_id_key" {
					return ErrTimeJogadorConflict
				}
			case "23503":
				return ErrTimeJogadorInvalid
			}
		}
		return err
	}
	return nil
}

func (r *postgresTimeRepository) ListBySorteio(ctx context.Context, sorteioID int) ([]models.Time, error) {
	query := `SELECT id, sorteio_id, nome FROM times WHERE sorteio_id = $1 ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, sorteioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	times := make([]models.Time, 0)
	for rows.Next() {
		var t models.Time
		if scanErr := rows.Scan(&t.ID, &t.SorteioID, &t.Nome); scanErr != nil {
			return nil, scanErr
		}
		times = append(times, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return times, nil
}

func (r *postgresTimeRepository) ListJogadoresByTime(ctx context.Context, timeID int) ([]models.Jogador, error) {
	query := `
		SELECT j.id, j.organizador_id, j.nome, j.posicao, j.observacoes, j.destaque, j.peso, j.ativo, j.created_at
		FROM times_jogadores tj
		JOIN jogadores j ON j.id = tj.jogador_id
		WHERE tj.time_id = $1
		ORDER BY tj.id ASC`

	rows, err := r.db.QueryContext(ctx, query, timeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jogadores := make([]models.Jogador, 0)
	for rows.Next() {
		var jogador models.Jogador
		scanErr := rows.Scan(
			&jogador.ID,
			&jogador.OrganizadorID,
			&jogador.Nome,
			&jogador.Posicao,
			&jogador.Observacoes,
			&jogador.Destaque,
			&jogador.Peso,
			&jogador.Ativo,
			&jogador.CreatedAt,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		jogadores = append(jogadores, jogador)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jogadores, nil
}
