package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/softjack/futebol-api/models"
)

var (
	ErrPartidaNotFound    = errors.New("partida not found")
	ErrPartidaMesmosTimes = errors.New("partida with the same time on both sides")
	ErrPartidaTimeInvalid = errors.New("partida references an unknown time or sorteio")
)

type PartidaRepository interface {
	Create(ctx context.Context, partida *models.Partida) error
	ListBySorteio(ctx context.Context, sorteioID int) ([]models.Partida, error)
}

type postgresPartidaRepository struct {
	db *sql.DB
}

func NewPostgresPartidaRepository(db *sql.DB) PartidaRepository {
	return &postgresPartidaRepository{db: db}
}

func (r *postgresPartidaRepository) Create(ctx context.Context, partida *models.Partida) error {
	query := `
		INSERT INTO partidas (sorteio_id, time_casa_id, time_visitante_id, gols_casa, gols_visitante, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		partida.SorteioID,
		partida.TimeCasaID,
		partida.TimeVisitanteID,
		partida.GolsCasa,
		partida.GolsVisitante,
		partida.Status,
	).Scan(&partida.ID)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23514": // check_violation
				if pqErr.Constraint == "ck_partida_times_diferentes" {
					return ErrPartidaMesmosTimes
				}
			case "23503":
				return ErrPartidaTimeInvalid
			}
		}
		return err
	}
	return nil
}

func (r *postgresPartidaRepository) ListBySorteio(ctx context.Context, sorteioID int) ([]models.Partida, error) {
	query := `
		SELECT id, sorteio_id, time_casa_id, time_visitante_id, gols_casa, gols_visitante, status
		FROM partidas
		WHERE sorteio_id = $1
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, sorteioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partidas := make([]models.Partida, 0)
	for rows.Next() {
		var partida models.Partida
		scanErr := rows.Scan(
			&partida.ID,
			&partida.SorteioID,
			&partida.TimeCasaID,
			&partida.TimeVisitanteID,
			&partida.GolsCasa,
			&partida.GolsVisitante,
			&partida.Status,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		partidas = append(partidas, partida)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return partidas, nil
}
