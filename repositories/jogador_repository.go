package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"github.com/softjack/futebol-api/models"
)

var (
	ErrJogadorNotFound           = errors.New("jogador not found")
	ErrJogadorOrganizadorInvalid = errors.New("jogador organizador conflict or invalid")
)

// JogadorFilter restringe a listagem de jogadores de um organizador.
type JogadorFilter struct {
	// Busca por substring no nome, sem diferenciar maiúsculas.
	Query string
	Ativo *bool
}

type JogadorRepository interface {
	Create(ctx context.Context, jogador *models.Jogador) error
	GetByIDAndOrganizador(ctx context.Context, id, organizadorID int) (*models.Jogador, error)
	ListByOrganizador(ctx context.Context, organizadorID int, filter JogadorFilter) ([]models.Jogador, error)
	Update(ctx context.Context, jogador *models.Jogador) error
	UpdateAtivo(ctx context.Context, id, organizadorID int, ativo bool) error
}

type postgresJogadorRepository struct {
	db *sql.DB
}

func NewPostgresJogadorRepository(db *sql.DB) JogadorRepository {
	return &postgresJogadorRepository{db: db}
}

func (r *postgresJogadorRepository) Create(ctx context.Context, jogador *models.Jogador) error {
	query := `
		INSERT INTO jogadores (organizador_id, nome, posicao, observacoes, destaque, peso, ativo)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		jogador.OrganizadorID,
		jogador.Nome,
		jogador.Posicao,
		jogador.Observacoes,
		jogador.Destaque,
		jogador.Peso,
		jogador.Ativo,
	).Scan(&jogador.ID, &jogador.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			if pqErr.Constraint == "jogadores_organizador_id_fkey" {
				return ErrJogadorOrganizadorInvalid
			}
		}
		return err
	}
	return nil
}

func (r *postgresJogadorRepository) GetByIDAndOrganizador(ctx context.Context, id, organizadorID int) (*models.Jogador, error) {
	query := `
		SELECT id, organizador_id, nome, posicao, observacoes, destaque, peso, ativo, created_at
		FROM jogadores
		WHERE id = $1 AND organizador_id = $2`

	jogador := &models.Jogador{}
	err := r.db.QueryRowContext(ctx, query, id, organizadorID).Scan(
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
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJogadorNotFound
		}
		return nil, err
	}
	return jogador, nil
}

func (r *postgresJogadorRepository) ListByOrganizador(ctx context.Context, organizadorID int, filter JogadorFilter) ([]models.Jogador, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, organizador_id, nome, posicao, observacoes, destaque, peso, ativo, created_at
		FROM jogadores
		WHERE organizador_id = $1`)

	args := []interface{}{organizadorID}
	placeholderIndex := 2

	if filter.Ativo != nil {
		queryBuilder.WriteString(" AND ativo = $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, *filter.Ativo)
		placeholderIndex++
	}

	if strings.TrimSpace(filter.Query) != "" {
		queryBuilder.WriteString(" AND nome ILIKE $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, "%"+filter.Query+"%")
		placeholderIndex++
	}

	queryBuilder.WriteString(" ORDER BY nome ASC")

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
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

func (r *postgresJogadorRepository) Update(ctx context.Context, jogador *models.Jogador) error {
	query := `
		UPDATE jogadores SET
			nome = $1,
			posicao = $2,
			observacoes = $3,
			destaque = $4,
			peso = $5
		WHERE id = $6 AND organizador_id = $7`

	result, err := r.db.ExecContext(ctx, query,
		jogador.Nome,
		jogador.Posicao,
		jogador.Observacoes,
		jogador.Destaque,
		jogador.Peso,
		jogador.ID,
		jogador.OrganizadorID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrJogadorNotFound)
}

func (r *postgresJogadorRepository) UpdateAtivo(ctx context.Context, id, organizadorID int, ativo bool) error {
	query := `UPDATE jogadores SET ativo = $1 WHERE id = $2 AND organizador_id = $3`
	result, err := r.db.ExecContext(ctx, query, ativo, id, organizadorID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrJogadorNotFound)
}
