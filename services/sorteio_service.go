package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/softjack/futebol-api/models"
	"github.com/softjack/futebol-api/realtime"
	"github.com/softjack/futebol-api/repositories"
)

type TimeInput struct {
	Nome       string `json:"nome"`
	JogadorIDs []int  `json:"jogadorIds"`
}

type SorteioService interface {
	Create(ctx context.Context, organizadorID int, nome string) (*models.Sorteio, error)
	// AddTimes cria os times e suas escalações em uma única transação e
	// sobrescreve a quantidade de times do sorteio com o tamanho do lote.
	AddTimes(ctx context.Context, sorteioID int, inputs []TimeInput) ([]models.Time, error)
	ListTimes(ctx context.Context, sorteioID int) ([]models.Time, error)
	ListJogadoresDoTime(ctx context.Context, sorteioID, timeID int) ([]models.Jogador, error)
	// Finalizar move o sorteio para o estado final. A transição é
	// unidirecional; refinalizar apenas regrava o mesmo estado.
	Finalizar(ctx context.Context, sorteioID int) error
	ListByOrganizador(ctx context.Context, organizadorID int) ([]models.Sorteio, error)
}

type sorteioService struct {
	db          *sql.DB
	sorteioRepo repositories.SorteioRepository
	timeRepo    repositories.TimeRepository
	hub         *realtime.Hub
}

func NewSorteioService(
	db *sql.DB,
	sorteioRepo repositories.SorteioRepository,
	timeRepo repositories.TimeRepository,
	hub *realtime.Hub,
) SorteioService {
	return &sorteioService{
		db:          db,
		sorteioRepo: sorteioRepo,
		timeRepo:    timeRepo,
		hub:         hub,
	}
}

func (s *sorteioService) Create(ctx context.Context, organizadorID int, nome string) (*models.Sorteio, error) {
	sorteio := &models.Sorteio{
		OrganizadorID:   organizadorID,
		Nome:            nome,
		QuantidadeTimes: 0,
		Status:          models.SorteioAberto,
	}

	if err := s.sorteioRepo.Create(ctx, sorteio); err != nil {
		return nil, fmt.Errorf("failed to create sorteio: %w", err)
	}
	return sorteio, nil
}

func (s *sorteioService) AddTimes(ctx context.Context, sorteioID int, inputs []TimeInput) ([]models.Time, error) {
	exists, err := s.sorteioRepo.Exists(ctx, sorteioID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	created := make([]models.Time, 0, len(inputs))
	for _, input := range inputs {
		time := models.Time{
			SorteioID: sorteioID,
			Nome:      input.Nome,
		}
		if err := s.timeRepo.Create(ctx, tx, &time); err != nil {
			return nil, err
		}

		for _, jogadorID := range input.JogadorIDs {
			entry := models.TimeJogador{
				TimeID:    time.ID,
				JogadorID: jogadorID,
			}
			if err := s.timeRepo.AddJogador(ctx, tx, &entry); err != nil {
				if errors.Is(err, repositories.ErrTimeJogadorConflict) {
					return nil, ErrJogadorDuplicadoNoTime
				}
				return nil, err
			}
		}

		created = append(created, time)
	}

	if err := s.sorteioRepo.UpdateQuantidadeTimes(ctx, tx, sorteioID, len(inputs)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.hub != nil {
		s.hub.Broadcast(realtime.Event{
			Type:      realtime.EventTimesAdicionados,
			SorteioID: sorteioID,
			Payload:   created,
		})
	}

	return created, nil
}

func (s *sorteioService) ListTimes(ctx context.Context, sorteioID int) ([]models.Time, error) {
	exists, err := s.sorteioRepo.Exists(ctx, sorteioID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	return s.timeRepo.ListBySorteio(ctx, sorteioID)
}

func (s *sorteioService) ListJogadoresDoTime(ctx context.Context, sorteioID, timeID int) ([]models.Jogador, error) {
	exists, err := s.sorteioRepo.Exists(ctx, sorteioID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	jogadores, err := s.timeRepo.ListJogadoresByTime(ctx, timeID)
	if err != nil {
		return nil, err
	}
	populatePosicoesList(jogadores)
	return jogadores, nil
}

func (s *sorteioService) Finalizar(ctx context.Context, sorteioID int) error {
	if _, err := s.sorteioRepo.GetByID(ctx, sorteioID); err != nil {
		if errors.Is(err, repositories.ErrSorteioNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.sorteioRepo.UpdateStatus(ctx, sorteioID, models.SorteioFinalizado); err != nil {
		return err
	}

	if s.hub != nil {
		s.hub.Broadcast(realtime.Event{
			Type:      realtime.EventSorteioFinalizado,
			SorteioID: sorteioID,
		})
	}
	return nil
}

func (s *sorteioService) ListByOrganizador(ctx context.Context, organizadorID int) ([]models.Sorteio, error) {
	return s.sorteioRepo.ListByOrganizador(ctx, organizadorID)
}
