package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/softjack/futebol-api/models"
	"github.com/softjack/futebol-api/realtime"
	"github.com/softjack/futebol-api/repositories"
)

type RegistrarResultadoInput struct {
	TimeCasa      int `json:"timeCasa"`
	GolsCasa      int `json:"golsCasa"`
	GolsVisitante int `json:"golsVisitante"`
	TimeVisitante int `json:"timeVisitante"`
	SorteioID     int `json:"sorteioId"`
}

type PartidaService interface {
	// RegistrarResultado persiste o placar de um confronto já como
	// finalizado. Os dois times devem ser diferentes.
	RegistrarResultado(ctx context.Context, input RegistrarResultadoInput) (*models.Partida, error)
	ListBySorteio(ctx context.Context, sorteioID int) ([]models.Partida, error)
}

type partidaService struct {
	partidaRepo repositories.PartidaRepository
	hub         *realtime.Hub
}

func NewPartidaService(partidaRepo repositories.PartidaRepository, hub *realtime.Hub) PartidaService {
	return &partidaService{partidaRepo: partidaRepo, hub: hub}
}

func (s *partidaService) RegistrarResultado(ctx context.Context, input RegistrarResultadoInput) (*models.Partida, error) {
	if input.TimeCasa == input.TimeVisitante {
		return nil, ErrMesmosTimes
	}

	partida := &models.Partida{
		SorteioID:       input.SorteioID,
		TimeCasaID:      input.TimeCasa,
		TimeVisitanteID: input.TimeVisitante,
		GolsCasa:        input.GolsCasa,
		GolsVisitante:   input.GolsVisitante,
		Status:          models.PartidaFinalizada,
	}

	if err := s.partidaRepo.Create(ctx, partida); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPartidaMesmosTimes):
			return nil, ErrMesmosTimes
		case errors.Is(err, repositories.ErrPartidaTimeInvalid):
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create partida: %w", err)
	}

	if s.hub != nil {
		s.hub.Broadcast(realtime.Event{
			Type:      realtime.EventResultadoRegistrado,
			SorteioID: partida.SorteioID,
			Payload:   partida,
		})
	}

	return partida, nil
}

func (s *partidaService) ListBySorteio(ctx context.Context, sorteioID int) ([]models.Partida, error) {
	return s.partidaRepo.ListBySorteio(ctx, sorteioID)
}
