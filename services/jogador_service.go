package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/softjack/futebol-api/models"
	"github.com/softjack/futebol-api/repositories"
)

type JogadorInput struct {
	Nome        string   `json:"nome"`
	Posicoes    []string `json:"posicoes"`
	Observacoes *string  `json:"observacoes"`
	Destaque    bool     `json:"destaque"`
	Peso        bool     `json:"peso"`
}

// JogadorUpdateInput sobrescreve todos os campos do jogador, exceto
// Posicoes, que quando nula mantém o valor atual.
type JogadorUpdateInput struct {
	Nome        string   `json:"nome"`
	Posicoes    []string `json:"posicoes"`
	Observacoes *string  `json:"observacoes"`
	Destaque    bool     `json:"destaque"`
	Peso        bool     `json:"peso"`
}

type JogadorService interface {
	Create(ctx context.Context, organizadorID int, input JogadorInput) (*models.Jogador, error)
	// CreateViaCodigo cadastra um jogador pelo código público do organizador.
	CreateViaCodigo(ctx context.Context, codigo string, input JogadorInput) (*models.Jogador, error)
	List(ctx context.Context, organizadorID int, filter repositories.JogadorFilter) ([]models.Jogador, error)
	Update(ctx context.Context, organizadorID, jogadorID int, input JogadorUpdateInput) error
	SetAtivo(ctx context.Context, organizadorID, jogadorID int, ativo bool) error
}

type jogadorService struct {
	jogadorRepo        repositories.JogadorRepository
	organizadorService OrganizadorService
}

func NewJogadorService(jogadorRepo repositories.JogadorRepository, organizadorService OrganizadorService) JogadorService {
	return &jogadorService{
		jogadorRepo:        jogadorRepo,
		organizadorService: organizadorService,
	}
}

func (s *jogadorService) Create(ctx context.Context, organizadorID int, input JogadorInput) (*models.Jogador, error) {
	jogador := &models.Jogador{
		OrganizadorID: organizadorID,
		Nome:          input.Nome,
		Posicao:       joinPosicoes(input.Posicoes),
		Observacoes:   input.Observacoes,
		Destaque:      input.Destaque,
		Peso:          input.Peso,
		Ativo:         true,
	}

	if err := s.jogadorRepo.Create(ctx, jogador); err != nil {
		return nil, fmt.Errorf("failed to create jogador: %w", err)
	}

	populatePosicoes(jogador)
	return jogador, nil
}

func (s *jogadorService) CreateViaCodigo(ctx context.Context, codigo string, input JogadorInput) (*models.Jogador, error) {
	if strings.TrimSpace(codigo) == "" {
		return nil, ErrCodigoObrigatorio
	}

	organizador, err := s.organizadorService.FindByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}

	return s.Create(ctx, organizador.ID, input)
}

func (s *jogadorService) List(ctx context.Context, organizadorID int, filter repositories.JogadorFilter) ([]models.Jogador, error) {
	jogadores, err := s.jogadorRepo.ListByOrganizador(ctx, organizadorID, filter)
	if err != nil {
		return nil, err
	}
	populatePosicoesList(jogadores)
	return jogadores, nil
}

func (s *jogadorService) Update(ctx context.Context, organizadorID, jogadorID int, input JogadorUpdateInput) error {
	jogador, err := s.jogadorRepo.GetByIDAndOrganizador(ctx, jogadorID, organizadorID)
	if err != nil {
		if errors.Is(err, repositories.ErrJogadorNotFound) {
			return ErrNotFound
		}
		return err
	}

	jogador.Nome = input.Nome
	if input.Posicoes != nil {
		jogador.Posicao = joinPosicoes(input.Posicoes)
	}
	jogador.Observacoes = input.Observacoes
	jogador.Destaque = input.Destaque
	jogador.Peso = input.Peso

	return s.jogadorRepo.Update(ctx, jogador)
}

func (s *jogadorService) SetAtivo(ctx context.Context, organizadorID, jogadorID int, ativo bool) error {
	err := s.jogadorRepo.UpdateAtivo(ctx, jogadorID, organizadorID, ativo)
	if err != nil {
		if errors.Is(err, repositories.ErrJogadorNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
