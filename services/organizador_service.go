package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/softjack/futebol-api/models"
	"github.com/softjack/futebol-api/repositories"
)

const codigoMaxAttempts = 10

type OrganizadorService interface {
	// ResolveOwner resolve o escopo de autorização do chamador: o id do
	// organizador ativo do usuário. Falha com ErrNaoAutorizado (não
	// ErrNotFound) se ausente ou inativo.
	ResolveOwner(ctx context.Context, userID uuid.UUID) (int, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Organizador, error)
	FindByCodigo(ctx context.Context, codigo string) (*models.Organizador, error)
	UpdateCodigo(ctx context.Context, userID uuid.UUID, codigo string) error
}

type organizadorService struct {
	organizadorRepo repositories.OrganizadorRepository
}

func NewOrganizadorService(organizadorRepo repositories.OrganizadorRepository) OrganizadorService {
	return &organizadorService{organizadorRepo: organizadorRepo}
}

func (s *organizadorService) ResolveOwner(ctx context.Context, userID uuid.UUID) (int, error) {
	organizador, err := s.organizadorRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrganizadorNotFound) {
			return 0, ErrNaoAutorizado
		}
		return 0, fmt.Errorf("failed to resolve organizador scope: %w", err)
	}
	return organizador.ID, nil
}

func (s *organizadorService) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Organizador, error) {
	organizador, err := s.organizadorRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrganizadorNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return organizador, nil
}

func (s *organizadorService) FindByCodigo(ctx context.Context, codigo string) (*models.Organizador, error) {
	organizador, err := s.organizadorRepo.GetByCodigo(ctx, codigo)
	if err != nil {
		if errors.Is(err, repositories.ErrOrganizadorNotFound) {
			return nil, ErrCodigoInvalido
		}
		return nil, err
	}
	return organizador, nil
}

func (s *organizadorService) UpdateCodigo(ctx context.Context, userID uuid.UUID, codigo string) error {
	organizador, err := s.organizadorRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrganizadorNotFound) {
			return ErrNotFound
		}
		return err
	}

	if organizador.Codigo == codigo {
		return nil
	}

	err = s.organizadorRepo.UpdateCodigo(ctx, organizador.ID, codigo)
	if err != nil {
		if errors.Is(err, repositories.ErrOrganizadorCodigoConflict) {
			return ErrCodigoEmUso
		}
		return err
	}
	return nil
}

// generateUniqueCodigo gera um código de convite de 8 caracteres maiúsculos
// (prefixo hex de um uuid), repetindo até não colidir com nenhum existente.
func generateUniqueCodigo(ctx context.Context, repo repositories.OrganizadorRepository) (string, error) {
	for i := 0; i < codigoMaxAttempts; i++ {
		codigo := novoCodigo()
		exists, err := repo.CodigoExists(ctx, codigo)
		if err != nil {
			return "", fmt.Errorf("failed to check codigo uniqueness: %w", err)
		}
		if !exists {
			return codigo, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique codigo after %d attempts", codigoMaxAttempts)
}

func novoCodigo() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(hex[:8])
}
