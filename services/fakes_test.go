package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/softjack/futebol-api/models"
	"github.com/softjack/futebol-api/repositories"
)

// Fakes em memória dos repositórios, para testar os serviços sem banco.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrUserEmailConflict
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) GetByResetToken(_ context.Context, token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.ResetPasswordToken != nil && *user.ResetPasswordToken == token {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

type fakeOrganizadorRepo struct {
	mu            sync.Mutex
	organizadores map[int]*models.Organizador
	nextID        int

	// codigosOcupados força colisões em CodigoExists, para testar a
	// geração de código com retentativa.
	codigosOcupados map[string]bool
}

func newFakeOrganizadorRepo() *fakeOrganizadorRepo {
	return &fakeOrganizadorRepo{
		organizadores:   make(map[int]*models.Organizador),
		nextID:          1,
		codigosOcupados: make(map[string]bool),
	}
}

func (r *fakeOrganizadorRepo) Create(_ context.Context, organizador *models.Organizador) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.organizadores {
		if existing.Codigo == organizador.Codigo {
			return repositories.ErrOrganizadorCodigoConflict
		}
	}
	organizador.ID = r.nextID
	r.nextID++
	clone := *organizador
	r.organizadores[organizador.ID] = &clone
	return nil
}

func (r *fakeOrganizadorRepo) GetByID(_ context.Context, id int) (*models.Organizador, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	organizador, ok := r.organizadores[id]
	if !ok {
		return nil, repositories.ErrOrganizadorNotFound
	}
	clone := *organizador
	return &clone, nil
}

func (r *fakeOrganizadorRepo) GetActiveByUserID(_ context.Context, userID uuid.UUID) (*models.Organizador, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, organizador := range r.organizadores {
		if organizador.UserID == userID && organizador.Ativo {
			clone := *organizador
			return &clone, nil
		}
	}
	return nil, repositories.ErrOrganizadorNotFound
}

func (r *fakeOrganizadorRepo) GetByCodigo(_ context.Context, codigo string) (*models.Organizador, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, organizador := range r.organizadores {
		if organizador.Codigo == codigo && organizador.Ativo {
			clone := *organizador
			return &clone, nil
		}
	}
	return nil, repositories.ErrOrganizadorNotFound
}

func (r *fakeOrganizadorRepo) CodigoExists(_ context.Context, codigo string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.codigosOcupados[codigo] {
		return true, nil
	}
	for _, organizador := range r.organizadores {
		if organizador.Codigo == codigo {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeOrganizadorRepo) UpdateNome(_ context.Context, id int, nome string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	organizador, ok := r.organizadores[id]
	if !ok {
		return repositories.ErrOrganizadorNotFound
	}
	organizador.Nome = nome
	return nil
}

func (r *fakeOrganizadorRepo) UpdateCodigo(_ context.Context, id int, codigo string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for otherID, other := range r.organizadores {
		if otherID != id && other.Codigo == codigo {
			return repositories.ErrOrganizadorCodigoConflict
		}
	}
	organizador, ok := r.organizadores[id]
	if !ok {
		return repositories.ErrOrganizadorNotFound
	}
	organizador.Codigo = codigo
	return nil
}

type fakeJogadorRepo struct {
	mu        sync.Mutex
	jogadores map[int]*models.Jogador
	nextID    int
}

func newFakeJogadorRepo() *fakeJogadorRepo {
	return &fakeJogadorRepo{jogadores: make(map[int]*models.Jogador), nextID: 1}
}

func (r *fakeJogadorRepo) Create(_ context.Context, jogador *models.Jogador) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	jogador.ID = r.nextID
	r.nextID++
	clone := *jogador
	r.jogadores[jogador.ID] = &clone
	return nil
}

func (r *fakeJogadorRepo) GetByIDAndOrganizador(_ context.Context, id, organizadorID int) (*models.Jogador, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	jogador, ok := r.jogadores[id]
	if !ok || jogador.OrganizadorID != organizadorID {
		return nil, repositories.ErrJogadorNotFound
	}
	clone := *jogador
	return &clone, nil
}

func (r *fakeJogadorRepo) ListByOrganizador(_ context.Context, organizadorID int, filter repositories.JogadorFilter) ([]models.Jogador, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []models.Jogador{}
	for _, jogador := range r.jogadores {
		if jogador.OrganizadorID != organizadorID {
			continue
		}
		if filter.Ativo != nil && jogador.Ativo != *filter.Ativo {
			continue
		}
		result = append(result, *jogador)
	}
	return result, nil
}

func (r *fakeJogadorRepo) Update(_ context.Context, jogador *models.Jogador) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jogadores[jogador.ID]; !ok {
		return repositories.ErrJogadorNotFound
	}
	clone := *jogador
	r.jogadores[jogador.ID] = &clone
	return nil
}

func (r *fakeJogadorRepo) UpdateAtivo(_ context.Context, id, organizadorID int, ativo bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	jogador, ok := r.jogadores[id]
	if !ok || jogador.OrganizadorID != organizadorID {
		return repositories.ErrJogadorNotFound
	}
	jogador.Ativo = ativo
	return nil
}
