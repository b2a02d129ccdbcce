package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/softjack/futebol-api/models"
	"github.com/softjack/futebol-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJogadorRepo(t *testing.T) (JogadorRepository, *sql.DB, int) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	userID := testutil.CreateTestUser(t, db, "ana@example.com")
	organizadorID := testutil.CreateTestOrganizador(t, db, userID, "ABCD1234")
	return NewPostgresJogadorRepository(db), db, organizadorID
}

func criarJogador(t *testing.T, repo JogadorRepository, organizadorID int, nome string, ativo bool) *models.Jogador {
	t.Helper()

	jogador := &models.Jogador{
		OrganizadorID: organizadorID,
		Nome:          nome,
		Ativo:         ativo,
	}
	require.NoError(t, repo.Create(context.Background(), jogador))
	return jogador
}

func TestJogadorListFilterByQuery(t *testing.T) {
	repo, _, organizadorID := setupJogadorRepo(t)
	ctx := context.Background()

	criarJogador(t, repo, organizadorID, "Carlos Silva", true)
	criarJogador(t, repo, organizadorID, "Diego Souza", true)

	// Busca por substring, sem diferenciar maiúsculas.
	jogadores, err := repo.ListByOrganizador(ctx, organizadorID, JogadorFilter{Query: "carlos"})
	require.NoError(t, err)
	require.Len(t, jogadores, 1)
	assert.Equal(t, "Carlos Silva", jogadores[0].Nome)

	jogadores, err = repo.ListByOrganizador(ctx, organizadorID, JogadorFilter{Query: "S"})
	require.NoError(t, err)
	assert.Len(t, jogadores, 2)
}

func TestJogadorListFilterByAtivo(t *testing.T) {
	repo, _, organizadorID := setupJogadorRepo(t)
	ctx := context.Background()

	criarJogador(t, repo, organizadorID, "Ativo", true)
	inativo := criarJogador(t, repo, organizadorID, "Inativo", true)
	require.NoError(t, repo.UpdateAtivo(ctx, inativo.ID, organizadorID, false))

	somenteInativos := false
	jogadores, err := repo.ListByOrganizador(ctx, organizadorID, JogadorFilter{Ativo: &somenteInativos})
	require.NoError(t, err)
	require.Len(t, jogadores, 1)
	assert.Equal(t, "Inativo", jogadores[0].Nome)
}

func TestJogadorScopedToOrganizador(t *testing.T) {
	repo, db, organizadorID := setupJogadorRepo(t)
	ctx := context.Background()

	jogador := criarJogador(t, repo, organizadorID, "Carlos", true)

	outroUser := testutil.CreateTestUser(t, db, "bruno@example.com")
	outroOrganizador := testutil.CreateTestOrganizador(t, db, outroUser, "EFGH5678")

	_, err := repo.GetByIDAndOrganizador(ctx, jogador.ID, outroOrganizador)
	assert.ErrorIs(t, err, ErrJogadorNotFound)

	err = repo.UpdateAtivo(ctx, jogador.ID, outroOrganizador, false)
	assert.ErrorIs(t, err, ErrJogadorNotFound)

	jogadores, err := repo.ListByOrganizador(ctx, outroOrganizador, JogadorFilter{})
	require.NoError(t, err)
	assert.Empty(t, jogadores)
}
