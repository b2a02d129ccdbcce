package services

import (
	"context"
	"testing"

	"github.com/softjack/futebol-api/models"
	"github.com/softjack/futebol-api/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrarResultadoRejectsSameTeam(t *testing.T) {
	// A validação acontece antes de tocar o banco.
	svc := NewPartidaService(nil, nil)

	_, err := svc.RegistrarResultado(context.Background(), RegistrarResultadoInput{
		TimeCasa:      7,
		TimeVisitante: 7,
		GolsCasa:      2,
		GolsVisitante: 1,
		SorteioID:     1,
	})
	assert.ErrorIs(t, err, ErrMesmosTimes)
}

func setupPartidaTest(t *testing.T) (PartidaService, SorteioService, *sorteioFixture) {
	t.Helper()

	sorteioSvc, fixture := setupSorteioTest(t)
	partidaRepo := repositories.NewPostgresPartidaRepository(fixture.db)
	return NewPartidaService(partidaRepo, nil), sorteioSvc, fixture
}

func TestRegistrarResultado(t *testing.T) {
	partidaSvc, sorteioSvc, fixture := setupPartidaTest(t)
	ctx := context.Background()

	sorteio, err := sorteioSvc.Create(ctx, fixture.organizadorID, "Pelada")
	require.NoError(t, err)
	jogadores := fixture.criarJogadores(t, 4)

	times, err := sorteioSvc.AddTimes(ctx, sorteio.ID, []TimeInput{
		{Nome: "Time A", JogadorIDs: jogadores[:2]},
		{Nome: "Time B", JogadorIDs: jogadores[2:]},
	})
	require.NoError(t, err)
	require.Len(t, times, 2)

	partida, err := partidaSvc.RegistrarResultado(ctx, RegistrarResultadoInput{
		TimeCasa:      times[0].ID,
		TimeVisitante: times[1].ID,
		GolsCasa:      3,
		GolsVisitante: 2,
		SorteioID:     sorteio.ID,
	})
	require.NoError(t, err)

	// O resultado entra direto como finalizado.
	assert.Equal(t, models.PartidaFinalizada, partida.Status)
	assert.NotZero(t, partida.ID)

	partidas, err := partidaSvc.ListBySorteio(ctx, sorteio.ID)
	require.NoError(t, err)
	require.Len(t, partidas, 1)
	assert.Equal(t, 3, partidas[0].GolsCasa)
	assert.Equal(t, 2, partidas[0].GolsVisitante)
}

func TestRegistrarResultadoUnknownTeam(t *testing.T) {
	partidaSvc, sorteioSvc, fixture := setupPartidaTest(t)
	ctx := context.Background()

	sorteio, err := sorteioSvc.Create(ctx, fixture.organizadorID, "Pelada")
	require.NoError(t, err)

	_, err = partidaSvc.RegistrarResultado(ctx, RegistrarResultadoInput{
		TimeCasa:      998,
		TimeVisitante: 999,
		SorteioID:     sorteio.ID,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListBySorteioEmpty(t *testing.T) {
	partidaSvc, sorteioSvc, fixture := setupPartidaTest(t)
	ctx := context.Background()

	sorteio, err := sorteioSvc.Create(ctx, fixture.organizadorID, "Pelada")
	require.NoError(t, err)

	partidas, err := partidaSvc.ListBySorteio(ctx, sorteio.ID)
	require.NoError(t, err)
	assert.Empty(t, partidas)
}
