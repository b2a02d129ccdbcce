package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("minha-senha")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "minha-senha", hash)

	assert.True(t, CheckPassword("minha-senha", hash))
	assert.False(t, CheckPassword("senha-errada", hash))
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("mesma-senha")
	require.NoError(t, err)
	second, err := HashPassword("mesma-senha")
	require.NoError(t, err)

	// Hashes diferentes para a mesma senha: o salt é aleatório.
	assert.NotEqual(t, first, second)
}

func TestJoinPosicoes(t *testing.T) {
	assert.Nil(t, joinPosicoes(nil))
	assert.Nil(t, joinPosicoes([]string{}))

	joined := joinPosicoes([]string{"Goleiro", "Zagueiro"})
	require.NotNil(t, joined)
	assert.Equal(t, "Goleiro,Zagueiro", *joined)
}

func TestSplitPosicoes(t *testing.T) {
	assert.Empty(t, splitPosicoes(nil))

	empty := ""
	assert.Empty(t, splitPosicoes(&empty))

	raw := "Goleiro, Zagueiro ,,Atacante"
	assert.Equal(t, []string{"Goleiro", "Zagueiro", "Atacante"}, splitPosicoes(&raw))
}

func TestPosicoesRoundTrip(t *testing.T) {
	original := []string{"Meia", "Atacante"}
	assert.Equal(t, original, splitPosicoes(joinPosicoes(original)))
}
