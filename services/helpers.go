package services

import (
	"strings"

	"github.com/softjack/futebol-api/models"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// joinPosicoes serializa a lista de posições para a coluna delimitada.
// Lista vazia ou nula vira NULL.
func joinPosicoes(posicoes []string) *string {
	if len(posicoes) == 0 {
		return nil
	}
	joined := strings.Join(posicoes, ",")
	return &joined
}

// splitPosicoes desfaz a serialização, descartando entradas em branco.
func splitPosicoes(posicao *string) []string {
	if posicao == nil || *posicao == "" {
		return []string{}
	}
	parts := strings.Split(*posicao, ",")
	posicoes := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			posicoes = append(posicoes, trimmed)
		}
	}
	return posicoes
}

// populatePosicoes preenche o campo de API Posicoes a partir da coluna.
func populatePosicoes(jogador *models.Jogador) {
	if jogador == nil {
		return
	}
	jogador.Posicoes = splitPosicoes(jogador.Posicao)
}

func populatePosicoesList(jogadores []models.Jogador) {
	for i := range jogadores {
		populatePosicoes(&jogadores[i])
	}
}
