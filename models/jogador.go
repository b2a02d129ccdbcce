package models

import "time"

type Jogador struct {
	ID            int    `json:"id" db:"id"`
	OrganizadorID int    `json:"-" db:"organizador_id"`
	Nome          string `json:"nome" db:"nome"`

	// Posições armazenadas como string delimitada por vírgula ("posicao").
	// Posicoes é a forma exposta na API, preenchida pelo serviço.
	Posicao  *string  `json:"-" db:"posicao"`
	Posicoes []string `json:"posicoes" db:"-"`

	Observacoes *string   `json:"observacoes,omitempty" db:"observacoes"`
	Destaque    bool      `json:"destaque" db:"destaque"`
	Peso        bool      `json:"peso" db:"peso"`
	Ativo       bool      `json:"ativo" db:"ativo"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
