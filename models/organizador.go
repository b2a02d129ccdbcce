package models

import (
	"time"

	"github.com/google/uuid"
)

type Organizador struct {
	ID     int       `json:"id" db:"id"`
	UserID uuid.UUID `json:"-" db:"user_id"`
	Nome   string    `json:"nome" db:"nome"`

	// Código público que jogadores usam para se cadastrar sozinhos.
	// Único entre todos os organizadores.
	Codigo string `json:"codigo" db:"codigo"`

	Ativo     bool      `json:"ativo" db:"ativo"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
