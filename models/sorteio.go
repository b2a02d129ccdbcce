package models

import "time"

type SorteioStatus string

const (
	SorteioAberto     SorteioStatus = "Aberto"
	SorteioFinalizado SorteioStatus = "Finalizado"
)

type Sorteio struct {
	ID            int    `json:"id" db:"id"`
	OrganizadorID int    `json:"-" db:"organizador_id"`
	Nome          string `json:"nome" db:"nome"`

	// Quantidade de times do último lote enviado (sobrescrita a cada
	// chamada de criação de times, não acumulada).
	QuantidadeTimes int `json:"quantidadeTimes" db:"quantidade_times"`

	Status    SorteioStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
}
