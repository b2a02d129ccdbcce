package models

type PartidaStatus string

const (
	PartidaPendente   PartidaStatus = "Pendente"
	PartidaFinalizada PartidaStatus = "Finalizado"
)

type Partida struct {
	ID              int           `json:"id" db:"id"`
	SorteioID       int           `json:"sorteioId" db:"sorteio_id"`
	TimeCasaID      int           `json:"timeCasaId" db:"time_casa_id"`
	TimeVisitanteID int           `json:"timeVisitanteId" db:"time_visitante_id"`
	GolsCasa        int           `json:"golsCasa" db:"gols_casa"`
	GolsVisitante   int           `json:"golsVisitante" db:"gols_visitante"`
	Status          PartidaStatus `json:"status" db:"status"`
}
