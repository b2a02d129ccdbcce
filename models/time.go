package models

type Time struct {
	ID        int    `json:"id" db:"id"`
	SorteioID int    `json:"sorteioId" db:"sorteio_id"`
	Nome      string `json:"nome" db:"nome"`
}

// TimeJogador é a linha de associação entre um time e um jogador.
// O par (TimeID, JogadorID) é único.
type TimeJogador struct {
	ID        int `json:"id" db:"id"`
	TimeID    int `json:"timeId" db:"time_id"`
	JogadorID int `json:"jogadorId" db:"jogador_id"`
}
