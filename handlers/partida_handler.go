package handlers

import (
	"net/http"

	"github.com/softjack/futebol-api/services"
)

type PartidaHandler struct {
	partidaService services.PartidaService
}

func NewPartidaHandler(partidaService services.PartidaService) *PartidaHandler {
	return &PartidaHandler{partidaService: partidaService}
}

// Registrar grava o placar de um confronto entre dois times do sorteio.
// POST /api/partidas
func (h *PartidaHandler) Registrar(w http.ResponseWriter, r *http.Request) {
	var input services.RegistrarResultadoInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if _, err := h.partidaService.RegistrarResultado(r.Context(), input); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListBySorteio devolve as partidas registradas de um sorteio. Rota
// pública.
// GET /api/partidas/sorteio/{sorteioId}
func (h *PartidaHandler) ListBySorteio(w http.ResponseWriter, r *http.Request) {
	sorteioID, err := readIDParam(r, "sorteioId")
	if err != nil {
		notFoundResponse(w, r)
		return
	}

	partidas, err := h.partidaService.ListBySorteio(r.Context(), sorteioID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, partidas)
}
