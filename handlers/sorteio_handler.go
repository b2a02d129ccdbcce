package handlers

import (
	"net/http"
	"strings"

	"github.com/softjack/futebol-api/middleware"
	"github.com/softjack/futebol-api/services"
)

type SorteioHandler struct {
	sorteioService services.SorteioService
}

func NewSorteioHandler(sorteioService services.SorteioService) *SorteioHandler {
	return &SorteioHandler{sorteioService: sorteioService}
}

// Create abre um novo sorteio para o organizador autenticado.
// POST /api/sorteios
func (h *SorteioHandler) Create(w http.ResponseWriter, r *http.Request) {
	organizadorID, err := middleware.GetOrganizadorIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "não autorizado")
		return
	}

	var input struct {
		Nome string `json:"nome"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if strings.TrimSpace(input.Nome) == "" {
		mapServiceErrorToHTTP(w, r, services.ErrNomeObrigatorio)
		return
	}

	sorteio, err := h.sorteioService.Create(r.Context(), organizadorID, input.Nome)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, sorteio)
}

// List devolve os sorteios do organizador autenticado.
// GET /api/sorteios
func (h *SorteioHandler) List(w http.ResponseWriter, r *http.Request) {
	organizadorID, err := middleware.GetOrganizadorIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "não autorizado")
		return
	}

	sorteios, err := h.sorteioService.ListByOrganizador(r.Context(), organizadorID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, sorteios)
}

// AddTimes grava um lote de times e escalações em um sorteio.
// POST /api/sorteios/{id}/times
func (h *SorteioHandler) AddTimes(w http.ResponseWriter, r *http.Request) {
	sorteioID, err := readIDParam(r, "id")
	if err != nil {
		notFoundResponse(w, r)
		return
	}

	var input struct {
		Times []services.TimeInput `json:"times"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	times, err := h.sorteioService.AddTimes(r.Context(), sorteioID, input.Times)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, times)
}

// ListTimes devolve os times de um sorteio. Rota pública, para que
// jogadores acompanhem o resultado sem conta.
// GET /api/sorteios/{id}/times
func (h *SorteioHandler) ListTimes(w http.ResponseWriter, r *http.Request) {
	sorteioID, err := readIDParam(r, "id")
	if err != nil {
		notFoundResponse(w, r)
		return
	}

	times, err := h.sorteioService.ListTimes(r.Context(), sorteioID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, times)
}

// ListJogadoresDoTime devolve a escalação de um time. Rota pública.
// GET /api/sorteios/{sorteioId}/times/{timeId}/jogadores
func (h *SorteioHandler) ListJogadoresDoTime(w http.ResponseWriter, r *http.Request) {
	sorteioID, err := readIDParam(r, "sorteioId")
	if err != nil {
		notFoundResponse(w, r)
		return
	}
	timeID, err := readIDParam(r, "timeId")
	if err != nil {
		notFoundResponse(w, r)
		return
	}

	jogadores, err := h.sorteioService.ListJogadoresDoTime(r.Context(), sorteioID, timeID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, jogadores)
}

// Finalizar encerra o sorteio. A transição é unidirecional.
// POST /api/sorteios/{id}/finalizar
func (h *SorteioHandler) Finalizar(w http.ResponseWriter, r *http.Request) {
	sorteioID, err := readIDParam(r, "id")
	if err != nil {
		notFoundResponse(w, r)
		return
	}

	if err := h.sorteioService.Finalizar(r.Context(), sorteioID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, map[string]string{"message": "sorteio finalizado com sucesso"})
}
