package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/softjack/futebol-api/middleware"
	"github.com/softjack/futebol-api/repositories"
	"github.com/softjack/futebol-api/services"
)

var errInvalidAtivoFilter = errors.New(`parâmetro "ativo" deve ser true ou false`)

type JogadorHandler struct {
	jogadorService services.JogadorService
}

func NewJogadorHandler(jogadorService services.JogadorService) *JogadorHandler {
	return &JogadorHandler{jogadorService: jogadorService}
}

// Create cadastra um jogador no elenco do organizador autenticado.
// POST /api/jogadores
func (h *JogadorHandler) Create(w http.ResponseWriter, r *http.Request) {
	organizadorID, err := middleware.GetOrganizadorIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "não autorizado")
		return
	}

	var input services.JogadorInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if strings.TrimSpace(input.Nome) == "" {
		mapServiceErrorToHTTP(w, r, services.ErrNomeObrigatorio)
		return
	}

	jogador, err := h.jogadorService.Create(r.Context(), organizadorID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, jogador)
}

// List devolve o elenco do organizador, com filtro opcional por nome (?q=)
// e por status (?ativo=true|false).
// GET /api/jogadores
func (h *JogadorHandler) List(w http.ResponseWriter, r *http.Request) {
	organizadorID, err := middleware.GetOrganizadorIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "não autorizado")
		return
	}

	filter := repositories.JogadorFilter{
		Query: r.URL.Query().Get("q"),
	}
	if raw := r.URL.Query().Get("ativo"); raw != "" {
		ativo, err := strconv.ParseBool(raw)
		if err != nil {
			badRequestResponse(w, r, errInvalidAtivoFilter)
			return
		}
		filter.Ativo = &ativo
	}

	jogadores, err := h.jogadorService.List(r.Context(), organizadorID, filter)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, jogadores)
}

// Update sobrescreve os dados de um jogador do organizador autenticado.
// Jogadores de outros organizadores respondem 404.
// PUT /api/jogadores/{id}
func (h *JogadorHandler) Update(w http.ResponseWriter, r *http.Request) {
	organizadorID, err := middleware.GetOrganizadorIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "não autorizado")
		return
	}

	jogadorID, err := readIDParam(r, "id")
	if err != nil {
		notFoundResponse(w, r)
		return
	}

	var input services.JogadorUpdateInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if strings.TrimSpace(input.Nome) == "" {
		mapServiceErrorToHTTP(w, r, services.ErrNomeObrigatorio)
		return
	}

	if err := h.jogadorService.Update(r.Context(), organizadorID, jogadorID, input); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, map[string]string{"message": "jogador atualizado com sucesso"})
}

// UpdateStatus ativa ou desativa um jogador sem tocar nos demais campos.
// PUT /api/jogadores/{id}/status
func (h *JogadorHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	organizadorID, err := middleware.GetOrganizadorIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "não autorizado")
		return
	}

	jogadorID, err := readIDParam(r, "id")
	if err != nil {
		notFoundResponse(w, r)
		return
	}

	var input struct {
		Ativo bool `json:"ativo"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.jogadorService.SetAtivo(r.Context(), organizadorID, jogadorID, input.Ativo); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, map[string]string{"message": "status atualizado com sucesso"})
}
