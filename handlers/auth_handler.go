package handlers

import (
	"net/http"
	"strings"

	"github.com/softjack/futebol-api/middleware"
	"github.com/softjack/futebol-api/models"
	"github.com/softjack/futebol-api/services"
)

type AuthHandler struct {
	authService        services.AuthService
	tokenService       services.TokenService
	organizadorService services.OrganizadorService
	jogadorService     services.JogadorService

	// googleClientID, quando configurado, prevalece sobre o header
	// X-Google-Client-Id enviado pelo frontend.
	googleClientID string
}

func NewAuthHandler(
	authService services.AuthService,
	tokenService services.TokenService,
	organizadorService services.OrganizadorService,
	jogadorService services.JogadorService,
	googleClientID string,
) *AuthHandler {
	return &AuthHandler{
		authService:        authService,
		tokenService:       tokenService,
		organizadorService: organizadorService,
		jogadorService:     jogadorService,
		googleClientID:     googleClientID,
	}
}

// RegisterOrganizador cadastra um novo organizador com email e senha.
// POST /api/auth/register/organizador
func (h *AuthHandler) RegisterOrganizador(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if strings.TrimSpace(input.Nome) == "" {
		mapServiceErrorToHTTP(w, r, services.ErrNomeObrigatorio)
		return
	}

	organizador, err := h.authService.RegisterOrganizador(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, organizador)
}

// RegisterJogador cadastra um jogador usando o código público de um
// organizador, sem autenticação.
// POST /api/auth/register/jogador
func (h *AuthHandler) RegisterJogador(w http.ResponseWriter, r *http.Request) {
	var input struct {
		services.JogadorInput
		Codigo string `json:"codigo"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	jogador, err := h.jogadorService.CreateViaCodigo(r.Context(), input.Codigo, input.JogadorInput)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, jogador)
}

// Login autentica com email e senha e devolve um token de acesso.
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := readJSON(w, r, &creds); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	user, err := h.authService.Login(r.Context(), creds.Email, creds.Password)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	ttl := services.TokenTTLPadrao
	if creds.Remember {
		ttl = services.TokenTTLLembrar
	}

	token, err := h.tokenService.Issue(user.ID, services.RoleOrganizador, ttl)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, map[string]string{"token": token})
}

// Google autentica com um token de identidade do Google, criando a conta
// no primeiro acesso.
// POST /api/auth/google
func (h *AuthHandler) Google(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Token string `json:"token"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	clientID := h.googleClientID
	if clientID == "" {
		clientID = r.Header.Get("X-Google-Client-Id")
	}
	if clientID == "" {
		mapServiceErrorToHTTP(w, r, services.ErrClientIDObrigatorio)
		return
	}

	payload, err := h.tokenService.VerifyGoogleToken(r.Context(), input.Token, clientID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	user, err := h.authService.LoginGoogle(r.Context(), payload)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	token, err := h.tokenService.Issue(user.ID, services.RoleOrganizador, services.TokenTTLPadrao)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, map[string]string{"token": token})
}

// Refresh emite um novo token de acesso a partir de um token existente.
// POST /api/auth/refresh
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Token string `json:"token"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	token, err := h.tokenService.Refresh(input.Token)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, map[string]string{"token": token})
}

// Profile devolve o perfil do usuário autenticado.
// GET /api/auth/profile
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "não autorizado")
		return
	}

	profile, err := h.authService.Profile(r.Context(), userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, profile)
}

// CurrentUser devolve o organizador do usuário autenticado.
// GET /api/user
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "não autorizado")
		return
	}

	organizador, err := h.organizadorService.GetByUserID(r.Context(), userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, organizador)
}

// ChangePassword troca a senha do usuário autenticado. Contas Google
// definem a primeira senha sem informar a atual.
// POST /api/auth/change-password
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "não autorizado")
		return
	}

	var input struct {
		SenhaAtual string `json:"senhaAtual"`
		NovaSenha  string `json:"novaSenha"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.authService.ChangePassword(r.Context(), userID, input.SenhaAtual, input.NovaSenha); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, map[string]string{"message": "senha atualizada com sucesso"})
}

// UpdateName atualiza o nome do usuário e do organizador associado.
// POST /api/auth/update-name
func (h *AuthHandler) UpdateName(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
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

	if err := h.authService.UpdateNome(r.Context(), userID, input.Nome); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, map[string]string{"message": "nome atualizado com sucesso"})
}

// UpdateCodigo troca o código público do organizador do usuário.
// POST /api/auth/update-codigo
func (h *AuthHandler) UpdateCodigo(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "não autorizado")
		return
	}

	var input struct {
		Codigo string `json:"codigo"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if strings.TrimSpace(input.Codigo) == "" {
		mapServiceErrorToHTTP(w, r, services.ErrCodigoObrigatorio)
		return
	}

	if err := h.organizadorService.UpdateCodigo(r.Context(), userID, input.Codigo); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, map[string]string{"message": "código atualizado com sucesso"})
}

// RecuperarSenha inicia o fluxo de recuperação de senha. Responde 200
// mesmo quando o email não está cadastrado.
// POST /api/auth/recuperar-senha
func (h *AuthHandler) RecuperarSenha(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email string `json:"email"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.authService.RequestPasswordReset(r.Context(), input.Email); err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, map[string]string{
		"message": "se o email estiver cadastrado, você receberá as instruções de recuperação",
	})
}

// RedefinirSenha conclui o fluxo de recuperação usando o token enviado
// por email. O token é de uso único.
// POST /api/auth/redefinir-senha
func (h *AuthHandler) RedefinirSenha(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Token     string `json:"token"`
		NovaSenha string `json:"novaSenha"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if input.NovaSenha == "" {
		mapServiceErrorToHTTP(w, r, services.ErrNovaSenhaObrigatoria)
		return
	}

	if err := h.authService.ResetPassword(r.Context(), input.Token, input.NovaSenha); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respondData(w, r, http.StatusOK, map[string]string{"message": "senha redefinida com sucesso"})
}
