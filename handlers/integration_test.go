package handlers_test

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/softjack/futebol-api/config"
	"github.com/softjack/futebol-api/handlers"
	"github.com/softjack/futebol-api/realtime"
	"github.com/softjack/futebol-api/repositories"
	"github.com/softjack/futebol-api/routes"
	"github.com/softjack/futebol-api/services"
	"github.com/softjack/futebol-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Testes de ponta a ponta da API, montando o router completo sobre o
// banco de teste. Pulados quando o Postgres de teste não está acessível.

func setupRouter(t *testing.T) (*chi.Mux, *sql.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		JWTSecretKey: "segredo-de-teste",
		ServerPort:   8080,
		AppEnv:       "development",
		FrontendURL:  "http://localhost:5173",
	}

	hub := realtime.NewHub(logger)
	go hub.Run()

	userRepo := repositories.NewPostgresUserRepository(db)
	organizadorRepo := repositories.NewPostgresOrganizadorRepository(db)
	jogadorRepo := repositories.NewPostgresJogadorRepository(db)
	sorteioRepo := repositories.NewPostgresSorteioRepository(db)
	timeRepo := repositories.NewPostgresTimeRepository(db)
	partidaRepo := repositories.NewPostgresPartidaRepository(db)

	tokenService := services.NewTokenService(cfg.JWTSecretKey)
	organizadorService := services.NewOrganizadorService(organizadorRepo)
	authService := services.NewAuthService(userRepo, organizadorRepo, nil, logger, cfg.FrontendURL)
	jogadorService := services.NewJogadorService(jogadorRepo, organizadorService)
	sorteioService := services.NewSorteioService(db, sorteioRepo, timeRepo, hub)
	partidaService := services.NewPartidaService(partidaRepo, hub)

	h := routes.Handlers{
		Auth:      handlers.NewAuthHandler(authService, tokenService, organizadorService, jogadorService, cfg.GoogleClientID),
		Jogador:   handlers.NewJogadorHandler(jogadorService),
		Sorteio:   handlers.NewSorteioHandler(sorteioService),
		Partida:   handlers.NewPartidaHandler(partidaService),
		WebSocket: handlers.NewWebSocketHandler(hub, sorteioService, logger),
	}

	return routes.InitRoutes(cfg, h, tokenService, organizadorService), db
}

func registerAndLogin(t *testing.T, router *chi.Mux, nome, email string) (token, codigo string) {
	t.Helper()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/register/organizador", map[string]interface{}{
		"nome":     nome,
		"email":    email,
		"password": "senha-forte",
	}, nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var organizador struct {
		Codigo string `json:"codigo"`
	}
	testutil.DecodeData(t, w, &organizador)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    email,
		"password": "senha-forte",
	}, nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		Token string `json:"token"`
	}
	testutil.DecodeData(t, w, &login)
	require.NotEmpty(t, login.Token)

	return login.Token, organizador.Codigo
}

func authHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestRegisterOrganizadorFlow(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/register/organizador", map[string]interface{}{
		"nome":     "Ana",
		"email":    "ana@example.com",
		"password": "p1",
	}, nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var organizador struct {
		ID     int    `json:"id"`
		Nome   string `json:"nome"`
		Codigo string `json:"codigo"`
		Ativo  bool   `json:"ativo"`
	}
	testutil.DecodeData(t, w, &organizador)
	assert.Equal(t, "Ana", organizador.Nome)
	assert.True(t, organizador.Ativo)
	assert.Regexp(t, `^[A-Z0-9]{8}$`, organizador.Codigo)

	// Email repetido responde 400 com o envelope de erro.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/register/organizador", map[string]interface{}{
		"nome":     "Ana",
		"email":    "ana@example.com",
		"password": "p1",
	}, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, testutil.DecodeError(t, w))
}

func TestLoginBadCredentials(t *testing.T) {
	router, _ := setupRouter(t)
	registerAndLogin(t, router, "Ana", "ana@example.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "ana@example.com",
		"password": "senha-errada",
	}, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshToken(t *testing.T) {
	router, _ := setupRouter(t)
	token, _ := registerAndLogin(t, router, "Ana", "ana@example.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/refresh", map[string]interface{}{
		"token": token,
	}, nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var refreshed struct {
		Token string `json:"token"`
	}
	testutil.DecodeData(t, w, &refreshed)
	assert.NotEmpty(t, refreshed.Token)
}

func TestGoogleRequiresClientID(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/google", map[string]interface{}{
		"token": "qualquer",
	}, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfile(t *testing.T) {
	router, _ := setupRouter(t)
	token, codigo := registerAndLogin(t, router, "Ana", "ana@example.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodGet, "/api/auth/profile", nil, authHeader(token)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profile struct {
		Nome        string `json:"nome"`
		Email       string `json:"email"`
		ContaGoogle bool   `json:"contaGoogle"`
		Codigo      string `json:"codigo"`
	}
	testutil.DecodeData(t, w, &profile)
	assert.Equal(t, "Ana", profile.Nome)
	assert.Equal(t, "ana@example.com", profile.Email)
	assert.False(t, profile.ContaGoogle)
	assert.Equal(t, codigo, profile.Codigo)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, _ := setupRouter(t)

	protected := []struct {
		method, path string
	}{
		{http.MethodGet, "/api/auth/profile"},
		{http.MethodGet, "/api/user"},
		{http.MethodGet, "/api/jogadores"},
		{http.MethodPost, "/api/sorteios"},
		{http.MethodPost, "/api/partidas"},
	}

	for _, route := range protected {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, testutil.MakeRequest(route.method, route.path, nil, nil))
		assert.Equalf(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestRegisterJogadorViaCodigo(t *testing.T) {
	router, _ := setupRouter(t)
	_, codigo := registerAndLogin(t, router, "Ana", "ana@example.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/register/jogador", map[string]interface{}{
		"nome":     "Carlos",
		"posicoes": []string{"Goleiro"},
		"codigo":   codigo,
	}, nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var jogador struct {
		Nome     string   `json:"nome"`
		Posicoes []string `json:"posicoes"`
		Ativo    bool     `json:"ativo"`
	}
	testutil.DecodeData(t, w, &jogador)
	assert.Equal(t, "Carlos", jogador.Nome)
	assert.Equal(t, []string{"Goleiro"}, jogador.Posicoes)
	assert.True(t, jogador.Ativo)

	// Sem código ou com código inválido, 400.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/register/jogador", map[string]interface{}{
		"nome": "Carlos",
	}, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/register/jogador", map[string]interface{}{
		"nome":   "Carlos",
		"codigo": "NAOEXIST",
	}, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJogadorEndpoints(t *testing.T) {
	router, _ := setupRouter(t)
	token, _ := registerAndLogin(t, router, "Ana", "ana@example.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/jogadores", map[string]interface{}{
		"nome":     "Carlos",
		"posicoes": []string{"Meia", "Atacante"},
		"destaque": true,
	}, authHeader(token)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var jogador struct {
		ID       int      `json:"id"`
		Posicoes []string `json:"posicoes"`
	}
	testutil.DecodeData(t, w, &jogador)
	require.NotZero(t, jogador.ID)
	assert.Equal(t, []string{"Meia", "Atacante"}, jogador.Posicoes)

	// Desativa e confirma que o filtro ?ativo=true não o devolve mais.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPut, fmt.Sprintf("/api/jogadores/%d/status", jogador.ID), map[string]interface{}{
		"ativo": false,
	}, authHeader(token)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodGet, "/api/jogadores?ativo=true", nil, authHeader(token)))
	require.Equal(t, http.StatusOK, w.Code)

	var ativos []struct {
		ID int `json:"id"`
	}
	testutil.DecodeData(t, w, &ativos)
	assert.Empty(t, ativos)

	// Jogador de outro organizador não é alcançável: 404.
	outroToken, _ := registerAndLogin(t, router, "Bruno", "bruno@example.com")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPut, fmt.Sprintf("/api/jogadores/%d", jogador.ID), map[string]interface{}{
		"nome": "Invasor",
	}, authHeader(outroToken)))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSorteioAndPartidaEndpoints(t *testing.T) {
	router, _ := setupRouter(t)
	token, codigo := registerAndLogin(t, router, "Ana", "ana@example.com")

	// Elenco para os times.
	jogadorIDs := make([]int, 0, 4)
	for _, nome := range []string{"Carlos", "Diego", "Edu", "Fabio"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/register/jogador", map[string]interface{}{
			"nome":   nome,
			"codigo": codigo,
		}, nil))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var jogador struct {
			ID int `json:"id"`
		}
		testutil.DecodeData(t, w, &jogador)
		jogadorIDs = append(jogadorIDs, jogador.ID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/sorteios", map[string]interface{}{
		"nome": "Pelada de quinta",
	}, authHeader(token)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var sorteio struct {
		ID     int    `json:"id"`
		Status string `json:"status"`
	}
	testutil.DecodeData(t, w, &sorteio)
	assert.Equal(t, "Aberto", sorteio.Status)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, fmt.Sprintf("/api/sorteios/%d/times", sorteio.ID), map[string]interface{}{
		"times": []map[string]interface{}{
			{"nome": "Time A", "jogadorIds": jogadorIDs[:2]},
			{"nome": "Time B", "jogadorIds": jogadorIDs[2:]},
		},
	}, authHeader(token)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var times []struct {
		ID   int    `json:"id"`
		Nome string `json:"nome"`
	}
	testutil.DecodeData(t, w, &times)
	require.Len(t, times, 2)

	// Listagens públicas, sem token.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodGet, fmt.Sprintf("/api/sorteios/%d/times", sorteio.ID), nil, nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodGet, fmt.Sprintf("/api/sorteios/%d/times/%d/jogadores", sorteio.ID, times[0].ID), nil, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var escalacao []struct {
		Nome string `json:"nome"`
	}
	testutil.DecodeData(t, w, &escalacao)
	assert.Len(t, escalacao, 2)

	// Resultado com o mesmo time dos dois lados é sempre rejeitado.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/partidas", map[string]interface{}{
		"timeCasa":      times[0].ID,
		"timeVisitante": times[0].ID,
		"golsCasa":      2,
		"golsVisitante": 1,
		"sorteioId":     sorteio.ID,
	}, authHeader(token)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/partidas", map[string]interface{}{
		"timeCasa":      times[0].ID,
		"timeVisitante": times[1].ID,
		"golsCasa":      2,
		"golsVisitante": 1,
		"sorteioId":     sorteio.ID,
	}, authHeader(token)))
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	// Listagem pública de partidas.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodGet, fmt.Sprintf("/api/partidas/sorteio/%d", sorteio.ID), nil, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var partidas []struct {
		GolsCasa      int    `json:"golsCasa"`
		GolsVisitante int    `json:"golsVisitante"`
		Status        string `json:"status"`
	}
	testutil.DecodeData(t, w, &partidas)
	require.Len(t, partidas, 1)
	assert.Equal(t, 2, partidas[0].GolsCasa)
	assert.Equal(t, "Finalizado", partidas[0].Status)

	// Finaliza o sorteio.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, fmt.Sprintf("/api/sorteios/%d/finalizar", sorteio.ID), nil, authHeader(token)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodGet, "/api/sorteios", nil, authHeader(token)))
	require.Equal(t, http.StatusOK, w.Code)

	var sorteios []struct {
		ID     int    `json:"id"`
		Status string `json:"status"`
	}
	testutil.DecodeData(t, w, &sorteios)
	require.Len(t, sorteios, 1)
	assert.Equal(t, "Finalizado", sorteios[0].Status)
}

func TestRecuperarSenhaAlwaysSucceeds(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/recuperar-senha", map[string]interface{}{
		"email": "ninguem@example.com",
	}, nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateCodigoEndpoint(t *testing.T) {
	router, _ := setupRouter(t)
	token, _ := registerAndLogin(t, router, "Ana", "ana@example.com")
	_, codigoBruno := registerAndLogin(t, router, "Bruno", "bruno@example.com")

	// Código em uso por outro organizador responde 400.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/update-codigo", map[string]interface{}{
		"codigo": codigoBruno,
	}, authHeader(token)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodPost, "/api/auth/update-codigo", map[string]interface{}{
		"codigo": "NOVOCOD1",
	}, authHeader(token)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodGet, "/api/auth/profile", nil, authHeader(token)))
	require.Equal(t, http.StatusOK, w.Code)

	var profile struct {
		Codigo string `json:"codigo"`
	}
	testutil.DecodeData(t, w, &profile)
	assert.Equal(t, "NOVOCOD1", profile.Codigo)
}

func TestCurrentUser(t *testing.T) {
	router, _ := setupRouter(t)
	token, codigo := registerAndLogin(t, router, "Ana", "ana@example.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.MakeRequest(http.MethodGet, "/api/user", nil, authHeader(token)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var organizador struct {
		Nome   string `json:"nome"`
		Codigo string `json:"codigo"`
		Ativo  bool   `json:"ativo"`
	}
	testutil.DecodeData(t, w, &organizador)
	assert.Equal(t, "Ana", organizador.Nome)
	assert.Equal(t, codigo, organizador.Codigo)
	assert.True(t, organizador.Ativo)
}
