package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // alias para não conflitar com o pacote local
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/softjack/futebol-api/config"
	"github.com/softjack/futebol-api/handlers"
	"github.com/softjack/futebol-api/middleware"
	"github.com/softjack/futebol-api/services"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Jogador   *handlers.JogadorHandler
	Sorteio   *handlers.SorteioHandler
	Partida   *handlers.PartidaHandler
	WebSocket *handlers.WebSocketHandler
}

func InitRoutes(
	cfg *config.Config,
	h Handlers,
	tokenService services.TokenService,
	organizadorService services.OrganizadorService,
) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL, "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Google-Client-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate(tokenService)
	organizadorScope := middleware.OrganizadorScope(organizadorService)

	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/register/organizador", h.Auth.RegisterOrganizador)
		r.Post("/register/jogador", h.Auth.RegisterJogador)
		r.Post("/login", h.Auth.Login)
		r.Post("/google", h.Auth.Google)
		r.Post("/refresh", h.Auth.Refresh)
		r.Post("/recuperar-senha", h.Auth.RecuperarSenha)
		r.Post("/redefinir-senha", h.Auth.RedefinirSenha)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Get("/profile", h.Auth.Profile)
			r.Post("/change-password", h.Auth.ChangePassword)
			r.Post("/update-name", h.Auth.UpdateName)
			r.Post("/update-codigo", h.Auth.UpdateCodigo)
		})
	})

	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Get("/api/user", h.Auth.CurrentUser)
	})

	router.Route("/api/jogadores", func(r chi.Router) {
		r.Use(authenticate)
		r.Use(organizadorScope)

		r.Post("/", h.Jogador.Create)
		r.Get("/", h.Jogador.List)
		r.Put("/{id}", h.Jogador.Update)
		r.Put("/{id}/status", h.Jogador.UpdateStatus)
	})

	router.Route("/api/sorteios", func(r chi.Router) {
		// Rotas públicas: jogadores acompanham times e escalações sem conta.
		r.Get("/{id}/times", h.Sorteio.ListTimes)
		r.Get("/{sorteioId}/times/{timeId}/jogadores", h.Sorteio.ListJogadoresDoTime)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(organizadorScope)

			r.Post("/", h.Sorteio.Create)
			r.Get("/", h.Sorteio.List)
			r.Post("/{id}/times", h.Sorteio.AddTimes)
			r.Post("/{id}/finalizar", h.Sorteio.Finalizar)
		})
	})

	router.Route("/api/partidas", func(r chi.Router) {
		r.Get("/sorteio/{sorteioId}", h.Partida.ListBySorteio)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(organizadorScope)

			r.Post("/", h.Partida.Registrar)
		})
	})

	// Eventos ao vivo de um sorteio (público, somente leitura).
	router.Get("/api/ws/sorteios/{id}", h.WebSocket.ServeSorteio)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	return router
}
