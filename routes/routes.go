package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/kijvolley/tournament-tracker/handlers"
	"github.com/kijvolley/tournament-tracker/middleware"
)

func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	teamHandler *handlers.TeamHandler,
	gameHandler *handlers.GameHandler,
	standingsHandler *handlers.StandingsHandler,
	adminHandler *handlers.AdminHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	requireAdmin := middleware.RequireAdmin(jwtSecret)

	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", teamHandler.ListTeams)

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Post("/", teamHandler.RegisterTeam)
				r.Delete("/{teamName}", teamHandler.DeleteTeam)
				r.Post("/{teamName}/logo", teamHandler.UploadLogo)
			})
		})

		r.Route("/games", func(r chi.Router) {
			r.Get("/", gameHandler.ListGames)

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Post("/", gameHandler.StartGame)
				r.Post("/score", gameHandler.AdjustScore)
				r.Post("/complete", gameHandler.CompleteGame)
			})
		})

		r.Get("/standings", standingsHandler.GetStandings)

		r.With(requireAdmin).Post("/admin/reset", adminHandler.ResetTournament)
	})

	router.Get("/ws", webSocketHandler.ServeWs)
}
