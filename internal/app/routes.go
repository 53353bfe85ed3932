package app

import (
	"github.com/tinkersmith/marble-solitaire/internal/handlers"
)

func (a *App) loadRoutes() {
	solve := handlers.NewSolve(a.logger, a.ws)
	leaderboard := handlers.NewLeaderboard(a.logger, a.db)

	a.router.HandleFunc("GET /solve", solve.Solve)
	a.router.HandleFunc("GET /ws/solve", solve.WSSolve)

	a.router.HandleFunc("GET /leaderboard", leaderboard.List)
	a.router.HandleFunc("POST /leaderboard", leaderboard.Record)
}
