package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/schema"
	"github.com/gorilla/websocket"
	"github.com/tinkersmith/marble-solitaire/internal/config"
	"github.com/tinkersmith/marble-solitaire/internal/game"
)

var queryDecoder = schema.NewDecoder()

// Solve exposes the solver over HTTP: a plain JSON response on /solve and a
// move-by-move WebSocket stream on /ws/solve, both driven by the same
// starting-cell query parameters.
type Solve struct {
	logger *slog.Logger
	ws     *config.WebSocket
}

// NewSolve builds a Solve handler.
func NewSolve(logger *slog.Logger, ws *config.WebSocket) *Solve {
	return &Solve{logger: logger, ws: ws}
}

type solveQuery struct {
	Row int `schema:"row"`
	Col int `schema:"col"`
}

type solveResponse struct {
	Solvable bool     `json:"solvable"`
	Moves    []string `json:"moves"`
}

func (h *Solve) parseQuery(r *http.Request) (solveQuery, error) {
	var q solveQuery
	if err := r.ParseForm(); err != nil {
		return q, err
	}
	if err := queryDecoder.Decode(&q, r.Form); err != nil {
		return q, err
	}
	return q, nil
}

// Solve handles GET /solve?row=&col=.
func (h *Solve) Solve(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		SendErrorOrLog(w, h.logger, err)
		return
	}

	g := game.NewWithEmpty(q.Row, q.Col)
	moves := g.Solution()

	resp := solveResponse{Solvable: moves != nil}
	for _, m := range moves {
		resp.Moves = append(resp.Moves, m.String())
	}
	SendJSONOrLog(w, h.logger, resp)
}

// WSSolve handles GET /ws/solve?row=&col=, streaming each move of the
// solution as its own text frame, then closing the socket.
func (h *Solve) WSSolve(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		SendErrorOrLog(w, h.logger, err)
		return
	}

	conn, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("unable to upgrade to websocket", slog.Any("error", err))
		return
	}
	defer conn.Close()

	g := game.NewWithEmpty(q.Row, q.Col)
	moves := g.Solution()
	if moves == nil {
		conn.WriteJSON(map[string]any{"solvable": false})
		return
	}

	for _, m := range moves {
		if err := conn.WriteJSON(map[string]any{
			"solvable": true,
			"move":     m.String(),
		}); err != nil {
			h.logger.Warn("failed to stream move, client likely gone", slog.Any("error", err))
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
