package handlers

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tinkersmith/marble-solitaire/internal/leaderboard"
	"github.com/tinkersmith/marble-solitaire/internal/repository"
)

// Leaderboard lets anyone record a finished game and browse the ranked
// results for a given starting cell. Per-cell rankings are cached in
// memory (internal/leaderboard) so a repeatedly queried cell doesn't
// re-sort the whole row set on every request; the database remains the
// durable source of truth.
type Leaderboard struct {
	logger *slog.Logger
	repo   *repository.Queries

	mu    sync.Mutex
	cache map[[2]int]*leaderboard.Board
}

// NewLeaderboard builds a Leaderboard handler.
func NewLeaderboard(logger *slog.Logger, db *pgxpool.Pool) *Leaderboard {
	return &Leaderboard{
		logger: logger,
		repo:   repository.New(db),
		cache:  make(map[[2]int]*leaderboard.Board),
	}
}

func (h *Leaderboard) boardFor(row, col int) *leaderboard.Board {
	h.mu.Lock()
	defer h.mu.Unlock()
	key := [2]int{row, col}
	b, ok := h.cache[key]
	if !ok {
		b = leaderboard.New()
		h.cache[key] = b
	}
	return b
}

type recordGameRequest struct {
	Username  *string `json:"username"`
	StartRow  int     `json:"start_row"`
	StartCol  int     `json:"start_col"`
	MoveCount int     `json:"move_count"`
	ElapsedMs float64 `json:"elapsed_ms"`
	Won       bool    `json:"won"`
}

// Record handles POST /leaderboard. Username is a free-text, unverified
// display name supplied by the client; a nil or empty one is recorded
// anonymously.
func (h *Leaderboard) Record(w http.ResponseWriter, r *http.Request) {
	var req recordGameRequest
	if err := decodeJSON(r, &req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		SendErrorOrLog(w, h.logger, err)
		return
	}

	record, err := h.repo.CreateSolveRecord(r.Context(), repository.CreateSolveRecordParams{
		Username:  req.Username,
		StartRow:  req.StartRow,
		StartCol:  req.StartCol,
		MoveCount: req.MoveCount,
		ElapsedMs: req.ElapsedMs,
		Won:       req.Won,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to insert solve record", slog.Any("error", err))
		return
	}

	if req.Won {
		username := "anonymous"
		if req.Username != nil && *req.Username != "" {
			username = *req.Username
		}
		h.boardFor(req.StartRow, req.StartCol).Add(leaderboard.Entry{
			Username:  username,
			StartRow:  req.StartRow,
			StartCol:  req.StartCol,
			MoveCount: req.MoveCount,
			ElapsedMs: req.ElapsedMs,
		})
	}

	SendJSONOrLog(w, h.logger, record)
}

type leaderboardQuery struct {
	Row *int `schema:"row"`
	Col *int `schema:"col"`
}

// List handles GET /leaderboard?row=&col=.
func (h *Leaderboard) List(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		SendErrorOrLog(w, h.logger, err)
		return
	}
	var q leaderboardQuery
	if err := queryDecoder.Decode(&q, r.Form); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		SendErrorOrLog(w, h.logger, err)
		return
	}

	if q.Row != nil && q.Col != nil {
		if cached := h.boardFor(*q.Row, *q.Col); cached.Len() > 0 {
			SendJSONOrLog(w, h.logger, cached.Top(50))
			return
		}
	}

	entries, err := h.repo.GetLeaderboard(r.Context(), repository.LeaderboardFilter{
		StartRow: q.Row,
		StartCol: q.Col,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch leaderboard", slog.Any("error", err))
		return
	}

	if q.Row != nil && q.Col != nil {
		b := h.boardFor(*q.Row, *q.Col)
		for _, e := range entries {
			username := "anonymous"
			if e.Username != nil {
				username = *e.Username
			}
			b.Add(leaderboard.Entry{
				Username:  username,
				StartRow:  e.StartRow,
				StartCol:  e.StartCol,
				MoveCount: e.MoveCount,
				ElapsedMs: e.ElapsedMs,
			})
		}
	}

	SendJSONOrLog(w, h.logger, entries)
}
