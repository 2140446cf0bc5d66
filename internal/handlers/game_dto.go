package handlers

import (
	"github.com/gorilla/schema"
	"github.com/vancomm/sweeper/internal/mines"
	"github.com/vancomm/sweeper/internal/session"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type NewGameParams struct {
	Level string `schema:"level"`
}

type IndexParams struct {
	Index int `schema:"index,required"`
}

type FlagParams struct {
	Index int   `schema:"index,required"`
	Value *bool `schema:"value"`
}

type GameDTO struct {
	SessionId    string        `json:"session_id"`
	Level        string        `json:"level"`
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	MineCount    int           `json:"mine_count"`
	FlaggedCount int           `json:"flagged_count"`
	Grid         mines.Grid    `json:"grid"`
	Outcome      mines.Outcome `json:"outcome"`
	Message      string        `json:"message"`
	Phase        string        `json:"phase"`
	Locked       bool          `json:"locked"`
	Elapsed      int64         `json:"elapsed"`
	StartedAt    int64         `json:"started_at"`
	EndedAt      *int64        `json:"ended_at,omitempty"`
}

func NewGameDTO(snap session.Snapshot) *GameDTO {
	var endedAt *int64
	if !snap.EndedAt.IsZero() {
		e := snap.EndedAt.UnixMilli()
		endedAt = &e
	}
	return &GameDTO{
		SessionId:    snap.ID,
		Level:        snap.Level.Name,
		Width:        snap.Level.Size.Width,
		Height:       snap.Level.Size.Height,
		MineCount:    snap.Level.MineCount,
		FlaggedCount: snap.FlaggedCount,
		Grid:         snap.Grid,
		Outcome:      snap.Outcome,
		Message:      snap.Outcome.Message(),
		Phase:        snap.Phase,
		Locked:       snap.Locked,
		Elapsed:      int64(snap.Elapsed.Seconds()),
		StartedAt:    snap.StartedAt.UnixMilli(),
		EndedAt:      endedAt,
	}
}

type NewGameResponse struct {
	*GameDTO
	Ticket string `json:"ticket"`
}
