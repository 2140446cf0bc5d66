package session

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/sweeper/internal/mines"
)

var Log = logrus.New()

const (
	PhasePlaying = "playing"
	PhaseWon     = "won"
	PhaseLost    = "lost"
)

// MaxElapsed caps the game clock.
const MaxElapsed = 300 * time.Second

// Session is one game in progress. Its methods are safe for concurrent use;
// the board underneath is only ever touched with mu held.
type Session struct {
	mu sync.Mutex

	id        string
	level     mines.Level
	board     *mines.Board
	phase     *fsm.FSM
	startedAt time.Time
	endedAt   time.Time
	lastSeen  time.Time
	now       func() time.Time
}

// Snapshot is a consistent copy of everything a client may see.
type Snapshot struct {
	ID           string
	Level        mines.Level
	Grid         mines.Grid
	FlaggedCount int
	Outcome      mines.Outcome
	Phase        string
	Locked       bool
	Elapsed      time.Duration
	StartedAt    time.Time
	EndedAt      time.Time
}

func New(level mines.Level, r *rand.Rand) (*Session, error) {
	board, err := mines.Generate(level.Size, level.MineCount, r)
	if err != nil {
		return nil, err
	}
	return newSession(uuid.NewString(), level, board, time.Now), nil
}

// NewFromBoard wraps an existing board, e.g. one built with mines.NewBoard.
func NewFromBoard(id string, level mines.Level, board *mines.Board) *Session {
	return newSession(id, level, board, time.Now)
}

func newSession(
	id string, level mines.Level, board *mines.Board, now func() time.Time,
) *Session {
	s := &Session{
		id:    id,
		level: level,
		board: board,
		now:   now,
	}
	s.startedAt = now()
	s.lastSeen = s.startedAt
	s.phase = fsm.NewFSM(
		PhasePlaying,
		fsm.Events{
			{Name: "win", Src: []string{PhasePlaying}, Dst: PhaseWon},
			{Name: "lose", Src: []string{PhasePlaying}, Dst: PhaseLost},
		},
		fsm.Callbacks{
			"enter_state": func(ctx context.Context, e *fsm.Event) {
				s.endedAt = s.now()
				Log.WithFields(logrus.Fields{
					"session": s.id,
					"level":   s.level.Name,
					"phase":   e.Dst,
					"elapsed": s.elapsed().String(),
				}).Info("game finished")
			},
		},
	)
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Level() mines.Level {
	return s.level
}

func (s *Session) Reveal(i int) (mines.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = s.now()
	o, err := s.board.Reveal(i)
	if err != nil {
		return o, err
	}
	return o, s.settle()
}

func (s *Session) Flag(i int, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = s.now()
	return s.board.Flag(i, value)
}

// ToggleFlag flips the flag on a hidden cell.
func (s *Session) ToggleFlag(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = s.now()
	c, err := s.board.CellAt(i)
	if err != nil {
		return err
	}
	return s.board.Flag(i, !c.Flagged)
}

func (s *Session) Resign() (mines.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = s.now()
	o := s.board.Resign()
	return o, s.settle()
}

// settle moves the phase machine to match a board that just locked.
func (s *Session) settle() error {
	if !s.board.Locked() || !s.phase.Is(PhasePlaying) {
		return nil
	}
	event := "lose"
	if s.board.Outcome() == mines.Won {
		event = "win"
	}
	return s.phase.Event(context.Background(), event)
}

func (s *Session) Phase() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase.Current()
}

// Elapsed is the whole seconds played, frozen once the game ends.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed()
}

func (s *Session) elapsed() time.Duration {
	end := s.now()
	if !s.endedAt.IsZero() {
		end = s.endedAt
	}
	return min(end.Sub(s.startedAt).Truncate(time.Second), MaxElapsed)
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:           s.id,
		Level:        s.level,
		Grid:         s.board.View(),
		FlaggedCount: s.board.FlaggedCount(),
		Outcome:      s.board.Outcome(),
		Phase:        s.phase.Current(),
		Locked:       s.board.Locked(),
		Elapsed:      s.elapsed(),
		StartedAt:    s.startedAt,
		EndedAt:      s.endedAt,
	}
}
