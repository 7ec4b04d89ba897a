package model

import (
	"errors"
	"sync"
	"time"
)

// SideOptions configures one color of a session.
type SideOptions struct {
	Name   string
	Gated  bool       // commits for this color wait on an authorization decision
	Policy MovePolicy // non-nil means this color is machine-controlled
}

type SessionOptions struct {
	White         SideOptions
	Black         SideOptions
	ClockDuration time.Duration
}

const defaultClockDuration = 600 * time.Second

type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

type PlayerState struct {
	Name     string `json:"name"`
	Color    Color  `json:"color"`
	TimeLeft int    `json:"timeLeft"` // tenths of a second
}

// Snapshot is the full observable state of a session, shaped for direct
// rendering by a host UI.
type Snapshot struct {
	Board                  [8][8]*Piece   `json:"board"`
	ToMove                 Color          `json:"toMove"`
	Status                 GameStatus     `json:"status"`
	Winner                 *Color         `json:"winner"`
	CapturedPieces         CapturedPieces `json:"capturedPieces"`
	MoveHistory            []string       `json:"moveHistory"`
	SelectedSquare         *Square        `json:"selectedSquare"`
	LegalMoves             []Square       `json:"legalMoves"`
	PendingMoveDestination *Square        `json:"pendingMoveDestination"`
	LastMove               *Move          `json:"lastMove"`
	Players                struct {
		White PlayerState `json:"white"`
		Black PlayerState `json:"black"`
	} `json:"players"`
}

type pendingMove struct {
	id   int
	move Move
}

// GameSession owns one game: the board, the turn, the status, the capture
// log and the transient selection. Every external event (selection, oracle
// answer, clock expiry, policy reply) passes through the session mutex, so
// the engine beneath stays single-threaded. Invalid input is a silent no-op;
// no public operation returns an engine error.
type GameSession struct {
	mu         sync.Mutex
	opts       SessionOptions
	board      Board
	toMove     Color
	status     GameStatus
	winner     *Color
	captured   CapturedPieces
	history    []string
	selected   *Square
	legal      []Square
	lastMove   *Move
	pending    *pendingMove
	pendingSeq int
	names      map[Color]string
	gated      map[Color]bool
	policies   map[Color]MovePolicy
	clocks     map[Color]*Clock

	// notifyMu keeps change deliveries in mutation order. It is acquired
	// while the session lock is still held and released after the callback
	// runs, so a later mutation cannot publish its snapshot first.
	notifyMu    sync.Mutex
	onChange    func(Snapshot)
	onChallenge func(Challenge)
}

func NewSession(opts SessionOptions) *GameSession {
	if opts.ClockDuration <= 0 {
		opts.ClockDuration = defaultClockDuration
	}
	s := &GameSession{
		opts:   opts,
		board:  NewBoard(),
		toMove: White,
		status: StatusOngoing,
		names: map[Color]string{
			White: opts.White.Name,
			Black: opts.Black.Name,
		},
		gated: map[Color]bool{
			White: opts.White.Gated,
			Black: opts.Black.Gated,
		},
		policies: map[Color]MovePolicy{
			White: opts.White.Policy,
			Black: opts.Black.Policy,
		},
	}
	s.clocks = s.newClocks()
	return s
}

func (s *GameSession) newClocks() map[Color]*Clock {
	clocks := make(map[Color]*Clock, 2)
	for _, color := range []Color{White, Black} {
		c := color
		clocks[c] = NewClock(s.opts.ClockDuration, func() { s.ExpireTime(c) })
	}
	return clocks
}

// Observe registers the change and challenge callbacks. Change callbacks
// are invoked synchronously after the session lock is released, one at a
// time, in mutation order; challenge callbacks run on their own goroutine
// so a slow authorization source never blocks the caller.
func (s *GameSession) Observe(onChange func(Snapshot), onChallenge func(Challenge)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = onChange
	s.onChallenge = onChallenge
}

// AddPlayer seats a player on the first free color and returns it.
func (s *GameSession) AddPlayer(name string) (Color, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, color := range []Color{White, Black} {
		if s.names[color] == "" && s.policies[color] == nil {
			s.names[color] = name
			return color, nil
		}
	}
	return "", errors.New("game is full")
}

// SelectSquare drives the whole selection/commit surface: it selects or
// clears the mover's piece, or, when sq is a cached legal destination,
// commits the move, directly or through the authorization gate when the
// mover is gated. Empty squares and opponent pieces are no-ops. Nothing
// proceeds while a move is pending.
func (s *GameSession) SelectSquare(sq Square) {
	s.mu.Lock()
	if !sq.Valid() || s.pending != nil || s.status.Concluded() {
		s.mu.Unlock()
		return
	}
	notify := func() {}
	raise := func() {}
	switch {
	case s.selected != nil && containsSquare(s.legal, sq):
		move := Move{From: *s.selected, To: sq}
		if s.gated[s.toMove] {
			s.pendingSeq++
			s.pending = &pendingMove{id: s.pendingSeq, move: move}
			raise = s.challengeLocked(Challenge{ID: s.pending.id, Move: move, Color: s.toMove})
		} else {
			s.commitLocked(move)
			s.playPolicyLocked()
		}
		notify = s.notifyLocked()
	case s.ownPieceLocked(sq):
		if s.selected != nil && *s.selected == sq {
			s.selected = nil
			s.legal = nil
		} else {
			sel := sq
			s.selected = &sel
			s.legal = LegalMoves(s.board, sq)
		}
		notify = s.notifyLocked()
	}
	s.mu.Unlock()
	notify()
	raise()
}

// LegalTargets returns the legal destinations from sq for highlighting. It
// is empty unless sq holds a piece of the side to move and no move is
// pending.
func (s *GameSession) LegalTargets(sq Square) []Square {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil || s.status.Concluded() || !s.ownPieceLocked(sq) {
		return nil
	}
	return LegalMoves(s.board, sq)
}

// ResolvePending delivers the authorization decision for pending move id.
// Authorized commits the move; denied forfeits the turn without moving.
// Stale deliveries (wrong id, no pending move, concluded game) are ignored,
// and each pending move resolves at most once.
func (s *GameSession) ResolvePending(id int, authorized bool) {
	s.mu.Lock()
	if s.pending == nil || s.pending.id != id || s.status.Concluded() {
		s.mu.Unlock()
		return
	}
	move := s.pending.move
	s.pending = nil
	if authorized {
		s.commitLocked(move)
	} else {
		s.selected = nil
		s.legal = nil
		s.clocks[s.toMove].Stop()
		s.toMove = s.toMove.Opposite()
		s.refreshStatusLocked()
	}
	s.playPolicyLocked()
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()
}

// ExpireTime records a zero-crossing for color: the opponent wins by the
// checkmate status, bypassing the board computation. Terminal and
// idempotent; late expirations after conclusion are dropped.
func (s *GameSession) ExpireTime(color Color) {
	s.mu.Lock()
	if s.status.Concluded() {
		s.mu.Unlock()
		return
	}
	s.status = StatusCheckmate
	winner := color.Opposite()
	s.winner = &winner
	s.selected = nil
	s.legal = nil
	s.pending = nil
	s.haltClocksLocked()
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()
}

// PlayPolicyMove asks the current side's policy (if any) for a move and
// commits it. The host uses this to kick off a machine-controlled white.
func (s *GameSession) PlayPolicyMove() {
	s.mu.Lock()
	if s.pending != nil || s.status.Concluded() {
		s.mu.Unlock()
		return
	}
	s.playPolicyLocked()
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()
}

// Reset replaces the whole game state, as at "new game".
func (s *GameSession) Reset() {
	s.mu.Lock()
	s.haltClocksLocked()
	s.board = NewBoard()
	s.toMove = White
	s.status = StatusOngoing
	s.winner = nil
	s.captured = CapturedPieces{}
	s.history = nil
	s.selected = nil
	s.legal = nil
	s.lastMove = nil
	s.pending = nil
	s.clocks = s.newClocks()
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()
}

// Close releases the clock goroutines.
func (s *GameSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.haltClocksLocked()
}

func (s *GameSession) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// commitLocked applies a chosen move: castling rook relocation, capture log,
// relocation, promotion, turn flip, status recompute, clock handover. A
// missing piece on from is a no-op.
func (s *GameSession) commitLocked(m Move) {
	piece := s.board.PieceAt(m.From)
	if piece == nil {
		return
	}
	// A king moving more than one file is a castle; only legality-filtered
	// castles reach this point, so relocate the rook unconditionally.
	if piece.Kind == King && abs(m.To.X-m.From.X) > 1 {
		if m.To.X > m.From.X {
			s.board = s.board.WithMove(Square{X: 7, Y: m.From.Y}, Square{X: 5, Y: m.From.Y})
		} else {
			s.board = s.board.WithMove(Square{X: 0, Y: m.From.Y}, Square{X: 3, Y: m.From.Y})
		}
	}
	captured := s.board.PieceAt(m.To)
	if captured != nil {
		taken := *captured
		if piece.Color == White {
			s.captured.White = append(s.captured.White, taken)
		} else {
			s.captured.Black = append(s.captured.Black, taken)
		}
	}
	s.board = s.board.WithMove(m.From, m.To)
	promoted := false
	if moved := s.board.PieceAt(m.To); moved.Kind == Pawn && m.To.Y == moved.Color.promotionRank() {
		s.board = s.board.WithPiece(m.To, &Piece{Kind: Queen, Color: moved.Color, HasMoved: true})
		promoted = true
	}
	s.history = append(s.history, notation(*piece, m, captured, promoted))
	last := m
	s.lastMove = &last
	s.selected = nil
	s.legal = nil
	s.pending = nil

	s.clocks[s.toMove].Stop()
	s.toMove = s.toMove.Opposite()
	s.refreshStatusLocked()
}

// refreshStatusLocked recomputes the status for the side now to move and
// manages clocks and the winner on conclusion.
func (s *GameSession) refreshStatusLocked() {
	s.status = ComputeStatus(s.board, s.toMove)
	if s.status == StatusCheckmate {
		winner := s.toMove.Opposite()
		s.winner = &winner
	}
	if s.status.Concluded() {
		s.haltClocksLocked()
		return
	}
	s.clocks[s.toMove].Start()
}

// playPolicyLocked lets a machine-controlled side answer the move that was
// just committed. Policy moves are never gated.
func (s *GameSession) playPolicyLocked() {
	if s.status.Concluded() {
		return
	}
	policy := s.policies[s.toMove]
	if policy == nil {
		return
	}
	move, ok := policy.ChooseMove(LegalMovesForColor(s.board, s.toMove))
	if !ok {
		return
	}
	s.commitLocked(move)
}

func (s *GameSession) ownPieceLocked(sq Square) bool {
	piece := s.board.PieceAt(sq)
	return piece != nil && piece.Color == s.toMove
}

func (s *GameSession) haltClocksLocked() {
	for _, c := range s.clocks {
		c.Halt()
	}
}

func (s *GameSession) snapshotLocked() Snapshot {
	snap := Snapshot{
		Board:          s.board.Grid(),
		ToMove:         s.toMove,
		Status:         s.status,
		Winner:         s.winner,
		CapturedPieces: s.captured,
		MoveHistory:    append([]string(nil), s.history...),
		SelectedSquare: s.selected,
		LegalMoves:     append([]Square(nil), s.legal...),
		LastMove:       s.lastMove,
	}
	if s.pending != nil {
		dest := s.pending.move.To
		snap.PendingMoveDestination = &dest
	}
	snap.Players.White = PlayerState{
		Name:     s.names[White],
		Color:    White,
		TimeLeft: int(s.clocks[White].TimeLeft().Milliseconds() / 100),
	}
	snap.Players.Black = PlayerState{
		Name:     s.names[Black],
		Color:    Black,
		TimeLeft: int(s.clocks[Black].TimeLeft().Milliseconds() / 100),
	}
	return snap
}

func (s *GameSession) notifyLocked() func() {
	if s.onChange == nil {
		return func() {}
	}
	cb := s.onChange
	snap := s.snapshotLocked()
	s.notifyMu.Lock()
	return func() {
		defer s.notifyMu.Unlock()
		cb(snap)
	}
}

func (s *GameSession) challengeLocked(ch Challenge) func() {
	if s.onChallenge == nil {
		return func() {}
	}
	cb := s.onChallenge
	return func() { go cb(ch) }
}

func containsSquare(squares []Square, sq Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
