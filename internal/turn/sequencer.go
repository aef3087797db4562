package turn

import (
	"sort"

	"github.com/lgbarn/chessrules-go/internal/board"
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Sequencer drives one game through its turn phases. It is not safe for
// concurrent use; run independent games on independent sequencers.
type Sequencer struct {
	cfg       *config.Config
	animator  Animator
	presenter Presenter

	phase     Phase
	board     *board.Board
	history   *engine.MoveHistory
	side      chess.Colour
	halfMoves int

	// seed stands in for the latest move until the first move is made, so
	// an en passant square loaded from FEN is honoured.
	seed *chess.MoveInfo

	pos       engine.Position
	checklist Checklist

	// awaiting holds the entities whose motion has been requested and not
	// yet reported finished. requesting is set while requests are issued.
	awaiting   map[chess.EntityID]bool
	requesting bool
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithAnimator sets the animator. The default completes motions instantly.
func WithAnimator(a Animator) Option {
	return func(s *Sequencer) {
		s.animator = a
	}
}

// WithPresenter sets the presentation hooks.
func WithPresenter(p Presenter) Option {
	return func(s *Sequencer) {
		s.presenter = p
	}
}

// NewSequencer creates an idle sequencer. A nil cfg uses the defaults.
func NewSequencer(cfg *config.Config, opts ...Option) *Sequencer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	s := &Sequencer{
		cfg:       cfg,
		animator:  InstantAnimator{},
		presenter: nopPresenter{},
		awaiting:  make(map[chess.EntityID]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartGame spawns the pieces and runs the first turn start. On success the
// sequencer waits in SelectMove (or GameOver for a finished position).
func (s *Sequencer) StartGame() error {
	if s.phase != None {
		return s.fail(errors.ErrWrongPhase, chess.NoEntity, nil)
	}
	if err := s.cfg.Validate(); err != nil {
		return err
	}
	if s.cfg.Mode != config.LocalSinglePlayer {
		return errors.Wrapf(errors.ErrNotImplemented, "game mode %v", s.cfg.Mode)
	}

	s.enter(GameStart)
	if err := s.spawn(); err != nil {
		s.phase = None
		return err
	}
	return s.startTurn()
}

// spawn builds the board from the configured FEN or the initial setup.
func (s *Sequencer) spawn() error {
	if s.cfg.StartFEN == "" {
		b := board.NewBoard()
		if err := b.SetupInitialPosition(); err != nil {
			return s.fail(err, chess.NoEntity, nil)
		}
		s.board = b
		s.side = chess.White
		s.history = engine.NewMoveHistory(0)
		s.cfg.Logf(2, "spawned %d pieces", b.Len())
		return nil
	}

	setup, err := board.NewBoardFromFEN(s.cfg.StartFEN)
	if err != nil {
		return errors.Wrap(err, "start position")
	}
	s.board = setup.Board
	s.side = setup.ToMove
	s.halfMoves = setup.HalfMoves
	s.seed = setup.LastMove
	s.history = engine.NewMoveHistory(setup.HalfMoves)
	s.cfg.Logf(2, "spawned %d pieces from %s", s.board.Len(), s.cfg.StartFEN)
	return nil
}

// startTurn runs the checklist: the resolvers and the presenter hook, a
// join, then move generation and attacked squares.
func (s *Sequencer) startTurn() error {
	s.enter(Start)
	s.checklist.Reset()
	s.pos = engine.Position{Side: s.side}

	err := s.checklist.Run(
		Task{Name: TaskEnPassant, Run: s.resolveEnPassant},
		Task{Name: TaskCastling, Run: s.resolveCastling},
		Task{Name: TaskPresenter, Run: s.presentTurn},
	)
	if err == nil {
		err = s.checklist.Join(TaskEnPassant, TaskCastling, TaskPresenter)
	}
	if err == nil {
		err = s.checklist.Run(
			Task{Name: TaskMoves, Run: s.generateMoves},
			Task{Name: TaskAttacked, Run: s.resolveAttacked},
		)
	}
	if err != nil {
		return s.fail(err, chess.NoEntity, nil)
	}

	if s.pos.Outcome != engine.Ongoing {
		s.cfg.Logf(1, "%v: %v to move", s.pos.Outcome, s.side)
		s.enter(GameOver)
		return nil
	}
	s.enter(SelectMove)
	return nil
}

func (s *Sequencer) resolveEnPassant() error {
	s.pos.EnPassant = engine.ResolveEnPassant(s.history, s.seed)
	return nil
}

func (s *Sequencer) resolveCastling() error {
	s.pos.Castles = engine.ResolveCastling(s.board, s.rules())
	return nil
}

func (s *Sequencer) presentTurn() error {
	s.presenter.OnTurnStart(s.side)
	return nil
}

func (s *Sequencer) generateMoves() error {
	rules := s.rules()
	s.pos.Moves = engine.ResolveMoves(s.board, s.pos.Castles, s.pos.EnPassant, s.side, rules)
	if rules.KingSafety {
		s.pos.InCheck, s.pos.Outcome = engine.ResolveOutcome(s.board, s.pos.Moves, s.side)
	}
	return nil
}

func (s *Sequencer) resolveAttacked() error {
	s.pos.Attacked = engine.ResolveAttackedSquares(s.board, s.pos.Moves, s.side.Opposite())
	return nil
}

func (s *Sequencer) rules() engine.Rules {
	return engine.Rules{KingSafety: s.cfg.Rules.KingSafety}
}

// Selectable returns the pieces of the side to move that have a move.
// Outside SelectMove it returns nil.
func (s *Sequencer) Selectable() []chess.EntityID {
	if s.phase != SelectMove {
		return nil
	}
	return s.pos.Moves.Selectable(s.board, s.side)
}

// Moves returns the moves of a piece of the side to move.
func (s *Sequencer) Moves(id chess.EntityID) []chess.MoveInfo {
	if s.phase != SelectMove || !s.ownPiece(id) {
		return nil
	}
	return s.pos.Moves.Get(id)
}

// Destinations returns the squares a piece of the side to move can reach.
func (s *Sequencer) Destinations(id chess.EntityID) []chess.Square {
	if s.phase != SelectMove || !s.ownPiece(id) {
		return nil
	}
	return s.pos.Moves.Destinations(id)
}

func (s *Sequencer) ownPiece(id chess.EntityID) bool {
	p, ok := s.board.Piece(id)
	return ok && p.Colour == s.side
}

// Select confirms the move of a piece to a square. A pawn reaching the last
// rank becomes the configured auto-promotion piece, or a Queen when the
// configured kind cannot be promoted to. An unavailable move
// returns ErrIllegalSelection and leaves the sequencer in SelectMove.
func (s *Sequencer) Select(id chess.EntityID, to chess.Square) error {
	m, err := s.lookup(id, to)
	if err != nil {
		return err
	}
	if m.IsPromotion() {
		m.Promotion = s.cfg.Rules.AutoPromotion
		if !m.Promotion.CanPromoteTo() {
			m.Promotion = chess.Queen
		}
	}
	return s.movePiece(m)
}

// SelectPromotion confirms a promoting pawn move and names the new piece.
func (s *Sequencer) SelectPromotion(id chess.EntityID, to chess.Square, kind chess.Kind) error {
	m, err := s.lookup(id, to)
	if err != nil {
		return err
	}
	if !m.IsPromotion() || !kind.CanPromoteTo() {
		return s.fail(errors.Wrapf(errors.ErrIllegalSelection, "promote %v to %v", m, kind), id, &to)
	}
	m.Promotion = kind
	return s.movePiece(m)
}

// lookup finds a selectable move in the current table.
func (s *Sequencer) lookup(id chess.EntityID, to chess.Square) (chess.MoveInfo, error) {
	if s.phase != SelectMove {
		return chess.MoveInfo{}, s.fail(errors.ErrWrongPhase, id, &to)
	}
	if !s.ownPiece(id) {
		return chess.MoveInfo{}, s.fail(errors.Wrap(errors.ErrIllegalSelection, "not a piece of the side to move"), id, &to)
	}
	m, ok := s.pos.Moves.MoveTo(id, to)
	if !ok {
		return chess.MoveInfo{}, s.fail(errors.ErrIllegalSelection, id, &to)
	}
	return m, nil
}

// movePiece applies the move, records it and requests the animations.
func (s *Sequencer) movePiece(m chess.MoveInfo) error {
	s.enter(MovePiece)

	applied, err := engine.ApplyMove(s.board, m, s.pos.Castles)
	if err != nil {
		return s.fail(err, m.Entity, &m.To)
	}
	played := applied.Move
	if s.cfg.Rules.KingSafety {
		played = engine.AnnotateCheck(s.board, played)
	}
	s.history.Append(played)
	s.cfg.Logf(1, "%s", played)
	s.cfg.Logf(2, "history: %s", s.history)

	if applied.Captured != chess.NoEntity {
		s.presenter.OnCapture(applied.Captured)
	}

	for _, motion := range applied.Motions {
		s.awaiting[motion.Entity] = true
	}
	s.requesting = true
	for _, motion := range applied.Motions {
		entity := motion.Entity
		s.animator.MoveTo(entity, motion.To, func() {
			_ = s.MotionFinished(entity)
		})
	}
	s.requesting = false

	if len(s.awaiting) == 0 {
		return s.finishTurn()
	}
	return nil
}

// MotionFinished reports that the animation of an entity has ended. Once
// every requested motion has finished the turn completes and the next one
// starts. Reports for entities that were not requested are ignored.
func (s *Sequencer) MotionFinished(id chess.EntityID) error {
	if s.phase != MovePiece {
		return s.fail(errors.ErrWrongPhase, id, nil)
	}
	if !s.awaiting[id] {
		s.cfg.Logf(2, "ignoring motion finished for %v", id)
		return nil
	}
	delete(s.awaiting, id)
	if s.requesting || len(s.awaiting) > 0 {
		return nil
	}
	return s.finishTurn()
}

// PendingMotions returns the entities whose motion has not finished.
func (s *Sequencer) PendingMotions() []chess.EntityID {
	ids := make([]chess.EntityID, 0, len(s.awaiting))
	for id := range s.awaiting {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// finishTurn runs UpdateBoardState and End, then starts the next turn.
func (s *Sequencer) finishTurn() error {
	s.enter(UpdateBoardState)
	s.halfMoves++
	s.side = s.side.Opposite()

	s.enter(End)
	return s.startTurn()
}

// OfferDraw is not supported.
func (s *Sequencer) OfferDraw() error {
	return errors.Wrap(errors.ErrNotImplemented, "draw offers")
}

func (s *Sequencer) enter(p Phase) {
	s.cfg.Logf(2, "moving to %v", p)
	s.phase = p
}

// fail wraps err with the current turn context.
func (s *Sequencer) fail(err error, id chess.EntityID, sq *chess.Square) error {
	te := &errors.TurnError{Err: err, Phase: s.phase.String(), Ply: s.halfMoves}
	if id != chess.NoEntity {
		te.Entity = id.String()
	}
	if sq != nil {
		te.Square = sq.String()
	}
	return te
}

// Phase returns the current phase.
func (s *Sequencer) Phase() Phase { return s.phase }

// Side returns the side to move.
func (s *Sequencer) Side() chess.Colour { return s.side }

// HalfMoves returns the number of half-moves played, including any implied
// by the starting FEN.
func (s *Sequencer) HalfMoves() int { return s.halfMoves }

// Board returns the live board. Callers must not modify it.
func (s *Sequencer) Board() *board.Board { return s.board }

// History returns the move history.
func (s *Sequencer) History() *engine.MoveHistory { return s.history }

// Position returns the state derived at the start of the current turn.
func (s *Sequencer) Position() engine.Position { return s.pos }

// Checklist returns the turn-start checklist.
func (s *Sequencer) Checklist() *Checklist { return &s.checklist }

// Outcome returns Checkmate or Stalemate once the game is over.
func (s *Sequencer) Outcome() engine.Outcome { return s.pos.Outcome }

// EntityAt returns the piece on a square.
func (s *Sequencer) EntityAt(sq chess.Square) (chess.EntityID, bool) {
	if s.board == nil {
		return chess.NoEntity, false
	}
	return s.board.At(sq)
}
