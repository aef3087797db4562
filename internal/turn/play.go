package turn

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveText is a parsed coordinate move such as "e2e4" or "e7e8n".
type MoveText struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.Kind
}

// ParseMoveText parses coordinate move text. Case is ignored and an optional
// dash between the squares is allowed ("e2-e4").
func ParseMoveText(text string) (MoveText, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.Replace(s, "-", "", 1)
	if len(s) != 4 && len(s) != 5 {
		return MoveText{}, errors.Wrapf(errors.ErrInvalidMoveText, "%q", text)
	}

	from, err := chess.ParseSquare(s[0:2])
	if err != nil {
		return MoveText{}, errors.Wrapf(errors.ErrInvalidMoveText, "%q", text)
	}
	to, err := chess.ParseSquare(s[2:4])
	if err != nil {
		return MoveText{}, errors.Wrapf(errors.ErrInvalidMoveText, "%q", text)
	}

	mt := MoveText{From: from, To: to}
	if len(s) == 5 {
		mt.Promotion = chess.KindFromLetter(s[4])
		if !mt.Promotion.CanPromoteTo() {
			return MoveText{}, errors.Wrapf(errors.ErrInvalidMoveText, "%q: bad promotion piece", text)
		}
	}
	return mt, nil
}

// Play selects the move written as coordinate text for the side to move.
// Without a promotion letter a promoting pawn gets the auto-promotion piece.
func (s *Sequencer) Play(text string) error {
	mt, err := ParseMoveText(text)
	if err != nil {
		return err
	}
	id, ok := s.EntityAt(mt.From)
	if !ok {
		return s.fail(errors.Wrapf(errors.ErrIllegalSelection, "no piece on %v", mt.From), chess.NoEntity, &mt.To)
	}
	if mt.Promotion != chess.NoKind {
		return s.SelectPromotion(id, mt.To, mt.Promotion)
	}
	return s.Select(id, mt.To)
}

// PlayAll plays the moves in order and stops at the first error.
func (s *Sequencer) PlayAll(moves []string) error {
	for i, text := range moves {
		if err := s.Play(text); err != nil {
			return errors.Wrapf(err, "move %d", i+1)
		}
	}
	return nil
}
