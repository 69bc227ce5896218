// Package form holds the input side of a heat-score computation: the bout
// being edited, the record limits imposed by the tournament day, and whether
// a result has been computed yet.
package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/okian/sumoheat/internal/domain/banzuke"
	"github.com/okian/sumoheat/internal/domain/model"
	"github.com/okian/sumoheat/internal/domain/scoring"
)

// Sentinel kinds for form errors.
var (
	ErrRecordExceedsDay = errors.New("record exceeds bouts fought before this day")
	ErrNegativeRecord   = errors.New("record counts must not be negative")
	ErrNotEditable      = errors.New("form has a computed result; reset before editing")
)

// State is either Awaiting or Computed.
type State interface {
	isState()
}

// Awaiting means inputs are being edited and no result exists.
type Awaiting struct{}

// Computed carries the result of the last submission.
type Computed struct {
	Result scoring.Result
}

func (Awaiting) isState() {}
func (Computed) isState() {}

// Form is a bout under edit. It is not safe for concurrent use.
type Form struct {
	bout  model.Bout
	state State
}

// New returns a form for an opening-day bout between two Yokozuna won by
// East, with empty records.
func New() *Form {
	return &Form{
		bout: model.Bout{
			Day:      banzuke.Shonichi,
			EastRank: banzuke.Yokozuna,
			WestRank: banzuke.Yokozuna,
			Result:   banzuke.EastWins,
		},
		state: Awaiting{},
	}
}

// Bout returns the bout as currently entered.
func (f *Form) Bout() model.Bout { return f.bout }

// State returns the current state.
func (f *Form) State() State { return f.state }

// MaxPossibleWins is the cap on wins+losses for the selected day.
func (f *Form) MaxPossibleWins() int { return f.bout.Day.MaxPossibleWins() }

func (f *Form) editable() error {
	if _, ok := f.state.(Computed); ok {
		return ErrNotEditable
	}
	return nil
}

// SetDay selects the tournament day. A side whose record no longer fits the
// new day is reset to 0-0.
func (f *Form) SetDay(d banzuke.Day) error {
	if err := f.editable(); err != nil {
		return err
	}
	if !d.Valid() {
		return fmt.Errorf("%w: %d", banzuke.ErrInvalidDay, d)
	}
	f.bout.Day = d
	maxWins := d.MaxPossibleWins()
	if f.bout.East.Bouts() > maxWins {
		f.bout.East = model.Record{}
	}
	if f.bout.West.Bouts() > maxWins {
		f.bout.West = model.Record{}
	}
	return nil
}

// SetRank sets the rank of the wrestler on side.
func (f *Form) SetRank(side banzuke.Side, r banzuke.Rank) error {
	if err := f.editable(); err != nil {
		return err
	}
	if !r.Valid() {
		return banzuke.ErrInvalidRank
	}
	switch side {
	case banzuke.East:
		f.bout.EastRank = r
	case banzuke.West:
		f.bout.WestRank = r
	default:
		return banzuke.ErrInvalidSide
	}
	return nil
}

// SetWins sets the wins of side and derives losses as the remaining bouts
// fought so far. Wins above the day's cap are rejected and leave the record
// unchanged.
func (f *Form) SetWins(side banzuke.Side, wins int) error {
	maxWins := f.MaxPossibleWins()
	if wins < 0 {
		return ErrNegativeRecord
	}
	if wins > maxWins {
		return fmt.Errorf("%w: %d wins on %s (max %d)", ErrRecordExceedsDay, wins, f.bout.Day, maxWins)
	}
	return f.SetRecord(side, model.Record{Wins: wins, Losses: maxWins - wins})
}

// SetRecord sets an explicit record for side, e.g. for a wrestler who missed
// bouts through absence.
func (f *Form) SetRecord(side banzuke.Side, rec model.Record) error {
	if err := f.editable(); err != nil {
		return err
	}
	if err := validateRecord(f.bout.Day, rec); err != nil {
		return fmt.Errorf("%s: %w", side, err)
	}
	switch side {
	case banzuke.East:
		f.bout.East = rec
	case banzuke.West:
		f.bout.West = rec
	default:
		return banzuke.ErrInvalidSide
	}
	return nil
}

// SetResult sets the bout outcome.
func (f *Form) SetResult(r banzuke.Result) error {
	if err := f.editable(); err != nil {
		return err
	}
	if !r.Valid() {
		return banzuke.ErrInvalidResult
	}
	f.bout.Result = r
	return nil
}

// Submit validates the bout, scores it and moves the form to Computed.
func (f *Form) Submit(ctx context.Context, scorer scoring.Scorer) (scoring.Result, error) {
	if err := f.editable(); err != nil {
		return scoring.Result{}, err
	}
	if err := Validate(f.bout); err != nil {
		return scoring.Result{}, err
	}
	res, err := scorer.Score(ctx, f.bout)
	if err != nil {
		return scoring.Result{}, fmt.Errorf("score bout: %w", err)
	}
	f.state = Computed{Result: res}
	return res, nil
}

// Reset discards the computed result and returns to Awaiting. Inputs are kept.
func (f *Form) Reset() {
	f.state = Awaiting{}
}

// Validate checks the bout against the enumerations and the day's record cap.
func Validate(b model.Bout) error {
	if !b.Day.Valid() {
		return banzuke.ErrInvalidDay
	}
	if !b.EastRank.Valid() || !b.WestRank.Valid() {
		return banzuke.ErrInvalidRank
	}
	if !b.Result.Valid() {
		return banzuke.ErrInvalidResult
	}
	if err := validateRecord(b.Day, b.East); err != nil {
		return fmt.Errorf("%s: %w", banzuke.East, err)
	}
	if err := validateRecord(b.Day, b.West); err != nil {
		return fmt.Errorf("%s: %w", banzuke.West, err)
	}
	return nil
}

func validateRecord(d banzuke.Day, rec model.Record) error {
	if rec.Wins < 0 || rec.Losses < 0 {
		return ErrNegativeRecord
	}
	if maxWins := d.MaxPossibleWins(); rec.Bouts() > maxWins {
		return fmt.Errorf("%w: %d-%d on %s (max %d)", ErrRecordExceedsDay, rec.Wins, rec.Losses, d, maxWins)
	}
	return nil
}
