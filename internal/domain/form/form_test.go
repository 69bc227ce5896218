package form_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/sumoheat/internal/domain/banzuke"
	"github.com/okian/sumoheat/internal/domain/form"
	"github.com/okian/sumoheat/internal/domain/model"
	"github.com/okian/sumoheat/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

type failingScorer struct{}

func (failingScorer) Score(context.Context, model.Bout) (scoring.Result, error) {
	return scoring.Result{}, errors.New("boom")
}

func TestForm_Defaults(t *testing.T) {
	Convey("Given a new form", t, func() {
		f := form.New()

		Convey("Then it describes an opening-day Yokozuna bout awaiting input", func() {
			b := f.Bout()
			So(b.Day, ShouldEqual, banzuke.Shonichi)
			So(b.EastRank, ShouldResemble, banzuke.Yokozuna)
			So(b.WestRank, ShouldResemble, banzuke.Yokozuna)
			So(b.Result, ShouldEqual, banzuke.EastWins)
			So(f.MaxPossibleWins(), ShouldEqual, 0)
			So(f.State(), ShouldHaveSameTypeAs, form.Awaiting{})
		})
	})
}

func TestForm_Records(t *testing.T) {
	Convey("Given a form on day 10", t, func() {
		f := form.New()
		So(f.SetDay(banzuke.Day(10)), ShouldBeNil)

		Convey("When setting wins within the cap", func() {
			err := f.SetWins(banzuke.East, 6)

			Convey("Then losses are derived from the remaining bouts", func() {
				So(err, ShouldBeNil)
				So(f.Bout().East, ShouldResemble, model.Record{Wins: 6, Losses: 3})
			})
		})

		Convey("When setting wins above the cap", func() {
			So(f.SetWins(banzuke.West, 4), ShouldBeNil)
			err := f.SetWins(banzuke.West, 10)

			Convey("Then the change is rejected and the record kept", func() {
				So(errors.Is(err, form.ErrRecordExceedsDay), ShouldBeTrue)
				So(f.Bout().West, ShouldResemble, model.Record{Wins: 4, Losses: 5})
			})
		})

		Convey("When setting an explicit record with absences", func() {
			err := f.SetRecord(banzuke.East, model.Record{Wins: 3, Losses: 2})

			Convey("Then it is accepted", func() {
				So(err, ShouldBeNil)
				So(f.Bout().East.Bouts(), ShouldEqual, 5)
			})
		})

		Convey("When setting a negative record", func() {
			err := f.SetRecord(banzuke.East, model.Record{Wins: -1})
			So(errors.Is(err, form.ErrNegativeRecord), ShouldBeTrue)
			So(errors.Is(f.SetWins(banzuke.East, -2), form.ErrNegativeRecord), ShouldBeTrue)
		})

		Convey("When moving to an earlier day", func() {
			So(f.SetWins(banzuke.East, 9), ShouldBeNil)
			So(f.SetRecord(banzuke.West, model.Record{Wins: 2, Losses: 1}), ShouldBeNil)
			So(f.SetDay(banzuke.Day(5)), ShouldBeNil)

			Convey("Then only records that no longer fit are reset", func() {
				So(f.Bout().East, ShouldResemble, model.Record{})
				So(f.Bout().West, ShouldResemble, model.Record{Wins: 2, Losses: 1})
				So(f.MaxPossibleWins(), ShouldEqual, 4)
			})
		})

		Convey("When selecting an invalid day", func() {
			err := f.SetDay(banzuke.Day(0))
			So(errors.Is(err, banzuke.ErrInvalidDay), ShouldBeTrue)
			So(f.Bout().Day, ShouldEqual, banzuke.Day(10))
		})
	})
}

func TestForm_Lifecycle(t *testing.T) {
	Convey("Given a filled-in final-day form", t, func() {
		ctx := context.Background()
		f := form.New()
		So(f.SetDay(banzuke.Senshuraku), ShouldBeNil)
		So(f.SetRank(banzuke.West, banzuke.MustMaegashira(15)), ShouldBeNil)
		So(f.SetWins(banzuke.East, 14), ShouldBeNil)
		So(f.SetWins(banzuke.West, 7), ShouldBeNil)
		So(f.SetResult(banzuke.WestWins), ShouldBeNil)

		Convey("When submitting", func() {
			res, err := f.Submit(ctx, scoring.NewCalculator())

			Convey("Then the form holds the computed result", func() {
				So(err, ShouldBeNil)
				So(res.Score, ShouldEqual, 100)
				computed, ok := f.State().(form.Computed)
				So(ok, ShouldBeTrue)
				So(computed.Result, ShouldResemble, res)
			})

			Convey("And edits are refused until reset", func() {
				So(errors.Is(f.SetDay(banzuke.Day(3)), form.ErrNotEditable), ShouldBeTrue)
				_, err := f.Submit(ctx, scoring.NewCalculator())
				So(errors.Is(err, form.ErrNotEditable), ShouldBeTrue)

				f.Reset()
				So(f.State(), ShouldHaveSameTypeAs, form.Awaiting{})
				So(f.SetDay(banzuke.Day(3)), ShouldBeNil)
			})

			Convey("And reset keeps the inputs", func() {
				f.Reset()
				So(f.Bout().Day, ShouldEqual, banzuke.Senshuraku)
				So(f.Bout().East.Wins, ShouldEqual, 14)
			})
		})

		Convey("When the scorer fails", func() {
			_, err := f.Submit(ctx, failingScorer{})

			Convey("Then the form stays awaiting", func() {
				So(err, ShouldNotBeNil)
				So(f.State(), ShouldHaveSameTypeAs, form.Awaiting{})
			})
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given bouts built outside a form", t, func() {
		valid := model.Bout{
			Day:      banzuke.Day(4),
			EastRank: banzuke.Ozeki,
			WestRank: banzuke.Komusubi,
			East:     model.Record{Wins: 2, Losses: 1},
			West:     model.Record{Wins: 0, Losses: 3},
			Result:   banzuke.EastWins,
		}

		Convey("Then a consistent bout passes", func() {
			So(form.Validate(valid), ShouldBeNil)
		})

		Convey("Then an overfull record fails", func() {
			b := valid
			b.West = model.Record{Wins: 2, Losses: 2}
			So(errors.Is(form.Validate(b), form.ErrRecordExceedsDay), ShouldBeTrue)
		})

		Convey("Then missing enumerations fail", func() {
			b := valid
			b.EastRank = banzuke.Rank{}
			So(errors.Is(form.Validate(b), banzuke.ErrInvalidRank), ShouldBeTrue)

			b = valid
			b.Result = 0
			So(errors.Is(form.Validate(b), banzuke.ErrInvalidResult), ShouldBeTrue)

			b = valid
			b.Day = 16
			So(errors.Is(form.Validate(b), banzuke.ErrInvalidDay), ShouldBeTrue)
		})
	})
}
