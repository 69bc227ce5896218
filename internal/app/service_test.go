package service_test

import (
	"context"
	"errors"
	"testing"

	service "github.com/okian/sumoheat/internal/app"
	"github.com/okian/sumoheat/internal/domain/banzuke"
	"github.com/okian/sumoheat/internal/domain/form"
	"github.com/okian/sumoheat/internal/domain/model"
	"github.com/okian/sumoheat/internal/domain/scoring"
	"github.com/okian/sumoheat/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

type stubScorer struct {
	err error
}

func (s stubScorer) Score(context.Context, model.Bout) (scoring.Result, error) {
	if s.err != nil {
		return scoring.Result{}, s.err
	}
	return scoring.Result{Score: 42}, nil
}

func finalDayUpset() model.Bout {
	return model.Bout{
		Day:      banzuke.Senshuraku,
		EastRank: banzuke.Yokozuna,
		WestRank: banzuke.MustMaegashira(15),
		East:     model.Record{Wins: 14, Losses: 0},
		West:     model.Record{Wins: 7, Losses: 7},
		Result:   banzuke.WestWins,
	}
}

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New()

		Convey("When getting stats before starting", func() {
			stats := svc.GetStats()

			Convey("Then it should report it is not started", func() {
				So(stats["started"], ShouldEqual, false)
				So(stats["locale"], ShouldEqual, "ja")
			})
		})

		Convey("When starting and stopping", func() {
			So(svc.Start(context.Background()), ShouldBeNil)
			So(svc.Start(context.Background()), ShouldBeNil)
			So(svc.GetStats()["started"], ShouldEqual, true)
			svc.Stop()
			svc.Stop()

			Convey("Then it should be marked as stopped", func() {
				So(svc.GetStats()["started"], ShouldEqual, false)
			})
		})
	})
}

func TestService_Score(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := service.New()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When scoring a valid bout", func() {
			res, err := svc.Score(ctx, finalDayUpset())

			Convey("Then it returns the calculator result and counts it", func() {
				So(err, ShouldBeNil)
				So(res.Score, ShouldEqual, 100)
				So(res.Has(scoring.KindEastStreakBroken), ShouldBeTrue)
				So(res.Factors[0].Label, ShouldEqual, "大きな番付差")

				stats := svc.GetStats()
				So(stats["scored"], ShouldEqual, int64(1))
				So(stats["maxScores"], ShouldEqual, int64(1))
				So(stats["meanScore"], ShouldEqual, 100.0)
			})
		})

		Convey("When the record does not fit the day", func() {
			b := finalDayUpset()
			b.Day = banzuke.Day(3)
			_, err := svc.Score(ctx, b)

			Convey("Then it is rejected without scoring", func() {
				So(errors.Is(err, service.ErrInvalidBout), ShouldBeTrue)
				So(errors.Is(err, form.ErrRecordExceedsDay), ShouldBeTrue)
				So(svc.GetStats()["rejected"], ShouldEqual, int64(1))
				So(svc.GetStats()["scored"], ShouldEqual, int64(0))
			})
		})

		Convey("When a rank is missing", func() {
			b := finalDayUpset()
			b.WestRank = banzuke.Rank{}
			_, err := svc.Score(ctx, b)
			So(errors.Is(err, banzuke.ErrInvalidRank), ShouldBeTrue)
		})
	})
}

func TestService_Options(t *testing.T) {
	Convey("Given a service with English labels", t, func() {
		svc := service.New(service.WithLocale(scoring.LocaleEN), service.WithLogger(logger.Nop()))

		Convey("Then factor labels are English", func() {
			res, err := svc.Score(context.Background(), finalDayUpset())
			So(err, ShouldBeNil)
			So(res.Factors[0].Label, ShouldEqual, "large rank gap")
		})
	})

	Convey("Given a service with a custom scorer", t, func() {
		Convey("When the scorer succeeds", func() {
			svc := service.New(service.WithScorer(stubScorer{}))
			res, err := svc.Score(context.Background(), finalDayUpset())
			So(err, ShouldBeNil)
			So(res.Score, ShouldEqual, 42)
		})

		Convey("When the scorer fails", func() {
			boom := errors.New("boom")
			svc := service.New(service.WithScorer(stubScorer{err: boom}))
			_, err := svc.Score(context.Background(), finalDayUpset())

			Convey("Then the failure is wrapped and counted", func() {
				So(errors.Is(err, boom), ShouldBeTrue)
				So(errors.Is(err, service.ErrInvalidBout), ShouldBeFalse)
				So(svc.GetStats()["failed"], ShouldEqual, int64(1))
			})
		})
	})
}

func TestService_Listings(t *testing.T) {
	Convey("Given a service", t, func() {
		svc := service.New()
		ctx := context.Background()

		Convey("Then it lists 19 ranks and 15 days", func() {
			So(len(svc.Ranks(ctx)), ShouldEqual, 19)
			So(len(svc.Days(ctx)), ShouldEqual, 15)
		})
	})
}

func TestBoutRequest(t *testing.T) {
	Convey("Given textual bout requests", t, func() {
		req := service.BoutRequest{
			Day:      "千秋楽",
			EastRank: "横綱",
			WestRank: "m15",
			East:     model.Record{Wins: 14},
			West:     model.Record{Wins: 7, Losses: 7},
			Result:   "west",
		}

		Convey("When all spellings are known", func() {
			b, err := req.Bout()

			Convey("Then it parses into the same bout", func() {
				So(err, ShouldBeNil)
				So(b, ShouldResemble, finalDayUpset())
			})
		})

		Convey("When a field does not parse", func() {
			bad := req
			bad.Day = "16"
			_, err := bad.Bout()
			So(errors.Is(err, service.ErrInvalidBout), ShouldBeTrue)
			So(errors.Is(err, banzuke.ErrInvalidDay), ShouldBeTrue)

			bad = req
			bad.EastRank = "juryo"
			_, err = bad.Bout()
			So(errors.Is(err, banzuke.ErrInvalidRank), ShouldBeTrue)

			bad = req
			bad.Result = "draw"
			_, err = bad.Bout()
			So(errors.Is(err, banzuke.ErrInvalidResult), ShouldBeTrue)
		})
	})
}
