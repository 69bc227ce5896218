package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/sumoheat/internal/adapters/http/api"
	service "github.com/okian/sumoheat/internal/app"
	"github.com/okian/sumoheat/internal/domain/banzuke"
	"github.com/okian/sumoheat/internal/domain/form"
	"github.com/okian/sumoheat/internal/domain/model"
	"github.com/okian/sumoheat/internal/domain/scoring"
	"github.com/okian/sumoheat/internal/output"
	"github.com/okian/sumoheat/internal/smoke"
	"github.com/okian/sumoheat/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

type scoreJSON struct {
	Bout struct {
		Day  string       `json:"day"`
		East model.Record `json:"east"`
		West model.Record `json:"west"`
	} `json:"bout"`
	Score   int              `json:"score"`
	Factors []scoring.Factor `json:"factors"`
}

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScoreCmd(t *testing.T) {
	Convey("Given the score command", t, func() {
		Convey("When scoring a final-day upset of an unbeaten Yokozuna", func() {
			out, err := execute("score", "--day", "千秋楽", "--east", "横綱", "--west", "前頭15枚目",
				"--east-wins", "14", "--west-wins", "7", "--winner", "west", "-o", "json")

			Convey("Then the score is clamped to 100 with seven factors", func() {
				So(err, ShouldBeNil)
				var got scoreJSON
				So(json.Unmarshal([]byte(out), &got), ShouldBeNil)
				So(got.Score, ShouldEqual, 100)
				So(len(got.Factors), ShouldEqual, 7)
				So(got.Bout.Day, ShouldEqual, "千秋楽")
				So(got.Bout.East, ShouldResemble, model.Record{Wins: 14, Losses: 0})
				So(got.Bout.West, ShouldResemble, model.Record{Wins: 7, Losses: 7})
			})
		})

		Convey("When losses are omitted or given", func() {
			out, err := execute("score", "--day", "10", "--east", "ozeki", "--west", "m3",
				"--east-wins", "6", "--west-wins", "2", "--west-losses", "4", "-o", "json")

			Convey("Then omitted losses are derived and given ones kept", func() {
				So(err, ShouldBeNil)
				var got scoreJSON
				So(json.Unmarshal([]byte(out), &got), ShouldBeNil)
				So(got.Bout.East, ShouldResemble, model.Record{Wins: 6, Losses: 3})
				So(got.Bout.West, ShouldResemble, model.Record{Wins: 2, Losses: 4})
			})
		})

		Convey("When English labels are requested", func() {
			out, err := execute("score", "--day", "15", "--locale", "en", "-o", "json")

			Convey("Then factor labels come from the English set", func() {
				So(err, ShouldBeNil)
				var got scoreJSON
				So(json.Unmarshal([]byte(out), &got), ShouldBeNil)
				en := scoring.LabelsFor(scoring.LocaleEN)
				for _, f := range got.Factors {
					So(f.Label, ShouldEqual, en.Label(f.Kind))
				}
			})
		})

		Convey("When rendering a table", func() {
			out, err := execute("score", "--day", "初日")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "初日")
			So(out, ShouldContainSubstring, string(scoring.KindDayOpening))
		})

		Convey("When the input is invalid", func() {
			_, err := execute("score", "--day", "5", "--east-wins", "5")
			So(errors.Is(err, form.ErrRecordExceedsDay), ShouldBeTrue)

			_, err = execute("score", "--east", "juryo")
			So(errors.Is(err, banzuke.ErrInvalidRank), ShouldBeTrue)

			_, err = execute("score", "--day", "16")
			So(errors.Is(err, banzuke.ErrInvalidDay), ShouldBeTrue)

			_, err = execute("score", "--winner", "draw")
			So(errors.Is(err, banzuke.ErrInvalidResult), ShouldBeTrue)

			_, err = execute("score", "-o", "xml")
			So(errors.Is(err, output.ErrUnknownFormat), ShouldBeTrue)

			_, err = execute("score", "--locale", "fr")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestListCmds(t *testing.T) {
	Convey("Given the listing commands", t, func() {
		Convey("Then ranks lists all ranks", func() {
			out, err := execute("ranks")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "横綱")
			So(out, ShouldContainSubstring, "maegashira15")
		})

		Convey("Then days lists every day as JSON", func() {
			out, err := execute("days", "-o", "json")
			So(err, ShouldBeNil)
			var days []struct {
				Number          int `json:"number"`
				MaxPossibleWins int `json:"max_possible_wins"`
			}
			So(json.Unmarshal([]byte(out), &days), ShouldBeNil)
			So(len(days), ShouldEqual, 15)
			So(days[14].MaxPossibleWins, ShouldEqual, 14)
		})
	})
}

func TestSmokeCmd(t *testing.T) {
	Convey("Given a running heat score server", t, func() {
		svc := service.New(service.WithLogger(logger.Nop()))
		mux := http.NewServeMux()
		api.NewServer(svc, svc).Register(context.Background(), mux)
		srv := httptest.NewServer(mux)
		defer srv.Close()

		Convey("When running the smoke command against it", func() {
			out, err := execute("smoke", "--url", srv.URL, "--bouts", "25", "--workers", "3",
				"--seed", "11", "-o", "json")

			Convey("Then every bout verifies", func() {
				So(err, ShouldBeNil)
				var stats smoke.Stats
				So(json.Unmarshal([]byte(out), &stats), ShouldBeNil)
				So(stats.Succeeded, ShouldEqual, 25)
				So(stats.OK(), ShouldBeTrue)
			})
		})
	})

	Convey("Given no server", t, func() {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		_, err := execute("smoke", "--url", srv.URL, "--bouts", "1")
		So(errors.Is(err, smoke.ErrUnhealthy), ShouldBeTrue)
	})
}
