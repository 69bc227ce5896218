package output_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/okian/sumoheat/internal/domain/banzuke"
	"github.com/okian/sumoheat/internal/domain/model"
	"github.com/okian/sumoheat/internal/domain/scoring"
	"github.com/okian/sumoheat/internal/domain/types"
	"github.com/okian/sumoheat/internal/output"
	"github.com/okian/sumoheat/internal/smoke"
	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/yaml.v3"
)

func finalDayUpset() output.ScoreReport {
	b := model.Bout{
		Day:      banzuke.Senshuraku,
		EastRank: banzuke.Yokozuna,
		WestRank: banzuke.MustMaegashira(15),
		East:     model.Record{Wins: 14},
		West:     model.Record{Wins: 7, Losses: 7},
		Result:   banzuke.WestWins,
	}
	return output.NewScoreReport(b, scoring.Calculate(b))
}

func TestParseFormat(t *testing.T) {
	Convey("Given format names", t, func() {
		f, err := output.ParseFormat("")
		So(err, ShouldBeNil)
		So(f, ShouldEqual, output.FormatTable)

		f, err = output.ParseFormat(" YAML ")
		So(err, ShouldBeNil)
		So(f, ShouldEqual, output.FormatYAML)

		_, err = output.ParseFormat("xml")
		So(errors.Is(err, output.ErrUnknownFormat), ShouldBeTrue)
	})
}

func TestRender(t *testing.T) {
	Convey("Given a scored bout", t, func() {
		report := finalDayUpset()
		var buf bytes.Buffer

		Convey("When rendered as a table", func() {
			err := output.Render(&buf, output.FormatTable, report)

			Convey("Then it shows the bout, every factor and the score", func() {
				So(err, ShouldBeNil)
				out := buf.String()
				So(out, ShouldContainSubstring, "千秋楽")
				So(out, ShouldContainSubstring, "前頭15枚目")
				for _, f := range report.Factors {
					So(out, ShouldContainSubstring, string(f.Kind))
				}
				So(out, ShouldContainSubstring, "100")
				So(out, ShouldContainSubstring, "超激アツ")
			})
		})

		Convey("When rendered as JSON", func() {
			So(output.Render(&buf, output.FormatJSON, report), ShouldBeNil)

			var decoded struct {
				Bout struct {
					Day      string `json:"day"`
					WestRank string `json:"west_rank"`
				} `json:"bout"`
				Score   int              `json:"score"`
				Factors []scoring.Factor `json:"factors"`
			}
			So(json.Unmarshal(buf.Bytes(), &decoded), ShouldBeNil)
			So(decoded.Score, ShouldEqual, 100)
			So(decoded.Bout.Day, ShouldEqual, "千秋楽")
			So(decoded.Bout.WestRank, ShouldEqual, "前頭15枚目")
			So(decoded.Factors, ShouldResemble, report.Factors)
		})

		Convey("When rendered as YAML", func() {
			So(output.Render(&buf, output.FormatYAML, report), ShouldBeNil)

			var decoded map[string]interface{}
			So(yaml.Unmarshal(buf.Bytes(), &decoded), ShouldBeNil)
			So(decoded["score"], ShouldEqual, 100)
			So(buf.String(), ShouldContainSubstring, "giant_killing_major")
		})

		Convey("When the format is unknown", func() {
			err := output.Render(&buf, "csv", report)
			So(errors.Is(err, output.ErrUnknownFormat), ShouldBeTrue)
			So(buf.Len(), ShouldEqual, 0)
		})
	})

	Convey("Given the listings", t, func() {
		var buf bytes.Buffer

		Convey("Then ranks render one row per rank", func() {
			So(output.TableTo(&buf, types.Ranks()), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "横綱")
			So(buf.String(), ShouldContainSubstring, "maegashira15")
		})

		Convey("Then days render with their caps", func() {
			So(output.TableTo(&buf, types.Days()), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "中日")
			So(buf.String(), ShouldContainSubstring, "14")
		})
	})

	Convey("Given smoke run stats", t, func() {
		var buf bytes.Buffer
		stats := &smoke.Stats{
			Generated: 3, Requests: 6, Succeeded: 2, Failed: 1,
			MinScore: 55, MaxScore: 100, MeanScore: 77.5,
			Duration: 1500 * time.Millisecond,
			Problems: []string{"bout 2: boom"},
		}

		So(output.TableTo(&buf, stats), ShouldBeNil)
		So(buf.String(), ShouldContainSubstring, "77.5")
		So(buf.String(), ShouldContainSubstring, "1.5s")
		So(buf.String(), ShouldContainSubstring, "bout 2: boom")
	})

	Convey("Given a type with no table layout", t, func() {
		err := output.TableTo(&bytes.Buffer{}, 42)
		So(err, ShouldNotBeNil)
	})
}
