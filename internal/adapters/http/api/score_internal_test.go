package api

import (
	"encoding/json"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestTextValue(t *testing.T) {
	convey.Convey("Given JSON day values", t, func() {
		var v struct {
			Day textValue `json:"day"`
		}

		convey.Convey("Then strings and numbers are both accepted", func() {
			convey.So(json.Unmarshal([]byte(`{"day":"中日"}`), &v), convey.ShouldBeNil)
			convey.So(string(v.Day), convey.ShouldEqual, "中日")

			convey.So(json.Unmarshal([]byte(`{"day":12}`), &v), convey.ShouldBeNil)
			convey.So(string(v.Day), convey.ShouldEqual, "12")
		})

		convey.Convey("Then other JSON types are rejected", func() {
			convey.So(json.Unmarshal([]byte(`{"day":true}`), &v), convey.ShouldNotBeNil)
			convey.So(json.Unmarshal([]byte(`{"day":{}}`), &v), convey.ShouldNotBeNil)
		})
	})
}

func TestLossesOrDerived(t *testing.T) {
	convey.Convey("Given record requests on day 10", t, func() {
		three := 3

		convey.So(lossesOrDerived(recordRequest{Wins: 6}, 9), convey.ShouldEqual, 3)
		convey.So(lossesOrDerived(recordRequest{Wins: 6, Losses: &three}, 9), convey.ShouldEqual, 3)
		convey.So(lossesOrDerived(recordRequest{Wins: 12}, 9), convey.ShouldEqual, 0)
	})
}

func TestGetErrorType(t *testing.T) {
	convey.Convey("Status codes map to error types", t, func() {
		convey.So(getErrorType(500), convey.ShouldEqual, "server_error")
		convey.So(getErrorType(429), convey.ShouldEqual, "rate_limit")
		convey.So(getErrorType(413), convey.ShouldEqual, "too_large")
		convey.So(getErrorType(404), convey.ShouldEqual, "not_found")
		convey.So(getErrorType(400), convey.ShouldEqual, "client_error")
	})
}
