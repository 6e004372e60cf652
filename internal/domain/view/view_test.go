package view_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/okian/quantumtech/internal/domain/view"
	"github.com/smartystreets/goconvey/convey"
)

func TestParseMode(t *testing.T) {
	convey.Convey("Given the five modes", t, func() {
		convey.Convey("Then each parses from its slug and its label", func() {
			for _, m := range view.Modes {
				bySlug, err := view.ParseMode(m.Slug())
				convey.So(err, convey.ShouldBeNil)
				convey.So(bySlug, convey.ShouldEqual, m)

				byLabel, err := view.ParseMode(m.Label())
				convey.So(err, convey.ShouldBeNil)
				convey.So(byLabel, convey.ShouldEqual, m)
			}
		})

		convey.Convey("And parsing ignores case and surrounding space", func() {
			m, err := view.ParseMode("  DEVELOPMENT-LAG ")
			convey.So(err, convey.ShouldBeNil)
			convey.So(m, convey.ShouldEqual, view.DevelopmentLag)
		})

		convey.Convey("And unknown input is rejected instead of falling back", func() {
			_, err := view.ParseMode("Heatmap")
			convey.So(errors.Is(err, view.ErrInvalidViewMode), convey.ShouldBeTrue)
		})

		convey.Convey("And only two modes take a secondary selection", func() {
			convey.So(view.EconomicImpact.Secondary(), convey.ShouldEqual, view.SecondarySector)
			convey.So(view.TechnologyDetails.Secondary(), convey.ShouldEqual, view.SecondaryTechnology)
			convey.So(view.Timeline.Secondary(), convey.ShouldEqual, view.SecondaryNone)
			convey.So(view.EverydayApplications.Secondary(), convey.ShouldEqual, view.SecondaryNone)
			convey.So(view.DevelopmentLag.Secondary(), convey.ShouldEqual, view.SecondaryNone)
		})
	})
}

func TestModeText(t *testing.T) {
	convey.Convey("Given a mode inside a JSON document", t, func() {
		doc := struct {
			Mode view.Mode `json:"mode"`
		}{Mode: view.EverydayApplications}

		convey.Convey("When it is encoded and decoded", func() {
			raw, err := json.Marshal(doc)
			convey.So(err, convey.ShouldBeNil)
			convey.So(string(raw), convey.ShouldEqual, `{"mode":"everyday-applications"}`)

			doc.Mode = view.Timeline
			convey.So(json.Unmarshal(raw, &doc), convey.ShouldBeNil)

			convey.Convey("Then the mode survives", func() {
				convey.So(doc.Mode, convey.ShouldEqual, view.EverydayApplications)
			})
		})

		convey.Convey("When an out-of-range mode is encoded", func() {
			doc.Mode = view.Mode(42)
			_, err := json.Marshal(doc)

			convey.Convey("Then encoding fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestSelector(t *testing.T) {
	convey.Convey("Given a new selector", t, func() {
		s := view.NewSelector()

		convey.Convey("Then the initial mode is Timeline", func() {
			convey.So(s.Current(), convey.ShouldEqual, view.Timeline)
		})

		convey.Convey("When several modes are selected", func() {
			convey.So(s.Select(view.DevelopmentLag), convey.ShouldBeNil)
			convey.So(s.SelectString("Dettagli Tecnologie"), convey.ShouldBeNil)

			convey.Convey("Then the latest choice wins", func() {
				convey.So(s.Current(), convey.ShouldEqual, view.TechnologyDetails)
			})
		})

		convey.Convey("When an invalid choice is made", func() {
			convey.So(s.Select(view.EconomicImpact), convey.ShouldBeNil)
			err := s.SelectString("nope")
			errMode := s.Select(view.Mode(-1))

			convey.Convey("Then the selection is unchanged", func() {
				convey.So(errors.Is(err, view.ErrInvalidViewMode), convey.ShouldBeTrue)
				convey.So(errors.Is(errMode, view.ErrInvalidViewMode), convey.ShouldBeTrue)
				convey.So(s.Current(), convey.ShouldEqual, view.EconomicImpact)
			})
		})
	})
}
