package dataset_test

import (
	"errors"
	"testing"

	"github.com/okian/quantumtech/internal/domain/dataset"
	"github.com/okian/quantumtech/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	Convey("Given the authored tables", t, func() {
		catalog, err := dataset.Load()

		Convey("Then they pass integrity validation", func() {
			So(err, ShouldBeNil)
			So(catalog, ShouldNotBeNil)
		})

		Convey("And every table has its authored row count", func() {
			counts := catalog.Counts()
			So(counts[dataset.TableDiscoveries], ShouldEqual, 10)
			So(counts[dataset.TableTechnologies], ShouldEqual, 10)
			So(counts[dataset.TableCategoryUsages], ShouldEqual, 5)
			So(counts[dataset.TableCorrespondences], ShouldEqual, 5)
		})

		Convey("And sectors come in first-encounter order", func() {
			So(catalog.Sectors(), ShouldResemble, []string{
				"Elettronica", "Vari", "Medicina", "Ricerca", "Display", "Sensori", "Sicurezza", "Calcolo",
			})
		})

		Convey("And lookups resolve by exact name", func() {
			laser, ok := catalog.Technology("Laser")
			So(ok, ShouldBeTrue)
			So(laser.Sector, ShouldEqual, "Vari")
			So(laser.Year, ShouldEqual, 1960)

			feynman, ok := catalog.Discovery("Quantum Computing (Feynman)")
			So(ok, ShouldBeTrue)
			So(feynman.Year, ShouldEqual, 1981)

			_, ok = catalog.Technology("laser")
			So(ok, ShouldBeFalse)
		})

		Convey("And facts fall back to the empty string", func() {
			So(catalog.Fact("Laser"), ShouldNotBeEmpty)
			So(catalog.Fact("Superconduttori commerciali"), ShouldEqual, "")
		})

		Convey("And a single-technology sector filters to that row", func() {
			rows := catalog.TechnologiesInSector("Sicurezza")
			So(rows, ShouldHaveLength, 1)
			So(rows[0].Name, ShouldEqual, "Comunicazione Quantistica Sicura")
		})

		Convey("And unresolved related discoveries are flagged", func() {
			flagged := catalog.Unresolved()
			So(flagged, ShouldHaveLength, 8)
			rows := make([]string, 0, len(flagged))
			for _, f := range flagged {
				So(f.Table, ShouldEqual, dataset.TableTechnologies)
				So(f.Field, ShouldEqual, "related_discovery")
				rows = append(rows, f.Row)
			}
			So(rows, ShouldNotContain, "Computer Quantistico (Google)")
			So(rows, ShouldNotContain, "Simulatori Quantistici")
			So(rows, ShouldContain, "Microscopi a Effetto Tunnel")
		})

		Convey("And accessors return copies", func() {
			techs := catalog.Technologies()
			techs[0].Name = "mutated"
			So(catalog.Technologies()[0].Name, ShouldEqual, "Transistor")

			examples := catalog.Examples()
			examples[0].Items[0] = "mutated"
			So(catalog.Examples()[0].Items[0], ShouldNotEqual, "mutated")
		})
	})
}

func TestNew_Integrity(t *testing.T) {
	Convey("Given a copy of the authored tables", t, func() {
		tables := dataset.Builtin()

		Convey("When a correspondence names an unknown discovery", func() {
			tables.Correspondences[0].DiscoveryName = "Teoria delle Stringhe"
			_, err := dataset.New(tables)

			Convey("Then loading fails with a data integrity error", func() {
				So(errors.Is(err, dataset.ErrDataIntegrity), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "unknown discovery")
			})
		})

		Convey("When an unlisted technology loses its marker", func() {
			tables.Correspondences[3].Unlisted = false
			_, err := dataset.New(tables)

			Convey("Then the dangling reference is fatal", func() {
				So(errors.Is(err, dataset.ErrDataIntegrity), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "Superconduttori commerciali")
			})
		})

		Convey("When a correspondence year disagrees with its discovery", func() {
			tables.Correspondences[4].DiscoveryYear = 1982
			_, err := dataset.New(tables)

			Convey("Then loading fails", func() {
				So(errors.Is(err, dataset.ErrDataIntegrity), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "discovery year 1982")
			})
		})

		Convey("When a technology predates its discovery", func() {
			tables.Correspondences = append(tables.Correspondences, model.Correspondence{
				DiscoveryName:  "Bosone di Higgs",
				DiscoveryYear:  2012,
				TechnologyName: "Transistor",
				TechnologyYear: 1947,
			})
			_, err := dataset.New(tables)

			Convey("Then the negative lag is rejected", func() {
				So(errors.Is(err, dataset.ErrDataIntegrity), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "predates discovery by 65 years")
			})
		})

		Convey("When importance is out of range", func() {
			tables.Discoveries[0].Importance = 120
			_, err := dataset.New(tables)

			Convey("Then loading fails", func() {
				So(errors.Is(err, dataset.ErrDataIntegrity), ShouldBeTrue)
			})
		})

		Convey("When a category percentage is out of range", func() {
			tables.CategoryUsages[0].ProductPercentage = -1
			_, err := dataset.New(tables)

			Convey("Then loading fails", func() {
				So(errors.Is(err, dataset.ErrDataIntegrity), ShouldBeTrue)
			})
		})

		Convey("When two technologies share a name", func() {
			tables.Technologies[1].Name = "Transistor"
			_, err := dataset.New(tables)

			Convey("Then loading fails", func() {
				So(errors.Is(err, dataset.ErrDataIntegrity), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "duplicate name")
			})
		})

		Convey("When a fact names an unknown technology", func() {
			tables.Facts["Teletrasporto"] = "non ancora"
			_, err := dataset.New(tables)

			Convey("Then loading fails", func() {
				So(errors.Is(err, dataset.ErrDataIntegrity), ShouldBeTrue)
			})
		})

		Convey("When several rows are broken at once", func() {
			tables.Discoveries[0].Year = 1500
			tables.Technologies[0].ImpactBillions = -3
			_, err := dataset.New(tables)

			Convey("Then every problem is reported", func() {
				So(err.Error(), ShouldContainSubstring, "implausible year 1500")
				So(err.Error(), ShouldContainSubstring, "negative economic impact")
			})
		})

		Convey("When one row breaks several rules", func() {
			tables.Discoveries[1].Year = 1700
			tables.Discoveries[1].Importance = 140
			tables.Technologies[2].Year = 2200
			tables.Technologies[2].ImpactBillions = -1
			tables.Technologies[2].Sector = ""
			_, err := dataset.New(tables)

			Convey("Then each rule is reported for that row", func() {
				So(errors.Is(err, dataset.ErrDataIntegrity), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "implausible year 1700")
				So(err.Error(), ShouldContainSubstring, "importance 140 outside [0,100]")
				So(err.Error(), ShouldContainSubstring, "implausible year 2200")
				So(err.Error(), ShouldContainSubstring, "negative economic impact")
				So(err.Error(), ShouldContainSubstring, "empty sector")
			})
		})
	})
}
