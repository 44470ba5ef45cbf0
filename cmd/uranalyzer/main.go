package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/etelford32/umd"
	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/viper"
)

// This code only reads the scenario file and runs the dynamical diagnostics:
// resonance sweep, stability table, and an alignment scan for a chosen pair.

const (
	defaultScenario = "~~unset~~"
)

var (
	scenario string
	verbose  bool
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "diagnostics scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "really verbose (esp. for configuration)")
}

func main() {
	flag.Parse()
	var logger kitlog.Logger
	if verbose {
		logger = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	} else {
		logger = kitlog.NewNopLogger()
	}

	cat, err := umd.NewCatalog(logger)
	if err != nil {
		log.Fatalf("could not build catalog: %s", err)
	}

	tolerance := umd.ResonanceTolerance
	if scenario != defaultScenario {
		scenario = strings.Replace(scenario, ".toml", "", 1)
		viper.AddConfigPath(".")
		viper.SetConfigName(scenario)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("./%s.toml: Error %s", scenario, err)
		}
		if err := cat.ApplyScenario(); err != nil {
			log.Fatalf("scenario: %s", err)
		}
		if viper.IsSet("resonance.tolerance") {
			tolerance = viper.GetFloat64("resonance.tolerance")
		}
		if viper.IsSet("catalog.phaseSeed") {
			cat.ScatterPhases(viper.GetInt64("catalog.phaseSeed"))
		}
	}

	fmt.Printf("== %s system: %d bodies ==\n", cat.Primary().Name, len(cat.Bodies()))

	fmt.Println("\n-- mean-motion resonances --")
	resonances := umd.FindResonances(cat.Bodies(), tolerance)
	if len(resonances) == 0 {
		fmt.Println("(none within tolerance)")
	}
	for _, res := range resonances {
		fmt.Printf("%-10s %-10s %5s  ratio=%.4f  strength=%.1f\n", res.BodyA, res.BodyB, res.Label(), res.Ratio, res.Strength)
	}

	fmt.Println("\n-- tidal stability --")
	fmt.Printf("%-10s %10s %12s %12s %10s  %s\n", "body", "a (km)", "roche (km)", "hill (km)", "factor", "verdict")
	for _, b := range cat.Bodies() {
		r := umd.CheckStability(cat.Primary(), b)
		verdict := "stable"
		if !r.Stable {
			verdict = "UNSTABLE"
		}
		fmt.Printf("%-10s %10.0f %12.0f %12.1f %10.2f  %s\n", b.Name, b.Orbit.SemiMajorAxis(), r.RocheLimitRigid, r.HillRadius, r.StabilityFactor, verdict)
	}

	if viper.IsSet("alignments.bodyA") {
		nameA := viper.GetString("alignments.bodyA")
		nameB := viper.GetString("alignments.bodyB")
		bodyA, err := cat.Body(nameA)
		if err != nil {
			log.Fatalf("alignments: %s", err)
		}
		bodyB, err := cat.Body(nameB)
		if err != nil {
			log.Fatalf("alignments: %s", err)
		}
		span := viper.GetFloat64("alignments.spanHours")
		step := viper.GetFloat64("alignments.stepHours")
		if span <= 0 {
			span = 10 * umd.SynodicPeriod(bodyA.Orbit.Period(), bodyB.Orbit.Period())
		}
		if step <= 0 {
			step = span / 10000
		}
		fmt.Printf("\n-- %s/%s alignments over %.0f hours (step %.2f) --\n", nameA, nameB, span, step)
		fmt.Printf("synodic period: %.2f hours\n", umd.SynodicPeriod(bodyA.Orbit.Period(), bodyB.Orbit.Period()))
		for _, ev := range umd.FindAlignments(bodyA.Orbit, bodyB.Orbit, 0, span, step) {
			fmt.Printf("%-12s t=%.2f h (%s)\n", ev.Kind, ev.Time, umd.Epoch.Add(time.Duration(ev.Time*float64(time.Hour))).Format("2006-01-02 15:04"))
		}
	}

	if viper.IsSet("export.filename") {
		conf := umd.ExportConfig{
			Filename:  viper.GetString("export.filename"),
			AsCSV:     viper.GetBool("export.csv"),
			AsXYZV:    viper.GetBool("export.xyzv"),
			Timestamp: viper.GetBool("export.timestamp"),
		}
		if conf.IsUseless() {
			log.Fatal("export requested but neither csv nor xyzv enabled")
		}
		start := umd.Epoch
		end := start.Add(time.Duration(viper.GetFloat64("export.spanHours")) * time.Hour)
		step := time.Duration(viper.GetFloat64("export.stepHours") * float64(time.Hour))
		if step <= 0 {
			step = time.Hour
		}
		umd.StreamStates(conf, cat.SampleTrajectories(start, end, step), logger)
		fmt.Println("\nexport complete")
	}
}
