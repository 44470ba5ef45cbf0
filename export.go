package umd

import (
	"fmt"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/soniakeys/meeus/julian"
)

// ExportConfig configures trajectory sampling output.
type ExportConfig struct {
	Filename  string
	AsCSV     bool // orbital radius/position CSV, one file per body
	AsXYZV    bool // interpolated-states xyzv, for Cosmographia-style viewers
	Timestamp bool // append a creation timestamp to generated file names
}

// IsUseless returns whether this configuration generates any output.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV && !c.AsXYZV
}

// State is one sampled trajectory point of one body.
type State struct {
	DT   time.Time
	Body *Body
	R, V []float64
}

// createXYZVFile returns a file which requires a defer close statement!
func createXYZVFile(filename string, conf ExportConfig, start time.Time) *os.File {
	cfg := umdConfig()
	if conf.Timestamp {
		t := time.Now()
		filename = fmt.Sprintf("%s-%d-%02d-%02dT%02d.%02d.%02d", filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	}
	f, err := os.Create(fmt.Sprintf("%s/prop-%s.xyzv", cfg.outputDir, filename))
	if err != nil {
		panic(err)
	}
	f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s
# Records are <jd> <x> <y> <z> <vel x> <vel y> <vel z>
#   Time is a TDB Julian date
#   Position in km, velocity in km/hour, Uranus-centric frame
#   Simulation time start (UTC): %s`, time.Now(), start.UTC()))
	return f
}

// createCSVFile returns a file which requires a defer close statement!
func createCSVFile(filename string, conf ExportConfig, start time.Time) *os.File {
	cfg := umdConfig()
	if conf.Timestamp {
		t := time.Now()
		filename = fmt.Sprintf("%s-%d-%02d-%02dT%02d.%02d.%02d", filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	}
	f, err := os.Create(fmt.Sprintf("%s/traj-%s.csv", cfg.outputDir, filename))
	if err != nil {
		panic(err)
	}
	f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s
# Simulation time start (UTC): %s
time,x,y,z,vx,vy,vz,r
`, time.Now(), start.UTC()))
	return f
}

// StreamStates consumes sampled states from the channel and writes one file
// per body and format until the channel closes. Run it in its own goroutine;
// the sampler blocks on the channel, never on the disk.
func StreamStates(conf ExportConfig, stateChan <-chan State, logger kitlog.Logger) {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	xyzvFiles := make(map[string]*os.File)
	csvFiles := make(map[string]*os.File)
	defer func() {
		for _, f := range xyzvFiles {
			f.Close()
		}
		for _, f := range csvFiles {
			f.Close()
		}
	}()
	for state := range stateChan {
		name := state.Body.Name
		if conf.AsXYZV {
			f, found := xyzvFiles[name]
			if !found {
				f = createXYZVFile(fmt.Sprintf("%s-%s", conf.Filename, name), conf, state.DT)
				xyzvFiles[name] = f
				logger.Log("subsys", "export", "msg", "streaming xyzv", "body", name, "file", f.Name())
			}
			f.WriteString(fmt.Sprintf("\n%f %f %f %f %f %f %f", julian.TimeToJD(state.DT),
				state.R[0], state.R[1], state.R[2], state.V[0], state.V[1], state.V[2]))
		}
		if conf.AsCSV {
			f, found := csvFiles[name]
			if !found {
				f = createCSVFile(fmt.Sprintf("%s-%s", conf.Filename, name), conf, state.DT)
				csvFiles[name] = f
				logger.Log("subsys", "export", "msg", "streaming csv", "body", name, "file", f.Name())
			}
			f.WriteString(fmt.Sprintf("%s,%f,%f,%f,%f,%f,%f,%f\n", state.DT.UTC().Format(time.RFC3339),
				state.R[0], state.R[1], state.R[2], state.V[0], state.V[1], state.V[2], Norm(state.R)))
		}
	}
}

// SampleTrajectories samples every catalog body over [start, end] at the
// given step and pushes the states onto the returned channel in time-major
// order. The channel is closed when the sampling completes.
func (c *Catalog) SampleTrajectories(start, end time.Time, step time.Duration) <-chan State {
	stateChan := make(chan State, 1000)
	go func() {
		defer close(stateChan)
		for dt := start; !dt.After(end); dt = dt.Add(step) {
			t := SimTime(dt)
			for _, b := range c.bodies {
				R, V := b.Orbit.StateAt(t)
				stateChan <- State{DT: dt, Body: b, R: R, V: V}
			}
		}
	}()
	return stateChan
}
