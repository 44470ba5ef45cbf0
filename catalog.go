package umd

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/viper"
)

// hoursPerDay converts the literature period values to the catalog time unit.
const hoursPerDay = 24.0

// Catalog holds the validated bodies of the system, keyed by name and kept in
// insertion order. Once constructed it is read-only: every engine function is
// a pure read over it, so concurrent per-frame queries need no locking.
type Catalog struct {
	primary CelestialObject
	bodies  []*Body
	byName  map[string]*Body
	logger  kitlog.Logger
}

// NewCatalog builds the Uranus-system catalog from the built-in tables.
// Every set of elements is validated here, once; per-frame position queries
// never re-validate, so computing with elements that skipped this constructor
// is undefined behavior.
func NewCatalog(logger kitlog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	c := &Catalog{primary: Uranus, byName: make(map[string]*Body), logger: logger}
	for _, def := range uranianMoons {
		o, err := NewElements(def.a, def.periodDays*hoursPerDay, def.e, Deg2rad(def.inclinationDeg), 0, 0, 0)
		if err != nil {
			return nil, fmt.Errorf("%s: %s", def.name, err)
		}
		if err = c.Add(&Body{Name: def.name, Radius: def.radius, Mass: def.mass, Density: def.density, Orbit: o}); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add registers a body. Fails on duplicate names or missing elements.
func (c *Catalog) Add(b *Body) error {
	if b.Orbit == nil {
		return fmt.Errorf("%s: body has no orbital elements", b.Name)
	}
	if _, found := c.byName[b.Name]; found {
		return fmt.Errorf("%s: body already in catalog", b.Name)
	}
	c.bodies = append(c.bodies, b)
	c.byName[b.Name] = b
	return nil
}

// Primary returns the central body.
func (c *Catalog) Primary() CelestialObject {
	return c.primary
}

// Bodies returns the bodies in catalog order (innermost first).
func (c *Catalog) Bodies() []*Body {
	return c.bodies
}

// Body returns the named body.
func (c *Catalog) Body(name string) (*Body, error) {
	b, found := c.byName[name]
	if !found {
		return nil, fmt.Errorf("no body `%s` in catalog", name)
	}
	return b, nil
}

// ScatterPhases sets every body's mean anomaly at epoch to a uniform draw in
// [0, 2π) from the provided seed. The seed is an explicit input so two runs
// with the same seed place every moon identically; there is no implicit
// randomness anywhere in the engine.
func (c *Catalog) ScatterPhases(seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for _, b := range c.bodies {
		b.Orbit.M0 = rng.Float64() * 2 * math.Pi
	}
	c.logger.Log("subsys", "catalog", "msg", "scattered epoch phases", "seed", seed)
}

// ApplyScenario overrides catalog elements from the loaded viper scenario.
// Keys are `moons.<name>.{sma,period,ecc,inc,argPeri,RAAN,meanAnom0}`; sma in
// km, period in days, angles in degrees. Unknown moon names fail, partial
// overrides keep the catalog values.
func (c *Catalog) ApplyScenario() error {
	for name := range viper.GetStringMap("moons") {
		b, found := c.byName[name]
		if !found {
			// viper lowercases map keys
			for catName, catBody := range c.byName {
				if strings.EqualFold(catName, name) {
					b, found = catBody, true
					break
				}
			}
		}
		if !found {
			return fmt.Errorf("scenario overrides unknown body `%s`", name)
		}
		pre := "moons." + name + "."
		o := *b.Orbit
		if v := viper.GetFloat64(pre + "sma"); v != 0 {
			o.a = v
		}
		if v := viper.GetFloat64(pre + "period"); v != 0 {
			o.T = v * hoursPerDay
		}
		if viper.IsSet(pre + "ecc") {
			o.e = viper.GetFloat64(pre + "ecc")
		}
		if viper.IsSet(pre + "inc") {
			o.i = Deg2rad(viper.GetFloat64(pre + "inc"))
		}
		if viper.IsSet(pre + "argPeri") {
			o.ω = Deg2rad(viper.GetFloat64(pre + "argPeri"))
		}
		if viper.IsSet(pre + "RAAN") {
			o.Ω = Deg2rad(viper.GetFloat64(pre + "RAAN"))
		}
		if viper.IsSet(pre + "meanAnom0") {
			o.M0 = Deg2rad(viper.GetFloat64(pre + "meanAnom0"))
		}
		// Revalidate: overrides go through the same gate as catalog rows.
		checked, err := NewElements(o.a, o.T, o.e, o.i, o.ω, o.Ω, o.M0)
		if err != nil {
			return fmt.Errorf("%s: %s", b.Name, err)
		}
		b.Orbit = checked
		c.logger.Log("subsys", "catalog", "msg", "applied scenario override", "body", b.Name, "orbit", checked)
	}
	return nil
}
