package umd

import (
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _umdconfig{displayScale: 1, outputDir: "."}
)

// _umdconfig is a "hidden" struct, just use `umdConfig`
type _umdconfig struct {
	VSOP87       bool
	VSOP87Dir    string
	displayScale float64
	outputDir    string
}

// DisplayScale returns the distance-unit to scene-unit factor the renderer
// multiplies engine positions by. The math itself never sees it.
func (c _umdconfig) DisplayScale() float64 {
	return c.displayScale
}

// umdConfig returns the umd configuration, loading conf.toml from the
// directory named by the UMD_CONFIG environment variable on first use.
// A missing variable leaves the defaults in place: the engine itself needs
// no configuration, only the VSOP87 context and the exporters do.
func umdConfig() _umdconfig {
	if cfgLoaded {
		return config
	}
	confPath := os.Getenv("UMD_CONFIG")
	if confPath == "" {
		cfgLoaded = true
		return config
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	if err := viper.ReadInConfig(); err != nil {
		cfgLoaded = true
		return config
	}
	config.VSOP87 = viper.GetBool("VSOP87.enabled")
	config.VSOP87Dir = viper.GetString("VSOP87.directory")
	config.outputDir = viper.GetString("general.output_path")
	if scale := viper.GetFloat64("display.scale"); scale > 0 {
		config.displayScale = scale
	}
	cfgLoaded = true
	return config
}
