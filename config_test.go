package umd

import "testing"

func TestConfigDefaults(t *testing.T) {
	// Without UMD_CONFIG the engine runs on defaults: unit display scale,
	// VSOP87 off, output to the working directory.
	prevLoaded, prevConfig := cfgLoaded, config
	defer func() { cfgLoaded, config = prevLoaded, prevConfig }()
	cfgLoaded = false
	config = _umdconfig{displayScale: 1, outputDir: "."}
	t.Setenv("UMD_CONFIG", "")

	cfg := umdConfig()
	if cfg.DisplayScale() != 1 {
		t.Fatalf("default display scale %f", cfg.DisplayScale())
	}
	if cfg.VSOP87 {
		t.Fatal("VSOP87 must default to off")
	}
	if cfg.outputDir != "." {
		t.Fatalf("default output dir %q", cfg.outputDir)
	}
	if !cfgLoaded {
		t.Fatal("config must cache after first load")
	}
}
