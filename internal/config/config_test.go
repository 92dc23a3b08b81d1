package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/qrgrid"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want %+v", cfg, Default())
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "cell_size: 30\nshow_regions: true\nec_level: Q\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("QRGRID_CELL_SIZE", "44")
	t.Setenv("QRGRID_SHOW_CROSSHAIR", "false")
	t.Setenv("QRGRID_EXPORT_DIR", "/tmp/out")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Config{
		CellSize:      44,
		ShowRegions:   true,
		ShowCrosshair: false,
		ECLevel:       qrgrid.ECLevelQ,
		LogLevel:      "debug",
		ExportDir:     "/tmp/out",
		PrintCommand:  "lp",
	}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
	if l, _ := cfg.SlogLevel(); l != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want debug", l)
	}
}

func TestLoadClampsCellSize(t *testing.T) {
	t.Setenv("QRGRID_CELL_SIZE", "500")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CellSize != qrgrid.MaxCellSize {
		t.Errorf("CellSize = %d, want %d", cfg.CellSize, qrgrid.MaxCellSize)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"ec level", "QRGRID_EC_LEVEL", "Z"},
		{"log level", "QRGRID_LOG_LEVEL", "loud"},
		{"cell size", "QRGRID_CELL_SIZE", "big"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(""); err == nil {
				t.Errorf("Load() with %s=%q succeeded", tt.key, tt.value)
			}
		})
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("cell_size: [1, 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML succeeded")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	c := Default()
	c.CellSize = 12
	c.ShowRegions = true
	c.ECLevel = qrgrid.ECLevelH

	if err := Save(path, c); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != c {
		t.Errorf("Load(Save(c)) = %+v, want %+v", got, c)
	}
}

func TestViewState(t *testing.T) {
	c := Default()
	c.CellSize = 3
	c.ShowRegions = true
	c.ShowCrosshair = false
	s := c.ViewState()
	if s.CellSize != qrgrid.MinCellSize || !s.ShowRegions || s.ShowCrosshair || s.Hovered {
		t.Errorf("ViewState() = %+v", s)
	}
}
