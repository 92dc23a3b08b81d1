package main

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/gogpu/qrgrid"
	"github.com/gogpu/qrgrid/encoder"
	"github.com/gogpu/qrgrid/internal/config"
)

// run executes the root command with an isolated config file and returns
// its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { qrgrid.SetLogger(nil) })
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func TestRenderWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	out, err := run(t, "render", "hello", "-o", path, "--cell", "10")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("stdout = %q, want %q", out, path)
	}
	// 21 modules at 10px after a 20px gutter.
	want := qrgrid.NewGeometry(21, 10).Extent()
	if b := decodePNG(t, path).Bounds(); b.Dx() != want || b.Dy() != want {
		t.Errorf("image size = %v, want %dx%d", b.Size(), want, want)
	}
}

func TestRenderDefaultName(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QRGRID_EXPORT_DIR", dir)
	if _, err := run(t, "render", "hello"); err != nil {
		t.Fatalf("render error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "qr-grid-21x21.png")); err != nil {
		t.Errorf("default output missing: %v", err)
	}
}

func TestRenderAllLevels(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "render", "hello", "-o", filepath.Join(dir, "g.png"), "--all-levels", "--regions")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(qrgrid.ECLevels) {
		t.Fatalf("printed %d paths, want %d: %q", len(lines), len(qrgrid.ECLevels), out)
	}
	for i, l := range qrgrid.ECLevels {
		want := filepath.Join(dir, "g-"+l.String()+".png")
		if lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
		if _, err := os.Stat(want); err != nil {
			t.Errorf("level %s: %v", l, err)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad level", []string{"render", "hello", "--ec", "X"}},
		{"blank payload", []string{"render", "   "}},
		{"no payload", []string{"render"}},
		{"payload too long for version", []string{"render", strings.Repeat("x", 200), "--symbol-version", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("QRGRID_EXPORT_DIR", t.TempDir())
			if _, err := run(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRenderBlankPayloadIsEncodeError(t *testing.T) {
	t.Setenv("QRGRID_EXPORT_DIR", t.TempDir())
	_, err := run(t, "render", "   ")
	if !errors.Is(err, qrgrid.ErrEmptyPayload) {
		t.Errorf("error = %v, want %v", err, qrgrid.ErrEmptyPayload)
	}
}

func TestInspectAt(t *testing.T) {
	out, err := run(t, "inspect", "hello", "--at", "0,0")
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	for _, want := range []string{
		"21 × 21",
		"Medium",
		"Finder Pattern",
		"Dark Module (fill in)",
		"R0 C0 · ■ · Finder Pattern",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Version Info") {
		t.Errorf("version 1 legend lists Version Info:\n%s", out)
	}
}

func TestInspectMap(t *testing.T) {
	out, err := run(t, "inspect", "hello", "--ec", "H")
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	if !strings.Contains(out, "High") {
		t.Errorf("summary missing level name:\n%s", out)
	}
	if !strings.Contains(out, "\nFFFFFFFFF") {
		t.Errorf("region map missing finder row:\n%s", out)
	}
}

func TestInspectOutside(t *testing.T) {
	if _, err := run(t, "inspect", "hello", "--at", "30,0"); err == nil {
		t.Error("expected error for a cell outside the grid")
	}
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		in      string
		want    qrgrid.Cell
		wantErr bool
	}{
		{"0,8", qrgrid.Cell{Row: 0, Col: 8}, false},
		{" 12 , 3 ", qrgrid.Cell{Row: 12, Col: 3}, false},
		{"-1,2", qrgrid.Cell{Row: -1, Col: 2}, false},
		{"5", qrgrid.Cell{}, true},
		{"a,1", qrgrid.Cell{}, true},
		{"1,b", qrgrid.Cell{}, true},
	}
	for _, tt := range tests {
		got, err := parseCell(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseCell(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseCell(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelPath(t *testing.T) {
	tests := []struct {
		path  string
		level qrgrid.ECLevel
		want  string
	}{
		{"grid.png", qrgrid.ECLevelQ, "grid-Q.png"},
		{"out/qr-grid-21x21.png", qrgrid.ECLevelL, "out/qr-grid-21x21-L.png"},
		{"noext", qrgrid.ECLevelH, "noext-H"},
	}
	for _, tt := range tests {
		if got := levelPath(tt.path, tt.level); got != tt.want {
			t.Errorf("levelPath(%q, %v) = %q, want %q", tt.path, tt.level, got, tt.want)
		}
	}
}

func TestConfigCommands(t *testing.T) {
	t.Setenv("QRGRID_CELL_SIZE", "32")
	out, err := run(t, "config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	for _, want := range []string{"cell_size: 32", "ec_level: M", "show_crosshair: true"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}

	out, err = run(t, "config", "path")
	if err != nil {
		t.Fatalf("config path error = %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "config.yaml") {
		t.Errorf("config path = %q", out)
	}
}

func TestBadLogLevel(t *testing.T) {
	if _, err := run(t, "--log-level", "loud", "config", "path"); err == nil {
		t.Error("expected error for an unknown log level")
	}
}

func TestViewPayload(t *testing.T) {
	file := filepath.Join(t.TempDir(), "payload.txt")
	if err := os.WriteFile(file, []byte("from file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name    string
		args    []string
		flags   viewFlags
		want    string
		wantErr bool
	}{
		{"argument", []string{"hi"}, viewFlags{}, "hi", false},
		{"file", nil, viewFlags{file: file}, "from file\n", false},
		{"file and watch", nil, viewFlags{file: file, watch: true}, "from file\n", false},
		{"both", []string{"hi"}, viewFlags{file: file}, "", true},
		{"neither", nil, viewFlags{}, "", true},
		{"watch without file", []string{"hi"}, viewFlags{watch: true}, "", true},
		{"missing file", nil, viewFlags{file: file + ".missing"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := viewPayload(tt.args, &tt.flags)
			if (err != nil) != tt.wantErr {
				t.Fatalf("viewPayload() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("viewPayload() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSessionStatusReadout(t *testing.T) {
	c := &cli{cfg: config.Default()}
	var buf bytes.Buffer
	vp, err := c.newSession(qrgrid.DefaultViewState(), &buf)
	if err != nil {
		t.Fatalf("newSession() error = %v", err)
	}
	if err := vp.Encode(encoder.New(), "hello", qrgrid.ECLevelM); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("status printed before hover: %q", buf.String())
	}

	if err := vp.SetHover(qrgrid.Cell{Row: 0, Col: 0}); err != nil {
		t.Fatal(err)
	}
	// Same cell again prints nothing new.
	if err := vp.SetHover(qrgrid.Cell{Row: 0, Col: 0}); err != nil {
		t.Fatal(err)
	}
	if err := vp.ClearHover(); err != nil {
		t.Fatal(err)
	}
	want := "R0 C0 · ■ · Finder Pattern\n" + qrgrid.StatusNone + "\n"
	if got := buf.String(); got != want {
		t.Errorf("readout = %q, want %q", got, want)
	}
}

func TestSavePrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qrgrid", "config.yaml")
	c := &cli{configPath: path, cfg: config.Default()}

	c.savePrefs(qrgrid.DefaultViewState())
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("unchanged preferences written: %v", err)
	}

	s := qrgrid.DefaultViewState().WithCellSize(30).ToggleRegions()
	c.savePrefs(s)
	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.CellSize != 30 || !got.ShowRegions {
		t.Errorf("saved = %+v, want cell 30 with regions", got)
	}
}

func TestCommandPrinter(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := (commandPrinter{}).Print(img); !errors.Is(err, errNoPrintCommand) {
		t.Errorf("Print() with no command error = %v, want %v", err, errNoPrintCommand)
	}
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX true/false")
	}
	if err := (commandPrinter{command: "true"}).Print(img); err != nil {
		t.Errorf("Print(true) error = %v", err)
	}
	if err := (commandPrinter{command: "false"}).Print(img); err == nil {
		t.Error("Print(false) succeeded")
	}
}
