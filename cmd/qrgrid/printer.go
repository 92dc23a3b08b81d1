package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gogpu/qrgrid"
)

var errNoPrintCommand = errors.New("print command is empty")

// commandPrinter prints a snapshot by writing it to a temporary PNG and
// passing the path as the last argument of an external command, e.g. "lp".
type commandPrinter struct {
	command string
}

var _ qrgrid.Printer = commandPrinter{}

func (p commandPrinter) Print(img *image.RGBA) error {
	args := strings.Fields(p.command)
	if len(args) == 0 {
		return errNoPrintCommand
	}
	dir, err := os.MkdirTemp("", "qrgrid-print-")
	if err != nil {
		return fmt.Errorf("print: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "qr-grid.png")
	if err := qrgrid.WritePNG(path, img); err != nil {
		return err
	}
	out, err := exec.Command(args[0], append(args[1:], path)...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("print: %s: %w: %s", args[0], err, strings.TrimSpace(string(out)))
	}
	qrgrid.Logger().Info("qrgrid: sent grid to printer", "command", p.command)
	return nil
}
