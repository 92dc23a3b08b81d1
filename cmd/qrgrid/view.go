package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gogpu"
	"github.com/spf13/cobra"

	"github.com/gogpu/qrgrid"
	"github.com/gogpu/qrgrid/encoder"
	"github.com/gogpu/qrgrid/integration/qrview"
	"github.com/gogpu/qrgrid/internal/config"
	"github.com/gogpu/qrgrid/internal/termui"
	"github.com/gogpu/qrgrid/internal/watch"
)

const windowSize = 900

const viewHelp = `keys: +/- zoom  r regions  c crosshair  f fullscreen  p print  e export  esc exit fullscreen`

type viewFlags struct {
	file    string
	watch   bool
	ec      string
	cell    int
	regions bool
	noSave  bool
}

func newViewCmd(c *cli) *cobra.Command {
	f := &viewFlags{}
	cmd := &cobra.Command{
		Use:   "view [TEXT]",
		Short: "Open the interactive grid viewer",
		Long: "Open a window showing the module grid. Hovering a module prints its\n" +
			"row, column, bit and region.\n\n" + viewHelp,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.view(cmd, args, f)
		},
	}
	cmd.Flags().StringVar(&f.file, "file", "", "read the payload from a file")
	cmd.Flags().BoolVar(&f.watch, "watch", false, "re-encode when --file changes")
	cmd.Flags().StringVar(&f.ec, "ec", "", "error correction level: L, M, Q, H")
	cmd.Flags().IntVar(&f.cell, "cell", qrgrid.DefaultCellSize, "initial cell size in pixels (8-60)")
	cmd.Flags().BoolVar(&f.regions, "regions", false, "start with the region overlay on")
	cmd.Flags().BoolVar(&f.noSave, "no-save", false, "do not persist view preferences on exit")
	return cmd
}

// viewPayload resolves the payload from the argument or --file.
func viewPayload(args []string, f *viewFlags) (string, error) {
	switch {
	case len(args) == 1 && f.file != "":
		return "", errors.New("give TEXT or --file, not both")
	case f.watch && f.file == "":
		return "", errors.New("--watch needs --file")
	case len(args) == 1:
		return args[0], nil
	case f.file != "":
		data, err := os.ReadFile(f.file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return "", errors.New("give TEXT or --file")
}

// newSession builds the viewport used by the window, with the configured
// export and print collaborators and a status readout on w.
func (c *cli) newSession(state qrgrid.ViewState, w io.Writer) (*qrgrid.Viewport, error) {
	out := termui.New(w)
	last := qrgrid.StatusNone
	return qrgrid.NewViewport(
		qrgrid.WithViewState(state),
		qrgrid.WithExporter(qrgrid.PNGExporter{Dir: c.cfg.ExportDir}),
		qrgrid.WithPrinter(commandPrinter{command: c.cfg.PrintCommand}),
		// Renders are serialized by the viewport, so last needs no lock.
		qrgrid.OnRender(func(fr qrgrid.Frame) {
			if s := frameStatus(fr); s != last {
				last = s
				out.Status(s)
			}
		}),
	)
}

func frameStatus(fr qrgrid.Frame) string {
	if !fr.State.Hovered {
		return qrgrid.StatusNone
	}
	info, ok := qrgrid.Probe(fr.Matrix, fr.State.Hover)
	if !ok {
		return qrgrid.StatusNone
	}
	return info.Status()
}

func (c *cli) view(cmd *cobra.Command, args []string, f *viewFlags) error {
	payload, err := viewPayload(args, f)
	if err != nil {
		return err
	}
	level, err := c.level(cmd, f.ec)
	if err != nil {
		return err
	}
	vp, err := c.newSession(c.viewState(cmd, f.cell, f.regions), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	enc := encoder.New(encoder.WithCache(0))
	if err := vp.Encode(enc, payload, level); err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), viewHelp)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if f.watch {
		w, err := watch.New(f.file, func(payload string) {
			// Encode logs failures and keeps the previous grid.
			_ = vp.Encode(enc, payload, level)
		})
		if err != nil {
			return err
		}
		go func() {
			if err := w.Run(ctx); err != nil {
				qrgrid.Logger().Warn("qrgrid: watcher stopped", "file", f.file, "error", err)
			}
		}()
	}

	m := vp.Matrix()
	title := fmt.Sprintf("qrgrid %dx%d v%d %s", m.Size(), m.Size(), m.Version(), level)
	err = runWindow(vp, title)
	cancel()

	if !f.noSave {
		c.savePrefs(vp.State())
	}
	return err
}

// runWindow shows vp in a gogpu window until it is closed.
func runWindow(vp *qrgrid.Viewport, title string) error {
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(title).
		WithSize(windowSize, windowSize).
		WithContinuousRender(true))

	view := qrview.Attach(app.EventSource(), vp)
	presenter := qrview.NewPresenter(view)

	app.OnDraw(func(dc *gogpu.Context) {
		provider := app.GPUContextProvider()
		if provider == nil {
			return
		}
		if err := presenter.Present(provider, dc.AsTextureDrawer(), dc.Width(), dc.Height()); err != nil {
			qrgrid.Logger().Warn("qrgrid: present failed", "error", err)
		}
	})
	app.OnClose(func() {
		if err := presenter.Close(); err != nil {
			qrgrid.Logger().Warn("qrgrid: close canvas", "error", err)
		}
	})
	return app.Run()
}

// savePrefs writes the final view preferences back to the config file.
func (c *cli) savePrefs(s qrgrid.ViewState) {
	cfg := c.cfg
	cfg.CellSize = s.CellSize
	cfg.ShowRegions = s.ShowRegions
	cfg.ShowCrosshair = s.ShowCrosshair
	if cfg == c.cfg {
		return
	}
	if err := config.Save(c.configPath, cfg); err != nil {
		qrgrid.Logger().Warn("qrgrid: save preferences", "path", c.configPath, "error", err)
		return
	}
	c.cfg = cfg
	qrgrid.Logger().Info("qrgrid: saved preferences", "path", c.configPath)
}
