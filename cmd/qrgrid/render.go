package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/qrgrid"
	"github.com/gogpu/qrgrid/encoder"
)

type renderFlags struct {
	output    string
	ec        string
	cell      int
	regions   bool
	allLevels bool
	version   int
}

func newRenderCmd(c *cli) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render TEXT",
		Short: "Render the module grid of TEXT to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.render(cmd, args[0], f)
		},
	}
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output PNG (default qr-grid-NxN.png in the export dir)")
	cmd.Flags().StringVar(&f.ec, "ec", "", "error correction level: L, M, Q, H")
	cmd.Flags().IntVar(&f.cell, "cell", qrgrid.DefaultCellSize, "cell size in pixels (8-60)")
	cmd.Flags().BoolVar(&f.regions, "regions", false, "color modules by structural region")
	cmd.Flags().BoolVar(&f.allLevels, "all-levels", false, "render one PNG per error correction level")
	cmd.Flags().IntVar(&f.version, "symbol-version", 0, "force a symbol version (1-40)")
	return cmd
}

func (c *cli) render(cmd *cobra.Command, payload string, f *renderFlags) error {
	state := c.viewState(cmd, f.cell, f.regions)
	var opts []encoder.Option
	if f.version != 0 {
		opts = append(opts, encoder.WithVersion(f.version))
	}
	enc := encoder.New(opts...)

	if !f.allLevels {
		level, err := c.level(cmd, f.ec)
		if err != nil {
			return err
		}
		path, err := renderLevel(enc, payload, level, state, func(size int) string {
			if f.output != "" {
				return f.output
			}
			return filepath.Join(c.cfg.ExportDir, qrgrid.ExportName(size))
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	paths := make([]string, len(qrgrid.ECLevels))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, level := range qrgrid.ECLevels {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, err := renderLevel(enc, payload, level, state, func(size int) string {
				base := f.output
				if base == "" {
					base = filepath.Join(c.cfg.ExportDir, qrgrid.ExportName(size))
				}
				return levelPath(base, level)
			})
			if err != nil {
				return fmt.Errorf("level %s: %w", level, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}

// renderLevel encodes payload at level and writes the grid to the path
// chosen by name for the resulting symbol size. Each call uses its own
// Renderer so levels can render concurrently.
func renderLevel(enc qrgrid.Encoder, payload string, level qrgrid.ECLevel, state qrgrid.ViewState, name func(size int) string) (string, error) {
	m, err := enc.Encode(strings.TrimSpace(payload), level)
	if err != nil {
		return "", err
	}
	r, err := qrgrid.NewRenderer()
	if err != nil {
		return "", err
	}
	img, err := r.Render(m, state)
	if err != nil {
		return "", err
	}
	path := name(m.Size())
	if err := qrgrid.WritePNG(path, img); err != nil {
		return "", err
	}
	qrgrid.Logger().Info("qrgrid: wrote grid", "path", path, "size", m.Size(), "level", level)
	return path, nil
}

// levelPath inserts the level letter before the extension:
// "grid.png" becomes "grid-Q.png".
func levelPath(path string, level qrgrid.ECLevel) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + level.String() + ext
}
