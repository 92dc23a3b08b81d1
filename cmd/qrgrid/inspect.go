package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/gogpu/qrgrid"
	"github.com/gogpu/qrgrid/encoder"
	"github.com/gogpu/qrgrid/internal/termui"
)

type inspectFlags struct {
	ec      string
	at      string
	regions bool
}

func newInspectCmd(c *cli) *cobra.Command {
	f := &inspectFlags{}
	cmd := &cobra.Command{
		Use:   "inspect TEXT",
		Short: "Print the summary, legend and module map of TEXT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.inspect(cmd, args[0], f)
		},
	}
	cmd.Flags().StringVar(&f.ec, "ec", "", "error correction level: L, M, Q, H")
	cmd.Flags().StringVar(&f.at, "at", "", "print the status of one module, as ROW,COL")
	cmd.Flags().BoolVar(&f.regions, "regions", false, "color the module map by region")
	return cmd
}

func (c *cli) inspect(cmd *cobra.Command, payload string, f *inspectFlags) error {
	level, err := c.level(cmd, f.ec)
	if err != nil {
		return err
	}
	var at qrgrid.Cell
	if f.at != "" {
		if at, err = parseCell(f.at); err != nil {
			return err
		}
	}
	m, err := encoder.New().Encode(strings.TrimSpace(payload), level)
	if err != nil {
		return err
	}

	out := termui.New(cmd.OutOrStdout())
	out.Summary(qrgrid.Summarize(m, level).Fields(language.English))
	fmt.Fprintln(cmd.OutOrStdout())
	out.Legend(qrgrid.Legend(m.Version()))
	fmt.Fprintln(cmd.OutOrStdout())

	if f.at == "" {
		out.RegionMap(m, f.regions || c.cfg.ShowRegions)
		return nil
	}
	info, ok := qrgrid.Probe(m, at)
	if !ok {
		return fmt.Errorf("--at %s: outside the %dx%d grid", f.at, m.Size(), m.Size())
	}
	out.Status(info.Status())
	return nil
}

// parseCell parses "ROW,COL".
func parseCell(s string) (qrgrid.Cell, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return qrgrid.Cell{}, fmt.Errorf("--at %q: want ROW,COL", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return qrgrid.Cell{}, fmt.Errorf("--at %q: row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return qrgrid.Cell{}, fmt.Errorf("--at %q: col: %w", s, err)
	}
	return qrgrid.Cell{Row: row, Col: col}, nil
}
