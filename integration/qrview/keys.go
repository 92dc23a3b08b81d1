// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package qrview

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/qrgrid"
)

var keyCommands = map[gpucontext.Key]qrgrid.Command{
	gpucontext.KeyEqual:          qrgrid.CmdZoomIn, // '=' and '+'
	gpucontext.KeyNumpadAdd:      qrgrid.CmdZoomIn,
	gpucontext.KeyMinus:          qrgrid.CmdZoomOut, // '-' and '_'
	gpucontext.KeyNumpadSubtract: qrgrid.CmdZoomOut,
	gpucontext.KeyR:              qrgrid.CmdToggleRegions,
	gpucontext.KeyC:              qrgrid.CmdToggleCrosshair,
	gpucontext.KeyF:              qrgrid.CmdToggleFullscreen,
	gpucontext.KeyP:              qrgrid.CmdPrint,
	gpucontext.KeyE:              qrgrid.CmdExport,
	gpucontext.KeyEscape:         qrgrid.CmdExitFullscreen,
}

// CommandForKey returns the viewport command bound to key. Chords with
// Control, Alt or Super are left to the platform and never match.
func CommandForKey(key gpucontext.Key, mods gpucontext.Modifiers) (qrgrid.Command, bool) {
	if mods.HasControl() || mods.HasAlt() || mods.HasSuper() {
		return 0, false
	}
	cmd, ok := keyCommands[key]
	return cmd, ok
}
