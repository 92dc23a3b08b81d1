package qrgrid

import "fmt"

// Command is a discrete view command, typically bound to a key.
type Command uint8

const (
	CmdZoomIn Command = iota + 1
	CmdZoomOut
	CmdToggleRegions
	CmdToggleCrosshair
	CmdToggleFullscreen
	CmdExitFullscreen
	CmdPrint
	CmdExport
)

var commandNames = map[Command]string{
	CmdZoomIn:           "zoom-in",
	CmdZoomOut:          "zoom-out",
	CmdToggleRegions:    "toggle-regions",
	CmdToggleCrosshair:  "toggle-crosshair",
	CmdToggleFullscreen: "toggle-fullscreen",
	CmdExitFullscreen:   "exit-fullscreen",
	CmdPrint:            "print",
	CmdExport:           "export",
}

func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// Apply runs cmd. It reports whether the command was consumed:
// CmdExitFullscreen is only consumed while fullscreen is active, and unknown
// commands are never consumed.
func (v *Viewport) Apply(cmd Command) (bool, error) {
	switch cmd {
	case CmdZoomIn:
		return true, v.ZoomIn()
	case CmdZoomOut:
		return true, v.ZoomOut()
	case CmdToggleRegions:
		return true, v.ToggleRegions()
	case CmdToggleCrosshair:
		return true, v.ToggleCrosshair()
	case CmdToggleFullscreen:
		return true, v.ToggleFullscreen()
	case CmdExitFullscreen:
		return v.ExitFullscreen()
	case CmdPrint:
		return true, v.Print()
	case CmdExport:
		return true, v.Export()
	}
	return false, nil
}
