package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/basket/internal/scan"
	"github.com/jask/basket/internal/widgets"
)

// enterScan asks for camera access the first time the tab opens.
func (a *App) enterScan() tea.Cmd {
	if a.opts.Scanner.Permission == scan.PermissionUnknown {
		a.askCamera()
	}
	return nil
}

func (a *App) askCamera() {
	a.confirm = confirmation{
		title: "Camera Access",
		body:  "Allow basket to use the camera to scan product barcodes?",
		yes: func() tea.Cmd {
			a.opts.Scanner.Resolve(true)
			a.setStatus("camera ready")
			return nil
		},
		no: func() tea.Cmd {
			a.opts.Scanner.Resolve(false)
			a.setStatus("camera access denied")
			return nil
		},
	}
	a.modal = modalConfirm
}

func (a *App) handleScanAction(action Action) (tea.Model, tea.Cmd) {
	sc := a.opts.Scanner
	switch action {
	case actionCapture:
		if sc.Permission != scan.PermissionGranted {
			a.askCamera()
			return a, nil
		}
		return a, a.openInput(inputCapture, "Barcode digits...", "")
	case actionTorch:
		sc.ToggleTorch()
		a.setStatus("torch " + onOff(sc.Torch))
	case actionFlip:
		sc.Flip()
		a.setStatus(fmt.Sprintf("%s camera", sc.Facing))
	case actionRearm:
		sc.Rearm()
		a.setStatus("ready to scan")
	}
	return a, nil
}

// capture decodes a barcode typed or piped in for the scanner.
func (a *App) capture(data string) tea.Cmd {
	res, err := a.opts.Scanner.Capture(data, a.now())
	switch {
	case errors.Is(err, scan.ErrCoolingDown):
		a.setStatus("hold on, rescan in a moment or press r")
		return nil
	case err != nil:
		a.status = "error: " + err.Error()
		a.isErr = true
		return nil
	}
	a.setStatus(fmt.Sprintf("scanned %s: %s", formatName(res.Format), res.Data))
	return scanCooldown()
}

func formatName(f scan.Format) string {
	switch f {
	case scan.EAN13:
		return "EAN-13"
	case scan.EAN8:
		return "EAN-8"
	case scan.UPCA:
		return "UPC-A"
	case scan.UPCE:
		return "UPC-E"
	case scan.Code128:
		return "Code 128"
	}
	return string(f)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (a *App) renderScan() string {
	sc := a.opts.Scanner
	title := a.styles.title.Render("Scan")
	switch sc.Permission {
	case scan.PermissionUnknown:
		return title + "\n\nRequesting camera permission..."
	case scan.PermissionDenied:
		return title + "\n\n" + a.styles.bad.Render("No access to camera.") +
			"\nPress enter to ask again."
	}

	state := "Point the camera at a barcode and press enter."
	if sc.Scanned {
		state = a.styles.good.Render("Scanned!") + " Press r to scan again."
	}
	lines := []string{
		state,
		"",
		fmt.Sprintf("Camera  %s", sc.Facing),
		fmt.Sprintf("Torch   %s", onOff(sc.Torch)),
	}
	if sc.Last != nil {
		lines = append(lines, "", fmt.Sprintf("Last    %s  %s  %s",
			sc.Last.Data, formatName(sc.Last.Format), sc.Last.At.Format("15:04:05")))
	}
	formats := make([]string, len(scan.Formats))
	for i, f := range scan.Formats {
		formats[i] = formatName(f)
	}
	lines = append(lines, "", a.styles.muted.Render("Supports "+strings.Join(formats, ", ")))

	frame := widgets.Box{
		Title:       "Viewfinder",
		Content:     strings.Join(lines, "\n"),
		BorderColor: tabColors[tabScan],
	}
	return title + "\n" + frame.Render(min(a.bodyWidth(), 64), len(lines)+3)
}
