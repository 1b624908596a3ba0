// Package share builds the deep links a list can be handed off with and
// passes them to the clipboard or the OS opener. Nothing comes back.
package share

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// DefaultBaseURL is where shared list links point.
const DefaultBaseURL = "https://shopisbeta-bolt.netlify.app"

const (
	inviteSubject = "Rejoignez ma liste de courses"
	inviteBody    = "Salut! J'ai partagé ma liste de courses avec vous. Cliquez ici pour voir et collaborer: %s"
)

// escape matches encodeURIComponent: spaces become %20, not '+'.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ListURL is the public link for a list.
func ListURL(base, listID string) string {
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/") + "/list/" + url.PathEscape(listID)
}

// MailtoURL is an email invite carrying the list link.
func MailtoURL(base, listID string) string {
	body := fmt.Sprintf(inviteBody, ListURL(base, listID))
	return "mailto:?subject=" + escape(inviteSubject) + "&body=" + escape(body)
}

// MapsURL is a directions link for the platform named by goos.
func MapsURL(goos, address string) string {
	switch goos {
	case "darwin", "ios":
		return "maps://app?daddr=" + escape(address)
	case "android":
		return "google.navigation:q=" + escape(address)
	default:
		return "https://maps.google.com/maps?daddr=" + escape(address)
	}
}

// Handoff sends links outside the app.
type Handoff struct {
	GOOS  string
	Copy  func(text string) error
	Start func(cmd *exec.Cmd) error
}

// NewHandoff uses the system clipboard and starts the OS opener.
func NewHandoff() *Handoff {
	return &Handoff{
		GOOS:  runtime.GOOS,
		Copy:  clipboard.WriteAll,
		Start: func(cmd *exec.Cmd) error { return cmd.Start() },
	}
}

// CopyLink puts text on the clipboard.
func (h *Handoff) CopyLink(text string) error {
	if err := h.Copy(text); err != nil {
		return fmt.Errorf("share: copy link: %w", err)
	}
	return nil
}

// Open launches link with the OS handler without waiting for it.
func (h *Handoff) Open(link string) error {
	if err := h.Start(OpenCommand(h.GOOS, link)); err != nil {
		return fmt.Errorf("share: open %s: %w", link, err)
	}
	return nil
}

// OpenCommand is the opener invocation for goos.
func OpenCommand(goos, link string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", link)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", link)
	default:
		return exec.Command("xdg-open", link)
	}
}
