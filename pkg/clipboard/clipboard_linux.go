//go:build linux

package clipboard

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"syscall"

	"linkctl/pkg/clipboard/internal/wayland"
)

// WriteMultiFormat places both representations on the clipboard as one
// entry. It needs a Wayland session whose compositor speaks
// wlr-data-control; anywhere else it reports ErrUnsupported so the caller
// takes the plain-text branch.
func WriteMultiFormat(ctx context.Context, html, plain string) error {
	if os.Getenv("WAYLAND_DISPLAY") == "" {
		return ErrUnsupported
	}
	return spawnOwner(html, plain)
}

// spawnOwner re-execs this binary as a detached clipboard-owner daemon. The
// parent returns as soon as the child has started; ownership is
// last-writer-wins from then on, so a second copy simply replaces us.
func spawnOwner(html, plain string) error {
	payload, err := json.Marshal(Entry{HTML: html, Plain: plain})
	if err != nil {
		return err
	}

	cmd := exec.Command(os.Args[0], ServeCommandName)
	cmd.Stdin = bytes.NewReader(payload)
	// New session so the daemon survives the parent exiting.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	return cmd.Start() // don't Wait — the daemon blocks until ownership is lost
}

// Serve runs the clipboard owner for the hidden subcommand. It blocks until
// another clipboard write cancels our ownership.
func Serve(e Entry) error {
	formats := map[string][]byte{
		"text/html":                []byte(e.HTML),
		"text/plain;charset=utf-8": []byte(e.Plain),
		"text/plain":               []byte(e.Plain),
		"UTF8_STRING":              []byte(e.Plain),
		"STRING":                   []byte(e.Plain),
	}
	return wayland.Own(formats)
}
