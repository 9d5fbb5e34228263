// Package clipboard writes the link payload to the system clipboard.
//
// The preferred path is an atomic multi-format write that stores text/html
// and text/plain together, so rich-text targets (email clients, Teams,
// Slack) paste a styled link while plain-text editors get the bare URL. On
// Linux/Wayland this is done by daemonising a clipboard owner that serves
// both MIME types until another application takes the selection. Where the
// multi-format write is unavailable the Copier falls back to plain text,
// and the legacy path streams HTML to an external clipboard tool instead.
package clipboard

import (
	"encoding/json"
	"io"
)

// ServeCommandName is the hidden subcommand used to re-exec this binary as
// the clipboard-owner daemon.
const ServeCommandName = "__clipboard-serve"

// Entry is the payload handed to the clipboard-owner daemon on stdin.
type Entry struct {
	HTML  string `json:"html"`
	Plain string `json:"plain"`
}

// DecodeEntry reads a serialized Entry, as written by the spawning process.
func DecodeEntry(r io.Reader) (Entry, error) {
	var e Entry
	err := json.NewDecoder(r).Decode(&e)
	return e, err
}
