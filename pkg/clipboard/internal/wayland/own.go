//go:build linux

package wayland

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// Fixed object IDs we assign from the client range (2–0xfeffffff).
const (
	idDisplay   uint32 = 1
	idRegistry  uint32 = 2
	idCallback1 uint32 = 3 // sync after get_registry
	idSeat      uint32 = 4
	idDCManager uint32 = 5 // zwlr_data_control_manager_v1
	idDCSource  uint32 = 6 // zwlr_data_control_source_v1
	idDCDevice  uint32 = 7 // zwlr_data_control_device_v1
	idCallback2 uint32 = 8 // sync after set_selection
)

// globals holds the registry names we need to bind.
type globals struct {
	seat        uint32
	dcManager   uint32
	seatOK      bool
	dcManagerOK bool
}

// Own claims the clipboard selection and blocks, serving each offered MIME
// type on demand, until another clipboard write cancels our ownership.
func Own(formats map[string][]byte) error {
	c, err := connect()
	if err != nil {
		return err
	}
	defer c.close()

	g, err := discoverGlobals(c)
	if err != nil {
		return err
	}
	if err := claimSelection(c, g, formats); err != nil {
		return err
	}
	return serve(c, formats)
}

func connect() (*conn, error) {
	runtime := os.Getenv("XDG_RUNTIME_DIR")
	if runtime == "" {
		return nil, fmt.Errorf("wayland: XDG_RUNTIME_DIR not set")
	}
	display := os.Getenv("WAYLAND_DISPLAY")
	if display == "" {
		display = "wayland-0"
	}

	sockPath := filepath.Join(runtime, display)
	c, err := dial(sockPath)
	if err != nil {
		return nil, fmt.Errorf("wayland: connect %s: %w", sockPath, err)
	}
	return c, nil
}

// discoverGlobals requests the registry and reads global announcements
// until the sync callback fires.
func discoverGlobals(c *conn) (globals, error) {
	var g globals

	if err := c.request(idDisplay, 1 /*get_registry*/, encodeUint32(idRegistry)); err != nil {
		return g, err
	}
	if err := c.request(idDisplay, 0 /*sync*/, encodeUint32(idCallback1)); err != nil {
		return g, err
	}

	for {
		ev, err := c.nextEvent()
		if err != nil {
			return g, err
		}
		ev.closeFd()

		switch {
		case ev.objectID == idRegistry && ev.opcode == 0 /*global*/ :
			if len(ev.payload) < 4 {
				continue
			}
			name := le.Uint32(ev.payload[:4])
			iface, _, decErr := decodeString(ev.payload[4:])
			if decErr != nil {
				continue
			}
			switch iface {
			case "wl_seat":
				g.seat = name
				g.seatOK = true
			case "zwlr_data_control_manager_v1":
				g.dcManager = name
				g.dcManagerOK = true
			}

		case ev.objectID == idCallback1 && ev.opcode == 0 /*done*/ :
			if !g.seatOK {
				return g, fmt.Errorf("wayland: wl_seat not found")
			}
			if !g.dcManagerOK {
				return g, fmt.Errorf("wayland: zwlr_data_control_manager_v1 not found (compositor may not support wlr-data-control)")
			}
			return g, nil
		}
	}
}

// claimSelection binds the seat and data-control manager, creates a source
// offering every MIME type, and sets it as the selection. It returns once
// the compositor has confirmed ownership via a second sync.
func claimSelection(c *conn, g globals, formats map[string][]byte) error {
	// wl_registry.bind encodes new_id inline: [name][interface][version][id]
	if err := c.request(idRegistry, 0 /*bind*/, concat(
		encodeUint32(g.seat),
		encodeString("wl_seat"),
		encodeUint32(1),
		encodeUint32(idSeat),
	)); err != nil {
		return err
	}
	if err := c.request(idRegistry, 0 /*bind*/, concat(
		encodeUint32(g.dcManager),
		encodeString("zwlr_data_control_manager_v1"),
		encodeUint32(2),
		encodeUint32(idDCManager),
	)); err != nil {
		return err
	}

	if err := c.request(idDCManager, 0 /*create_data_source*/, encodeUint32(idDCSource)); err != nil {
		return err
	}
	for mimeType := range formats {
		if err := c.request(idDCSource, 0 /*offer*/, encodeString(mimeType)); err != nil {
			return err
		}
	}

	if err := c.request(idDCManager, 1 /*get_data_device*/, concat(
		encodeUint32(idDCDevice),
		encodeUint32(idSeat),
	)); err != nil {
		return err
	}
	if err := c.request(idDCDevice, 0 /*set_selection*/, encodeUint32(idDCSource)); err != nil {
		return err
	}

	if err := c.request(idDisplay, 0 /*sync*/, encodeUint32(idCallback2)); err != nil {
		return err
	}
	for {
		ev, err := c.nextEvent()
		if err != nil {
			return err
		}
		ev.closeFd()
		if ev.objectID == idCallback2 && ev.opcode == 0 /*done*/ {
			return nil
		}
	}
}

// serve answers paste requests by writing the matching representation to
// the fd the compositor provides, until ownership is cancelled.
func serve(c *conn, formats map[string][]byte) error {
	for {
		ev, err := c.nextEvent()
		if err != nil {
			// Connection closed means the compositor exited; we're done.
			return nil
		}

		if ev.objectID != idDCSource {
			ev.closeFd()
			continue
		}

		switch ev.opcode {
		case 0: // zwlr_data_control_source_v1.send
			mimeType, _, _ := decodeString(ev.payload)
			if ev.fd >= 0 {
				if data, ok := formats[mimeType]; ok {
					syscall.Write(ev.fd, data) //nolint:errcheck
				}
			}
			ev.closeFd()
		case 1: // zwlr_data_control_source_v1.cancelled
			ev.closeFd()
			return nil
		}
	}
}
