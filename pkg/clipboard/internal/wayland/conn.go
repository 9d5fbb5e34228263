//go:build linux

// Package wayland implements just enough of the Wayland wire protocol to
// claim the clipboard via zwlr_data_control_v1 and serve a set of MIME
// representations on demand.
package wayland

import (
	"encoding/binary"
	"fmt"
	"syscall"
)

var le = binary.LittleEndian

// conn is a buffered connection to the compositor socket. Incoming
// SCM_RIGHTS file descriptors are queued and handed out with the event they
// arrived with.
type conn struct {
	fd         int
	inBuf      []byte
	pendingFds []int
}

func dial(sockPath string) (*conn, error) {
	fd, err := syscall.Socket(syscall.AF_UNIX, syscall.SOCK_STREAM, 0)
	if err != nil {
		return nil, err
	}
	if err := syscall.Connect(fd, &syscall.SockaddrUnix{Name: sockPath}); err != nil {
		syscall.Close(fd) //nolint:errcheck
		return nil, err
	}
	return &conn{fd: fd}, nil
}

func (c *conn) close() {
	syscall.Close(c.fd) //nolint:errcheck
}

// request sends one Wayland request message: object id, opcode packed with
// the total size, then the argument bytes.
func (c *conn) request(objectID uint32, opcode uint16, args []byte) error {
	size := uint16(8 + len(args))
	buf := make([]byte, size)
	le.PutUint32(buf[0:], objectID)
	le.PutUint32(buf[4:], uint32(opcode)|uint32(size)<<16)
	copy(buf[8:], args)
	_, err := syscall.Write(c.fd, buf)
	return err
}

// event is one complete incoming Wayland event. fd is -1 unless the
// compositor delivered a file descriptor with the message.
type event struct {
	objectID uint32
	opcode   uint16
	payload  []byte
	fd       int
}

// closeFd releases the event's file descriptor if one was attached.
func (e *event) closeFd() {
	if e.fd >= 0 {
		syscall.Close(e.fd) //nolint:errcheck
	}
}

// nextEvent blocks until a complete event is buffered.
func (c *conn) nextEvent() (event, error) {
	ev := event{fd: -1}
	for {
		if len(c.inBuf) >= 8 {
			sizeOpcode := le.Uint32(c.inBuf[4:8])
			size := int(sizeOpcode >> 16)
			if size >= 8 && len(c.inBuf) >= size {
				ev.objectID = le.Uint32(c.inBuf[0:4])
				ev.opcode = uint16(sizeOpcode & 0xffff)
				ev.payload = make([]byte, size-8)
				copy(ev.payload, c.inBuf[8:size])
				c.inBuf = c.inBuf[size:]
				if len(c.pendingFds) > 0 {
					ev.fd = c.pendingFds[0]
					c.pendingFds = c.pendingFds[1:]
				}
				return ev, nil
			}
		}

		buf := make([]byte, 4096)
		oob := make([]byte, syscall.CmsgSpace(4*8)) // room for up to 8 fds
		n, oobn, _, _, err := syscall.Recvmsg(c.fd, buf, oob, 0)
		if err != nil {
			return ev, err
		}
		if n == 0 {
			return ev, fmt.Errorf("wayland: connection closed")
		}
		c.inBuf = append(c.inBuf, buf[:n]...)

		if oobn > 0 {
			scms, parseErr := syscall.ParseSocketControlMessage(oob[:oobn])
			if parseErr == nil {
				for _, scm := range scms {
					rights, parseErr := syscall.ParseUnixRights(&scm)
					if parseErr == nil {
						c.pendingFds = append(c.pendingFds, rights...)
					}
				}
			}
		}
	}
}

func encodeUint32(v uint32) []byte {
	b := make([]byte, 4)
	le.PutUint32(b, v)
	return b
}

// encodeString encodes a Wayland string: uint32 length including the null
// terminator, the bytes, then padding to 4-byte alignment.
func encodeString(s string) []byte {
	sBytes := append([]byte(s), 0)
	length := len(sBytes)
	padded := (length + 3) &^ 3
	buf := make([]byte, 4+padded)
	le.PutUint32(buf[0:], uint32(length))
	copy(buf[4:], sBytes)
	return buf
}

// decodeString reads a Wayland string and returns the remaining bytes.
func decodeString(data []byte) (string, []byte, error) {
	if len(data) < 4 {
		return "", data, fmt.Errorf("wayland: short string length field")
	}
	length := int(le.Uint32(data[:4]))
	data = data[4:]
	if length == 0 {
		return "", data, nil
	}
	padded := (length + 3) &^ 3
	if len(data) < padded {
		return "", data, fmt.Errorf("wayland: short string data")
	}
	s := string(data[:length-1]) // exclude null terminator
	return s, data[padded:], nil
}

func concat(slices ...[]byte) []byte {
	var total int
	for _, s := range slices {
		total += len(s)
	}
	result := make([]byte, 0, total)
	for _, s := range slices {
		result = append(result, s...)
	}
	return result
}
