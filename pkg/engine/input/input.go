package input

import (
	"errors"
	"os"
	"time"

	"golang.org/x/term"
)

// ErrInterrupted is returned by ReadKey when the user presses Ctrl+C.
var ErrInterrupted = errors.New("input: interrupted")

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// decodeEscape reads the rest of an escape sequence after ESC and names the
// arrow key it encodes. A lone ESC comes back as "escape".
func decodeEscape(next func() (byte, error)) string {
	b2, err := next()
	if err != nil {
		return "escape"
	}

	// CSI (ESC [) and SS3 (ESC O) sequences
	if b2 != '[' && b2 != 'O' {
		return "escape"
	}

	b3, err := next()
	if err != nil {
		return "escape"
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

// codeForByte names a single raw-mode byte.
func codeForByte(b byte) string {
	switch {
	case b == '\n' || b == '\r':
		return "enter"
	case b == ' ':
		return "space"
	case b == 127 || b == 8:
		return "backspace"
	case b == 17:
		return "ctrl_q"
	case b >= 'A' && b <= 'Z':
		return string(rune(b - 'A' + 'a'))
	case b >= 32 && b < 127:
		return string(rune(b))
	}
	return ""
}

// ReadKey waits for one key press on the terminal and returns it as a raw
// input. The terminal is put into raw mode only for the duration of the call.
func ReadKey() (RawInput, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return RawInput{}, err
	}
	defer term.Restore(fd, oldState)

	b, err := readByte()
	if err != nil {
		return RawInput{}, err
	}

	if b == 3 {
		return RawInput{}, ErrInterrupted
	}

	code := codeForByte(b)
	if b == 0x1b {
		code = decodeEscape(readByte)
	}

	return RawInput{
		Device:    DeviceTerminal,
		Code:      code,
		Timestamp: time.Now(),
	}, nil
}
