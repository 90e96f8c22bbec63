package terminal

import (
	"os"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// DisplayWidth returns the number of terminal columns s occupies.
// Emoji glyphs count as two columns.
func DisplayWidth(s string) int {
	return uniseg.StringWidth(s)
}

// Center pads s on the left so it sits in the middle of a line of the given width
func Center(s string, width int) string {
	w := DisplayWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

// ClearScreen returns the escape sequence that clears the screen and homes the cursor
func ClearScreen() string {
	return "\033[H\033[2J"
}
