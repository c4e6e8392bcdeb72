package cloud

import (
	"errors"
	"fmt"
	"os"
)

// ErrFontNotFound is returned when no usable TrueType font can be located.
// Rendering needs a font the way the original tool needed its rendering
// library installed, so this aborts the run before any file is processed.
var ErrFontNotFound = errors.New(
	"no TrueType font found: install one (e.g. 'apt install fonts-dejavu-core') or pass --font with a .ttf path")

// fontSearchPaths lists well-known TrueType font locations, checked in
// order when no font is configured explicitly.
var fontSearchPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/local/share/fonts/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
	`C:\Windows\Fonts\arial.ttf`,
}

// FindFont resolves the font file to render with. An explicit path is
// validated and returned; otherwise the well-known locations are probed.
func FindFont(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("%w: %s is not readable", ErrFontNotFound, explicit)
		}
		return explicit, nil
	}

	for _, path := range fontSearchPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", ErrFontNotFound
}
