package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// parseColor accepts "#RGB", "#RGBA", "#RRGGBB" and "#RRGGBBAA", with or
// without the leading '#'.
func parseColor(s string) (gg.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w %q", ErrInvalidColor, s)
	}
	if _, err := strconv.ParseUint(h, 16, 32); err != nil {
		return gg.RGBA{}, fmt.Errorf("%w %q", ErrInvalidColor, s)
	}
	return gg.Hex(h), nil
}
