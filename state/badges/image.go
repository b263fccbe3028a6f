package badges

import (
	"strconv"
	"strings"
)

// ImageDimensions parses the optional "url WxH" dimension suffix carried by
// image and thumb tags.
func ImageDimensions(value string) (width, height int, ok bool) {
	parts := strings.Split(value, " ")
	if len(parts) < 2 {
		return 0, 0, false
	}
	dims := strings.Split(parts[1], "x")
	if len(dims) != 2 {
		return 0, 0, false
	}
	width, err := strconv.Atoi(dims[0])
	if err != nil {
		return 0, 0, false
	}
	height, err = strconv.Atoi(dims[1])
	if err != nil {
		return 0, 0, false
	}
	return width, height, true
}
