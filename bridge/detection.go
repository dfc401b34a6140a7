package bridge

import (
	"strconv"
	"strings"

	"github.com/designmakeandteach/tinysorter"
)

// ParseDetection converts one line of detector output into the digit to send to the sorter.
// Accepted forms are a bare digit, a label, or a label followed by its confidence. Labels
// with a confidence at or below the threshold are ignored.
func ParseDetection(line string, cfg Config) (byte, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, false
	}

	if len(fields[0]) == 1 && tinysorter.IsDigit(fields[0][0]) {
		return fields[0][0], true
	}

	var digit byte
	switch {
	case strings.EqualFold(fields[0], cfg.Labels[0]):
		digit = tinysorter.CerealDigit
	case strings.EqualFold(fields[0], cfg.Labels[1]):
		digit = tinysorter.MallowDigit
	default:
		return 0, false
	}

	if len(fields) > 1 {
		confidence, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || confidence <= cfg.Threshold {
			return 0, false
		}
	}

	return digit, true
}
