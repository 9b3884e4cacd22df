package timeline

// Layout helpers for rendering segments against the 08:00-19:00 display
// scale. Inputs are "HH:MM" times of day; malformed input maps to the left
// edge rather than an error, since these only ever feed CSS percentages.

// TimePosition maps a time of day to its percentage position on the display
// scale: 08:00 -> 0, 19:00 -> 100, clamped to [0, 100].
func TimePosition(clock string) float64 {
	minutes, ok := parseClock(clock)
	if !ok {
		return 0
	}
	pos := float64(minutes-scaleStart) / float64(scaleEnd-scaleStart) * 100
	return clamp(pos, 0, 100)
}

// TimeRangeWidth returns the percentage width of [start, end] on the display
// scale. Inverted ranges collapse to zero.
func TimeRangeWidth(start, end string) float64 {
	width := TimePosition(end) - TimePosition(start)
	return clamp(width, 0, 100)
}

func parseClock(clock string) (int, bool) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, false
	}
	h, okH := parseDigits(clock[0:2])
	m, okM := parseDigits(clock[3:5])
	if !okH || !okM || h > 23 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func parseDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
