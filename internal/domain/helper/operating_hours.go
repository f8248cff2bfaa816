package helper

import (
	"regexp"
	"strconv"
	"time"
)

// hoursPattern matches "08.00 - 17.00", "8:00-17:00" and "08. 00 - 17. 00"
var hoursPattern = regexp.MustCompile(`(\d{1,2})[.:] ?(\d{2})\s*-\s*(\d{1,2})[.:] ?(\d{2})`)

// OperatingHours is an opening window in minutes since midnight
type OperatingHours struct {
	OpenMinute  int
	CloseMinute int
}

// ParseOperatingHours extracts the first opening window from free text
func ParseOperatingHours(text string) (OperatingHours, bool) {
	m := hoursPattern.FindStringSubmatch(text)
	if m == nil {
		return OperatingHours{}, false
	}

	nums := make([]int, 4)
	for i := range nums {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return OperatingHours{}, false
		}
		nums[i] = n
	}
	if nums[0] > 24 || nums[2] > 24 || nums[1] > 59 || nums[3] > 59 {
		return OperatingHours{}, false
	}

	return OperatingHours{
		OpenMinute:  nums[0]*60 + nums[1],
		CloseMinute: nums[2]*60 + nums[3],
	}, true
}

// IsOpenAt reports whether the window contains t: open <= t < close.
// A window that closes before it opens spans midnight.
func (h OperatingHours) IsOpenAt(t time.Time) bool {
	now := t.Hour()*60 + t.Minute()
	if h.CloseMinute < h.OpenMinute {
		return now >= h.OpenMinute || now < h.CloseMinute
	}
	return now >= h.OpenMinute && now < h.CloseMinute
}

// IsOpen reports whether a business with the given hours text is open at t.
// Unparsable text counts as closed.
func IsOpen(text string, t time.Time) bool {
	h, ok := ParseOperatingHours(text)
	if !ok {
		return false
	}
	return h.IsOpenAt(t)
}
