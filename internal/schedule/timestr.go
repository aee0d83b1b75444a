package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var clockPattern = regexp.MustCompile(`^(\d{1,2})(?:[:.](\d{2}))?$`)

// NormalizeTime converts loosely-formatted time text ("1pm", "130pm",
// "1330", "13:30") into the canonical "H:MM AM/PM" form. Input that cannot
// be parsed is returned trimmed but otherwise unchanged, so callers cannot
// tell "already canonical" from "unparseable" by shape alone.
func NormalizeTime(raw string) string {
	trimmed := strings.TrimSpace(raw)

	s := strings.ToLower(strings.Join(strings.Fields(trimmed), ""))
	if s == "" {
		return trimmed
	}

	meridiem := ""
	switch {
	case strings.HasSuffix(s, "am"):
		meridiem = "AM"
		s = strings.TrimSuffix(s, "am")
	case strings.HasSuffix(s, "pm"):
		meridiem = "PM"
		s = strings.TrimSuffix(s, "pm")
	}

	var hour, minute int
	if m := clockPattern.FindStringSubmatch(s); m != nil {
		hour, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
	} else if (len(s) == 3 || len(s) == 4) && isDigits(s) {
		// Bare-digit form: "130" -> 1:30, "1330" -> 13:30
		hour, _ = strconv.Atoi(s[:len(s)-2])
		minute, _ = strconv.Atoi(s[len(s)-2:])
	} else {
		return trimmed
	}

	if minute > 59 {
		return trimmed
	}

	if meridiem != "" {
		// An explicit suffix demands a 12-hour value
		if hour < 1 || hour > 12 {
			return trimmed
		}
		return fmt.Sprintf("%d:%02d %s", hour, minute, meridiem)
	}

	if hour > 23 {
		return trimmed
	}

	switch {
	case hour == 0:
		return fmt.Sprintf("12:%02d AM", minute)
	case hour == 12:
		return fmt.Sprintf("12:%02d PM", minute)
	case hour > 12:
		return fmt.Sprintf("%d:%02d PM", hour-12, minute)
	default:
		return fmt.Sprintf("%d:%02d AM", hour, minute)
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
