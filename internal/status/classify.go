package status

import (
	"regexp"
	"strconv"
	"strings"

	"seatcheck/internal/models"
)

var (
	limitedPattern      = regexp.MustCompile(`(?i)limited\s+seats\s+(\d+)\s+available`)
	bookNowPattern      = regexp.MustCompile(`(?i)\bbook\s*now\b`)
	fullyBookedPattern  = regexp.MustCompile(`(?i)\bfully\s+booked\b`)
	notAvailablePattern = regexp.MustCompile(`(?i)\bnot\s+available\b`)
	availablePattern    = regexp.MustCompile(`(?i)\bavailable\b`)
)

// Classify maps a raw availability-cell text to a status code, whether the
// slot is bookable, and the remaining seat count when the site states one.
// Rules are evaluated in priority order; the first match wins.
func Classify(text string) (models.StatusCode, bool, *int) {
	t := strings.TrimSpace(text)
	if t == "" {
		return models.StatusNA, false, nil
	}

	if m := limitedPattern.FindStringSubmatch(t); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return models.StatusLimited, true, &n
		}
	}

	if bookNowPattern.MatchString(t) {
		return models.StatusBookNow, true, nil
	}

	if fullyBookedPattern.MatchString(t) {
		zero := 0
		return models.StatusFull, false, &zero
	}

	if notAvailablePattern.MatchString(t) {
		return models.StatusNA, false, nil
	}

	if availablePattern.MatchString(t) {
		return models.StatusAvailable, true, nil
	}

	return models.StatusUnknown, false, nil
}
