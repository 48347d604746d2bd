package appointment

import (
	"regexp"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func IsClock(hm string) bool {
	return clockPattern.MatchString(hm)
}

// ValidateTimeRange exige HH:MM e início estritamente antes do fim.
func ValidateTimeRange(start, end string) error {
	if !IsClock(start) || !IsClock(end) {
		return httperr.ErrInvalidFormat("invalid_time_format")
	}
	// HH:MM com zero à esquerda ordena lexicograficamente
	if start >= end {
		return httperr.ErrBusiness(httperr.KindInvalidTimeRange, "invalid_time_range")
	}
	return nil
}
