package validators

import (
	"regexp"
	"time"
)

var (
	dateLayout  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockLayout = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// IsDate accepts calendar dates written as YYYY-MM-DD.
func IsDate(s string) bool {
	if !dateLayout.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsClock accepts 24h times written as HH:MM.
func IsClock(s string) bool {
	if !clockLayout.MatchString(s) {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
