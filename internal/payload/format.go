package payload

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var englishPrinter = message.NewPrinter(language.English)

// FormatAltitude renders feet as a thousands-grouped integer, "35,000 ft".
// Zero is a valid altitude; only a missing value passes through as nil.
func FormatAltitude(feet *float64) *string {
	if feet == nil {
		return nil
	}
	s := englishPrinter.Sprintf("%d ft", int64(math.Round(*feet)))
	return &s
}

// FormatSpeed renders mph rounded to the nearest integer, "520 mph".
func FormatSpeed(mph *float64) *string {
	if mph == nil {
		return nil
	}
	s := fmt.Sprintf("%d mph", int64(math.Round(*mph)))
	return &s
}

// FormatTimeRemaining renders minutes as "2h 5m", or "45m" when under an
// hour.
func FormatTimeRemaining(minutes *float64) *string {
	if minutes == nil {
		return nil
	}
	hours := int64(*minutes) / 60
	mins := int64(math.Round(math.Mod(*minutes, 60)))
	var s string
	if hours > 0 {
		s = fmt.Sprintf("%dh %dm", hours, mins)
	} else {
		s = fmt.Sprintf("%dm", mins)
	}
	return &s
}
