package payload

import (
	"fmt"
	"time"
)

// dttmLayout is the gateway timestamp format YYYYMMDDhhmmss.
const dttmLayout = "20060102150405"

// DTTM renders a timestamp in the gateway's dttm format.
func DTTM(t time.Time) Value {
	return String(t.Format(dttmLayout))
}

// DTTMNow renders the current time in the gateway's dttm format.
func DTTMNow() Value {
	return DTTM(time.Now())
}

// DecodeDTTM parses a dttm value such as "20190404091926" into a time.Time.
func DecodeDTTM(s string) (time.Time, error) {
	t, err := time.Parse(dttmLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid dttm value %q: %w", s, err)
	}
	return t, nil
}
