package tz

import "time"

// Kolkata is the Asia/Kolkata location (IST, no DST).
var Kolkata *time.Location

func init() {
	var err error
	Kolkata, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		panic("tz: load Asia/Kolkata: " + err.Error())
	}
}

// Resolve loads an IANA zone by name. An empty name resolves to UTC.
func Resolve(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}
