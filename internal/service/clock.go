package service

import "time"

// Clock reports the current time. Services use time.Now unless told otherwise.
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}
