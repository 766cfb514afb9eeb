package clock

import (
	"log"
	"time"
)

// Clock ฉีดเข้า service ทุกตัวที่ต้องใช้เวลา เพื่อให้เทสกำหนดเวลาเองได้
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type realClock struct {
	loc *time.Location
}

// New returns a clock pinned to the given IANA timezone so every stored
// timestamp shares one reference frame.
func New(tz string) Clock {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("unknown timezone %q, falling back to UTC", tz)
		loc = time.UTC
	}
	return &realClock{loc: loc}
}

func (c *realClock) Now() time.Time {
	return time.Now().In(c.loc).Truncate(time.Second)
}

func (c *realClock) Location() *time.Location {
	return c.loc
}
