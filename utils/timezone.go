package utils

import (
	"fmt"
	"strings"
	"time"
)

var locations map[string]*time.Location = map[string]*time.Location{}

func init() {
	for i := -12; i < 15; i++ {
		name := fmt.Sprintf("GMT%+d", i)
		locations[name] = time.FixedZone(name, i*3600)

		// quarter-hour zones, e.g. GMT+9:45
		sign := 1
		if i < 0 {
			sign = -1
		}
		for _, m := range []int{15, 30, 45} {
			name := fmt.Sprintf("GMT%+d:%d", i, m)
			locations[name] = time.FixedZone(name, i*3600+sign*m*60)
		}
	}
}

// GetLocation returns a location of a GMT-X format timezone from a pre-defined locations map.
func GetLocation(timezone string) *time.Location {
	if tz, ok := locations[strings.ToUpper(timezone)]; ok {
		return tz
	}
	return nil
}
