package appointment

import "github.com/rs/zerolog/log"

const DefaultSlotIntervalMin = 30

// DayHours is one weekday's operating window.
type DayHours struct {
	Open   string
	Close  string
	Closed bool
}

// ComputeAvailableSlots generates the bookable slot starts for one day:
// every intervalMin step from Open whose start is strictly before Close and
// not already occupied, ascending. A closed day or malformed hours yield an
// empty result rather than an error so a broken schedule can never take the
// booking screen down with it.
func ComputeAvailableSlots(day DayHours, occupied []string, intervalMin int) []string {
	if day.Closed {
		return []string{}
	}

	if intervalMin <= 0 {
		intervalMin = DefaultSlotIntervalMin
	}

	open, err := ParseClock(day.Open)
	if err != nil {
		log.Warn().Str("open", day.Open).Msg("operating hours: bad open time, no slots generated")
		return []string{}
	}

	closeAt, err := ParseClock(day.Close)
	if err != nil {
		log.Warn().Str("close", day.Close).Msg("operating hours: bad close time, no slots generated")
		return []string{}
	}

	if open >= closeAt {
		return []string{}
	}

	taken := make(map[string]struct{}, len(occupied))
	for _, s := range occupied {
		taken[s] = struct{}{}
	}

	slots := []string{}
	for cur := open; cur < closeAt; cur += intervalMin {
		slot := FormatClock(cur)
		if _, ok := taken[slot]; ok {
			continue
		}
		slots = append(slots, slot)
	}

	return slots
}
