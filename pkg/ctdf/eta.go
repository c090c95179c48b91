package ctdf

import (
	"fmt"
	"time"

	"github.com/atomo10/atomo/pkg/util"
)

type ETAEntry struct {
	Stop     string   `json:"stop"`
	Arrivals []string `json:"arrivals"`

	// StopIndex is the position of the stop in the full line, before any windowing
	StopIndex int `json:"-"`
}

// CumulativeTravelMinutes returns the minutes from the first stop to each stop.
// The first stop is always 0 whatever its own TravelMinutesFromPrevious says.
func CumulativeTravelMinutes(stops []*Stop) []int {
	offsets := make([]int, len(stops))

	cumulative := 0
	for i, stop := range stops {
		if i > 0 {
			cumulative += stop.TravelMinutesFromPrevious
		}
		offsets[i] = cumulative
	}

	return offsets
}

// ProjectETA projects the arrival time at every stop for every scheduled departure.
// Departures are placed on reference's calendar day, so arrivals past midnight roll into the next day
// and are formatted without any day marker.
// The projection starts at fromStopIndex when it addresses an existing stop and is left whole otherwise.
func ProjectETA(stops []*Stop, schedules []string, fromStopIndex int, reference time.Time) ([]*ETAEntry, error) {
	etas := []*ETAEntry{}

	if len(schedules) == 0 {
		return etas, nil
	}

	departures := make([]time.Time, len(schedules))
	for i, schedule := range schedules {
		hour, minute, err := util.ParseClock(schedule)
		if err != nil {
			return nil, fmt.Errorf("%w: schedule entry %d: %s", ErrValidation, i, err)
		}

		departures[i] = util.ClockOnDate(reference, hour, minute)
	}

	for i, cumulative := range CumulativeTravelMinutes(stops) {
		offset := time.Duration(cumulative) * time.Minute

		arrivals := make([]string, len(departures))
		for j, departure := range departures {
			arrivals[j] = util.FormatClock(departure.Add(offset))
		}

		etas = append(etas, &ETAEntry{
			Stop:      stops[i].Name,
			Arrivals:  arrivals,
			StopIndex: i,
		})
	}

	if fromStopIndex >= 0 && fromStopIndex < len(etas) {
		etas = etas[fromStopIndex:]
	}

	return etas, nil
}
