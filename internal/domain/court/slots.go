package court

import (
	"fmt"

	"facility-admin/internal/utils"
)

type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SlotsForDay generates the bookable slots for one weekday from the court's
// availability map and its booking granularity. Disabled days yield nothing.
func (c *Court) SlotsForDay(day string) ([]Slot, error) {
	av, ok := c.Availability[day]
	if !ok || !av.Enabled {
		return []Slot{}, nil
	}

	open, err := utils.ParseClock(av.Open)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid open time %q", ErrBadRequest, av.Open)
	}
	closeAt, err := utils.ParseClock(av.Close)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid close time %q", ErrBadRequest, av.Close)
	}
	if closeAt <= open {
		return nil, fmt.Errorf("%w: close time must be after open time", ErrBadRequest)
	}

	step := c.SlotMinutes
	if step <= 0 {
		step = 60
	}

	slots := []Slot{}
	for start := open; start+step <= closeAt; start += step {
		slots = append(slots, Slot{
			Start: clock(start),
			End:   clock(start + step),
		})
	}
	return slots, nil
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
