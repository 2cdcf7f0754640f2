package court

import "testing"

func testCourt() *Court {
	return &Court{
		SlotMinutes: 60,
		Availability: map[string]DayAvailability{
			"Monday":  {Enabled: true, Open: "08:00", Close: "11:00"},
			"Tuesday": {Enabled: false, Open: "08:00", Close: "22:00"},
		},
	}
}

func TestSlotsForEnabledDay(t *testing.T) {
	slots, err := testCourt().SlotsForDay("Monday")
	if err != nil {
		t.Fatalf("slots: %v", err)
	}
	want := []Slot{
		{Start: "08:00", End: "09:00"},
		{Start: "09:00", End: "10:00"},
		{Start: "10:00", End: "11:00"},
	}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(slots), slots)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot %d: expected %v, got %v", i, want[i], slots[i])
		}
	}
}

func TestSlotsForDisabledDay(t *testing.T) {
	slots, err := testCourt().SlotsForDay("Tuesday")
	if err != nil {
		t.Fatalf("slots: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("disabled day must yield no slots, got %v", slots)
	}
}

func TestSlotsForUnknownDay(t *testing.T) {
	slots, err := testCourt().SlotsForDay("Funday")
	if err != nil {
		t.Fatalf("slots: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("unknown day must yield no slots, got %v", slots)
	}
}

func TestSlotsGranularity(t *testing.T) {
	c := testCourt()
	c.SlotMinutes = 90
	slots, err := c.SlotsForDay("Monday")
	if err != nil {
		t.Fatalf("slots: %v", err)
	}
	// 08:00-11:00 fits two 90-minute slots.
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %v", slots)
	}
	if slots[1].Start != "09:30" || slots[1].End != "11:00" {
		t.Errorf("unexpected second slot: %v", slots[1])
	}
}

func TestSlotsInvalidWindow(t *testing.T) {
	c := testCourt()
	c.Availability["Monday"] = DayAvailability{Enabled: true, Open: "12:00", Close: "09:00"}
	if _, err := c.SlotsForDay("Monday"); !IsErrBadRequest(err) {
		t.Errorf("expected bad request for inverted window, got %v", err)
	}
}
