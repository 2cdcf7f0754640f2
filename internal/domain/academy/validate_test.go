package academy

import "testing"

func TestValidateCreate(t *testing.T) {
	in := CreateAcademyInput{Name: "Elite FC", Email: "a@b.com", Location: "Field 1"}
	if errs := ValidateCreate(in); len(errs) != 0 {
		t.Fatalf("expected valid input, got %v", errs)
	}

	in.Email = ""
	errs := ValidateCreate(in)
	if errs["email"] != "Email is required" {
		t.Errorf("expected email error, got %v", errs)
	}

	errs = ValidateCreate(CreateAcademyInput{Name: "  ", Email: " ", Location: ""})
	for _, field := range []string{"name", "email", "location"} {
		if errs[field] == "" {
			t.Errorf("expected error for %s", field)
		}
	}
}

func TestValidateProgramDaysRequired(t *testing.T) {
	in := ProgramInput{Name: "Youth Football", Days: []string{}}
	errs := ValidateProgram(in)
	if errs["days"] == "" {
		t.Errorf("expected days error, got %v", errs)
	}
}

func TestValidateProgramSlotsPerDay(t *testing.T) {
	in := ProgramInput{
		Name:      "Youth Football",
		Days:      []string{"Monday"},
		TimeSlots: map[string][]TimeSlot{},
	}
	errs := ValidateProgram(in)
	if errs["timeSlots"] == "" {
		t.Errorf("expected timeSlots error for Monday with no slots, got %v", errs)
	}

	in.TimeSlots = map[string][]TimeSlot{
		"Monday": {{Start: "16:00", End: "17:30"}},
	}
	if errs := ValidateProgram(in); len(errs) != 0 {
		t.Errorf("expected valid program, got %v", errs)
	}
}

func TestValidateProgramMultipleDays(t *testing.T) {
	in := ProgramInput{
		Name: "Swim Squad",
		Days: []string{"Tuesday", "Thursday"},
		TimeSlots: map[string][]TimeSlot{
			"Tuesday": {{Start: "07:00", End: "08:00"}},
		},
	}
	errs := ValidateProgram(in)
	if errs["timeSlots"] == "" {
		t.Errorf("expected timeSlots error when Thursday has no slot, got %v", errs)
	}
}
