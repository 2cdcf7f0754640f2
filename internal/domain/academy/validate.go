package academy

import "strings"

// ValidateCreate returns a field-to-message map. An empty map means the input
// is valid. Invalid input never reaches Firestore.
func ValidateCreate(in CreateAcademyInput) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(in.Email) == "" {
		errs["email"] = "Email is required"
	}
	if strings.TrimSpace(in.Location) == "" {
		errs["location"] = "Location is required"
	}
	return errs
}

// ValidateProgram enforces the structural rule: days must be non-empty and
// every selected day must have at least one time slot.
func ValidateProgram(in ProgramInput) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Program name is required"
	}
	if len(in.Days) == 0 {
		errs["days"] = "Select at least one day"
		return errs
	}
	for _, day := range in.Days {
		if len(in.TimeSlots[day]) == 0 {
			errs["timeSlots"] = "Every selected day needs at least one time slot"
			break
		}
	}
	return errs
}
