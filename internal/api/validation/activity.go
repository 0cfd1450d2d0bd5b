package validation

// ActivityRequest mirrors the fields of a create activity request.
type ActivityRequest struct {
	Project      string
	Type         string
	Description  string
	Participants *int
	Date         string
}

// ValidateActivity validates a new activity against the known projects and
// activity types.
func ValidateActivity(req ActivityRequest, projects, types []string) []FieldError {
	var errs []FieldError

	errs = append(errs, checkKnown("project", req.Project, projects)...)
	errs = append(errs, checkKnown("type", req.Type, types)...)
	errs = append(errs, checkDescription(req.Description)...)
	if req.Participants == nil {
		errs = append(errs, FieldError{Field: "participants", Message: "participants is required"})
	} else {
		errs = append(errs, checkParticipants(*req.Participants)...)
	}
	errs = append(errs, checkDate("date", req.Date)...)

	return errs
}

// ActivityPatch mirrors the fields of an update activity request.
type ActivityPatch struct {
	Project      *string
	Type         *string
	Description  *string
	Participants *int
}

// ValidateActivityPatch validates the fields present in a patch.
func ValidateActivityPatch(p ActivityPatch, projects, types []string) []FieldError {
	if p.Project == nil && p.Type == nil && p.Description == nil && p.Participants == nil {
		return []FieldError{{Field: "body", Message: "at least one field must be provided"}}
	}

	var errs []FieldError
	if p.Project != nil {
		errs = append(errs, checkKnown("project", *p.Project, projects)...)
	}
	if p.Type != nil {
		errs = append(errs, checkKnown("type", *p.Type, types)...)
	}
	if p.Description != nil {
		errs = append(errs, checkDescription(*p.Description)...)
	}
	if p.Participants != nil {
		errs = append(errs, checkParticipants(*p.Participants)...)
	}
	return errs
}

func checkDescription(d string) []FieldError {
	if len(d) > maxDescriptionLen {
		return []FieldError{{Field: "description", Message: "description must be at most 2000 characters"}}
	}
	return nil
}

func checkParticipants(n int) []FieldError {
	if n < 0 {
		return []FieldError{{Field: "participants", Message: "participants must not be negative"}}
	}
	return nil
}
