package validation

import (
	"fmt"

	"github.com/greengirl/dashboard/internal/material"
)

// MaterialRequest mirrors the fields of a create material request.
type MaterialRequest struct {
	Project  string
	Type     string
	Quantity *float64
	Usage    string
	Date     string
}

// ValidateMaterial validates a new material record against the known projects.
func ValidateMaterial(req MaterialRequest, projects []string) []FieldError {
	var errs []FieldError

	errs = append(errs, checkKnown("project", req.Project, projects)...)
	errs = append(errs, checkMaterialType(req.Type)...)
	if req.Quantity == nil {
		errs = append(errs, FieldError{Field: "quantity", Message: "quantity is required"})
	} else {
		errs = append(errs, checkQuantity(*req.Quantity)...)
	}
	errs = append(errs, checkUsage(req.Usage)...)
	errs = append(errs, checkDate("date", req.Date)...)

	return errs
}

// MaterialPatch mirrors the fields of an update material request. Nil fields
// are left unchanged.
type MaterialPatch struct {
	Project  *string
	Type     *string
	Quantity *float64
	Usage    *string
}

// ValidateMaterialPatch validates the fields present in a patch.
func ValidateMaterialPatch(p MaterialPatch, projects []string) []FieldError {
	var errs []FieldError

	if p.Project == nil && p.Type == nil && p.Quantity == nil && p.Usage == nil {
		return []FieldError{{Field: "body", Message: "at least one field must be provided"}}
	}
	if p.Project != nil {
		errs = append(errs, checkKnown("project", *p.Project, projects)...)
	}
	if p.Type != nil {
		errs = append(errs, checkMaterialType(*p.Type)...)
	}
	if p.Quantity != nil {
		errs = append(errs, checkQuantity(*p.Quantity)...)
	}
	if p.Usage != nil {
		errs = append(errs, checkUsage(*p.Usage)...)
	}

	return errs
}

// ValidateCapacity validates a storage capacity update.
func ValidateCapacity(typ string, capacity *float64) []FieldError {
	errs := checkMaterialType(typ)
	if capacity == nil {
		errs = append(errs, FieldError{Field: "capacity", Message: "capacity is required"})
	} else if *capacity < 0 {
		errs = append(errs, FieldError{Field: "capacity", Message: "capacity must not be negative"})
	}
	return errs
}

func checkMaterialType(t string) []FieldError {
	if t == "" {
		return []FieldError{{Field: "type", Message: "type is required"}}
	}
	if !material.Type(t).Valid() {
		return []FieldError{{Field: "type", Message: fmt.Sprintf("type must be one of %q", material.Types)}}
	}
	return nil
}

func checkQuantity(q float64) []FieldError {
	if q < 0 {
		return []FieldError{{Field: "quantity", Message: "quantity must not be negative"}}
	}
	return nil
}

func checkUsage(u string) []FieldError {
	if u == "" {
		return []FieldError{{Field: "usage", Message: "usage is required"}}
	}
	if !material.Usage(u).Valid() {
		return []FieldError{{Field: "usage", Message: fmt.Sprintf("usage must be one of %q", material.Usages)}}
	}
	return nil
}
