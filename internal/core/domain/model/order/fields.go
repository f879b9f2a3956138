package order

import (
	"slices"

	"fixit/internal/pkg/errs"
)

// Field names a customer may send when updating an order. Any other name in
// the request body rejects the whole update, even when its value is unchanged.
const (
	FieldStatus     = "status"
	FieldNotes      = "notes"
	FieldPhoto      = "photo"
	FieldShortVideo = "short_video"
	FieldBudget     = "budget"
)

// CustomerEditableFields returns the allow-list in a stable order.
func CustomerEditableFields() []string {
	return []string{FieldBudget, FieldNotes, FieldPhoto, FieldShortVideo, FieldStatus}
}

// CheckCustomerFields returns a FieldsNotAllowedError carrying the sorted set
// difference of provided minus the allow-list, or nil when it is empty.
func CheckCustomerFields(provided []string) error {
	allowed := CustomerEditableFields()

	var invalid []string
	for _, name := range provided {
		if !slices.Contains(allowed, name) && !slices.Contains(invalid, name) {
			invalid = append(invalid, name)
		}
	}
	if len(invalid) == 0 {
		return nil
	}

	slices.Sort(invalid)
	return errs.NewFieldsNotAllowedError(invalid, allowed)
}
