package sales

import (
	"regexp"
	"strings"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type CreateInput struct {
	BrandID       string   `json:"brand_id"`
	Title         string   `json:"title"`
	SaleType      string   `json:"sale_type"`
	DiscountValue *float64 `json:"discount_value"`
	DiscountMode  string   `json:"discount_mode"`
	Notes         string   `json:"notes"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	SaleURL       string   `json:"sale_url"`
}

// validateCreate checks every rule and accumulates the violations instead of
// stopping at the first one.
func validateCreate(in CreateInput) []string {
	var errs []string
	if strings.TrimSpace(in.BrandID) == "" {
		errs = append(errs, `"brand_id" is required.`)
	}
	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, `"title" is required.`)
	}
	ts, knownType := SaleTypes[in.SaleType]
	if in.SaleType == "" || !knownType {
		errs = append(errs, `"sale_type" is required and must be one of: percentage, fixed, bogo, b2g1, deal.`)
	}
	if !dateRe.MatchString(in.StartDate) {
		errs = append(errs, `"start_date" is required (YYYY-MM-DD format).`)
	}
	if !dateRe.MatchString(in.EndDate) {
		errs = append(errs, `"end_date" is required (YYYY-MM-DD format).`)
	}
	if dateRe.MatchString(in.StartDate) && dateRe.MatchString(in.EndDate) && in.StartDate > in.EndDate {
		errs = append(errs, `"start_date" must not be after "end_date".`)
	}
	if knownType {
		errs = append(errs, validateTypeFields(ts, in.DiscountValue, in.DiscountMode, in.Notes)...)
	}
	return errs
}

func validateTypeFields(ts TypeSpec, value *float64, mode, notes string) []string {
	var errs []string
	if ts.HasValue {
		if value == nil {
			errs = append(errs, `"discount_value" is required for this sale type.`)
		} else if *value < 0 {
			errs = append(errs, `"discount_value" must be a non-negative number.`)
		}
		if mode != "" && mode != ModeUpTo && mode != ModeFlat {
			errs = append(errs, `"discount_mode" must be "upto" or "flat".`)
		}
	} else {
		if value != nil {
			errs = append(errs, `"discount_value" does not apply to this sale type.`)
		}
		if mode != "" {
			errs = append(errs, `"discount_mode" does not apply to this sale type.`)
		}
	}
	if notes != "" && !ts.HasNotes {
		errs = append(errs, `"notes" does not apply to this sale type.`)
	}
	return errs
}
