package sales

import (
	"strings"
	"testing"
)

func f64(v float64) *float64 { return &v }

func validInput() CreateInput {
	return CreateInput{
		BrandID:       "11111111-1111-1111-1111-111111111111",
		Title:         "Summer Sale",
		SaleType:      "percentage",
		DiscountValue: f64(25),
		StartDate:     "2025-01-01",
		EndDate:       "2025-01-31",
	}
}

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateInput)
		wantErr string // substring of one accumulated message, "" = valid
	}{
		{"valid percentage", func(in *CreateInput) {}, ""},
		{"missing brand", func(in *CreateInput) { in.BrandID = "" }, `"brand_id" is required`},
		{"blank title", func(in *CreateInput) { in.Title = "   " }, `"title" is required`},
		{"unknown type", func(in *CreateInput) { in.SaleType = "clearance" }, `"sale_type"`},
		{"bad start date", func(in *CreateInput) { in.StartDate = "01-01-2025" }, `"start_date" is required`},
		{"bad end date", func(in *CreateInput) { in.EndDate = "2025-1-5" }, `"end_date" is required`},
		{"start after end", func(in *CreateInput) { in.StartDate = "2025-02-01"; in.EndDate = "2025-01-01" }, `must not be after`},
		{"percentage without value", func(in *CreateInput) { in.DiscountValue = nil }, `"discount_value" is required`},
		{"negative value", func(in *CreateInput) { in.DiscountValue = f64(-5) }, `non-negative`},
		{"bad mode", func(in *CreateInput) { in.DiscountMode = "roughly" }, `"discount_mode" must be`},
		{"deal without value", func(in *CreateInput) { in.SaleType = "deal"; in.DiscountValue = nil }, ""},
		{"deal with notes", func(in *CreateInput) { in.SaleType = "deal"; in.DiscountValue = nil; in.Notes = "see homepage" }, ""},
		{"bogo with value", func(in *CreateInput) { in.SaleType = "bogo"; in.DiscountValue = f64(1) }, `does not apply`},
		{"percentage with notes", func(in *CreateInput) { in.Notes = "extra" }, `"notes" does not apply`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			errs := validateCreate(in)
			if tt.wantErr == "" {
				if len(errs) > 0 {
					t.Fatalf("unexpected errors: %v", errs)
				}
				return
			}
			joined := strings.Join(errs, " ")
			if !strings.Contains(joined, tt.wantErr) {
				t.Fatalf("errors %q do not contain %q", joined, tt.wantErr)
			}
		})
	}
}

// Every violation is reported, not just the first.
func TestValidateCreateAccumulates(t *testing.T) {
	errs := validateCreate(CreateInput{SaleType: "nope"})
	if len(errs) < 4 {
		t.Fatalf("expected at least 4 accumulated errors, got %d: %v", len(errs), errs)
	}
}

// start_date > end_date fails regardless of the other fields being valid.
func TestValidateCreateDateOrderAlone(t *testing.T) {
	in := validInput()
	in.StartDate, in.EndDate = "2025-03-02", "2025-03-01"
	errs := validateCreate(in)
	if len(errs) != 1 || !strings.Contains(errs[0], "must not be after") {
		t.Fatalf("expected only the date-order error, got %v", errs)
	}
}
