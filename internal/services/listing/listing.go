// Package listing filters and sorts an in-memory sale collection for
// presentation. It is a pure function of (sales, filters, today) so the same
// inputs always produce the same listing.
package listing

import (
	"sort"

	"salespark/internal/models"
)

const (
	SortNewest       = "newest"
	SortOldest       = "oldest"
	SortEndingSoon   = "ending_soon"
	SortDiscountHigh = "discount_high"
	SortDiscountLow  = "discount_low"
	SortPopular      = "popular"
	SortFavorites    = "favorites"
)

type Filters struct {
	BrandID  string
	SaleType string
	Status   string // "", "active" or "expired"
	Sort     string
}

// Apply narrows sales by the AND of all set filters, then orders them.
// Sales without a discount value sort as zero.
func Apply(in []models.Sale, f Filters, today string) []models.Sale {
	out := make([]models.Sale, 0, len(in))
	for _, s := range in {
		if f.BrandID != "" && s.BrandID != f.BrandID {
			continue
		}
		if f.SaleType != "" && s.SaleType != f.SaleType {
			continue
		}
		if f.Status == "active" && !s.IsActive(today) {
			continue
		}
		if f.Status == "expired" && s.EndDate >= today {
			continue
		}
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch f.Sort {
		case SortOldest:
			return a.StartDate < b.StartDate
		case SortEndingSoon:
			return a.EndDate < b.EndDate
		case SortDiscountHigh:
			return discount(a) > discount(b)
		case SortDiscountLow:
			return discount(a) < discount(b)
		case SortPopular:
			return a.ViewCount > b.ViewCount
		case SortFavorites:
			return a.FavoriteCount > b.FavoriteCount
		default:
			return a.StartDate > b.StartDate
		}
	})
	return out
}

func discount(s models.Sale) float64 {
	if s.DiscountValue == nil {
		return 0
	}
	return *s.DiscountValue
}
