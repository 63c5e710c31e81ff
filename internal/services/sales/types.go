package sales

// TypeSpec describes one sale type: whether it carries a discount value,
// whether free-text notes apply, and the discount mode used when the
// submission does not pick one.
type TypeSpec struct {
	Label       string
	HasValue    bool
	HasNotes    bool
	DefaultMode string
}

var SaleTypes = map[string]TypeSpec{
	"percentage": {Label: "Percentage Off", HasValue: true, DefaultMode: "upto"},
	"fixed":      {Label: "Fixed Amount Off", HasValue: true, DefaultMode: "flat"},
	"bogo":       {Label: "Buy 1 Get 1 Free"},
	"b2g1":       {Label: "Buy 2 Get 1 Free"},
	"deal":       {Label: "Special Deal", HasNotes: true},
}

const (
	ModeUpTo = "upto"
	ModeFlat = "flat"
)
