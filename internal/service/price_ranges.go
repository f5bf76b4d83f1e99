package service

// PriceRange is one histogram bucket. Min and Max are inclusive, Above is
// exclusive; nil bounds are open. Each bucket after the first starts just
// above the previous Max, so every non-negative price lands in exactly one.
type PriceRange struct {
	Label string
	Min   *float64
	Above *float64
	Max   *float64
}

func bound(v float64) *float64 { return &v }

// PriceRanges are the fixed bar-chart buckets in output order.
var PriceRanges = []PriceRange{
	{Label: "0-100", Min: bound(0), Max: bound(100)},
	{Label: "101-200", Above: bound(100), Max: bound(200)},
	{Label: "201-300", Above: bound(200), Max: bound(300)},
	{Label: "301-400", Above: bound(300), Max: bound(400)},
	{Label: "401-500", Above: bound(400), Max: bound(500)},
	{Label: "501-600", Above: bound(500), Max: bound(600)},
	{Label: "601-700", Above: bound(600), Max: bound(700)},
	{Label: "701-800", Above: bound(700), Max: bound(800)},
	{Label: "801-900", Above: bound(800), Max: bound(900)},
	{Label: "901-above", Above: bound(900)},
}
