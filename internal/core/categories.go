package core

// Categories is the fixed, ordered set of transaction categories. Each label
// is paired positionally with a display color in categoryColors.
var Categories = []string{"Food", "Transport", "Shopping", "Bills", "Other"}

var categoryColors = []string{"#6366f1", "#f59e42", "#10b981", "#ef4444", "#a855f7"}

// DefaultCategory is the label substituted for a missing or unknown category.
func DefaultCategory() string {
	return Categories[0]
}

// CategoryIndex returns the position of name in Categories, or -1.
func CategoryIndex(name string) int {
	for i, c := range Categories {
		if c == name {
			return i
		}
	}
	return -1
}

// NormalizeCategory maps a missing or unrecognized label to the default.
// Applied once at the store-read boundary, not in every aggregation.
func NormalizeCategory(name string) string {
	if CategoryIndex(name) >= 0 {
		return name
	}
	return DefaultCategory()
}

// CategoryColor returns the color paired with the label, or the first color
// for unrecognized labels.
func CategoryColor(name string) string {
	if i := CategoryIndex(name); i >= 0 {
		return categoryColors[i]
	}
	return categoryColors[0]
}
