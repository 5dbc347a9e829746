// Package finance implements the daily financial aggregation engine behind the
// dashboard screens: expense classification, per-day revenue and cost bucketing,
// and generation of a gap-filled historical series of derived metrics. The
// package is pure; it performs no I/O and keeps no state between calls.
package finance

// CategoryGroup identifies which side of the gross-profit line an expense
// category falls on.
type CategoryGroup string

const (
	// GroupCOGS marks categories counted as cost of goods sold.
	GroupCOGS CategoryGroup = "cogs"
	// GroupOperating marks categories counted as operating expenses.
	GroupOperating CategoryGroup = "expenses"
)

// CategoryConfig maps fine-grained expense category names to their main group.
// Each livestock domain (poultry, apiculture, generic) supplies its own config;
// configs must not be mixed across calls.
type CategoryConfig struct {
	groups map[string]CategoryGroup
}

// NewCategoryConfig builds an immutable reverse lookup from subcategory name to
// main group. A name listed under both groups resolves to the operating group:
// registration order is COGS first, operating last, and the last registration
// wins. That tie-break is deliberate and relied upon by the domain taxonomies.
func NewCategoryConfig(cogs, operating []string) *CategoryConfig {
	groups := make(map[string]CategoryGroup, len(cogs)+len(operating))
	for _, name := range cogs {
		groups[name] = GroupCOGS
	}
	for _, name := range operating {
		groups[name] = GroupOperating
	}
	return &CategoryConfig{groups: groups}
}

// Classify resolves a category name to its main group. The second return value
// is false when the name is unknown to this config; such expenses are excluded
// from both COGS and operating totals entirely. That silent drop matches the
// billing rules of the platform: unclassified spend is not an error, it simply
// does not take part in profit derivation.
func (c *CategoryConfig) Classify(category string) (CategoryGroup, bool) {
	if c == nil {
		return "", false
	}
	group, ok := c.groups[category]
	return group, ok
}

// Size reports how many subcategories the config recognizes.
func (c *CategoryConfig) Size() int {
	if c == nil {
		return 0
	}
	return len(c.groups)
}
