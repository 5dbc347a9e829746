package finance

// Built-in category taxonomies. These mirror the expense category pickers the
// mobile screens offer per domain; the engine only cares about which group a
// name lands in.

// PoultryCategories returns the expense taxonomy for poultry operations.
func PoultryCategories() *CategoryConfig {
	return NewCategoryConfig(
		[]string{
			"Feed",
			"Chicks",
			"Medication",
			"Vaccines",
			"Packaging",
			"Bedding",
		},
		[]string{
			"Electricity",
			"Water",
			"Transport",
			"Labor",
			"Rent",
			"Equipment Maintenance",
		},
	)
}

// ApicultureCategories returns the expense taxonomy for apiculture operations.
func ApicultureCategories() *CategoryConfig {
	return NewCategoryConfig(
		[]string{
			"Bees",
			"Hive Frames",
			"Sugar Syrup",
			"Wax Foundation",
			"Jars",
			"Packaging",
		},
		[]string{
			"Electricity",
			"Water",
			"Transport",
			"Labor",
			"Rent",
			"Protective Gear",
		},
	)
}

// GenericCategories returns the taxonomy used by the all-occupations dashboard,
// covering the common categories shared across domains.
func GenericCategories() *CategoryConfig {
	return NewCategoryConfig(
		[]string{
			"Feed",
			"Livestock",
			"Seeds",
			"Medication",
			"Packaging",
		},
		[]string{
			"Electricity",
			"Water",
			"Transport",
			"Labor",
			"Rent",
			"Equipment Maintenance",
			"Insurance",
		},
	)
}
