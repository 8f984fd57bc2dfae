// Package entity contains the core business objects of the project.
package entity

// WasteCategory represents the kind of waste offered in an announcement.
type WasteCategory string

const (
	// WasteCategoryMedicaments indicates expired or unused medication.
	WasteCategoryMedicaments WasteCategory = "medicaments"
	// WasteCategoryPlastiques indicates plastic waste.
	WasteCategoryPlastiques WasteCategory = "plastiques"
	// WasteCategoryPiles indicates batteries.
	WasteCategoryPiles WasteCategory = "piles"
	// WasteCategoryTextiles indicates textile waste.
	WasteCategoryTextiles WasteCategory = "textiles"
	// WasteCategoryElectronique indicates electronic waste.
	WasteCategoryElectronique WasteCategory = "electronique"
)

// String returns the string representation of the WasteCategory.
func (c WasteCategory) String() string {
	return string(c)
}

// IsValid checks if the WasteCategory is one of the closed set of categories.
func (c WasteCategory) IsValid() bool {
	switch c {
	case WasteCategoryMedicaments, WasteCategoryPlastiques, WasteCategoryPiles,
		WasteCategoryTextiles, WasteCategoryElectronique:
		return true
	default:
		return false
	}
}
