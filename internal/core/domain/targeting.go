package domain

import "slices"

// Targeting describes which products a campaign affects. Empty include
// lists impose no constraint; a match on any exclude list always rejects.
type Targeting struct {
	IncludeProducts   []int64 `json:"include_products"`
	ExcludeProducts   []int64 `json:"exclude_products"`
	IncludeCategories []int64 `json:"include_categories"`
	ExcludeCategories []int64 `json:"exclude_categories"`
	IncludeTags       []int64 `json:"include_tags"`
	ExcludeTags       []int64 `json:"exclude_tags"`
}

// Applies reports whether a product with the given id, categories and tags
// is targeted. Rules are checked in a fixed order and the first failing
// rule rejects.
func (t Targeting) Applies(productID int64, categoryIDs, tagIDs []int64) bool {
	if len(t.IncludeProducts) > 0 && !slices.Contains(t.IncludeProducts, productID) {
		return false
	}
	if slices.Contains(t.ExcludeProducts, productID) {
		return false
	}
	if len(t.IncludeCategories) > 0 && !intersects(t.IncludeCategories, categoryIDs) {
		return false
	}
	if intersects(t.ExcludeCategories, categoryIDs) {
		return false
	}
	if len(t.IncludeTags) > 0 && !intersects(t.IncludeTags, tagIDs) {
		return false
	}
	if intersects(t.ExcludeTags, tagIDs) {
		return false
	}
	return true
}

func intersects(a, b []int64) bool {
	for _, v := range a {
		if slices.Contains(b, v) {
			return true
		}
	}
	return false
}
