package inventory

import "strings"

// IsAvailable reports whether an inventory item with the given name exists
// in the snapshot. Matching is case-insensitive exact string equality after
// lowercasing; the recipe side stores free-text names, not foreign keys,
// so this is the single canonical definition of "available".
func IsAvailable(requirementName string, snapshot []*Ingredient) bool {
	return Find(requirementName, snapshot) != nil
}

// Find returns the first snapshot item whose name matches requirementName
// case-insensitively, or nil if no item matches.
func Find(requirementName string, snapshot []*Ingredient) *Ingredient {
	want := strings.ToLower(requirementName)
	for _, item := range snapshot {
		if strings.ToLower(item.Name) == want {
			return item
		}
	}
	return nil
}
