package prompt

// framingConflicts maps a framing option to the options it evicts when
// selected. The same table answers IsDisabled, so the mutation path and
// the display-disable path can never disagree. Entries are directional:
// selecting over-the-shoulder removes extreme wide, but selecting
// extreme wide leaves over-the-shoulder alone.
var framingConflicts = map[string][]string{
	"view-ots":      {"size-close", "size-xclose", "size-xwide", "height-high", "height-low", "height-worm", "height-top", "height-aerial"},
	"height-high":   {"view-ots"},
	"height-low":    {"view-ots"},
	"height-worm":   {"view-ots", "view-dutch"},
	"height-top":    {"view-ots", "view-side", "view-three-quarter", "view-rear", "view-dutch", "view-front"},
	"height-aerial": {"view-ots", "size-close", "size-xclose"},
	"view-dutch":    {"height-worm", "height-top"},
	"view-front":    {"height-top"},
}

// ApplySelection returns the framing selection after choosing id within
// group. Choosing an already selected id deselects it. Otherwise the
// current pick of the same group is replaced, options conflicting with
// id are evicted, and id is appended. The input slice is not modified.
func ApplySelection(current []string, id, group string) []string {
	if containsID(current, id) {
		return removeIDs(current, map[string]bool{id: true})
	}

	drop := make(map[string]bool)
	if group != "" {
		cat := CategoryByID("angles")
		if cat != nil {
			for _, opt := range cat.Options {
				if opt.Group == group {
					drop[opt.ID] = true
				}
			}
		}
	}
	for _, excluded := range framingConflicts[id] {
		drop[excluded] = true
	}

	result := removeIDs(current, drop)
	return append(result, id)
}

// IsDisabled reports whether optionID is blocked by the current framing
// selection. It consults the same conflict table as ApplySelection.
func IsDisabled(optionID string, current []string) bool {
	for _, selected := range current {
		for _, excluded := range framingConflicts[selected] {
			if excluded == optionID {
				return true
			}
		}
	}
	return false
}

// Toggle flips an option within a non-framing category according to the
// category's kind. Unknown category or option ids return the selection
// unchanged. For OnePerGroup categories use ApplySelection via the
// option's group; Toggle routes there for convenience.
func Toggle(categoryID string, current []string, id string) []string {
	cat := CategoryByID(categoryID)
	if cat == nil {
		return append([]string(nil), current...)
	}
	opt, ok := FindOption(categoryID, id)
	if !ok {
		return append([]string(nil), current...)
	}

	switch cat.Kind {
	case MultiSelect:
		if containsID(current, id) {
			return removeIDs(current, map[string]bool{id: true})
		}
		return append(append([]string(nil), current...), id)
	case OnePerGroup:
		return ApplySelection(current, id, opt.Group)
	case FreeText:
		return append([]string(nil), current...)
	default:
		if containsID(current, id) {
			return []string{}
		}
		return []string{id}
	}
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeIDs(ids []string, drop map[string]bool) []string {
	result := make([]string, 0, len(ids))
	for _, v := range ids {
		if !drop[v] {
			result = append(result, v)
		}
	}
	return result
}
