package content

import (
	"timo-intelligence-be/internal/model"
)

// Slots whose copy fields are kept in sync with the shipped defaults.
// Matching falls back to title equality for documents saved before
// stable ids existed.
var migratedSlots = []struct {
	id    string
	title string
}{
	{"tender", "Timo Tender"},
	{"fleet", "Timo Fleet"},
	{"insights", "Timo Insights"},
	{"vision", "Timo Vision"},
}

func findSolution(list []model.Solution, id, title string) int {
	for i := range list {
		if list[i].Id == id || list[i].Title == title {
			return i
		}
	}
	return -1
}

// Migrate upgrades stale default-derived fields of a loaded document to
// the current defaults. For each known solution slot only description,
// detailTitle and detailText are compared and overwritten; the partners
// section is refreshed whole when any of its fields drifted. All other
// administrator edits are left untouched. The check is full-field
// equality against the hardcoded current default, not a version number:
// a customization that happens to equal an old default is overwritten,
// one that differs from both old and new defaults survives.
//
// Pure and idempotent: migrating its own output again changes nothing.
// The caller persists the result when changed is true.
func Migrate(loaded, defaults *model.ContentDocument) (migrated *model.ContentDocument, changed bool) {
	migrated = loaded.Clone()

	for _, slot := range migratedSlots {
		idx := findSolution(migrated.Solutions, slot.id, slot.title)
		if idx == -1 {
			continue
		}
		defIdx := findSolution(defaults.Solutions, slot.id, slot.title)
		if defIdx == -1 {
			continue
		}

		def := defaults.Solutions[defIdx]
		cur := &migrated.Solutions[idx]
		if cur.Description != def.Description ||
			cur.DetailTitle != def.DetailTitle ||
			cur.DetailText != def.DetailText {
			cur.Description = def.Description
			cur.DetailTitle = def.DetailTitle
			cur.DetailText = def.DetailText
			changed = true
		}
	}

	if migrated.Partners != defaults.Partners {
		migrated.Partners = defaults.Partners
		changed = true
	}

	return migrated, changed
}
