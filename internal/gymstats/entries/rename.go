package entries

import "strings"

// PlanRename returns every entry named oldName, tracked or not, copied with the
// new name. The caller persists each one and reloads summaries afterwards.
// The plan is empty when the new name is blank or equal to the old one after trimming.
//
// A plan is computed from a snapshot: an entry logged under the old name after the
// snapshot was taken is not part of it.
func PlanRename(oldName, newName string, all []Entry) []Entry {
	newName = strings.TrimSpace(newName)
	if newName == "" || strings.TrimSpace(oldName) == newName {
		return nil
	}

	var plan []Entry
	for _, e := range all {
		if e.Name != oldName {
			continue
		}
		e.Name = newName
		plan = append(plan, e)
	}
	return plan
}
