package models

// Contains reports whether id is a member of set.
func Contains(set []string, id string) bool {
	for _, member := range set {
		if member == id {
			return true
		}
	}
	return false
}

// ToggleMembership adds id to set when absent and removes it when present.
// It returns the resulting set and whether the id was added. Insertion order
// of the remaining members is preserved.
func ToggleMembership(set []string, id string) ([]string, bool) {
	for i, member := range set {
		if member == id {
			out := make([]string, 0, len(set)-1)
			out = append(out, set[:i]...)
			out = append(out, set[i+1:]...)
			return out, false
		}
	}
	out := make([]string, 0, len(set)+1)
	out = append(out, set...)
	out = append(out, id)
	return out, true
}

// AppendUnique appends each id to set in request order, skipping ids that are
// already members. Duplicates within ids collapse to their first occurrence.
func AppendUnique(set []string, ids ...string) []string {
	out := set
	for _, id := range ids {
		if Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}
