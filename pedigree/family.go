package pedigree

import (
	"fmt"
	"strings"
)

const (
	Proband = "proband"
	Father  = "father"
	Mother  = "mother"

	// FounderID marks an unknown parent in PED files
	FounderID = "0"
)

// Family is a run of consecutive sample rows sharing a Family_id.
type Family []SampleRow

// GroupConsecutive splits items into runs of adjacent elements with equal
// keys. It never merges runs that are apart.
func GroupConsecutive[T any](items []T, key func(T) string) [][]T {
	var out [][]T
	for i, item := range items {
		if i == 0 || key(items[i-1]) != key(item) {
			out = append(out, nil)
		}
		out[len(out)-1] = append(out[len(out)-1], item)
	}
	return out
}

// GroupFamilies groups rows by consecutive Family_id.
func GroupFamilies(rows []SampleRow) []Family {
	runs := GroupConsecutive(rows, func(r SampleRow) string { return r.FamilyID })
	out := make([]Family, 0, len(runs))
	for _, run := range runs {
		out = append(out, Family(run))
	}
	return out
}

// RepeatedKeys lists the keys of runs that reuse a key seen in an earlier,
// non-adjacent run, in order of reappearance.
func RepeatedKeys[T any](runs [][]T, key func(T) string) []string {
	seen := make(map[string]struct{}, len(runs))
	var out []string
	for _, run := range runs {
		k := key(run[0])
		if _, exists := seen[k]; exists {
			out = append(out, k)
		}
		seen[k] = struct{}{}
	}
	return out
}

// ParentID resolves one parent of person within its family. The proband's
// parent is the first member whose relationship is in relationships; every
// other member is a founder. Comparisons ignore case.
func (f Family) ParentID(person SampleRow, relationships ...string) (string, error) {
	if !strings.EqualFold(person.FamilyRelationship, Proband) {
		return FounderID, nil
	}

	for _, member := range f {
		for _, rel := range relationships {
			if strings.EqualFold(member.FamilyRelationship, rel) {
				return member.BikaID, nil
			}
		}
	}

	return "", fmt.Errorf("family %s, sample %s: %s: %w", person.FamilyID, person.BikaID, strings.Join(relationships, "/"), ErrParentNotFound)
}
