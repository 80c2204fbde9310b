package p4

import (
	"sort"
	"strings"
)

// stringsCaseInsensitive allows sorting string slices in a case insensitive manner via sort.Sort(stringsCaseInsensitive(x))
type stringsCaseInsensitive []string

func (x stringsCaseInsensitive) Len() int { return len(x) }
func (x stringsCaseInsensitive) Less(i, j int) bool {
	return strings.ToLower(x[i]) < strings.ToLower(x[j])
}
func (x stringsCaseInsensitive) Swap(i, j int) { x[i], x[j] = x[j], x[i] }

// sortCaseInsensitive performs an in-place case-insensitive, ascending sort of the given string slice
func sortCaseInsensitive(s []string) {
	sort.Sort(stringsCaseInsensitive(s))
}

// DepotFileCaseInsensitive allows sorting slices of DepotFiles by path, but ignoring case.
type DepotFileCaseInsensitive []DepotFile

func (x DepotFileCaseInsensitive) Len() int { return len(x) }
func (x DepotFileCaseInsensitive) Less(i, j int) bool {
	return strings.ToLower(x[i].Path) < strings.ToLower(x[j].Path)
}
func (x DepotFileCaseInsensitive) Swap(i, j int) { x[i], x[j] = x[j], x[i] }
