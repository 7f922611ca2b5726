package domain

import "strings"

type OUID string

// RootPath is the OU path sentinel addressing the organization root.
const RootPath = "/"

type OrganizationalUnit struct {
	ID       OUID
	Name     string
	ParentID OUID
}

// SplitOUPath turns "a/b/c" (slashes at either end ignored) into its segments.
// A path that is empty once stripped yields no segments.
func SplitOUPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

type Page[T any] struct {
	Items     []T
	NextToken string
}
