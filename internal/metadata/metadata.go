// Package metadata holds the structured package metadata consumed by the
// home-page build. Parsing semantics beyond YAML loading are out of scope:
// the document is produced by the caller's package-analysis tooling.
package metadata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Role identifies an author's relationship to the package.
type Role string

const (
	RoleMaintainer Role = "maintainer"
	RoleAuthor     Role = "author"
	RoleFunder     Role = "funder"
)

// sidebarRolePrecedence is the fixed ordering used when the sidebar lists
// developers: maintainers first, then authors, then funders.
var sidebarRolePrecedence = []Role{RoleMaintainer, RoleAuthor, RoleFunder}

// Author is a single package author with one or more roles.
type Author struct {
	Name  string  `yaml:"name"`
	Roles RoleSet `yaml:"roles"`
}

// RoleSet is a set of roles, serialized as a YAML sequence.
type RoleSet map[Role]struct{}

// NewRoleSet creates a set pre-populated with the provided roles.
func NewRoleSet(roles ...Role) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

// Has returns true if the role is present.
func (s RoleSet) Has(r Role) bool {
	_, ok := s[r]
	return ok
}

// UnmarshalYAML decodes a sequence of role names into a set.
func (s *RoleSet) UnmarshalYAML(value *yaml.Node) error {
	var names []string
	if err := value.Decode(&names); err != nil {
		return fmt.Errorf("roles must be a sequence of strings: %w", err)
	}
	out := make(RoleSet, len(names))
	for _, n := range names {
		out[Role(n)] = struct{}{}
	}
	*s = out
	return nil
}

// MarshalYAML encodes the set as a sorted-by-precedence sequence.
func (s RoleSet) MarshalYAML() (any, error) {
	names := make([]string, 0, len(s))
	for _, r := range sidebarRolePrecedence {
		if s.Has(r) {
			names = append(names, string(r))
		}
	}
	return names, nil
}

// Metadata is the immutable package metadata record. Absent optional fields
// are zero values, never load errors.
type Metadata struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	License     string   `yaml:"license"`
	URLs        []string `yaml:"urls"`
	BugReports  string   `yaml:"bug_reports"`
	Authors     []Author `yaml:"authors"`
}

// Load reads a package metadata document from disk.
func Load(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file: %w", err)
	}

	var meta Metadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
	}
	return &meta, nil
}

// ByRole groups authors by role, preserving input order within each role.
func (m *Metadata) ByRole() map[Role][]Author {
	out := make(map[Role][]Author)
	for _, a := range m.Authors {
		for r := range a.Roles {
			out[r] = append(out[r], a)
		}
	}
	return out
}
