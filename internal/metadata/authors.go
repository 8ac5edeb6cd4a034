package metadata

// Developer is an author selected for the sidebar, tagged with the single
// highest-precedence role it holds.
type Developer struct {
	Name string
	Role Role
}

// DevelopersForSidebar returns the authors shown in the sidebar's developers
// block. Roles are visited in fixed precedence order (maintainer, author,
// funder); an author appearing under several roles is listed once, under the
// highest-precedence one. Input order is preserved within each role.
func DevelopersForSidebar(m *Metadata) []Developer {
	seen := make(map[string]struct{})
	var out []Developer
	for _, role := range sidebarRolePrecedence {
		for _, a := range m.Authors {
			if !a.Roles.Has(role) {
				continue
			}
			if _, dup := seen[a.Name]; dup {
				continue
			}
			seen[a.Name] = struct{}{}
			out = append(out, Developer{Name: a.Name, Role: role})
		}
	}
	return out
}
