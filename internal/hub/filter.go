package hub

import (
	"strings"

	"github.com/alshawwaf/dev-hub/internal/domain"
	"github.com/samber/lo"
)

// AllCategory is the pseudo-category that disables category filtering.
const AllCategory = "All"

// PlaygroundMarker identifies applications hosted as sub-projects of the
// shared playground repository rather than as standalone repos.
const PlaygroundMarker = "cp-agentic-mcp-playground"

// Categories derives the category set from the records: AllCategory first,
// then distinct categories in first-seen order.
func Categories(records []domain.Application) []string {
	cats := lo.Uniq(lo.Map(records, func(a domain.Application, _ int) string { return a.Category }))
	cats = lo.Filter(cats, func(c string, _ int) bool { return c != AllCategory })
	return append([]string{AllCategory}, cats...)
}

// FilterApps returns the records matching the free-text search and the
// active category, preserving input order. The search matches
// case-insensitively against name or description; an empty search matches
// everything.
func FilterApps(records []domain.Application, search string, category string) []domain.Application {
	search = strings.ToLower(search)
	return lo.Filter(records, func(a domain.Application, _ int) bool {
		matchesSearch := strings.Contains(strings.ToLower(a.Name), search) ||
			strings.Contains(strings.ToLower(a.Description), search)
		matchesCategory := category == AllCategory || a.Category == category
		return matchesSearch && matchesCategory
	})
}

// AppGroups is the secondary partition of a filtered list: standalone
// applications first, playground sub-projects second. Either group may be
// empty.
type AppGroups struct {
	Standalone []domain.Application
	Playground []domain.Application
}

// PartitionApps splits records by whether their repository URL contains the
// marker, keeping relative order within each group.
func PartitionApps(records []domain.Application, marker string) AppGroups {
	playground, standalone := lo.FilterReject(records, func(a domain.Application, _ int) bool {
		return strings.Contains(a.GithubURL, marker)
	})
	return AppGroups{Standalone: standalone, Playground: playground}
}
