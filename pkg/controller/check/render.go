package check

import "strings"

// Placeholder is the reserved token a check query may contain; it is
// replaced by the quoted owner exclusion list. A query without the token
// simply doesn't use the list.
const Placeholder = "{owner_exclude_list}"

// RenderQuery substitutes the owner exclusion list into a check query as
// a comma-separated, single-quoted list ('SYS', 'SYSTEM'). An empty list
// substitutes an empty string.
//
// Values are substituted verbatim, without escaping. The exclusion list
// is trusted, operator-controlled configuration, not external input.
func RenderQuery(query string, excludeList []string) string {
	quoted := make([]string, len(excludeList))
	for i, owner := range excludeList {
		quoted[i] = "'" + owner + "'"
	}
	return strings.ReplaceAll(query, Placeholder, strings.Join(quoted, ", "))
}
