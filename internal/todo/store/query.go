package store

import (
	"strings"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns a search term into a LIKE pattern that matches it
// as a literal substring. Use it with ESCAPE '\'.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// TodoOrderBy renders the ORDER BY clause for a normalized todo listing.
// Todos without a due date always sort last.
func TodoOrderBy(p domain.ListParams) string {
	dir := direction(p.SortOrder)
	switch p.SortBy {
	case domain.SortByDueDate:
		return "due_date IS NULL, due_date " + dir + ", id ASC"
	case domain.SortByPriority:
		return "CASE priority WHEN 'low' THEN 1 WHEN 'medium' THEN 2 WHEN 'high' THEN 3 ELSE 0 END " + dir + ", created_at DESC, id ASC"
	default:
		return "created_at " + dir + ", id ASC"
	}
}

// CategoryOrderBy renders the ORDER BY clause for a normalized category listing.
func CategoryOrderBy(p domain.ListParams) string {
	dir := direction(p.SortOrder)
	if p.SortBy == domain.SortByName {
		return "name " + dir + ", id ASC"
	}
	return "created_at " + dir + ", id ASC"
}

func direction(o domain.SortOrder) string {
	if o == domain.SortAsc {
		return "ASC"
	}
	return "DESC"
}
