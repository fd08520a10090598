package postgres

import (
	"fmt"
	"strings"
)

// queryBuilder composes WHERE clauses from validated filter parameters.
// Each expr carries a single $%d placeholder that is numbered as the
// argument is appended.
type queryBuilder struct {
	clauses []string
	args    []interface{}
}

func (b *queryBuilder) add(expr string, arg interface{}) {
	b.args = append(b.args, arg)
	b.clauses = append(b.clauses, fmt.Sprintf(expr, len(b.args)))
}

func (b *queryBuilder) where() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.clauses, " AND ")
}

// page returns LIMIT/OFFSET positioned after the filter arguments.
func (b *queryBuilder) page(page, limit int) (string, []interface{}) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	clause := fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(b.args)+1, len(b.args)+2)
	return clause, append(b.args, limit, offset)
}
