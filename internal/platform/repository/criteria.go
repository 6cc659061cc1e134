package repository

import (
	"fmt"
	"strings"
)

// Criteria accumulates dynamic query predicates and renders them into a
// single WHERE clause with positional placeholders. Predicates are ANDed
// in the order they were added. An empty Criteria renders nothing, so
// callers can build conditions field by field and pass the result through
// unconditionally.
type Criteria struct {
	exprs []string
	args  []any
}

func NewCriteria() *Criteria {
	return &Criteria{}
}

// Where appends a raw predicate expression with its arguments.
func (c *Criteria) Where(expr string, args ...any) *Criteria {
	c.exprs = append(c.exprs, expr)
	c.args = append(c.args, args...)
	return c
}

func (c *Criteria) Eq(column string, value any) *Criteria {
	return c.Where(fmt.Sprintf("%s = ?", column), value)
}

func (c *Criteria) NotEq(column string, value any) *Criteria {
	return c.Where(fmt.Sprintf("%s <> ?", column), value)
}

// likeEscape is the escape character declared on every LIKE predicate.
// SQLite has no default escape character and MySQL backslash-escapes string
// literals, so the predicate names its own instead of relying on backslash.
const likeEscape = "!"

// Like matches rows whose column contains the given substring.
func (c *Criteria) Like(column string, value string) *Criteria {
	return c.Where(likePredicate(column), "%"+escapeLike(value)+"%")
}

// LikePrefix matches rows whose column starts with the given prefix.
func (c *Criteria) LikePrefix(column string, value string) *Criteria {
	return c.Where(likePredicate(column), escapeLike(value)+"%")
}

func likePredicate(column string) string {
	return fmt.Sprintf("%s LIKE ? ESCAPE '%s'", column, likeEscape)
}

func (c *Criteria) Gt(column string, value any) *Criteria {
	return c.Where(fmt.Sprintf("%s > ?", column), value)
}

func (c *Criteria) Gte(column string, value any) *Criteria {
	return c.Where(fmt.Sprintf("%s >= ?", column), value)
}

func (c *Criteria) Lt(column string, value any) *Criteria {
	return c.Where(fmt.Sprintf("%s < ?", column), value)
}

func (c *Criteria) Lte(column string, value any) *Criteria {
	return c.Where(fmt.Sprintf("%s <= ?", column), value)
}

func (c *Criteria) In(column string, values ...any) *Criteria {
	if len(values) == 0 {
		// An empty IN list matches nothing.
		return c.Where("1 = 0")
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
	return c.Where(fmt.Sprintf("%s IN (%s)", column, placeholders), values...)
}

func (c *Criteria) IsNull(column string) *Criteria {
	return c.Where(fmt.Sprintf("%s IS NULL", column))
}

func (c *Criteria) IsNotNull(column string) *Criteria {
	return c.Where(fmt.Sprintf("%s IS NOT NULL", column))
}

func (c *Criteria) Empty() bool {
	return c == nil || len(c.exprs) == 0
}

// Build renders the accumulated predicates as "expr AND expr ..." plus the
// flattened argument list. Empty criteria return an empty clause.
func (c *Criteria) Build() (string, []any) {
	if c.Empty() {
		return "", nil
	}
	return strings.Join(c.exprs, " AND "), c.args
}

// escapeLike neutralizes LIKE metacharacters in user-supplied match text so
// a literal "%" or "_" cannot widen the predicate.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, likeEscape, likeEscape+likeEscape)
	s = strings.ReplaceAll(s, "%", likeEscape+"%")
	s = strings.ReplaceAll(s, "_", likeEscape+"_")
	return s
}
