package record

import (
	"strconv"
	"strings"
)

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// ParseOrder accepts asc/desc in any case; anything else sorts ascending.
func ParseOrder(raw string) Order {
	if strings.EqualFold(strings.TrimSpace(raw), string(OrderDesc)) {
		return OrderDesc
	}
	return OrderAsc
}

// NameClause is the ORDER BY expression for sorting by name.
func (o Order) NameClause() string {
	if o == OrderDesc {
		return "name DESC"
	}
	return "name ASC"
}

// ListParams is a name-ordered, optionally filtered and paginated listing.
// Zero Skip or Take means unset.
type ListParams struct {
	Skip   int
	Take   int
	Search string
	Order  Order
}

// ParseCount reads a skip/take query value. Blank, non-numeric and
// non-positive values are treated as unset (0).
func ParseCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// LikePattern turns a search term into a LIKE pattern for a substring match,
// escaping wildcards with a backslash. Case folding is left to the database
// so both sides of the comparison are lowered the same way.
func LikePattern(search string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(search) + "%"
}
