package weaviate

import (
	"fmt"
	"strings"

	"github.com/corlin/wvsee/internal/dashboard/domain/model"
)

// BuildGetQuery builds a GraphQL Get query listing the class and the requested
// property names. A valid sort directive is translated into the Get grammar's
// sort argument; an invalid or absent one is omitted entirely.
func BuildGetQuery(class string, properties []string, sort *model.SortDirective) string {
	var b strings.Builder
	b.WriteString("{ Get { ")
	b.WriteString(class)
	if sort.IsValid() {
		fmt.Fprintf(&b, "(sort: [{path: [%q], order: %s}])", sort.Property, sort.NormalizedOrder())
	}
	b.WriteString(" { ")
	b.WriteString(strings.Join(properties, " "))
	b.WriteString(" } } }")
	return b.String()
}

// BuildAggregateQuery builds the aggregate query requesting the object count
// of a single class.
func BuildAggregateQuery(class string) string {
	return fmt.Sprintf("{ Aggregate { %s { meta { count } } } }", class)
}
