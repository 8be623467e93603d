package sqlname

import (
	"fmt"
	"strings"

	"github.com/hugr-lab/typemap"
)

// expressionClasses maps DuckDB expression_class names, as found in
// serialized filter and projection expressions, to expression kinds.
var expressionClasses = map[string]typemap.RexType{
	"BOUND_CONSTANT": typemap.RexLiteral,
	"VALUE_CONSTANT": typemap.RexLiteral,

	"BOUND_COLUMN_REF": typemap.RexReference,
	"BOUND_REF":        typemap.RexReference,
	"BOUND_LAMBDA_REF": typemap.RexReference,
	"COLUMN_REF":       typemap.RexReference,

	"BOUND_SUBQUERY": typemap.RexScalarSubquery,
	"SUBQUERY":       typemap.RexScalarSubquery,

	"BOUND_FUNCTION":    typemap.RexCall,
	"BOUND_AGGREGATE":   typemap.RexCall,
	"BOUND_WINDOW":      typemap.RexCall,
	"BOUND_COMPARISON":  typemap.RexCall,
	"BOUND_CONJUNCTION": typemap.RexCall,
	"BOUND_OPERATOR":    typemap.RexCall,
	"BOUND_BETWEEN":     typemap.RexCall,
	"BOUND_CASE":        typemap.RexCall,
	"BOUND_CAST":        typemap.RexCall,
	"BOUND_UNNEST":      typemap.RexCall,
	"FUNCTION":          typemap.RexCall,
	"COMPARISON":        typemap.RexCall,
	"CONJUNCTION":       typemap.RexCall,
	"OPERATOR":          typemap.RexCall,
	"CASE":              typemap.RexCall,
	"CAST":              typemap.RexCall,

	"BOUND_DEFAULT":   typemap.RexOther,
	"BOUND_PARAMETER": typemap.RexOther,
	"BOUND_LAMBDA":    typemap.RexOther,
	"PARAMETER":       typemap.RexOther,
	"STAR":            typemap.RexOther,
}

// ExpressionKind resolves a DuckDB expression class such as
// "BOUND_COLUMN_REF" to its expression kind. A class carrying an alias in
// the plan is still reported by its own kind; RexAlias is never returned.
func ExpressionKind(class string) (typemap.RexType, error) {
	if k, ok := expressionClasses[strings.ToUpper(strings.TrimSpace(class))]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: expression class %q", typemap.ErrUnknownType, class)
}
