package floatexpr

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	novarsopt struct{}
	endopt    struct{}
)

// parsectx holds general data for parsing.
type parsectx struct {
	// novars disables scanning identifiers as variables.
	novars bool
	// end requires the expression to extend to the end of the input.
	end bool
}

// DisallowVariables makes identifiers other than the keywords log, sqrt, sin,
// cos, tan, pi, and e lexical errors instead of variables.
func DisallowVariables() ParseOption {
	return novarsopt{}
}

func (novarsopt) parseOption(p parsectx) parsectx {
	p.novars = true
	return p
}

// RequireEnd makes tokens following a complete expression an error. By
// default, parsing stops after the first complete expression, so that e.g.
// "1 + 1 )" parses as "1 + 1".
func RequireEnd() ParseOption {
	return endopt{}
}

func (endopt) parseOption(p parsectx) parsectx {
	p.end = true
	return p
}
