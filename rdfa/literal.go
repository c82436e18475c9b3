package rdfa

import "regexp"

// timeDatatypes maps lexical shapes to xsd datatypes for time-interpreted
// values, tried in order. Values matching nothing stay plain literals.
var timeDatatypes = []struct {
	pattern  *regexp.Regexp
	datatype string
}{
	{regexp.MustCompile(`^-?P([0-9]+Y)?([0-9]+M)?([0-9]+D)?(T([0-9]+H)?([0-9]+M)?([0-9]+(\.[0-9]+)?S)?)?$`), "duration"},
	{regexp.MustCompile(`^[0-9]+-[0-9][0-9]-[0-9][0-9]T[0-9][0-9]:[0-9][0-9]:[0-9][0-9]((Z?)|([+-][0-9][0-9]:[0-9][0-9]))$`), "dateTime"},
	{regexp.MustCompile(`^[0-9]+-[0-9][0-9]-[0-9][0-9]Z?$`), "date"},
	{regexp.MustCompile(`^[0-9][0-9]:[0-9][0-9]:[0-9][0-9]((Z?)|([+-][0-9][0-9]:[0-9][0-9]))$`), "time"},
	{regexp.MustCompile(`^[0-9]+-[0-9][0-9]Z?$`), "gYearMonth"},
	{regexp.MustCompile(`^[0-9]+Z?$`), "gYear"},
}

// createLiteral builds a literal for the scope of a tag: an explicit
// datatype wins, a time-interpreted tag infers an xsd datatype from the
// lexical form, and otherwise the scoped language applies.
func (p *Parser) createLiteral(value string, tag *activeTag) Literal {
	datatype := tag.datatype
	if tag.interpretObjectAsTime && datatype.Value == "" {
		for _, entry := range timeDatatypes {
			if entry.pattern.MatchString(value) {
				datatype = p.factory.NamedNode(xsdNS + entry.datatype)
				break
			}
		}
	}
	if datatype.Value != "" {
		return p.factory.Literal(value, "", datatype)
	}
	return p.factory.Literal(value, tag.language, IRI{})
}
