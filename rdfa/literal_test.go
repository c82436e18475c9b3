package rdfa

import (
	"fmt"
	"testing"
)

const xsd = "http://www.w3.org/2001/XMLSchema#"

func TestTimeTagDatatypeInference(t *testing.T) {
	cases := []struct {
		value    string
		datatype string
	}{
		{"P2Y6M5DT12H35M30S", xsd + "duration"},
		{"2012-03-18T18:00:00Z", xsd + "dateTime"},
		{"2012-03-18", xsd + "date"},
		{"00:00:00", xsd + "time"},
		{"2012-03", xsd + "gYearMonth"},
		{"2012", xsd + "gYear"},
		{"tomorrow", ""},
	}
	for _, tc := range cases {
		input := fmt.Sprintf(`<p about="http://example.org/s" prefix="ex: http://example.org/ns#"><time property="ex:d">%s</time></p>`, tc.value)
		quads := extract(t, input, OptBaseIRI(testBase))
		if len(quads) != 1 {
			t.Fatalf("%s: expected 1 statement, got %d", tc.value, len(quads))
		}
		lit, ok := quads[0].O.(Literal)
		if !ok {
			t.Fatalf("%s: object is %T, want Literal", tc.value, quads[0].O)
		}
		if lit.Lexical != tc.value || lit.Datatype.Value != tc.datatype {
			t.Fatalf("%s: got %s, want datatype %q", tc.value, lit, tc.datatype)
		}
	}
}

func TestDatetimeAttributeOverridesText(t *testing.T) {
	input := `<p about="http://example.org/s" prefix="ex: http://example.org/ns#">` +
		`<time property="ex:d" datetime="2012-03-18">the 18th of March</time></p>`
	quads := extract(t, input, OptBaseIRI(testBase))
	if len(quads) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(quads))
	}
	lit := quads[0].O.(Literal)
	if lit.Lexical != "2012-03-18" || lit.Datatype.Value != xsd+"date" {
		t.Fatalf("unexpected literal %s", lit)
	}
}

func TestExplicitDatatypeWinsOverInference(t *testing.T) {
	input := `<p about="http://example.org/s" prefix="ex: http://example.org/ns#">` +
		`<time property="ex:d" datatype="xsd:string">2012-03-18</time></p>`
	quads := extract(t, input, OptBaseIRI(testBase))
	lit := quads[0].O.(Literal)
	if lit.Datatype.Value != xsd+"string" {
		t.Fatalf("unexpected datatype %q", lit.Datatype.Value)
	}
}

func TestLanguageLiteralSkipsInference(t *testing.T) {
	input := `<p about="http://example.org/s" prefix="ex: http://example.org/ns#" lang="en">` +
		`<time property="ex:d">2012-03-18</time></p>`
	quads := extract(t, input, OptBaseIRI(testBase))
	lit := quads[0].O.(Literal)
	if lit.Datatype.Value != xsd+"date" || lit.Lang != "" {
		t.Fatalf("unexpected literal %s", lit)
	}
}
