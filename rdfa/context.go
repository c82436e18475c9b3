package rdfa

// Namespaces used by the extraction rules.
const (
	rdfNS      = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	rdfaNS     = "http://www.w3.org/ns/rdfa#"
	xsdNS      = "http://www.w3.org/2001/XMLSchema#"
	xhtmlVocab = "http://www.w3.org/1999/xhtml/vocab#"
	powderNS   = "http://www.w3.org/2007/05/powder-s#"
)

// initialContext holds the RDFa 1.1 initial context: the prefix bindings
// and reserved terms available in every document before any declaration.
// Reserved terms share the table with prefixes; term lookup is performed
// case-insensitively against these keys.
var initialContext = map[string]string{
	"as":      "https://www.w3.org/ns/activitystreams#",
	"csvw":    "http://www.w3.org/ns/csvw#",
	"dcat":    "http://www.w3.org/ns/dcat#",
	"dc":      "http://purl.org/dc/terms/",
	"dcterms": "http://purl.org/dc/terms/",
	"dqv":     "http://www.w3.org/ns/dqv#",
	"duv":     "http://www.w3.org/ns/duv#",
	"foaf":    "http://xmlns.com/foaf/0.1/",
	"gr":      "http://purl.org/goodrelations/v1#",
	"grddl":   "http://www.w3.org/2003/g/data-view#",
	"ical":    "http://www.w3.org/2002/12/cal/icaltzd#",
	"ldp":     "http://www.w3.org/ns/ldp#",
	"ma":      "http://www.w3.org/ns/ma-ont#",
	"oa":      "http://www.w3.org/ns/oa#",
	"odrl":    "http://www.w3.org/ns/odrl/2/",
	"og":      "http://ogp.me/ns#",
	"org":     "http://www.w3.org/ns/org#",
	"owl":     "http://www.w3.org/2002/07/owl#",
	"prov":    "http://www.w3.org/ns/prov#",
	"qb":      "http://purl.org/linked-data/cube#",
	"rdf":     rdfNS,
	"rdfa":    rdfaNS,
	"rdfs":    "http://www.w3.org/2000/01/rdf-schema#",
	"rif":     "http://www.w3.org/2007/rif#",
	"rr":      "http://www.w3.org/ns/r2rml#",
	"schema":  "http://schema.org/",
	"sd":      "http://www.w3.org/ns/sparql-service-description#",
	"sioc":    "http://rdfs.org/sioc/ns#",
	"skos":    "http://www.w3.org/2004/02/skos/core#",
	"skosxl":  "http://www.w3.org/2008/05/skos-xl#",
	"sosa":    "http://www.w3.org/ns/sosa/",
	"ssn":     "http://www.w3.org/ns/ssn/",
	"time":    "http://www.w3.org/2006/time#",
	"v":       "http://rdf.data-vocabulary.org/#",
	"vcard":   "http://www.w3.org/2006/vcard/ns#",
	"void":    "http://rdfs.org/ns/void#",
	"wdr":     "http://www.w3.org/2007/05/powder#",
	"wdrs":    powderNS,
	"xhv":     xhtmlVocab,
	"xml":     "http://www.w3.org/XML/1998/namespace",
	"xsd":     xsdNS,

	// Reserved terms.
	"describedby": powderNS + "describedby",
	"license":     xhtmlVocab + "license",
	"role":        xhtmlVocab + "role",
}

// xhtmlInitialContext holds the XHTML reserved link-relation terms, added
// to the root scope when the xhtmlInitialContext feature is active.
var xhtmlInitialContext = map[string]string{
	"alternate":  xhtmlVocab + "alternate",
	"appendix":   xhtmlVocab + "appendix",
	"bookmark":   xhtmlVocab + "bookmark",
	"chapter":    xhtmlVocab + "chapter",
	"cite":       xhtmlVocab + "cite",
	"contents":   xhtmlVocab + "contents",
	"copyright":  xhtmlVocab + "copyright",
	"first":      xhtmlVocab + "first",
	"glossary":   xhtmlVocab + "glossary",
	"help":       xhtmlVocab + "help",
	"icon":       xhtmlVocab + "icon",
	"index":      xhtmlVocab + "index",
	"last":       xhtmlVocab + "last",
	"meta":       xhtmlVocab + "meta",
	"next":       xhtmlVocab + "next",
	"p3pv1":      xhtmlVocab + "p3pv1",
	"prev":       xhtmlVocab + "prev",
	"previous":   xhtmlVocab + "previous",
	"section":    xhtmlVocab + "section",
	"start":      xhtmlVocab + "start",
	"stylesheet": xhtmlVocab + "stylesheet",
	"subsection": xhtmlVocab + "subsection",
	"top":        xhtmlVocab + "top",
	"up":         xhtmlVocab + "up",
}
