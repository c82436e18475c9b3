package rdfa

import "strings"

// Profile selects a named feature set for a host language.
type Profile string

const (
	// ProfileFull enables every optional behavior.
	ProfileFull Profile = ""
	// ProfileCore is the host-language-independent baseline.
	ProfileCore Profile = "core"
	// ProfileHTML targets lenient HTML documents.
	ProfileHTML Profile = "html"
	// ProfileXHTML targets XHTML documents.
	ProfileXHTML Profile = "xhtml"
	// ProfileXML targets generic XML documents (including SVG).
	ProfileXML Profile = "xml"
)

// Features toggles the optional behaviors of the extraction rules.
// Disabling a feature degrades the corresponding markup to plain
// treatment; it never causes an error.
type Features struct {
	// BaseTag honors <base href> as the document base for the rest of the stream.
	BaseTag bool
	// XMLBase honors xml:base as a subtree-scoped base override.
	XMLBase bool
	// LangAttribute honors lang/xml:lang for literal language tags.
	LangAttribute bool
	// OnlyAllowURIRelRevIfProperty ignores bare rel/rev terms on tags that
	// also carry property.
	OnlyAllowURIRelRevIfProperty bool
	// InheritSubjectInHeadBody makes head and body inherit the parent object
	// as their subject.
	InheritSubjectInHeadBody bool
	// DatetimeAttribute honors the datetime attribute as a literal source.
	DatetimeAttribute bool
	// TimeTag interprets <time> content as a date/time literal.
	TimeTag bool
	// HTMLDatatype treats rdf:HTML like rdf:XMLLiteral for markup capture.
	HTMLDatatype bool
	// CopyRDFaPatterns enables the rdfa:Pattern / rdfa:copy extension.
	CopyRDFaPatterns bool
	// XMLNSPrefixMappings derives prefix bindings from xmlns:* attributes.
	XMLNSPrefixMappings bool
	// SkipXMLLiteralChildren captures the markup of XML-literal children
	// without running extraction on them.
	SkipXMLLiteralChildren bool
	// XHTMLInitialContext preloads the XHTML reserved link terms.
	XHTMLInitialContext bool
	// RoleAttribute emits xhv:role statements for role attributes.
	RoleAttribute bool
}

// FeaturesForProfile returns the feature set of a named profile.
func FeaturesForProfile(p Profile) (Features, bool) {
	switch p {
	case ProfileFull:
		return Features{
			BaseTag:                      true,
			XMLBase:                      true,
			LangAttribute:                true,
			OnlyAllowURIRelRevIfProperty: true,
			InheritSubjectInHeadBody:     true,
			DatetimeAttribute:            true,
			TimeTag:                      true,
			HTMLDatatype:                 true,
			CopyRDFaPatterns:             true,
			XMLNSPrefixMappings:          true,
			XHTMLInitialContext:          true,
			RoleAttribute:                true,
		}, true
	case ProfileCore:
		return Features{
			XMLBase:             true,
			LangAttribute:       true,
			XMLNSPrefixMappings: true,
		}, true
	case ProfileHTML:
		return Features{
			BaseTag:                      true,
			LangAttribute:                true,
			OnlyAllowURIRelRevIfProperty: true,
			InheritSubjectInHeadBody:     true,
			DatetimeAttribute:            true,
			TimeTag:                      true,
			HTMLDatatype:                 true,
			CopyRDFaPatterns:             true,
			RoleAttribute:                true,
		}, true
	case ProfileXHTML:
		return Features{
			BaseTag:                      true,
			LangAttribute:                true,
			OnlyAllowURIRelRevIfProperty: true,
			InheritSubjectInHeadBody:     true,
			DatetimeAttribute:            true,
			TimeTag:                      true,
			HTMLDatatype:                 true,
			CopyRDFaPatterns:             true,
			XMLNSPrefixMappings:          true,
			XHTMLInitialContext:          true,
			RoleAttribute:                true,
		}, true
	case ProfileXML:
		return Features{
			XMLBase:                true,
			LangAttribute:          true,
			CopyRDFaPatterns:       true,
			XMLNSPrefixMappings:    true,
			SkipXMLLiteralChildren: true,
		}, true
	default:
		return Features{}, false
	}
}

// ProfileForContentType maps a media type to a profile. Unknown types map
// to the full profile.
func ProfileForContentType(contentType string) Profile {
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	switch mediaType {
	case "text/html":
		return ProfileHTML
	case "application/xhtml+xml":
		return ProfileXHTML
	case "application/xml", "text/xml", "image/svg+xml":
		return ProfileXML
	default:
		return ProfileFull
	}
}

// ParseProfile normalizes a profile name string.
func ParseProfile(value string) (Profile, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return ProfileFull, true
	case "core":
		return ProfileCore, true
	case "html":
		return ProfileHTML, true
	case "xhtml":
		return ProfileXHTML, true
	case "xml":
		return ProfileXML, true
	default:
		return "", false
	}
}
