// Package option implements the typed configuration subsystem shared by
// parsers, serializers, and writers. Every option id carries exactly one
// value kind (numeric or string) and a set of areas it applies to; a single
// schema table is the source of truth consulted by both getter and setter
// paths, so kind and area validation can never disagree.
package option

import "strings"

// Option identifies one configuration option. The enumeration is closed:
// adding an id requires adding its schema entry in the same change, which
// the schema completeness test enforces.
type Option int

const (
	// WriteBaseURI controls writing @base / xml:base directives.
	WriteBaseURI Option = iota
	// RelativeURIs controls writing URIs relative to the base URI.
	RelativeURIs
	// PrefixElements controls prefixing XML element names.
	PrefixElements
	// XMLVersion selects the declared XML version, 10 or 11.
	XMLVersion
	// XMLDeclaration controls writing the XML declaration.
	XMLDeclaration
	// ResourceBorder sets the border color of resource nodes.
	ResourceBorder
	// LiteralBorder sets the border color of literal nodes.
	LiteralBorder
	// BnodeBorder sets the border color of blank nodes.
	BnodeBorder
	// ResourceFill sets the fill color of resource nodes.
	ResourceFill
	// LiteralFill sets the fill color of literal nodes.
	LiteralFill
	// BnodeFill sets the fill color of blank nodes.
	BnodeFill
	// JSONCallback names the JSON callback function.
	JSONCallback
	// JSONExtraData carries extra top-level JSON data.
	JSONExtraData
	// RSSTriples selects the RSS triples mode.
	RSSTriples
	// AtomEntryURI selects the Atom entry URI.
	AtomEntryURI
	// AutoIndent controls automatic indentation of elements.
	AutoIndent
	// AutoEmpty controls automatic closing of empty elements.
	AutoEmpty
	// IndentWidth sets the number of spaces per indent level.
	IndentWidth
	// Scanning controls scanning for rdf:RDF inside XML content.
	Scanning
	// AllowNonNSAttributes allows non-namespaced attributes.
	AllowNonNSAttributes
	// AllowOtherParseTypes allows unknown rdf:parseType values.
	AllowOtherParseTypes
	// AllowBagID allows rdf:bagID.
	AllowBagID
	// AllowRDFTypeRDFList generates collections for rdf:type rdf:List.
	AllowRDFTypeRDFList
	// NormalizeLanguage normalizes language tags to lowercase.
	NormalizeLanguage
	// NonNFCFatal makes non-NFC literals a fatal error.
	NonNFCFatal
	// WarnOtherParseTypes warns on unknown rdf:parseType values.
	WarnOtherParseTypes
	// CheckRDFID checks rdf:ID values for duplicates.
	CheckRDFID
	// HTMLTagSoup enables the lax HTML parser.
	HTMLTagSoup
	// Microformats enables looking for microformats.
	Microformats
	// HTMLLink enables following head link elements to RDF content.
	HTMLLink
	// NoNet denies network requests.
	NoNet
	// WWWTimeout sets the HTTP request timeout in seconds.
	WWWTimeout
	// WWWHTTPCacheControl sets the HTTP Cache-Control header value.
	WWWHTTPCacheControl
	// WWWHTTPUserAgent sets the HTTP User-Agent header value.
	WWWHTTPUserAgent

	optionSentinel // keep last
)

// Kind is the value type of an option.
type Kind int

const (
	// KindNumeric options hold non-negative integers.
	KindNumeric Kind = iota
	// KindString options hold free-form text.
	KindString
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Area classifies which subsystem an option applies to. Areas combine as a
// bitmask; an option shared by the serializer and the XML writer carries
// AreaSerializer|AreaWriter.
type Area uint8

const (
	// AreaParser marks options consumed by parsers.
	AreaParser Area = 1 << iota
	// AreaSerializer marks options consumed by serializers.
	AreaSerializer
	// AreaWriter marks options consumed by the XML writer.
	AreaWriter
	// AreaWWW marks options consumed by the HTTP layer.
	AreaWWW
)

// Has reports whether a includes the given area.
func (a Area) Has(area Area) bool {
	return a&area != 0
}

// String returns the area names joined with "|".
func (a Area) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	if a.Has(AreaParser) {
		parts = append(parts, "parser")
	}
	if a.Has(AreaSerializer) {
		parts = append(parts, "serializer")
	}
	if a.Has(AreaWriter) {
		parts = append(parts, "writer")
	}
	if a.Has(AreaWWW) {
		parts = append(parts, "www")
	}
	return strings.Join(parts, "|")
}

// Description is one schema entry: the identity and typing of an option.
type Description struct {
	Option Option
	Name   string
	Label  string
	Kind   Kind
	Areas  Area
}

// schema is the single source of truth for option typing. Both the getter
// and setter paths consult it; no other table or switch duplicates this
// information.
var schema = map[Option]Description{
	WriteBaseURI:         {WriteBaseURI, "writeBaseURI", "Write @base / xml:base directives", KindNumeric, AreaSerializer},
	RelativeURIs:         {RelativeURIs, "relativeURIs", "Write URIs relative to the base URI where possible", KindNumeric, AreaSerializer},
	PrefixElements:       {PrefixElements, "prefixElements", "Prefix XML element names with the namespace prefix", KindNumeric, AreaSerializer},
	XMLVersion:           {XMLVersion, "xmlVersion", "XML version declared in output (10 or 11)", KindNumeric, AreaSerializer | AreaWriter},
	XMLDeclaration:       {XMLDeclaration, "xmlDeclaration", "Write the XML declaration", KindNumeric, AreaSerializer | AreaWriter},
	ResourceBorder:       {ResourceBorder, "resourceBorder", "Border color of resource nodes", KindString, AreaSerializer},
	LiteralBorder:        {LiteralBorder, "literalBorder", "Border color of literal nodes", KindString, AreaSerializer},
	BnodeBorder:          {BnodeBorder, "bnodeBorder", "Border color of blank nodes", KindString, AreaSerializer},
	ResourceFill:         {ResourceFill, "resourceFill", "Fill color of resource nodes", KindString, AreaSerializer},
	LiteralFill:          {LiteralFill, "literalFill", "Fill color of literal nodes", KindString, AreaSerializer},
	BnodeFill:            {BnodeFill, "bnodeFill", "Fill color of blank nodes", KindString, AreaSerializer},
	JSONCallback:         {JSONCallback, "jsonCallback", "JSON callback function name", KindString, AreaSerializer},
	JSONExtraData:        {JSONExtraData, "jsonExtraData", "Extra top-level JSON data", KindString, AreaSerializer},
	RSSTriples:           {RSSTriples, "rssTriples", "RSS triples mode", KindString, AreaSerializer},
	AtomEntryURI:         {AtomEntryURI, "atomEntryURI", "Atom entry URI", KindString, AreaSerializer},
	AutoIndent:           {AutoIndent, "autoIndent", "Automatically indent elements", KindNumeric, AreaWriter},
	AutoEmpty:            {AutoEmpty, "autoEmpty", "Automatically close empty elements", KindNumeric, AreaWriter},
	IndentWidth:          {IndentWidth, "indentWidth", "Number of spaces per indent level", KindNumeric, AreaWriter},
	Scanning:             {Scanning, "scanning", "Scan for rdf:RDF inside XML content", KindNumeric, AreaParser},
	AllowNonNSAttributes: {AllowNonNSAttributes, "allowNonNSAttributes", "Allow non-namespaced attributes", KindNumeric, AreaParser},
	AllowOtherParseTypes: {AllowOtherParseTypes, "allowOtherParseTypes", "Allow unknown rdf:parseType values", KindNumeric, AreaParser},
	AllowBagID:           {AllowBagID, "allowBagID", "Allow rdf:bagID", KindNumeric, AreaParser},
	AllowRDFTypeRDFList:  {AllowRDFTypeRDFList, "allowRDFTypeRDFList", "Generate collections for rdf:type rdf:List", KindNumeric, AreaParser},
	NormalizeLanguage:    {NormalizeLanguage, "normalizeLanguage", "Normalize language tags to lowercase", KindNumeric, AreaParser},
	NonNFCFatal:          {NonNFCFatal, "nonNFCFatal", "Make non-NFC literals a fatal error", KindNumeric, AreaParser},
	WarnOtherParseTypes:  {WarnOtherParseTypes, "warnOtherParseTypes", "Warn on unknown rdf:parseType values", KindNumeric, AreaParser},
	CheckRDFID:           {CheckRDFID, "checkRDFID", "Check rdf:ID values for duplicates", KindNumeric, AreaParser},
	HTMLTagSoup:          {HTMLTagSoup, "htmlTagSoup", "Use the lax HTML parser", KindNumeric, AreaParser},
	Microformats:         {Microformats, "microformats", "Look for microformats", KindNumeric, AreaParser},
	HTMLLink:             {HTMLLink, "htmlLink", "Follow head link elements to RDF content", KindNumeric, AreaParser},
	NoNet:                {NoNet, "noNet", "Deny network requests", KindNumeric, AreaParser | AreaWWW},
	WWWTimeout:           {WWWTimeout, "wwwTimeout", "HTTP request timeout in seconds", KindNumeric, AreaWWW},
	WWWHTTPCacheControl:  {WWWHTTPCacheControl, "wwwHTTPCacheControl", "HTTP Cache-Control header value", KindString, AreaWWW},
	WWWHTTPUserAgent:     {WWWHTTPUserAgent, "wwwHTTPUserAgent", "HTTP User-Agent header value", KindString, AreaWWW},
}

// byName indexes the schema by option name for profile and CLI lookups.
var byName = func() map[string]Option {
	m := make(map[string]Option, len(schema))
	for id, desc := range schema {
		m[desc.Name] = id
	}
	return m
}()

// String returns the option's schema name, or "unknown" for ids outside
// the catalogue.
func (o Option) String() string {
	if desc, ok := schema[o]; ok {
		return desc.Name
	}
	return "unknown"
}

// Describe returns the schema entry for an option.
func Describe(id Option) (Description, bool) {
	desc, ok := schema[id]
	return desc, ok
}

// FromName resolves an option by its schema name.
func FromName(name string) (Option, bool) {
	id, ok := byName[name]
	return id, ok
}

// All returns every option description in id order.
func All() []Description {
	out := make([]Description, 0, len(schema))
	for id := Option(0); id < optionSentinel; id++ {
		if desc, ok := schema[id]; ok {
			out = append(out, desc)
		}
	}
	return out
}

// ForArea returns the descriptions of every option valid for an area,
// in id order.
func ForArea(area Area) []Description {
	var out []Description
	for id := Option(0); id < optionSentinel; id++ {
		if desc, ok := schema[id]; ok && desc.Areas.Has(area) {
			out = append(out, desc)
		}
	}
	return out
}

// Serializer returns the descriptions of every serializer-area option.
func Serializer() []Description {
	return ForArea(AreaSerializer)
}
