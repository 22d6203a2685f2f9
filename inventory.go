package pageaudit

// Inventory holds every structured signal extracted from one page. It is
// serialized as the data section of the inventory artifact.
type Inventory struct {
	Meta             Meta             `json:"meta"`
	StructuredData   []StructuredData `json:"structured_data"`
	Links            Links            `json:"links"`
	Headings         []Heading        `json:"headings"`
	Images           []Image          `json:"images"`
	Scripts          []Script         `json:"scripts"`
	Stylesheets      []Stylesheet     `json:"stylesheets"`
	Fonts            []Font           `json:"fonts"`
	PerformanceHints PerformanceHints `json:"performance_hints"`
}

// Meta holds head-level SEO metadata. Title and Description carry their
// character count appended as " (n)".
type Meta struct {
	Robots      string            `json:"robots"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Canonical   string            `json:"canonical"`
	Viewport    string            `json:"viewport"`
	OG          map[string]string `json:"og"`
	Twitter     map[string]string `json:"twitter"`
}

// StructuredData describes one embedded JSON-LD block.
type StructuredData struct {
	// Type is the first @type value found in the block, or nil.
	Type      any      `json:"type"`
	ValidJSON bool     `json:"valid_json"`
	Errors    []string `json:"errors"`
}

// Links holds the anchor inventory of the body.
type Links struct {
	Internal       []Link         `json:"internal"`
	External       []Link         `json:"external"`
	PolicyPresence PolicyPresence `json:"policy_presence"`
}

// Link is one anchor with its href resolved against the page base.
type Link struct {
	Href   string `json:"href"`
	Anchor string `json:"anchor"`
	Rel    string `json:"rel"`
	Target string `json:"target"`
}

// PolicyPresence records whether policy pages are linked from the page.
type PolicyPresence struct {
	Privacy PolicyLink `json:"privacy"`
	Terms   PolicyLink `json:"terms"`
	Contact PolicyLink `json:"contact"`
}

// PolicyLink is the detection state of a single policy page.
type PolicyLink struct {
	Found        bool   `json:"found"`
	Href         string `json:"href"`
	InStaticHTML bool   `json:"in_static_html"`
}

// Heading is an h1-h6 element in document order. Level is "H1".."H6".
type Heading struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// ImageRole classifies an image by its layout context.
type ImageRole string

// ImageRole constants.
const (
	ImageRoleHero   ImageRole = "hero"
	ImageRoleCard   ImageRole = "card"
	ImageRoleInline ImageRole = "inline"
)

// Image is one img element in the body.
type Image struct {
	Src        string    `json:"src"`
	Alt        string    `json:"alt"`
	Dimensions string    `json:"dimensions"`
	Role       ImageRole `json:"role"`
}

// Script is one script element in head or body.
type Script struct {
	Src    string `json:"src"`
	Async  bool   `json:"async"`
	Defer  bool   `json:"defer"`
	Module bool   `json:"module"`
}

// Stylesheet is a linked stylesheet or an inline style block.
type Stylesheet struct {
	Href        string `json:"href"`
	InlineBytes int    `json:"inline_bytes"`
	Media       string `json:"media"`
}

// Font is a web font family discovered from a Google Fonts stylesheet link.
type Font struct {
	Family  string `json:"family"`
	Source  string `json:"source"`
	Display string `json:"font-display"`
}

// PerformanceHints are boolean heuristics over the raw markup.
type PerformanceHints struct {
	HeroHasLargeGradients            bool         `json:"hero_has_large_gradients"`
	UsesBlurOrHeavyShadows           bool         `json:"uses_blur_or_heavy_shadows"`
	CLSPlaceholdersForAsyncNavFooter bool         `json:"cls_placeholders_for_async_nav_footer"`
	CacheHeaders                     CacheHeaders `json:"cache_headers"`
}

// CacheHeaders is always empty for file inspection; the fields serialize as
// null.
type CacheHeaders struct {
	CacheControl *string `json:"cache-control"`
	Expires      *string `json:"expires"`
}

// NewInventory returns an Inventory whose collections are empty rather than
// nil so they serialize as [] and {}.
func NewInventory() *Inventory {
	return &Inventory{
		Meta: Meta{
			OG:      make(map[string]string),
			Twitter: make(map[string]string),
		},
		StructuredData: []StructuredData{},
		Links: Links{
			Internal: []Link{},
			External: []Link{},
		},
		Headings:    []Heading{},
		Images:      []Image{},
		Scripts:     []Script{},
		Stylesheets: []Stylesheet{},
		Fonts:       []Font{},
	}
}
