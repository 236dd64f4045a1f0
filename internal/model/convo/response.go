package convo

// StructuredResponse is the schema-constrained answer payload the widget
// renders: intro paragraph, bulleted detail sections, related-content cards
// and follow-up suggestions.
type StructuredResponse struct {
	Intro       string        `json:"intro"`
	Sections    []Section     `json:"sections"`
	Related     []RelatedItem `json:"related"`
	Suggestions []string      `json:"suggestions"`
}

// Section is one detail bullet. Content may carry the constrained
// inline-emphasis markup subset the widget renders verbatim.
type Section struct {
	Content string `json:"content"`
}

// RelatedItem is a related-content card shown beneath the answer.
type RelatedItem struct {
	Title string      `json:"title"`
	Kind  RelatedKind `json:"type"`
	Image string      `json:"image"`
	URL   string      `json:"url"`
}

// RelatedKind is the card call-to-action label. The remote output schema
// constrains it to the three values below.
type RelatedKind string

const (
	KindLearnMore        RelatedKind = "Learn more"
	KindDownloadBrochure RelatedKind = "Download brochure"
	KindCaseStudy        RelatedKind = "Case study"
)

// Valid reports whether the kind is one of the three schema values.
func (k RelatedKind) Valid() bool {
	switch k {
	case KindLearnMore, KindDownloadBrochure, KindCaseStudy:
		return true
	}
	return false
}

// Normalize maps any out-of-schema kind to the default card label so a
// lenient remote payload never breaks rendering.
func (k RelatedKind) Normalize() RelatedKind {
	if k.Valid() {
		return k
	}
	return KindLearnMore
}

// Clone returns an independent copy of the response. Canned responses are
// shared value tables, so callers always receive a copy they may own.
func (r StructuredResponse) Clone() *StructuredResponse {
	out := r
	out.Sections = append([]Section(nil), r.Sections...)
	out.Related = append([]RelatedItem(nil), r.Related...)
	out.Suggestions = append([]string(nil), r.Suggestions...)
	return &out
}
