package section

// DefaultTitle is used for content accumulated before any header was seen.
const DefaultTitle = "Content"

// Section is the unit of retrieval-ready output: a titled span of body
// content tied to the page its header appeared on.
type Section struct {
	Title   string `json:"section"`
	Content string `json:"content"`
	Page    int    `json:"page"`
	Source  string `json:"source"`
}
