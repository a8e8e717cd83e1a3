// Defines request bodies for endpoints that write data.

package notion

// InputPropertyValue is a property value sent when creating a page.
//
// Exactly one payload field matching Type is set. Unlike PropertyValue, only
// writable types are represented.
type InputPropertyValue struct {
	ID   string       `json:"id,omitempty"`
	Type PropertyType `json:"type"`

	Title       []InputRichText `json:"title,omitempty"`
	RichText    []InputRichText `json:"rich_text,omitempty"`
	Number      *float64        `json:"number,omitempty"`
	Select      *SelectOption   `json:"select,omitempty"`
	MultiSelect []SelectOption  `json:"multi_select,omitempty"`
	Date        *DateValue      `json:"date,omitempty"`
	Checkbox    *bool           `json:"checkbox,omitempty"`
	URL         *string         `json:"url,omitempty"`
	Email       *string         `json:"email,omitempty"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
}

// InputRichText is a rich text segment sent in a request.
type InputRichText struct {
	Type string       `json:"type"` // only "text" is generated
	Text *TextContent `json:"text,omitempty"`
}

// Text returns a single plain text segment.
func Text(content string) []InputRichText {
	return []InputRichText{{Type: "text", Text: &TextContent{Content: content}}}
}

// CreatePageRequest is the request body for the create page endpoint.
type CreatePageRequest struct {
	Parent     Parent                        `json:"parent"`
	Properties map[string]InputPropertyValue `json:"properties"`
}

// NewDatabasePage returns a request creating a row in the database.
func NewDatabasePage(databaseID string, props map[string]InputPropertyValue) *CreatePageRequest {
	return &CreatePageRequest{
		Parent:     Parent{Type: "database_id", DatabaseID: databaseID},
		Properties: props,
	}
}

// SearchFilter defines filters for the search endpoint.
type SearchFilter struct {
	Value    string `json:"value"`    // "page" or "database"
	Property string `json:"property"` // "object"
}

// SearchRequest is the request body for the search endpoint.
type SearchRequest struct {
	Query       string        `json:"query,omitempty"`
	Filter      *SearchFilter `json:"filter,omitempty"`
	StartCursor string        `json:"start_cursor,omitempty"`
	PageSize    int           `json:"page_size,omitempty"`
}

// QueryOptions defines options for querying a database.
type QueryOptions struct {
	Filter      any    `json:"filter,omitempty"`
	Sorts       []Sort `json:"sorts,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
}

// Sort defines a sort order for database queries.
type Sort struct {
	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"` // "created_time" or "last_edited_time"
	Direction string `json:"direction"`           // "ascending" or "descending"
}
