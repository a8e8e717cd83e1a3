// Defines Notion API request and response types.

package notion

import (
	"encoding/json"
	"time"
)

// PropertyType is the type tag of a database property and of its values.
type PropertyType string

// Property types returned by the API.
const (
	TypeTitle          PropertyType = "title"
	TypeRichText       PropertyType = "rich_text"
	TypeNumber         PropertyType = "number"
	TypeSelect         PropertyType = "select"
	TypeMultiSelect    PropertyType = "multi_select"
	TypeStatus         PropertyType = "status"
	TypeDate           PropertyType = "date"
	TypeCheckbox       PropertyType = "checkbox"
	TypeURL            PropertyType = "url"
	TypeEmail          PropertyType = "email"
	TypePhoneNumber    PropertyType = "phone_number"
	TypePeople         PropertyType = "people"
	TypeFiles          PropertyType = "files"
	TypeFormula        PropertyType = "formula"
	TypeRelation       PropertyType = "relation"
	TypeRollup         PropertyType = "rollup"
	TypeCreatedTime    PropertyType = "created_time"
	TypeCreatedBy      PropertyType = "created_by"
	TypeLastEditedTime PropertyType = "last_edited_time"
	TypeLastEditedBy   PropertyType = "last_edited_by"
	TypeUniqueID       PropertyType = "unique_id"
)

// AllPropertyTypes is the closed set of property types this package knows
// how to read.
var AllPropertyTypes = []PropertyType{
	TypeTitle,
	TypeRichText,
	TypeNumber,
	TypeSelect,
	TypeMultiSelect,
	TypeStatus,
	TypeDate,
	TypeCheckbox,
	TypeURL,
	TypeEmail,
	TypePhoneNumber,
	TypePeople,
	TypeFiles,
	TypeFormula,
	TypeRelation,
	TypeRollup,
	TypeCreatedTime,
	TypeCreatedBy,
	TypeLastEditedTime,
	TypeLastEditedBy,
	TypeUniqueID,
}

// Known reports whether t is part of AllPropertyTypes.
func (t PropertyType) Known() bool {
	for _, k := range AllPropertyTypes {
		if k == t {
			return true
		}
	}
	return false
}

// PaginatedResponse is the common structure for paginated API responses.
type PaginatedResponse[T any] struct {
	Object     string  `json:"object"`
	Results    []T     `json:"results"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}

// SearchResponse is the response from the search endpoint when filtered on
// databases.
type SearchResponse = PaginatedResponse[Database]

// QueryResponse is the response from database query endpoint.
type QueryResponse = PaginatedResponse[Page]

// Parent represents the parent of a page or database.
type Parent struct {
	Type       string `json:"type"` // "database_id", "page_id", "workspace", "block_id"
	DatabaseID string `json:"database_id,omitempty"`
	PageID     string `json:"page_id,omitempty"`
	BlockID    string `json:"block_id,omitempty"`
	Workspace  bool   `json:"workspace,omitempty"`
}

// Database represents a Notion database.
type Database struct {
	Object         string                `json:"object"`
	ID             string                `json:"id"`
	CreatedTime    time.Time             `json:"created_time"`
	LastEditedTime time.Time             `json:"last_edited_time"`
	Title          []RichText            `json:"title"`
	Description    []RichText            `json:"description"`
	Properties     map[string]DBProperty `json:"properties"`
	Parent         Parent                `json:"parent"`
	URL            string                `json:"url"`
	Archived       bool                  `json:"archived"`
	IsInline       bool                  `json:"is_inline"`
}

// DBProperty represents a property definition in a database schema.
type DBProperty struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        PropertyType `json:"type"`
	Description string       `json:"description,omitempty"`

	// Type-specific configuration. Types without configuration are only
	// identified by Type.
	Number      *NumberConfig   `json:"number,omitempty"`
	Select      *SelectConfig   `json:"select,omitempty"`
	MultiSelect *SelectConfig   `json:"multi_select,omitempty"`
	Status      *SelectConfig   `json:"status,omitempty"`
	Formula     *FormulaConfig  `json:"formula,omitempty"`
	Relation    *RelationConfig `json:"relation,omitempty"`
	Rollup      *RollupConfig   `json:"rollup,omitempty"`
	UniqueID    *UniqueIDConfig `json:"unique_id,omitempty"`
}

// NumberConfig defines number property configuration.
type NumberConfig struct {
	Format string `json:"format"` // number, number_with_commas, percent, dollar, etc.
}

// SelectConfig defines select, multi_select and status property configuration.
type SelectConfig struct {
	Options []SelectOption `json:"options"`
}

// SelectOption is both a select option in a schema and a selected value.
type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// FormulaConfig defines formula property configuration.
type FormulaConfig struct {
	Expression string `json:"expression"`
}

// RelationConfig defines relation property configuration.
type RelationConfig struct {
	DatabaseID string `json:"database_id"`
	Type       string `json:"type"` // "single_property" or "dual_property"
}

// RollupConfig defines rollup property configuration.
type RollupConfig struct {
	RelationPropertyName string `json:"relation_property_name"`
	RollupPropertyName   string `json:"rollup_property_name"`
	Function             string `json:"function"` // count, count_values, sum, average, etc.
}

// UniqueIDConfig defines unique_id property configuration.
type UniqueIDConfig struct {
	Prefix string `json:"prefix,omitempty"`
}

// Page represents a Notion page (including database rows).
type Page struct {
	Object         string                   `json:"object"`
	ID             string                   `json:"id"`
	CreatedTime    time.Time                `json:"created_time"`
	LastEditedTime time.Time                `json:"last_edited_time"`
	Parent         Parent                   `json:"parent"`
	Archived       bool                     `json:"archived"`
	Properties     map[string]PropertyValue `json:"properties"`
	URL            string                   `json:"url"`
}

// PropertyValue represents a property value on a page.
//
// Only the field matching Type is populated. Nullable payloads (number,
// select, date, url, email, phone_number) are nil when the cell is empty.
type PropertyValue struct {
	ID   string       `json:"id,omitempty"`
	Type PropertyType `json:"type"`

	Title          []RichText      `json:"title,omitempty"`
	RichText       []RichText      `json:"rich_text,omitempty"`
	Number         *float64        `json:"number,omitempty"`
	Select         *SelectOption   `json:"select,omitempty"`
	MultiSelect    []SelectOption  `json:"multi_select,omitempty"`
	Status         *SelectOption   `json:"status,omitempty"`
	Date           *DateValue      `json:"date,omitempty"`
	Checkbox       *bool           `json:"checkbox,omitempty"`
	URL            *string         `json:"url,omitempty"`
	Email          *string         `json:"email,omitempty"`
	PhoneNumber    *string         `json:"phone_number,omitempty"`
	People         []Person        `json:"people,omitempty"`
	Files          []FileValue     `json:"files,omitempty"`
	Formula        *FormulaValue   `json:"formula,omitempty"`
	Relation       []RelationValue `json:"relation,omitempty"`
	Rollup         *RollupValue    `json:"rollup,omitempty"`
	CreatedTime    *time.Time      `json:"created_time,omitempty"`
	CreatedBy      *Person         `json:"created_by,omitempty"`
	LastEditedTime *time.Time      `json:"last_edited_time,omitempty"`
	LastEditedBy   *Person         `json:"last_edited_by,omitempty"`
	UniqueID       *UniqueIDValue  `json:"unique_id,omitempty"`
}

// RichText represents formatted text content.
type RichText struct {
	Type        string       `json:"type"` // "text", "mention", "equation"
	Text        *TextContent `json:"text,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
	PlainText   string       `json:"plain_text"`
	Href        *string      `json:"href,omitempty"`
}

// TextContent represents plain text content.
type TextContent struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// Link represents a hyperlink.
type Link struct {
	URL string `json:"url"`
}

// Annotations represents text formatting.
type Annotations struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Code          bool   `json:"code"`
	Color         string `json:"color"`
}

// DateValue represents a date property value.
type DateValue struct {
	Start    string  `json:"start"`
	End      *string `json:"end,omitempty"`
	TimeZone *string `json:"time_zone,omitempty"`
}

// Formula result types.
const (
	FormulaString  = "string"
	FormulaNumber  = "number"
	FormulaBoolean = "boolean"
	FormulaDate    = "date"
)

// FormulaValue represents a formula result.
type FormulaValue struct {
	Type    string     `json:"type"`
	String  *string    `json:"string,omitempty"`
	Number  *float64   `json:"number,omitempty"`
	Boolean *bool      `json:"boolean,omitempty"`
	Date    *DateValue `json:"date,omitempty"`
}

// Rollup result types.
const (
	RollupNumber      = "number"
	RollupDate        = "date"
	RollupArray       = "array"
	RollupIncomplete  = "incomplete"
	RollupUnsupported = "unsupported"
)

// RollupValue represents a rollup result.
//
// Array is kept as returned; its elements may be of any property type.
type RollupValue struct {
	Type     string          `json:"type"`
	Number   *float64        `json:"number,omitempty"`
	Date     *DateValue      `json:"date,omitempty"`
	Array    json.RawMessage `json:"array,omitempty"`
	Function string          `json:"function"`
}

// RelationValue represents a relation to another page.
type RelationValue struct {
	ID string `json:"id"`
}

// Person represents a Notion user.
type Person struct {
	Object    string  `json:"object"`
	ID        string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Type      string  `json:"type,omitempty"` // "person" or "bot"
}

// FileValue represents a file property value.
type FileValue struct {
	Name     string `json:"name"`
	Type     string `json:"type"` // "file" or "external"
	File     *File  `json:"file,omitempty"`
	External *File  `json:"external,omitempty"`
}

// File represents a file reference.
type File struct {
	URL        string     `json:"url"`
	ExpiryTime *time.Time `json:"expiry_time,omitempty"`
}

// UniqueIDValue represents a unique_id property value.
type UniqueIDValue struct {
	Prefix *string `json:"prefix,omitempty"`
	Number int     `json:"number"`
}

// Error represents a Notion API error response.
type Error struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return e.Code + ": " + e.Message
}
