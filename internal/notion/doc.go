// Package notion provides a minimal client for the Notion API.
//
// It covers what is needed to seed a database with generated rows:
//   - Searching the databases shared with the integration
//   - Retrieving a database schema
//   - Creating pages in a database and querying them back
//   - Rendering property values as display strings
package notion
