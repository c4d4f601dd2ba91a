package types

// Document is a schemaless JSON object passed through the API verbatim.
// Order shipping addresses use it; no structural guarantees are applied.
type Document map[string]any

// DocumentList is a schemaless JSON array of objects. Order line items are
// stored exactly as submitted.
type DocumentList []map[string]any
