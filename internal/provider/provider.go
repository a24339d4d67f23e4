// Package provider defines the external row-provider contract: something
// that yields raw column->value mappings for the mapper to convert. Any
// transport failure is returned untouched; row-shape problems belong to
// the mapper's error taxonomy, never the transport's.
package provider

// RowProvider yields ledger rows as ordered column->value mappings.
type RowProvider interface {
	FetchRows() ([]map[string]string, error)
}
