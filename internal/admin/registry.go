// Package admin provides the record-management dashboard: a registry of
// entity descriptors, each backed by a Store with explicit list, create,
// read, update and delete operations. There is no reflection; every entity
// registers its table and columns explicitly.
package admin

import (
	"context"

	"go-cms-app/internal/data"
)

// Record is one row of a managed table, rendered generically. Values are in
// the same order as the resource's Fields.
type Record struct {
	ID     int64
	Values []string
}

// Store is the data-table contract every managed entity implements.
type Store interface {
	List(ctx context.Context, page, perPage int) ([]Record, data.Pagination, error)
	Get(ctx context.Context, id int64) (*Record, error)
	Create(ctx context.Context, values []string) error
	Update(ctx context.Context, id int64, values []string) error
	Delete(ctx context.Context, id int64) error
}

// Field describes one editable column of a resource.
type Field struct {
	Name     string // form field and column header
	Optional bool   // empty input stored as NULL
	Secret   bool   // rendered as a password input, value hidden in lists
}

// Resource describes one managed entity.
type Resource struct {
	Name   string // URL slug, e.g. "documents"
	Title  string // display name, e.g. "Documents"
	Fields []Field
	Store  Store
}

// Registry holds the managed resources in display order.
type Registry struct {
	ordered []*Resource
	byName  map[string]*Resource
}

// NewRegistry creates a Registry from the given resources.
func NewRegistry(resources ...*Resource) *Registry {
	r := &Registry{byName: make(map[string]*Resource, len(resources))}
	for _, res := range resources {
		r.ordered = append(r.ordered, res)
		r.byName[res.Name] = res
	}
	return r
}

// Lookup returns the resource registered under name.
func (r *Registry) Lookup(name string) (*Resource, bool) {
	res, ok := r.byName[name]
	return res, ok
}

// All returns the resources in registration order.
func (r *Registry) All() []*Resource {
	return r.ordered
}
