package ontology

import (
	"fmt"
	"slices"

	"github.com/hupe1980/annostore/attr"
	"github.com/hupe1980/annostore/core"
)

// AttrSpec declares one attribute of a type.
type AttrSpec struct {
	Name string
	Type attr.FieldType
}

// TypeSpec declares one entry type.
type TypeSpec struct {
	// ID is the schema-scoped identifier (e.g. 3).
	ID core.TypeID

	// Name is the human readable type name (e.g. "Token").
	Name string

	// Parent is the direct supertype, or nil for a root type.
	Parent *core.TypeID

	// Kind restricts which Add operation may create entries of this type.
	// KindUnknown inherits the parent's kind.
	Kind core.Kind

	// Attributes are declared in addition to the inherited ones.
	Attributes []AttrSpec
}

// Parent is a helper for TypeSpec.Parent.
func Parent(id core.TypeID) *core.TypeID { return &id }

type typeInfo struct {
	name      string
	parent    *core.TypeID
	kind      core.Kind
	attrs     map[string]core.AttrID
	attrTypes []attr.FieldType // indexed by AttrID
	ancestors map[core.TypeID]struct{}
}

// Registry is an in-memory Schema.
//
// The ancestor closure of every type is computed once at registration, so
// subtype checks are map lookups. Parents must be registered before their
// children. Register all types during setup; a Registry is not safe for
// concurrent registration.
type Registry struct {
	types  map[core.TypeID]*typeInfo
	byName map[string]core.TypeID
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		types:  make(map[core.TypeID]*typeInfo),
		byName: make(map[string]core.TypeID),
	}
}

// Register adds a type to the registry.
func (r *Registry) Register(spec TypeSpec) error {
	if _, ok := r.types[spec.ID]; ok {
		return fmt.Errorf("%w: id %d", ErrDuplicateType, spec.ID)
	}
	if spec.Name != "" {
		if _, ok := r.byName[spec.Name]; ok {
			return fmt.Errorf("%w: name %q", ErrDuplicateType, spec.Name)
		}
	}

	info := &typeInfo{
		name:      spec.Name,
		kind:      spec.Kind,
		attrs:     make(map[string]core.AttrID),
		ancestors: make(map[core.TypeID]struct{}),
	}

	if spec.Parent != nil {
		parent, ok := r.types[*spec.Parent]
		if !ok {
			return fmt.Errorf("%w: %d (declared by %d)", ErrUnknownParent, *spec.Parent, spec.ID)
		}
		switch {
		case info.kind == core.KindUnknown:
			info.kind = parent.kind
		case parent.kind != core.KindUnknown && parent.kind != info.kind:
			return fmt.Errorf("%w: %s under %s", ErrKindMismatch, info.kind, parent.kind)
		}

		p := *spec.Parent
		info.parent = &p
		info.ancestors[p] = struct{}{}
		for a := range parent.ancestors {
			info.ancestors[a] = struct{}{}
		}
		for name, id := range parent.attrs {
			info.attrs[name] = id
		}
		info.attrTypes = slices.Clone(parent.attrTypes)
	}

	for _, a := range spec.Attributes {
		if _, ok := info.attrs[a.Name]; ok {
			return fmt.Errorf("%w: %q on type %d", ErrDuplicateAttribute, a.Name, spec.ID)
		}
		info.attrs[a.Name] = core.AttrID(len(info.attrTypes))
		info.attrTypes = append(info.attrTypes, a.Type)
	}

	r.types[spec.ID] = info
	if spec.Name != "" {
		r.byName[spec.Name] = spec.ID
	}
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(specs ...TypeSpec) *Registry {
	for _, spec := range specs {
		if err := r.Register(spec); err != nil {
			panic(err)
		}
	}
	return r
}

// IsSubtype implements Hierarchy.
func (r *Registry) IsSubtype(t, ancestor core.TypeID) bool {
	if t == ancestor {
		return true
	}
	info, ok := r.types[t]
	if !ok {
		return false
	}
	_, ok = info.ancestors[ancestor]
	return ok
}

// Kind implements Schema.
func (r *Registry) Kind(t core.TypeID) (core.Kind, bool) {
	info, ok := r.types[t]
	if !ok {
		return core.KindUnknown, false
	}
	return info.kind, true
}

// AttrID implements Schema.
func (r *Registry) AttrID(t core.TypeID, name string) (core.AttrID, bool) {
	info, ok := r.types[t]
	if !ok {
		return 0, false
	}
	id, ok := info.attrs[name]
	return id, ok
}

// AttrType implements Schema.
func (r *Registry) AttrType(t core.TypeID, id core.AttrID) attr.FieldType {
	info, ok := r.types[t]
	if !ok || int(id) >= len(info.attrTypes) {
		return attr.FieldTypeAny
	}
	return info.attrTypes[id]
}

// Lookup returns the TypeID registered under name.
func (r *Registry) Lookup(name string) (core.TypeID, bool) {
	id, ok := r.byName[name]
	return id, ok
}

// Name returns the registered name of t.
func (r *Registry) Name(t core.TypeID) string {
	if info, ok := r.types[t]; ok {
		return info.name
	}
	return ""
}

// ParentOf returns the direct supertype of t.
func (r *Registry) ParentOf(t core.TypeID) (core.TypeID, bool) {
	info, ok := r.types[t]
	if !ok || info.parent == nil {
		return 0, false
	}
	return *info.parent, true
}

// Ancestors returns every proper ancestor of t in ascending TypeID order.
func (r *Registry) Ancestors(t core.TypeID) []core.TypeID {
	info, ok := r.types[t]
	if !ok {
		return nil
	}
	out := make([]core.TypeID, 0, len(info.ancestors))
	for a := range info.ancestors {
		out = append(out, a)
	}
	slices.Sort(out)
	return out
}

// Types returns all registered TypeIDs in ascending order.
func (r *Registry) Types() []core.TypeID {
	out := make([]core.TypeID, 0, len(r.types))
	for id := range r.types {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
