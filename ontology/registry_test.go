package ontology

import (
	"testing"

	"github.com/hupe1980/annostore/attr"
	"github.com/hupe1980/annostore/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tAnnotation core.TypeID = iota + 1
	tToken
	tSubword
	tSentence
	tLink
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	r := NewRegistry()
	require.NoError(t, r.Register(TypeSpec{
		ID: tAnnotation, Name: "Annotation", Kind: core.KindAnnotation,
		Attributes: []AttrSpec{{Name: "source", Type: attr.FieldTypeString}},
	}))
	require.NoError(t, r.Register(TypeSpec{
		ID: tToken, Name: "Token", Parent: Parent(tAnnotation),
		Attributes: []AttrSpec{{Name: "pos", Type: attr.FieldTypeString}, {Name: "chunk"}},
	}))
	require.NoError(t, r.Register(TypeSpec{
		ID: tSubword, Name: "Subword", Parent: Parent(tToken),
		Attributes: []AttrSpec{{Name: "piece", Type: attr.FieldTypeInt}},
	}))
	require.NoError(t, r.Register(TypeSpec{ID: tSentence, Name: "Sentence", Parent: Parent(tAnnotation)}))
	require.NoError(t, r.Register(TypeSpec{ID: tLink, Name: "Dependency", Kind: core.KindLink}))
	return r
}

func TestRegistryIsSubtype(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		name     string
		t, a     core.TypeID
		expected bool
	}{
		{"Self", tToken, tToken, true},
		{"Parent", tToken, tAnnotation, true},
		{"Grandparent", tSubword, tAnnotation, true},
		{"Sibling", tSentence, tToken, false},
		{"Inverse", tAnnotation, tToken, false},
		{"Unrelated", tLink, tAnnotation, false},
		{"UndeclaredSelf", 99, 99, true},
		{"UndeclaredOther", 99, tAnnotation, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.IsSubtype(tt.t, tt.a))
		})
	}
}

func TestRegistryAttributesAreInherited(t *testing.T) {
	r := newTestRegistry(t)

	src, ok := r.AttrID(tAnnotation, "source")
	require.True(t, ok)

	inherited, ok := r.AttrID(tSubword, "source")
	require.True(t, ok)
	assert.Equal(t, src, inherited)

	piece, ok := r.AttrID(tSubword, "piece")
	require.True(t, ok)
	assert.Equal(t, attr.FieldTypeInt, r.AttrType(tSubword, piece))

	pos, ok := r.AttrID(tToken, "pos")
	require.True(t, ok)
	assert.Equal(t, attr.FieldTypeString, r.AttrType(tToken, pos))

	chunk, ok := r.AttrID(tToken, "chunk")
	require.True(t, ok)
	assert.Equal(t, attr.FieldTypeAny, r.AttrType(tToken, chunk))

	_, ok = r.AttrID(tSentence, "pos")
	assert.False(t, ok)
	_, ok = r.AttrID(99, "pos")
	assert.False(t, ok)
	assert.Equal(t, attr.FieldTypeAny, r.AttrType(99, 0))
}

func TestRegistryKindIsInherited(t *testing.T) {
	r := newTestRegistry(t)

	k, ok := r.Kind(tSubword)
	assert.True(t, ok)
	assert.Equal(t, core.KindAnnotation, k)

	k, ok = r.Kind(tLink)
	assert.True(t, ok)
	assert.Equal(t, core.KindLink, k)

	_, ok = r.Kind(99)
	assert.False(t, ok)
}

func TestRegistryErrors(t *testing.T) {
	r := newTestRegistry(t)

	err := r.Register(TypeSpec{ID: tToken, Name: "Other"})
	assert.ErrorIs(t, err, ErrDuplicateType)

	err = r.Register(TypeSpec{ID: 50, Name: "Token"})
	assert.ErrorIs(t, err, ErrDuplicateType)

	err = r.Register(TypeSpec{ID: 51, Parent: Parent(77)})
	assert.ErrorIs(t, err, ErrUnknownParent)

	err = r.Register(TypeSpec{ID: 52, Parent: Parent(tToken), Attributes: []AttrSpec{{Name: "pos"}}})
	assert.ErrorIs(t, err, ErrDuplicateAttribute)

	err = r.Register(TypeSpec{ID: 53, Parent: Parent(tToken), Kind: core.KindGroup})
	assert.ErrorIs(t, err, ErrKindMismatch)

	// Failed registrations leave no trace.
	assert.Equal(t, []core.TypeID{tAnnotation, tToken, tSubword, tSentence, tLink}, r.Types())
}

func TestRegistryLookups(t *testing.T) {
	r := newTestRegistry(t)

	id, ok := r.Lookup("Subword")
	assert.True(t, ok)
	assert.Equal(t, tSubword, id)
	assert.Equal(t, "Subword", r.Name(tSubword))
	assert.Empty(t, r.Name(99))

	p, ok := r.ParentOf(tSubword)
	assert.True(t, ok)
	assert.Equal(t, tToken, p)
	_, ok = r.ParentOf(tAnnotation)
	assert.False(t, ok)

	assert.Equal(t, []core.TypeID{tAnnotation, tToken}, r.Ancestors(tSubword))
	assert.Empty(t, r.Ancestors(tAnnotation))
	assert.Nil(t, r.Ancestors(99))
}

func TestMustRegisterPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewRegistry().MustRegister(TypeSpec{ID: 1}, TypeSpec{ID: 1})
	})
}
