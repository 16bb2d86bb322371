// Package ontology describes the entry types a store may hold.
//
// The store consumes the Schema interface only. Registry is an in-memory
// implementation populated programmatically:
//
//	reg := ontology.NewRegistry().MustRegister(
//	    ontology.TypeSpec{ID: 1, Name: "Annotation", Kind: core.KindAnnotation},
//	    ontology.TypeSpec{ID: 2, Name: "Token", Parent: ontology.Parent(1),
//	        Attributes: []ontology.AttrSpec{{Name: "pos", Type: attr.FieldTypeString}}},
//	)
//
// Subtypes inherit the kind and the attributes of their parent; inherited
// attributes keep the AttrID they have on the parent.
package ontology
