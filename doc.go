// Package annostore provides an in-memory store for typed annotations over a
// body of text.
//
// A Store holds three kinds of entries, each identified by a TID that is
// allocated once and never reused:
//
//   - annotations: spans [begin, end] over the text
//   - links: directed edges from a parent entry to a child entry
//   - groups: sets of member entries of one member type
//
// Every entry has a type from an external schema (see package ontology).
// Entries of the same type live in one collection: annotations are kept in
// (begin, end) order, links and groups in insertion order.
//
// # Quick Start
//
//	schema := ontology.NewRegistry().MustRegister(
//	    ontology.TypeSpec{ID: 1, Name: "Token", Kind: core.KindAnnotation,
//	        Attributes: []ontology.AttrSpec{{Name: "pos", Type: attr.FieldTypeString}}},
//	)
//	st := annostore.New(schema)
//	tok, _ := st.AddAnnotation(1, 0, 5)
//	_ = st.SetAttribute(tok, "pos", attr.String("NOUN"))
//	for e := range st.Get(1, false) {
//	    fmt.Println(e.TID, e.Begin, e.End)
//	}
//
// # Type Queries
//
// QueryByType returns the exact-type membership of a type. QueryByTypeSubtype
// also includes every subtype according to the schema. Subtype results are
// cached; the first entry of a previously unseen type discards the cache.
//
// # Relation Indexes
//
// Link and group lookups go through relation indexes that must be built
// explicitly:
//
//	_ = st.BuildLinkIndex()           // index every live link
//	out, _ := st.LinkIndex(tok, true) // links whose parent is tok
//
// Any DeleteEntry disables both indexes. Queries against a disabled index fail
// with ErrIndexUnavailable until the index is rebuilt, so callers can tell
// "no relations" from "stale index".
//
// # Concurrency
//
// A Store is not safe for concurrent mutation. Serialize writers; read-only
// queries may run concurrently when no writer is active.
package annostore
