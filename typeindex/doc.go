// Package typeindex maps entry types to the identifiers of their entries.
//
// Exact-type lookups read a per-type bucket. Subtype lookups are answered from
// a cache keyed by the queried ancestor type; a miss rebuilds the entry for
// that type by scanning all known types against the schema hierarchy.
//
// Cache policy:
//
//   - adding an entry of a type never seen before discards the whole cache,
//     since any cached ancestor may now have a new descendant;
//   - adding an entry of a known type adds its TID to the cached ancestors;
//   - removing an entry drops its TID from the cached sets but never discards
//     or rebuilds them.
package typeindex
