// Package idset provides compressed sets of entry identifiers.
//
// Every index in annostore keeps its postings as a Set: type buckets, the
// subtype cache, link and group postings, and group member lists. Queries hand
// out clones so callers always observe a snapshot.
package idset
