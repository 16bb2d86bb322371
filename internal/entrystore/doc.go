// Package entrystore holds entry payloads and their per-type collections.
//
// Annotations of a type live in a slice sorted by (begin, end, tid); links and
// groups live in append-only slices. A map from TID to record gives O(1)
// lookup; neighbor queries locate the record by binary search and step one
// slot. Identifiers come from a monotonic counter and are never reused.
package entrystore
