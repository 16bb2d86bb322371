// Package relindex indexes relations between entries.
//
// The link sub-index maps an entry to the links that have it as parent or as
// child; the group sub-index maps an entry to the groups it belongs to. Each
// sub-index moves through three states:
//
//	Unbuilt --Build--> Built --Disable--> Disabled --Build--> Built
//
// Queries and incremental updates fail with ErrIndexNotBuilt unless the
// sub-index is Built, so "no relations" (an empty set) is never confused with
// "stale index".
package relindex
