package relindex

import (
	"github.com/hupe1980/annostore/core"
	"github.com/hupe1980/annostore/idset"
)

// LinkRef describes one link for indexing.
type LinkRef struct {
	TID    core.TID
	Parent core.TID
	Child  core.TID
}

// GroupRef describes one group for indexing.
type GroupRef struct {
	TID     core.TID
	Members *idset.Set
}

type linkPostings struct {
	parents  postings
	children postings
}

// The postings pointers are non-nil exactly when the status is Built, so no
// code path can read a stale map.
type linkState struct {
	status Status
	p      *linkPostings
}

type groupState struct {
	status Status
	p      postings
}

// Index holds the link and group sub-indices. Each is switched independently.
//
// Mutating methods must be serialized by the caller. Queries may run
// concurrently with each other.
type Index struct {
	links  linkState
	groups groupState
}

// New creates an index with both sub-indices unbuilt.
func New() *Index {
	return &Index{}
}

// LinkStatus returns the state of the link sub-index.
func (ix *Index) LinkStatus() Status { return ix.links.status }

// GroupStatus returns the state of the group sub-index.
func (ix *Index) GroupStatus() Status { return ix.groups.status }

// BuildLinkIndex switches the link sub-index on, resets it, and indexes links.
func (ix *Index) BuildLinkIndex(links []LinkRef) {
	ix.links = linkState{
		status: Built,
		p:      &linkPostings{parents: make(postings), children: make(postings)},
	}
	for _, l := range links {
		ix.links.p.parents.add(l.Parent, l.TID)
		ix.links.p.children.add(l.Child, l.TID)
	}
}

func (ix *Index) linkPostings() (*linkPostings, error) {
	if ix.links.status != Built {
		return nil, notBuilt("link", ix.links.status)
	}
	return ix.links.p, nil
}

// UpdateLinkIndex indexes links under both their parent and child key.
func (ix *Index) UpdateLinkIndex(links []LinkRef) error {
	p, err := ix.linkPostings()
	if err != nil {
		return err
	}
	for _, l := range links {
		p.parents.add(l.Parent, l.TID)
		p.children.add(l.Child, l.TID)
	}
	return nil
}

// LinkIndex returns the links whose parent (asParent) or child is tid.
func (ix *Index) LinkIndex(tid core.TID, asParent bool) (*idset.Set, error) {
	p, err := ix.linkPostings()
	if err != nil {
		return nil, err
	}
	if asParent {
		return p.parents.get(tid), nil
	}
	return p.children.get(tid), nil
}

// AddLinkParent records link under its parent key.
func (ix *Index) AddLinkParent(parent, link core.TID) error {
	p, err := ix.linkPostings()
	if err != nil {
		return err
	}
	p.parents.add(parent, link)
	return nil
}

// AddLinkChild records link under its child key.
func (ix *Index) AddLinkChild(child, link core.TID) error {
	p, err := ix.linkPostings()
	if err != nil {
		return err
	}
	p.children.add(child, link)
	return nil
}

// BuildGroupIndex switches the group sub-index on, resets it, and indexes groups.
func (ix *Index) BuildGroupIndex(groups []GroupRef) {
	ix.groups = groupState{status: Built, p: make(postings)}
	for _, g := range groups {
		for m := range g.Members.All() {
			ix.groups.p.add(m, g.TID)
		}
	}
}

func (ix *Index) groupPostings() (postings, error) {
	if ix.groups.status != Built {
		return nil, notBuilt("group", ix.groups.status)
	}
	return ix.groups.p, nil
}

// UpdateGroupIndex indexes every member of groups.
func (ix *Index) UpdateGroupIndex(groups []GroupRef) error {
	p, err := ix.groupPostings()
	if err != nil {
		return err
	}
	for _, g := range groups {
		for m := range g.Members.All() {
			p.add(m, g.TID)
		}
	}
	return nil
}

// GroupIndex returns the groups that have member as a member.
func (ix *Index) GroupIndex(member core.TID) (*idset.Set, error) {
	p, err := ix.groupPostings()
	if err != nil {
		return nil, err
	}
	return p.get(member), nil
}

// AddGroupMember records group under member.
func (ix *Index) AddGroupMember(member, group core.TID) error {
	p, err := ix.groupPostings()
	if err != nil {
		return err
	}
	p.add(member, group)
	return nil
}

// Disable turns both sub-indices off and drops their postings. A sub-index
// that was never built stays Unbuilt.
func (ix *Index) Disable() {
	if ix.links.status == Built {
		ix.links = linkState{status: Disabled}
	}
	if ix.groups.status == Built {
		ix.groups = groupState{status: Disabled}
	}
}
