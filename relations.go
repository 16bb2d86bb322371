package annostore

import (
	"time"

	"github.com/hupe1980/annostore/core"
	"github.com/hupe1980/annostore/idset"
	"github.com/hupe1980/annostore/relindex"
)

const (
	linkIndexName  = "link"
	groupIndexName = "group"
)

// liveOfKind returns every live entry of kind in type then collection order.
func (s *Store) liveOfKind(kind core.Kind) []core.TID {
	var out []core.TID
	for _, t := range s.entries.Types() {
		if k, _ := s.entries.KindOfType(t); k == kind {
			out = append(out, s.entries.IDs(t)...)
		}
	}
	return out
}

// linkRefs resolves links before any index state is touched, so a bad id
// leaves the index unchanged. No ids means every live link.
func (s *Store) linkRefs(links []core.TID) ([]relindex.LinkRef, error) {
	if len(links) == 0 {
		links = s.liveOfKind(core.KindLink)
	}
	refs := make([]relindex.LinkRef, 0, len(links))
	for _, tid := range links {
		p, c, err := s.entries.Link(tid)
		if err != nil {
			return nil, err
		}
		refs = append(refs, relindex.LinkRef{TID: tid, Parent: p, Child: c})
	}
	return refs, nil
}

func (s *Store) groupRefs(groups []core.TID) ([]relindex.GroupRef, error) {
	if len(groups) == 0 {
		groups = s.liveOfKind(core.KindGroup)
	}
	refs := make([]relindex.GroupRef, 0, len(groups))
	for _, tid := range groups {
		_, members, err := s.entries.Group(tid)
		if err != nil {
			return nil, err
		}
		refs = append(refs, relindex.GroupRef{TID: tid, Members: members})
	}
	return refs, nil
}

func (s *Store) observeBuild(index string, count int, start time.Time, err error) error {
	err = translateError(err)
	s.metrics.RecordIndexBuild(index, time.Since(start), err)
	s.logger.LogIndexBuild(index, count, err)
	return err
}

// BuildLinkIndex switches the link index on, clears it, and indexes the given
// links under their parent and child. With no arguments every live link is
// indexed.
func (s *Store) BuildLinkIndex(links ...core.TID) error {
	start := time.Now()
	refs, err := s.linkRefs(links)
	if err == nil {
		s.rels.BuildLinkIndex(refs)
	}
	return s.observeBuild(linkIndexName, len(refs), start, err)
}

// UpdateLinkIndex indexes additional links. The link index must be built.
func (s *Store) UpdateLinkIndex(links ...core.TID) error {
	if s.rels.LinkStatus() != relindex.Built {
		return translateError(s.rels.UpdateLinkIndex(nil))
	}
	refs, err := s.linkRefs(links)
	if err != nil {
		return translateError(err)
	}
	return translateError(s.rels.UpdateLinkIndex(refs))
}

// LinkIndex returns the links whose parent (asParent) or child is tid.
// It fails with ErrIndexUnavailable while the link index is not built.
func (s *Store) LinkIndex(tid core.TID, asParent bool) (*idset.Set, error) {
	set, err := s.rels.LinkIndex(tid, asParent)
	return set, translateError(err)
}

// AddLinkParent records link under parent in a built link index.
func (s *Store) AddLinkParent(parent, link core.TID) error {
	return translateError(s.rels.AddLinkParent(parent, link))
}

// AddLinkChild records link under child in a built link index.
func (s *Store) AddLinkChild(child, link core.TID) error {
	return translateError(s.rels.AddLinkChild(child, link))
}

// LinkIndexStatus returns the state of the link index.
func (s *Store) LinkIndexStatus() relindex.Status { return s.rels.LinkStatus() }

// BuildGroupIndex switches the group index on, clears it, and indexes every
// member of the given groups. With no arguments every live group is indexed.
func (s *Store) BuildGroupIndex(groups ...core.TID) error {
	start := time.Now()
	refs, err := s.groupRefs(groups)
	if err == nil {
		s.rels.BuildGroupIndex(refs)
	}
	return s.observeBuild(groupIndexName, len(refs), start, err)
}

// UpdateGroupIndex indexes the members of additional groups. The group index
// must be built.
func (s *Store) UpdateGroupIndex(groups ...core.TID) error {
	if s.rels.GroupStatus() != relindex.Built {
		return translateError(s.rels.UpdateGroupIndex(nil))
	}
	refs, err := s.groupRefs(groups)
	if err != nil {
		return translateError(err)
	}
	return translateError(s.rels.UpdateGroupIndex(refs))
}

// GroupIndex returns the groups that contain member.
// It fails with ErrIndexUnavailable while the group index is not built.
func (s *Store) GroupIndex(member core.TID) (*idset.Set, error) {
	set, err := s.rels.GroupIndex(member)
	return set, translateError(err)
}

// AddGroupMember records group under member in a built group index.
func (s *Store) AddGroupMember(member, group core.TID) error {
	return translateError(s.rels.AddGroupMember(member, group))
}

// GroupIndexStatus returns the state of the group index.
func (s *Store) GroupIndexStatus() relindex.Status { return s.rels.GroupStatus() }
