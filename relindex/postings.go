package relindex

import (
	"github.com/hupe1980/annostore/core"
	"github.com/hupe1980/annostore/idset"
)

// postings maps an entry to the relation entries that reference it.
type postings map[core.TID]*idset.Set

func (p postings) add(key, id core.TID) {
	set, ok := p[key]
	if !ok {
		set = idset.New()
		p[key] = set
	}
	set.Add(id)
}

// get returns a snapshot. Unknown keys yield an empty set and are not inserted.
func (p postings) get(key core.TID) *idset.Set {
	return p[key].Clone()
}
