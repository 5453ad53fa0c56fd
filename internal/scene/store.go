package scene

import (
	"github.com/example/whiteboard/internal/geom"
)

// DuplicateOffset is how far a duplicate lands from its source, in world
// units, so it stays visible at any zoom.
var DuplicateOffset = geom.V(10, 10)

// ID addresses an entity in a Store. A stale ID, one whose entity was
// deleted, never resolves again. The zero ID is never issued.
type ID struct {
	Index uint32
	Gen   uint32
}

// Valid reports whether id was ever issued.
func (id ID) Valid() bool { return id.Gen != 0 }

type slot struct {
	gen     uint32
	entity  Entity
	deleted bool
}

// Direction for Reorder.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// Store is an arena of entities kept in strictly ascending z order.
// Deleted slots stay in place and are skipped by every traversal; they
// are never reused.
type Store struct {
	slots []slot
	order []uint32 // slot indices, back to front
	nextZ int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append adds e in front of everything else.
func (s *Store) Append(e Entity) ID {
	e.Common().Z = s.nextZ
	s.nextZ++
	idx := uint32(len(s.slots))
	s.slots = append(s.slots, slot{gen: 1, entity: e})
	s.order = append(s.order, idx)
	return ID{Index: idx, Gen: 1}
}

// Get resolves id to a live entity.
func (s *Store) Get(id ID) (Entity, bool) {
	if !id.Valid() || int(id.Index) >= len(s.slots) {
		return nil, false
	}
	sl := &s.slots[id.Index]
	if sl.deleted || sl.gen != id.Gen {
		return nil, false
	}
	return sl.entity, true
}

// Delete soft-deletes id. It reports whether anything was deleted.
func (s *Store) Delete(id ID) bool {
	if _, ok := s.Get(id); !ok {
		return false
	}
	sl := &s.slots[id.Index]
	sl.deleted = true
	sl.gen++
	sl.entity.Common().Selected = false
	return true
}

// Reorder swaps id with its nearest live neighbour in the given direction.
// It is a no-op at either end.
func (s *Store) Reorder(id ID, dir Direction) bool {
	if _, ok := s.Get(id); !ok {
		return false
	}
	pos := -1
	for i, idx := range s.order {
		if idx == id.Index {
			pos = i
			break
		}
	}
	for j := pos + int(dir); j >= 0 && j < len(s.order); j += int(dir) {
		if s.slots[s.order[j]].deleted {
			continue
		}
		a, b := s.slots[s.order[pos]].entity.Common(), s.slots[s.order[j]].entity.Common()
		a.Z, b.Z = b.Z, a.Z
		s.order[pos], s.order[j] = s.order[j], s.order[pos]
		return true
	}
	return false
}

// Duplicate deep-copies id, offsets the copy by DuplicateOffset and puts it
// in front. The copy is not selected.
func (s *Store) Duplicate(id ID) (ID, bool) {
	e, ok := s.Get(id)
	if !ok {
		return ID{}, false
	}
	c := e.clone()
	c.Common().Selected = false
	Translate(c, DuplicateOffset)
	return s.Append(c), true
}

// Clear soft-deletes every stroke. Rectangles, images and text survive.
// It returns the number of strokes removed.
func (s *Store) Clear() int {
	n := 0
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.deleted || sl.entity.Kind() != KindStroke {
			continue
		}
		sl.deleted = true
		sl.gen++
		n++
	}
	return n
}

// Each calls fn for every live entity back to front until fn returns false.
func (s *Store) Each(fn func(ID, Entity) bool) {
	for _, idx := range s.order {
		sl := s.slots[idx]
		if sl.deleted {
			continue
		}
		if !fn(ID{Index: idx, Gen: sl.gen}, sl.entity) {
			return
		}
	}
}

// EachReverse is Each front to back.
func (s *Store) EachReverse(fn func(ID, Entity) bool) {
	for i := len(s.order) - 1; i >= 0; i-- {
		idx := s.order[i]
		sl := s.slots[idx]
		if sl.deleted {
			continue
		}
		if !fn(ID{Index: idx, Gen: sl.gen}, sl.entity) {
			return
		}
	}
}

// Len is the number of live entities.
func (s *Store) Len() int {
	n := 0
	s.Each(func(ID, Entity) bool { n++; return true })
	return n
}
