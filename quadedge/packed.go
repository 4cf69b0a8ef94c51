package quadedge

// Bit layout of the packed word, stored on the twin (odd-indexed) half of a
// pair per spec.md §4.B's "representative layout":
//
//	bit 31        constrained edge
//	bit 30        region-border
//	bit 29        region-interior
//	bit 28        line-member
//	bit 27        synthetic (created by a split, not by the original input)
//	bits 0-23     a single 24-bit constraint id
//
// DESIGN.md records the choice of one 24-bit id over two 13-bit ids (see the
// Open Question decisions section): no scenario in spec.md §8 requires
// tagging both sides of a region border independently.
const (
	flagConstrained    uint32 = 1 << 31
	flagRegionBorder   uint32 = 1 << 30
	flagRegionInterior uint32 = 1 << 29
	flagLineMember     uint32 = 1 << 28
	flagSynthetic      uint32 = 1 << 27

	constraintIDMask = 0x00FFFFFF
	constraintIDBits = 24
)

// NoConstraint is the sentinel "no constraint id" value, 2^24-1.
const NoConstraint int32 = (1 << constraintIDBits) - 1

// MaxConstraintID is the largest constraint id the packed word can hold.
const MaxConstraintID int32 = NoConstraint - 1

func packedIndex(e EdgeIndex) EdgeIndex {
	return e | 1
}

// IsConstrained reports whether e (or its twin) is marked as a constrained
// edge.
func (p *Pool) IsConstrained(e EdgeIndex) bool {
	return p.word(e)&flagConstrained != 0
}

// SetConstrained sets or clears the constrained-edge flag on e's pair.
func (p *Pool) SetConstrained(e EdgeIndex, v bool) {
	p.setFlag(e, flagConstrained, v)
}

// IsRegionBorder reports whether e's pair is labeled as a region-constraint
// border edge.
func (p *Pool) IsRegionBorder(e EdgeIndex) bool {
	return p.word(e)&flagRegionBorder != 0
}

// SetRegionBorder sets or clears the region-border flag.
func (p *Pool) SetRegionBorder(e EdgeIndex, v bool) {
	p.setFlag(e, flagRegionBorder, v)
}

// IsRegionInterior reports whether e's pair lies inside a labeled region.
func (p *Pool) IsRegionInterior(e EdgeIndex) bool {
	return p.word(e)&flagRegionInterior != 0
}

// SetRegionInterior sets or clears the region-interior flag.
func (p *Pool) SetRegionInterior(e EdgeIndex, v bool) {
	p.setFlag(e, flagRegionInterior, v)
}

// IsLineMember reports whether e's pair belongs to a linear (open) constraint.
func (p *Pool) IsLineMember(e EdgeIndex) bool {
	return p.word(e)&flagLineMember != 0
}

// SetLineMember sets or clears the line-member flag.
func (p *Pool) SetLineMember(e EdgeIndex, v bool) {
	p.setFlag(e, flagLineMember, v)
}

// IsSynthetic reports whether e's pair was created by splitEdge rather than
// directly by the caller's input.
func (p *Pool) IsSynthetic(e EdgeIndex) bool {
	return p.word(e)&flagSynthetic != 0
}

// SetSynthetic sets or clears the synthetic flag.
func (p *Pool) SetSynthetic(e EdgeIndex, v bool) {
	p.setFlag(e, flagSynthetic, v)
}

// ConstraintIndex returns the constraint id stored on e's pair, or
// NoConstraint if none is set.
func (p *Pool) ConstraintIndex(e EdgeIndex) int32 {
	return int32(p.word(e) & constraintIDMask)
}

// SetConstraintIndex stores a constraint id on e's pair. id must be in
// [0, MaxConstraintID]; out-of-range ids are a precondition violation and
// are rejected (no change is made, and ok is false).
func (p *Pool) SetConstraintIndex(e EdgeIndex, id int32) (ok bool) {
	if id < 0 || id > MaxConstraintID {
		return false
	}
	pi := packedIndex(e)
	pg, slot := pageIndex(pi)
	w := p.pages[pg].rec[slot].packed
	w = (w &^ constraintIDMask) | uint32(id)
	p.pages[pg].rec[slot].packed = w
	return true
}

func (p *Pool) word(e EdgeIndex) uint32 {
	pi := packedIndex(e)
	pg, slot := pageIndex(pi)
	return p.pages[pg].rec[slot].packed
}

func (p *Pool) setFlag(e EdgeIndex, flag uint32, v bool) {
	pi := packedIndex(e)
	pg, slot := pageIndex(pi)
	if v {
		p.pages[pg].rec[slot].packed |= flag
	} else {
		p.pages[pg].rec[slot].packed &^= flag
	}
}
