package quadedge

// Free releases the half-edge pair containing e. It compacts the owning
// page by swapping the freed pair with the page's last live pair (if they
// differ), then re-patches every reference the moved pair held: the moved
// pair's neighbors' next/prev links. Callers must have already unlinked e's
// pair from the mesh (next/prev pointers into it from other pairs must be
// gone) before calling Free; Free only repairs references TO the pair that
// moves into e's old slot, not references to e's pair itself.
func (p *Pool) Free(e EdgeIndex) {
	base := e &^ 1
	pg, slot := pageIndex(base)
	page := p.pages[pg]
	freedPair := slot / 2
	lastPair := page.live - 1

	if freedPair != lastPair {
		p.movePair(pg, lastPair, freedPair)
	}

	page.live--
	if page.live == pairsPerPage-1 {
		p.pushAvail(page)
	}
}

// movePair relocates the pair at slot srcPair (within page pg) into
// dstPair, then repatches every external reference to the moved
// half-edges.
func (p *Pool) movePair(pg, srcPair, dstPair int) {
	page := p.pages[pg]
	srcBase := makeIndex(pg, srcPair*2)
	srcTwin := srcBase | 1
	dstBase := makeIndex(pg, dstPair*2)
	dstTwin := dstBase | 1

	_, srcBaseSlot := pageIndex(srcBase)
	_, srcTwinSlot := pageIndex(srcTwin)
	_, dstBaseSlot := pageIndex(dstBase)
	_, dstTwinSlot := pageIndex(dstTwin)

	baseRec := page.rec[srcBaseSlot]
	twinRec := page.rec[srcTwinSlot]

	if baseRec.next != NilEdge {
		p.SetPrev(baseRec.next, dstBase)
	}
	if baseRec.prev != NilEdge {
		p.SetNext(baseRec.prev, dstBase)
	}
	if twinRec.next != NilEdge {
		p.SetPrev(twinRec.next, dstTwin)
	}
	if twinRec.prev != NilEdge {
		p.SetNext(twinRec.prev, dstTwin)
	}

	page.rec[dstBaseSlot] = baseRec
	page.rec[dstTwinSlot] = twinRec
}
