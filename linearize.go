package ixlist

// Linearize reorders the backing slice so that slot order matches list order: afterward the front
// is slot 0 and the back is slot Len()-1. The order of the list itself does not change.
//
// Inserting with a Cursor leaves elements scattered across the backing slice; Linearize restores
// locality for later iteration.
func (l *List[T]) Linearize() {
	l.mutate("Linearize")
	if len(l.nodes) == 0 {
		return
	}

	// Rank every node by its position in the list, parking the rank in its next link. The walk has
	// already read the real next link by the time it is overwritten.
	rank := 0
	for i := l.ends[head]; i != endIx; rank++ {
		n := &l.nodes[i]
		i = n.link[next]
		n.link[next] = rank
	}
	invariant(rank == len(l.nodes), "linearize walk did not visit every slot")

	// Ranks are a permutation of slot indexes, so sorting by rank is done by swapping each node
	// straight into its slot until every cycle closes.
	for i := range l.nodes {
		for l.nodes[i].link[next] != i {
			j := l.nodes[i].link[next]
			l.nodes[i], l.nodes[j] = l.nodes[j], l.nodes[i]
		}
	}

	last := len(l.nodes) - 1
	for i := range l.nodes {
		l.nodes[i].link[prev] = i - 1
		l.nodes[i].link[next] = i + 1
	}
	l.nodes[0].link[prev] = endIx
	l.nodes[last].link[next] = endIx
	l.ends = [2]int{0, last}
	l.checkInvariants()
}
