package astar

// frontierItem is one frontier entry: a cell index and the priority it was
// pushed with. The same cell may appear several times; only the entry popped
// first is expanded, later ones are stale.
type frontierItem struct {
	index     int // row-major cell index
	priority  int // cost + heuristic at push time
	heuristic int // tie-break: closer to the goal first
}

// frontier is a min-heap of *frontierItem under the "lazy-decrease-key"
// approach: a cheaper route pushes a new entry and the outdated one is
// ignored when popped (checked via Cell.Visited).
//
// Ordering: priority ascending, then heuristic ascending, then index
// ascending, which is (row, col) lexicographic order.
type frontier []*frontierItem

// Len returns the number of entries, stale ones included.
func (pq frontier) Len() int { return len(pq) }

// Less defines the ordering described on frontier.
func (pq frontier) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.heuristic != b.heuristic {
		return a.heuristic < b.heuristic
	}
	return a.index < b.index
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *frontierItem.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
