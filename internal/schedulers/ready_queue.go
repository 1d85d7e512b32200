package schedulers

import (
	"sort"

	"github.com/emirpasic/gods/trees/redblacktree"

	"cpu-scheduler-sim/internal/core"
)

// readyKey orders the ready set: the algorithm's key first, then earliest
// arrival, then registration order. seq is unique, so keys never collide.
type readyKey struct {
	key     int
	arrival int
	seq     int
}

func compareReadyKey(a, b interface{}) int {
	ka, kb := a.(readyKey), b.(readyKey)
	switch {
	case ka.key != kb.key:
		return compareInt(ka.key, kb.key)
	case ka.arrival != kb.arrival:
		return compareInt(ka.arrival, kb.arrival)
	default:
		return compareInt(ka.seq, kb.seq)
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// readyQueue is the set of arrived, unfinished processes ordered by keyFn.
// A process's key is captured when it is pushed; pop it before changing the
// field keyFn reads.
type readyQueue struct {
	tree  *redblacktree.Tree
	keyFn func(*core.ProcessRun) int
}

func newReadyQueue(keyFn func(*core.ProcessRun) int) *readyQueue {
	return &readyQueue{
		tree:  redblacktree.NewWith(compareReadyKey),
		keyFn: keyFn,
	}
}

func (q *readyQueue) Push(p *core.ProcessRun) {
	q.tree.Put(readyKey{key: q.keyFn(p), arrival: p.ArrivalTime, seq: p.Seq}, p)
}

// Pop removes and returns the best candidate, or nil when empty.
func (q *readyQueue) Pop() *core.ProcessRun {
	node := q.tree.Left()
	if node == nil {
		return nil
	}
	q.tree.Remove(node.Key)
	return node.Value.(*core.ProcessRun)
}

func (q *readyQueue) Empty() bool {
	return q.tree.Empty()
}

func (q *readyQueue) Len() int {
	return q.tree.Size()
}

func byRemaining(p *core.ProcessRun) int { return p.Remaining }
func byPriority(p *core.ProcessRun) int  { return p.Priority }

// arrivalFeed releases processes in (arrival, registration order) as the
// clock passes their arrival time. Each process is released exactly once.
type arrivalFeed struct {
	pending []*core.ProcessRun
	next    int
}

func newArrivalFeed(runs []*core.ProcessRun) *arrivalFeed {
	pending := make([]*core.ProcessRun, len(runs))
	copy(pending, runs)
	sortByArrival(pending)
	return &arrivalFeed{pending: pending}
}

// AdmitUntil hands every pending process with arrival <= now to admit.
func (f *arrivalFeed) AdmitUntil(now int, admit func(*core.ProcessRun)) {
	for f.next < len(f.pending) && f.pending[f.next].ArrivalTime <= now {
		admit(f.pending[f.next])
		f.next++
	}
}

// NextArrival returns the arrival time of the next pending process.
func (f *arrivalFeed) NextArrival() (int, bool) {
	if f.next >= len(f.pending) {
		return 0, false
	}
	return f.pending[f.next].ArrivalTime, true
}

func (f *arrivalFeed) Empty() bool {
	return f.next >= len(f.pending)
}

// sortByArrival orders runs by arrival time, ties by registration order.
func sortByArrival(runs []*core.ProcessRun) {
	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].ArrivalTime != runs[j].ArrivalTime {
			return runs[i].ArrivalTime < runs[j].ArrivalTime
		}
		return runs[i].Seq < runs[j].Seq
	})
}
