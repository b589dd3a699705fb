package astar

// nodeRecord is the engine's per-node bookkeeping during one search:
// the node index, the connection used to reach it along the best route
// found so far, and the g/f costs. Records live only for the duration
// of a single FindPath or Stepper run.
type nodeRecord struct {
	node         int
	incoming     Connection
	hasIncoming  bool
	gCost        float64
	fCost        float64
	indexInQueue int
}

// recordQueue is a binary heap of open records ordered by f-cost
// ascending. indexInQueue tracks heap positions so relaxation can
// re-sift an updated record with heap.Fix.
type recordQueue []*nodeRecord

func (queue recordQueue) Len() int           { return len(queue) }
func (queue recordQueue) Less(i, j int) bool { return queue[i].fCost < queue[j].fCost }
func (queue recordQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].indexInQueue = i
	queue[j].indexInQueue = j
}

func (queue *recordQueue) Push(x any) {
	record := x.(*nodeRecord)
	record.indexInQueue = len(*queue)
	*queue = append(*queue, record)
}

func (queue *recordQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	record := oldQueue[n-1]
	oldQueue[n-1] = nil
	record.indexInQueue = -1
	*queue = oldQueue[:n-1]
	return record
}
