package monitor

// NetHistorySize is the number of network deltas kept for the sparkline.
const NetHistorySize = 40

// NetHistory is a fixed-capacity rolling window of network throughput
// deltas. It is owned by the tick loop and is not safe for concurrent use.
type NetHistory struct {
	buf *ringBuffer

	prev   uint64
	primed bool
}

// ringBuffer is a fixed-size circular buffer for int64 samples.
type ringBuffer struct {
	data  []int64
	head  int
	count int
	size  int
}

// NewNetHistory creates a history with the given capacity.
func NewNetHistory(size int) *NetHistory {
	if size <= 0 {
		size = NetHistorySize
	}
	return &NetHistory{buf: newRingBuffer(size)}
}

// Push appends a raw sample, evicting the oldest when full.
func (h *NetHistory) Push(sample int64) {
	h.buf.push(sample)
}

// Observe records a cumulative byte counter reading and pushes the delta
// from the previous reading. The first reading has no baseline and pushes 0.
// A counter reset shows up as a negative delta; it is stored as is.
func (h *NetHistory) Observe(cumulative uint64) int64 {
	var delta int64
	if h.primed {
		delta = int64(cumulative - h.prev)
	}
	h.prev = cumulative
	h.primed = true
	h.Push(delta)
	return delta
}

// Snapshot returns the samples oldest to newest.
func (h *NetHistory) Snapshot() []int64 {
	return h.buf.getLast(h.buf.count)
}

// Len returns the number of stored samples.
func (h *NetHistory) Len() int {
	return h.buf.count
}

// Cap returns the capacity.
func (h *NetHistory) Cap() int {
	return h.buf.size
}

// Latest returns the newest sample, or 0 when empty.
func (h *NetHistory) Latest() int64 {
	last := h.buf.getLast(1)
	if len(last) == 0 {
		return 0
	}
	return last[0]
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]int64, size),
		size: size,
	}
}

func (r *ringBuffer) push(value int64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order (oldest first).
func (r *ringBuffer) getLast(count int) []int64 {
	if count <= 0 || r.count == 0 {
		return nil
	}
	if count > r.count {
		count = r.count
	}

	result := make([]int64, count)
	// head is the next write position, so the newest value sits at head-1.
	start := (r.head - count + r.size) % r.size
	for i := 0; i < count; i++ {
		result[i] = r.data[(start+i)%r.size]
	}
	return result
}
