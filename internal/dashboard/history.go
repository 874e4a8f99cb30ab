package dashboard

// DefaultHistorySize is the fallback number of readings to retain.
const DefaultHistorySize = 900

// History is a fixed-size ring buffer of CPU readings used for the
// sparkline row. The oldest reading is overwritten once the buffer fills.
type History struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a history buffer with the specified capacity.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		data: make([]float64, size),
		size: size,
	}
}

// Push adds a reading to the buffer.
func (h *History) Push(value float64) {
	h.data[h.head] = value
	h.head = (h.head + 1) % h.size
	if h.count < h.size {
		h.count++
	}
}

// Last returns the most recent count values in chronological order
// (oldest first). Returns fewer values if not enough history is available.
func (h *History) Last(count int) []float64 {
	if count <= 0 || h.count == 0 {
		return nil
	}
	if count > h.count {
		count = h.count
	}

	result := make([]float64, count)

	// head points to the next write position, so the most recent value is
	// at head-1; take 'count' values ending there.
	start := (h.head - count + h.size) % h.size
	for i := 0; i < count; i++ {
		result[i] = h.data[(start+i)%h.size]
	}
	return result
}

// Len returns the number of readings currently stored.
func (h *History) Len() int {
	return h.count
}
