package stream

import (
	"encoding/json"
	"math"
	"time"
)

// Reading is a single CPU utilization sample extracted from a stream message.
type Reading struct {
	// At is the sample time reported by the producer; zero when absent.
	At time.Time

	// Total is the aggregate CPU utilization percentage across all cores.
	Total float64

	// PerCore holds per-logical-core percentages when the producer sends them.
	PerCore []float64
}

// envelope mirrors the wire shape of a stream message:
//
//	{"cpu":{"t":<unix seconds>,"total":<percent>,"per_core":[<percent>...]}}
//
// Pointer fields distinguish "absent" from zero so shape mismatches can be
// rejected rather than read as a 0% sample.
type envelope struct {
	CPU *cpuSample `json:"cpu"`
}

type cpuSample struct {
	T       *float64  `json:"t"`
	Total   *float64  `json:"total"`
	PerCore []float64 `json:"per_core"`
}

// decodeReading parses a raw stream message into a Reading. The second
// return is false for malformed payloads and for payloads missing a numeric
// cpu.total; such messages carry no reading and leave the published value
// unchanged.
func decodeReading(data []byte) (Reading, bool) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Reading{}, false
	}
	if env.CPU == nil || env.CPU.Total == nil {
		return Reading{}, false
	}

	r := Reading{
		Total:   *env.CPU.Total,
		PerCore: env.CPU.PerCore,
	}
	if env.CPU.T != nil {
		sec, frac := math.Modf(*env.CPU.T)
		r.At = time.Unix(int64(sec), int64(frac*1e9))
	}
	return r, true
}
