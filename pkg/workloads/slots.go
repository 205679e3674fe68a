package workloads

import (
	"fmt"

	"github.com/matzehuels/deltabench/pkg/harness"
)

// slotIterations is the number of loop iterations; each performs ten
// accessor calls.
const slotIterations = 100000

const slotValue = "something"

var slotRead = Workload{
	Name:        "SlotRead",
	Description: "1M getter calls",
	New: func(harness.Config) harness.Benchmark {
		return harness.NewFunc("SlotRead", nil, (&slotHolder{}).benchRead)
	},
}

var slotWrite = Workload{
	Name:        "SlotWrite",
	Description: "1M setter calls",
	New: func(harness.Config) harness.Benchmark {
		return harness.NewFunc("SlotWrite", nil, (&slotHolder{}).benchWrite)
	},
}

type slotHolder struct {
	slot string
}

// The accessors are kept out of line so each call is measured as a call.

//go:noinline
func (h *slotHolder) getSlot() string { return h.slot }

//go:noinline
func (h *slotHolder) setSlot(v string) *slotHolder {
	h.slot = v
	return h
}

func (h *slotHolder) benchRead() error {
	h.setSlot(slotValue)
	var n int
	for i := 0; i < slotIterations; i++ {
		n += len(h.getSlot())
		n += len(h.getSlot())
		n += len(h.getSlot())
		n += len(h.getSlot())
		n += len(h.getSlot())
		n += len(h.getSlot())
		n += len(h.getSlot())
		n += len(h.getSlot())
		n += len(h.getSlot())
		n += len(h.getSlot())
	}
	if want := slotIterations * 10 * len(slotValue); n != want {
		return fmt.Errorf("read %d bytes, want %d", n, want)
	}
	return nil
}

func (h *slotHolder) benchWrite() error {
	h.slot = ""
	something := slotValue
	for i := 0; i < slotIterations; i++ {
		h.setSlot(something)
		h.setSlot(something)
		h.setSlot(something)
		h.setSlot(something)
		h.setSlot(something)
		h.setSlot(something)
		h.setSlot(something)
		h.setSlot(something)
		h.setSlot(something)
		h.setSlot(something)
	}
	if h.slot != slotValue {
		return fmt.Errorf("slot = %q, want %q", h.slot, slotValue)
	}
	return nil
}
