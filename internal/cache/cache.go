package cache

import (
	"sync"

	"github.com/airliftops/loadmaster/pkg/core"
)

// PlanCache holds the working set of flight loads by flight ID so
// split/transfer operations between named flights don't round-trip
// through storage. Loads are stored and returned by value; callers
// must Put a load back after mutating it through a rebuild.
type PlanCache struct {
	m       sync.Mutex
	flights map[string]core.FlightLoad
}

func NewPlanCache() *PlanCache {
	return &PlanCache{
		flights: make(map[string]core.FlightLoad),
	}
}

func (c *PlanCache) Reset() {
	c.m.Lock()
	defer c.m.Unlock()
	c.flights = make(map[string]core.FlightLoad)
}

func (c *PlanCache) Get(id string) (core.FlightLoad, bool) {
	c.m.Lock()
	defer c.m.Unlock()
	if f, ok := c.flights[id]; ok {
		return f, true
	}
	return core.FlightLoad{}, false
}

func (c *PlanCache) Put(load core.FlightLoad) {
	c.m.Lock()
	defer c.m.Unlock()
	c.flights[load.ID] = load
}

func (c *PlanCache) Delete(id string) {
	c.m.Lock()
	defer c.m.Unlock()
	delete(c.flights, id)
}

// IDs returns the cached flight IDs in no particular order.
func (c *PlanCache) IDs() []string {
	c.m.Lock()
	defer c.m.Unlock()
	ids := make([]string, 0, len(c.flights))
	for id := range c.flights {
		ids = append(ids, id)
	}
	return ids
}

func (c *PlanCache) Len() int {
	c.m.Lock()
	defer c.m.Unlock()
	return len(c.flights)
}
