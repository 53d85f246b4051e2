package holiday

import "sync"

// yearCache holds derived holidays by year and provides thread safe access to them.
// Entries are never removed.
type yearCache struct {
	mu    sync.Mutex
	years map[int][]Holiday
}

// makeYearCache yearCache factory
func makeYearCache() *yearCache {
	return &yearCache{
		years: make(map[int][]Holiday),
	}
}

// getOrCompute returns the holidays cached for year, calling derive to produce and store them if not present.
// derive runs at most once per year, concurrent callers for the same year wait for the first to finish.
func (c *yearCache) getOrCompute(year int, derive func(year int) []Holiday) []Holiday {
	c.mu.Lock()
	defer c.mu.Unlock()
	if holidays, present := c.years[year]; present {
		return holidays
	}
	holidays := derive(year)
	c.years[year] = holidays
	return holidays
}

// size returns the number of cached years
func (c *yearCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.years)
}
