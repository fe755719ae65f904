package lindenmayer

import "sync"

// ParameterCell is a shared, mutable-by-replacement holder for a grammar's
// parameter block. Rules read the current contents at production time;
// external code replaces the contents between generations with Update. The
// cell is shared by reference across every aggregate derived from the
// L-system it is attached to, so an update is visible to all of them.
//
// The cell imposes no shape on the value it holds; validating the block is
// the grammar author's concern inside guards and producers.
type ParameterCell struct {
	mu    sync.RWMutex
	value any
}

// NewParameterCell creates a cell holding the given value.
func NewParameterCell(value any) *ParameterCell {
	return &ParameterCell{value: value}
}

// Unwrap returns the current contents.
func (c *ParameterCell) Unwrap() any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Update replaces the contents. Callers must not update concurrently with an
// in-flight evolution; the engine snapshots the contents once per
// generation.
func (c *ParameterCell) Update(value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = value
}
