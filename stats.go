// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "fmt"

// Stats returns a human-readable summary of the manager's arena occupancy
// and apply-cache hit rate, grounded on the teacher's stdio.go Stats, with
// the GC/finalizer reporting section dropped (this manager has no GC; see
// DESIGN.md).
func (m *Manager) Stats() string {
	res := fmt.Sprintf("Varnum:        %d\n", m.order.Len())
	res += fmt.Sprintf("Arena size:    %d\n", len(m.arena)-2)
	res += fmt.Sprintf("Table size:    %d\n", len(m.uniq.slots))
	res += fmt.Sprintf("Load factor:   %.3f\n", m.uniq.loadFactor())
	res += fmt.Sprintf("Recursions:    %d\n", m.numRecursiveCalls)
	res += "==============\n"
	res += m.cache.String()
	return res
}
