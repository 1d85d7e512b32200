package core

import (
	"fmt"
	"strings"
	"sync"
)

// Registry holds the processes a user has registered, in insertion order.
type Registry struct {
	mu        sync.RWMutex
	processes []Process
}

func NewRegistry() *Registry {
	return &Registry{processes: make([]Process, 0)}
}

// Add registers a process. A blank id is replaced by the next free "P<n>" label.
func (r *Registry) Add(id string, arrival, burst, priority int) (Process, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id = strings.TrimSpace(id)
	if id == "" {
		id = r.nextID()
	}
	p := Process{ID: id, ArrivalTime: arrival, Burst: burst, Priority: priority}
	if err := p.Validate(); err != nil {
		return Process{}, err
	}
	if r.indexOf(id) >= 0 {
		return Process{}, &ValidationError{ProcessID: id, Field: "id", Reason: "already in use"}
	}

	r.processes = append(r.processes, p)
	return p, nil
}

// Remove deletes the process at index.
func (r *Registry) Remove(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.processes) {
		return fmt.Errorf("no process at index %d (registry holds %d)", index, len(r.processes))
	}
	r.processes = append(r.processes[:index], r.processes[index+1:]...)
	return nil
}

// List returns a copy of the registered processes.
func (r *Registry) List() []Process {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Process, len(r.processes))
	copy(out, r.processes)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.processes)
}

// caller holds r.mu
func (r *Registry) nextID() string {
	for n := len(r.processes) + 1; ; n++ {
		id := fmt.Sprintf("P%d", n)
		if r.indexOf(id) < 0 {
			return id
		}
	}
}

func (r *Registry) indexOf(id string) int {
	for i, p := range r.processes {
		if p.ID == id {
			return i
		}
	}
	return -1
}
