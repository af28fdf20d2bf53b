package jobs

import "sync"

// Store mirrors the backend's job list on the client. Replace loads a
// fresh server snapshot; the mutating methods apply optimistic local
// updates after the corresponding API call succeeds, so views re-render
// without waiting for the next poll.
type Store struct {
	mu   sync.RWMutex
	byID map[string]Job
}

func NewStore() *Store {
	return &Store{byID: make(map[string]Job)}
}

// Replace swaps in a full server snapshot.
func (s *Store) Replace(list []Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = make(map[string]Job, len(list))
	for _, j := range list {
		s.byID[j.ID] = j
	}
}

// List returns all jobs in default display order.
func (s *Store) List() []Job {
	s.mu.RLock()
	out := make([]Job, 0, len(s.byID))
	for _, j := range s.byID {
		out = append(out, j)
	}
	s.mu.RUnlock()
	return SortDefault(out)
}

// Get returns the job with the given id.
func (s *Store) Get(id string) (Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	j, ok := s.byID[id]
	return j, ok
}

// Upsert applies an optimistic create or update.
func (s *Store) Upsert(j Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[j.ID] = j
}

// Remove applies an optimistic delete.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
}

// Toggle flips the active flag locally and returns the updated job.
func (s *Store) Toggle(id string) (Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.byID[id]
	if !ok {
		return Job{}, false
	}
	j.IsActive = !j.IsActive
	s.byID[id] = j
	return j, true
}

// Len reports the number of jobs in the view.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
