package usecases

import "sync"

// keyedMutex serializes writes per key (user id). Appends for one user go
// through one mutex so concurrent requests cannot lose entries; different
// users never contend.
type keyedMutex struct {
	locks sync.Map // key -> *sync.Mutex
}

// Lock acquires the mutex for key and returns its unlock function
func (k *keyedMutex) Lock(key string) func() {
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
