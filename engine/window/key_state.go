package window

import "sync"

// keyState is a snapshot of currently held keys, fed by the platform key
// callbacks on the event-pump thread and read from any goroutine. GLFW's
// direct key query is main-thread-only, so consumers polling from other
// goroutines (the engine tick loop) read this snapshot instead.
type keyState struct {
	mu   sync.Mutex
	down map[uint32]bool
}

// press marks a key as held.
func (k *keyState) press(keyCode uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.down == nil {
		k.down = make(map[uint32]bool)
	}
	k.down[keyCode] = true
}

// release clears a key's held state.
func (k *keyState) release(keyCode uint32) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.down, keyCode)
}

// isDown reports whether a key is currently held.
func (k *keyState) isDown(keyCode uint32) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.down[keyCode]
}
