package syncs

// Semaphore bounds the number of concurrent holders.
type Semaphore chan struct{}

func NewSemaphore(n int) Semaphore {
	return make(chan struct{}, max(n, 1))
}

func (s Semaphore) Acquire() {
	s <- struct{}{}
}

func (s Semaphore) Release() {
	<-s
}

// Do runs fn while holding the semaphore.
func (s Semaphore) Do(fn func()) {
	s.Acquire()
	defer s.Release()
	fn()
}
