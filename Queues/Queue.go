package Queues

// Queue is a FIFO queue.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Returns *EmptyQueueError when there's none.
	Pop() (T, error)
	//Peek at the oldest item without removing it. Zero value when empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a circular slice.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing slice to the current size.
	Shrink()
	//Clear the queue, keeping the backing slice.
	Clear()
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
