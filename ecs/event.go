package ecs

// EventType identifies different types of events
type EventType string

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EventHandler is a function that processes events
type EventHandler func(Event)

// EventManager manages event subscriptions and dispatches. Events can be
// emitted immediately, or queued and dispatched in one batch at the end of
// the frame so that producers stay decoupled from consumers.
type EventManager struct {
	subscribers map[EventType][]EventHandler
	queue       []Event
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]EventHandler),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) {
	em.subscribers[eventType] = append(em.subscribers[eventType], handler)
}

// Emit dispatches an event to all subscribed handlers immediately
func (em *EventManager) Emit(event Event) {
	eventType := event.Type()
	handlers, exists := em.subscribers[eventType]
	if !exists {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// Queue holds an event for the next DispatchQueued call. Each queued event
// is dispatched exactly once; simultaneous events of the same type are never
// coalesced.
func (em *EventManager) Queue(event Event) {
	em.queue = append(em.queue, event)
}

// DispatchQueued emits every queued event in queue order and clears the
// queue. Intended to run once per frame, after all systems have updated.
func (em *EventManager) DispatchQueued() {
	// Swap the queue out first so handlers queueing new events don't extend
	// this frame's batch.
	pending := em.queue
	em.queue = nil

	for _, event := range pending {
		em.Emit(event)
	}
}

// QueuedLen returns the number of events waiting for dispatch
func (em *EventManager) QueuedLen() int {
	return len(em.queue)
}
