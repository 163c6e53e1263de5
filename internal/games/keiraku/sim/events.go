package sim

// Event is a fire-and-forget notification for presentation adapters.
type Event string

const (
	EventNeedleFired        Event = "needleFired"
	EventMoxaPlaced         Event = "moxaPlaced"
	EventExplosionTriggered Event = "explosionTriggered"
	EventEnemyDefeated      Event = "enemyDefeated"
	EventItemCollected      Event = "itemCollected"
	EventNodeOpened         Event = "nodeOpened"
	EventStageCleared       Event = "stageCleared"
	EventRunFailed          Event = "runFailed"
)

// EventSink receives events. Notify must not block or call back into the
// simulation.
type EventSink interface {
	Notify(Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

// Notify calls f(e).
func (f EventSinkFunc) Notify(e Event) { f(e) }

// Discard drops every event.
var Discard EventSink = EventSinkFunc(func(Event) {})

// Fanout delivers each event to every sink in order.
type Fanout []EventSink

// Notify forwards e to all sinks.
func (f Fanout) Notify(e Event) {
	for _, s := range f {
		s.Notify(e)
	}
}
