package viewer

// EventKind identifies a user action delivered to the Controller. The
// windowing shell translates key presses into these so the navigation
// logic stays independent of the toolkit.
type EventKind int

const (
	EventQuit EventKind = iota
	EventNext
	EventPrevious
	EventFirst
	EventLast
	EventToggleSlideshow
	EventSpeedUp
	EventSlowDown
	EventToggleCentre
	EventToggleOverlay
	EventToggleInfo
	EventToggleUpdate
	EventClearSkips
	EventRate
	EventAnnotate
	EventSetFilter
)

// Event is one user action. Digit carries the rating or filter digit
// for EventRate and EventSetFilter, Text carries the notes for
// EventAnnotate.
type Event struct {
	Kind  EventKind
	Digit byte
	Text  string
}
