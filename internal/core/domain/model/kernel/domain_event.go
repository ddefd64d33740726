package kernel

// DomainEvent marks a fact raised by an aggregate during a state change.
// Aggregates collect raised events; application handlers drain them and
// hand them to the event dispatcher, either inside the mutating
// transaction or after its commit depending on the consistency the
// consumer requires.
type DomainEvent interface {
	// EventName identifies the event kind for subscription routing.
	EventName() string
}
