// Package events provides synchronous in-process domain event dispatch.
//
// Aggregates collect events while a command mutates them; the command
// handler publishes those events through the Dispatcher after its own
// transaction commits. Subscribed handlers then run their follow-up work
// in separate transactions, preserving the ordered-transaction model:
// the triggering change is durable before any cascade begins.
//
// The one production cascade is shipment delivery: a shipment reaching
// its delivered status publishes shipment.DeliveredEvent, and the
// CloseDeliveredRoutesCommandHandler closes fully-delivered routes and
// releases their drivers.
package events
