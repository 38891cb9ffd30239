package gen

import (
	"log"

	"gridcity/internal/grid"
)

// Action discriminates placement events.
type Action string

const (
	ActionPlace  Action = "place"
	ActionRemove Action = "remove"
)

// PlacementEvent is the unit of communication to a materializer: one tile
// placed or removed at a coordinate.
type PlacementEvent struct {
	Coord  grid.Coord `json:"coord"`
	Kind   grid.Tile  `json:"kind"`
	Action Action     `json:"action"`
}

// EventQueue records tile-level decisions in commit order. The pipeline is
// the only producer; a materializer drains batches at stage boundaries, so
// it only ever observes self-consistent grid states.
type EventQueue struct {
	pending []PlacementEvent
	drained int
}

// Place appends a place event for kind at c.
func (q *EventQueue) Place(c grid.Coord, kind grid.Tile) {
	q.pending = append(q.pending, PlacementEvent{Coord: c, Kind: kind, Action: ActionPlace})
}

// Remove appends a remove event for kind at c.
func (q *EventQueue) Remove(c grid.Coord, kind grid.Tile) {
	q.pending = append(q.pending, PlacementEvent{Coord: c, Kind: kind, Action: ActionRemove})
}

// Len returns the number of undrained events.
func (q *EventQueue) Len() int { return len(q.pending) }

// Drained returns the total number of events handed out so far.
func (q *EventQueue) Drained() int { return q.drained }

// Drain hands all pending events to the consumer and clears the queue.
func (q *EventQueue) Drain() []PlacementEvent {
	out := q.pending
	q.pending = nil
	q.drained += len(out)
	return out
}

// Reconcile enforces the grid as source of truth over the pending queue: a
// place event whose kind disagrees with the current tile is replaced by a
// corrective remove of the stale kind followed by a place of the actual one.
// Only the last event per coordinate is checked; earlier events in the batch
// were legitimately superseded and the consumer replays them in order.
func (q *EventQueue) Reconcile(g *grid.Grid) {
	last := make(map[grid.Coord]int, len(q.pending))
	for i, ev := range q.pending {
		last[ev.Coord] = i
	}
	fixed := make([]PlacementEvent, 0, len(q.pending))
	for i, ev := range q.pending {
		if ev.Action == ActionPlace && last[ev.Coord] == i {
			actual := g.Get(ev.Coord)
			if actual != ev.Kind {
				log.Printf("gen: event/grid mismatch at (%d,%d): queued %v, grid %v; emitting corrective pair",
					ev.Coord.X, ev.Coord.Y, ev.Kind, actual)
				fixed = append(fixed,
					PlacementEvent{Coord: ev.Coord, Kind: ev.Kind, Action: ActionRemove},
					PlacementEvent{Coord: ev.Coord, Kind: actual, Action: ActionPlace})
				continue
			}
		}
		fixed = append(fixed, ev)
	}
	q.pending = fixed
}
