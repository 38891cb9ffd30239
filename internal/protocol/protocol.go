// Package protocol defines the wire types between the generation server and
// its materializer clients: a full snapshot served on connect and sequenced
// patch envelopes carrying placement-event batches.
package protocol

import (
	"gridcity/internal/gen"
	"gridcity/internal/grid"
)

// Snapshot is the complete observable state at a stage boundary. Tiles are
// row-major tile kinds; Seq is the number of events already folded into the
// snapshot, so a client can ignore patches it has already seen.
type Snapshot struct {
	RunID           string      `json:"runId"`
	Width           int         `json:"width"`
	Height          int         `json:"height"`
	Tiles           []grid.Tile `json:"tiles"`
	RoadCount       int         `json:"roadCount"`
	Seq             uint64      `json:"seq"`
	Done            bool        `json:"done"`
	ProtocolVersion string      `json:"protocolVersion"`
}

// PatchEnvelope wraps one broadcast message.
type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	RunID    string `json:"runId"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

// TilesChanged carries the placement events committed by one pipeline stage.
type TilesChanged struct {
	Stage  string               `json:"stage"`
	Events []gen.PlacementEvent `json:"events"`
}

// GenerationDone signals that the pipeline has flushed its final events.
type GenerationDone struct {
	RoadCount int `json:"roadCount"`
}
