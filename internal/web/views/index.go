// Package views renders the browser materializer page. The page embeds the
// initial snapshot and a small client that keeps an explicit coordinate-keyed
// tile map fed by placement events; tile identity lives in that map, never in
// element ids.
package views

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"gridcity/internal/protocol"
)

// IndexPage returns the viewer page with the snapshot inlined.
func IndexPage(s protocol.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		snap, err := json.Marshal(s)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, pageHTML, snap)
		return err
	})
}

const pageHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>gridcity</title>
<style>
  body { background: #16161d; color: #c8c8d0; font-family: monospace; margin: 1rem; }
  #status { margin-bottom: 0.5rem; }
  canvas { image-rendering: pixelated; border: 1px solid #333; }
</style>
</head>
<body>
<div id="status">connecting…</div>
<canvas id="city"></canvas>
<script>
const snapshot = %s;

const SCALE = 10;
const COLORS = {
  0: "#16161d", // empty
  1: "#4caf7d", // residential
  2: "#4a90d9", // commercial
  3: "#c9a227", // industrial
  4: "#555560", // road
};

// The materializer's own state: a coordinate-keyed tile map. Position is
// the key, never part of an identifier.
const tiles = new Map();
const key = (x, y) => x + "," + y;

const canvas = document.getElementById("city");
canvas.width = snapshot.width * SCALE;
canvas.height = snapshot.height * SCALE;
const ctx2d = canvas.getContext("2d");
const status = document.getElementById("status");

function drawTile(x, y, kind) {
  ctx2d.fillStyle = COLORS[kind] ?? "#ff00ff";
  ctx2d.fillRect(x * SCALE, y * SCALE, SCALE, SCALE);
}

function applySnapshot(s) {
  for (let y = 0; y < s.height; y++) {
    for (let x = 0; x < s.width; x++) {
      const kind = s.tiles[y * s.width + x];
      tiles.set(key(x, y), kind);
      drawTile(x, y, kind);
    }
  }
}

let seq = snapshot.seq;
applySnapshot(snapshot);
status.textContent = "run " + snapshot.runId + " · seq " + seq;

const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
ws.onmessage = (msg) => {
  const patch = JSON.parse(msg.data);
  if (patch.runId !== snapshot.runId) {
    // Server regenerated; reload to pick up the new snapshot.
    location.reload();
    return;
  }
  if (patch.type === "generationDone") {
    status.textContent = "run " + snapshot.runId + " · done · " + patch.payload.roadCount + " road tiles";
    return;
  }
  if (patch.seq <= seq) {
    return; // already folded into the snapshot
  }
  seq = patch.seq;
  if (patch.type === "tilesChanged") {
    for (const ev of patch.payload.events) {
      const kind = ev.action === "remove" ? 0 : ev.kind;
      tiles.set(key(ev.coord.x, ev.coord.y), kind);
      drawTile(ev.coord.x, ev.coord.y, kind);
    }
    status.textContent = "run " + snapshot.runId + " · stage " + patch.payload.stage + " · seq " + seq;
  }
};
ws.onclose = () => { status.textContent += " · disconnected"; };
</script>
</body>
</html>
`
