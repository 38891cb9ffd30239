// Command server generates a city and streams its construction to browser
// materializers: the page gets a snapshot of the current grid, and every
// committed pipeline stage is broadcast as a batch of placement events over
// a websocket.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"gridcity/internal/gen"
	"gridcity/internal/grid"
	"gridcity/internal/protocol"
	"gridcity/internal/web/views"
	"gridcity/internal/ws"
)

type server struct {
	hub   *ws.Hub
	runID string

	mu        sync.Mutex
	tiles     []grid.Tile
	width     int
	height    int
	roadCount int
	seq       uint64
	done      bool
}

func (s *server) snapshot() protocol.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	tiles := make([]grid.Tile, len(s.tiles))
	copy(tiles, s.tiles)
	return protocol.Snapshot{
		RunID:           s.runID,
		Width:           s.width,
		Height:          s.height,
		Tiles:           tiles,
		RoadCount:       s.roadCount,
		Seq:             s.seq,
		Done:            s.done,
		ProtocolVersion: "v1",
	}
}

func (s *server) broadcast(patchType string, seq uint64, payload any) {
	env := protocol.PatchEnvelope{Sequence: seq, RunID: s.runID, Type: patchType, Payload: payload}
	data, err := json.Marshal(env)
	if err != nil {
		log.Printf("marshal %s patch: %v", patchType, err)
		return
	}
	s.hub.Broadcast(data)
}

// generate steps the pipeline, publishing a consistent snapshot and a patch
// batch at every stage boundary. The delay paces the stream so connected
// materializers see the city build out; it never interrupts a stage.
func (s *server) generate(g *gen.Generator, delay time.Duration) {
	for {
		stage := g.StageName()
		more := g.Step()
		events := g.Queue().Drain()

		s.mu.Lock()
		s.tiles = g.Grid().Tiles()
		s.roadCount = g.Grid().RoadCount()
		s.seq += uint64(len(events))
		seq := s.seq
		if !more {
			s.done = true
		}
		s.mu.Unlock()

		if len(events) > 0 {
			s.broadcast("tilesChanged", seq, protocol.TilesChanged{Stage: stage, Events: events})
		}
		if !more {
			s.broadcast("generationDone", seq, protocol.GenerationDone{RoadCount: g.Grid().RoadCount()})
			log.Printf("generation done: %d road tiles, %d events", g.Grid().RoadCount(), seq)
			return
		}
		time.Sleep(delay)
	}
}

func main() {
	cfg := gen.DefaultConfig()
	flag.IntVar(&cfg.Width, "width", cfg.Width, "grid width in tiles")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "grid height in tiles")
	flag.IntVar(&cfg.SiteSpacing, "spacing", cfg.SiteSpacing, "voronoi site lattice spacing")
	flag.IntVar(&cfg.Jitter, "jitter", cfg.Jitter, "voronoi site jitter magnitude")
	flag.Float64Var(&cfg.NoiseScale, "scale", cfg.NoiseScale, "branch noise scale (0,1]")
	flag.Float64Var(&cfg.NoiseThreshold, "threshold", cfg.NoiseThreshold, "branch noise threshold [0,1]")
	flag.Float64Var(&cfg.BuildChance, "chance", cfg.BuildChance, "per-tile building probability")
	flag.IntVar(&cfg.EdgeSearchRadius, "radius", cfg.EdgeSearchRadius, "edge-connection search radius")
	flag.Int64Var(&cfg.Seed, "seed", time.Now().UnixNano(), "generation seed")
	delay := flag.Duration("delay", 150*time.Millisecond, "pause between pipeline stages")
	flag.Parse()

	generator, err := gen.NewGenerator(cfg)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	srv := &server{
		hub:    ws.NewHub(),
		runID:  uuid.NewString(),
		tiles:  generator.Grid().Tiles(),
		width:  generator.Config().Width,
		height: generator.Config().Height,
	}
	log.Printf("run %s: %dx%d seed %d", srv.runID, cfg.Width, cfg.Height, generator.Config().Seed)
	go srv.generate(generator, *delay)

	mux := http.NewServeMux()

	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			log.Printf("websocket accept: %v", err)
			return
		}
		srv.hub.Add(conn)
		log.Printf("materializer connected (%d total)", srv.hub.Count())
		go func(conn *websocket.Conn) {
			defer func() {
				srv.hub.Remove(conn)
				_ = conn.Close(websocket.StatusNormalClosure, "")
			}()
			// Clients never send; read only to notice the close.
			for {
				if _, _, err := conn.Read(context.Background()); err != nil {
					return
				}
			}
		}(conn)
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if err := views.IndexPage(srv.snapshot()).Render(r.Context(), w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}
