package api

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"image"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/matt-g-everett/lifecompass/clock"
	"github.com/matt-g-everett/lifecompass/config"
	"github.com/matt-g-everett/lifecompass/scene"
	"github.com/matt-g-everett/lifecompass/sequencer"
	"github.com/matt-g-everett/lifecompass/stream"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"
)

// Options configure the pages served by an Api.
type Options struct {
	Page      config.Page
	PublicURL string
	PreviewPx int
}

// Api serves the landing page and accepts start and reset intents.
type Api struct {
	sequencer *sequencer.Sequencer
	renderer  *stream.Renderer
	clock     clock.Clock
	options   Options
	page      *template.Template
}

// StateResponse is the JSON view of the sequencer.
type StateResponse struct {
	State    string            `json:"state"`
	Playing  bool              `json:"playing"`
	Index    int               `json:"index"`
	Scene    *scene.Descriptor `json:"scene,omitempty"`
	Progress float64           `json:"progress"`
	Version  uint64            `json:"version"`
}

func newStateResponse(snap sequencer.Snapshot) StateResponse {
	return StateResponse{
		State:    snap.State.String(),
		Playing:  snap.Playing(),
		Index:    snap.Index,
		Scene:    snap.Scene,
		Progress: snap.Progress,
		Version:  snap.Version,
	}
}

func NewApi(seq *sequencer.Sequencer, renderer *stream.Renderer, c clock.Clock, options Options) *Api {
	a := new(Api)
	a.sequencer = seq
	a.renderer = renderer
	a.clock = c
	a.options = options
	if a.options.PreviewPx <= 0 {
		a.options.PreviewPx = 1
	}
	a.page = template.Must(template.New("page").Parse(pageTemplate))
	return a
}

// Handler routes every endpoint of the Api.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", a.handleIndex)
	mux.HandleFunc("/start", a.intent(a.sequencer.Start, true))
	mux.HandleFunc("/reset", a.intent(a.sequencer.Reset, true))
	mux.HandleFunc("/api/start", a.intent(a.sequencer.Start, false))
	mux.HandleFunc("/api/reset", a.intent(a.sequencer.Reset, false))
	mux.HandleFunc("/api/state", a.handleState)
	mux.HandleFunc("/frame.png", a.handleFrame)
	mux.HandleFunc("/qr.png", a.handleQR)
	return mux
}

// Serve listens on addr until ctx is done, then shuts down gracefully.
func (a *Api) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: a.Handler()}

	errs := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s...", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// intent applies f on POST. Browser form posts are redirected back to the page.
func (a *Api) intent(f func(), redirect bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		f()
		if redirect {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		a.writeState(w)
	}
}

func (a *Api) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	a.writeState(w)
}

func (a *Api) writeState(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(newStateResponse(a.sequencer.Snapshot())); err != nil {
		log.Printf("Encode state: %v", err)
	}
}

func (a *Api) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := pageData{
		Page:     a.options.Page,
		Snapshot: a.sequencer.Snapshot(),
		Scenes:   a.sequencer.Scenes().All(),
		ShowQR:   a.options.PublicURL != "",
	}
	data.ProgressPercent = data.Snapshot.Progress * 100

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.page.Execute(w, data); err != nil {
		log.Printf("Render page: %v", err)
	}
}

func (a *Api) handleFrame(w http.ResponseWriter, r *http.Request) {
	src := a.renderer.Render(a.sequencer.Snapshot(), a.clock.Now()).Image()

	px := a.options.PreviewPx
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*px, b.Dy()*px))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := png.Encode(w, dst); err != nil {
		log.Printf("Encode frame: %v", err)
	}
}

func (a *Api) handleQR(w http.ResponseWriter, r *http.Request) {
	if a.options.PublicURL == "" {
		http.NotFound(w, r)
		return
	}

	b, err := qrcode.Encode(a.options.PublicURL, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(b)
}
