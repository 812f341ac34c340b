package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/lifecompass/clock"
	"github.com/matt-g-everett/lifecompass/sequencer"
)

// Publisher is the part of mqtt.Client the Streamer publishes through.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Topics the Streamer publishes to and listens on.
type Topics struct {
	Stream  string
	Caption string
	Control string
}

// CaptionMessage describes the scene on screen, published whenever the
// sequencer state changes.
type CaptionMessage struct {
	Playing  bool    `json:"playing"`
	SceneID  int     `json:"sceneId"`
	Caption  string  `json:"caption"`
	Variant  string  `json:"variant"`
	Progress float64 `json:"progress"`
}

// NewCaptionMessage builds the caption for a snapshot.
func NewCaptionMessage(snap sequencer.Snapshot) CaptionMessage {
	m := CaptionMessage{Playing: snap.Playing(), Progress: snap.Progress}
	if snap.Scene != nil {
		m.SceneID = snap.Scene.ID
		m.Caption = snap.Scene.Caption
		m.Variant = string(snap.Scene.Variant)
	}
	return m
}

// Streamer that streams RGB data frames to an LED matrix.
type Streamer struct {
	client    Publisher
	sequencer *sequencer.Sequencer
	renderer  *Renderer
	clock     clock.Clock
	topics    Topics
	interval  time.Duration
	changed   chan struct{}

	captioned   bool
	lastVersion uint64
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(client Publisher, seq *sequencer.Sequencer, renderer *Renderer, c clock.Clock,
	topics Topics, frameRate float64) *Streamer {

	s := new(Streamer)
	s.client = client
	s.sequencer = seq
	s.renderer = renderer
	s.clock = c
	s.topics = topics
	s.interval = time.Duration(float64(time.Second) / frameRate)
	s.changed = make(chan struct{}, 1)
	seq.OnChange(s.handleChange)
	return s
}

// SendFrame renders the current state and publishes it as binary over MQTT,
// followed by a caption message when the state changed since the last frame.
func (s *Streamer) SendFrame() error {
	snap := s.sequencer.Snapshot()
	f := s.renderer.Render(snap, s.clock.Now())
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}

	token := s.client.Publish(s.topics.Stream, 0, false, b)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish frame: %w", err)
	}

	if s.captioned && snap.Version == s.lastVersion {
		return nil
	}
	if err := s.sendCaption(snap); err != nil {
		return err
	}
	s.captioned = true
	s.lastVersion = snap.Version
	return nil
}

func (s *Streamer) sendCaption(snap sequencer.Snapshot) error {
	payload, err := json.Marshal(NewCaptionMessage(snap))
	if err != nil {
		return err
	}

	token := s.client.Publish(s.topics.Caption, 1, true, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish caption: %w", err)
	}
	return nil
}

func (s *Streamer) handleChange(sequencer.Snapshot) {
	select {
	case s.changed <- struct{}{}:
	default:
	}
}

// Run causes the Streamer to send Frames continuously until ctx is done. A
// sequencer state change sends a frame without waiting for the next tick.
func (s *Streamer) Run(ctx context.Context) error {
	publishTimer := time.NewTicker(s.interval)
	defer publishTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.changed:
			if err := s.SendFrame(); err != nil {
				log.Println(err)
			}
		case <-publishTimer.C:
			if err := s.SendFrame(); err != nil {
				log.Println(err)
			}
		}
	}
}
