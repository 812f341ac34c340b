package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/lifecompass/api"
	"github.com/matt-g-everett/lifecompass/clock"
	"github.com/matt-g-everett/lifecompass/config"
	"github.com/matt-g-everett/lifecompass/sequencer"
	"github.com/matt-g-everett/lifecompass/stream"
	"golang.org/x/sync/errgroup"
)

type app struct {
	Config    config.Config
	Client    mqtt.Client
	Sequencer *sequencer.Sequencer
	Streamer  *stream.Streamer
	Api       *api.Api
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if err := a.Streamer.Subscribe(client); err != nil {
		log.Println(err)
	}
}

func (a *app) handleConnectionLost(client mqtt.Client, err error) {
	log.Printf("Connection lost: %v", err)
}

func (a *app) run(ctx context.Context) error {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer a.Client.Disconnect(250)
	defer a.Sequencer.Close()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.Streamer.Run(ctx)
	})
	g.Go(func() error {
		return a.Api.Serve(ctx, a.Config.HTTP.Addr)
	})
	return g.Wait()
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	// Read the config
	a := newApp()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	a.Config = cfg
	log.Printf("Config: broker %s, display %dx%d@%.0f, http %s", cfg.Mqtt.URL,
		cfg.Display.Width, cfg.Display.Height, cfg.Display.FrameRate, cfg.HTTP.Addr)

	scenes, err := cfg.SceneList()
	if err != nil {
		log.Fatalf("Config: %v", err)
	}

	options := mqtt.NewClientOptions().
		AddBroker(cfg.Mqtt.URL).
		SetClientID(cfg.Mqtt.ClientID).
		SetUsername(cfg.Mqtt.Username).
		SetPassword(cfg.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetAutoReconnect(true).
		SetOnConnectHandler(a.handleOnConnect).
		SetConnectionLostHandler(a.handleConnectionLost)
	a.Client = mqtt.NewClient(options)

	c := clock.Real()
	renderer := stream.NewRenderer(cfg.Display.Width, cfg.Display.Height, scenes)
	a.Sequencer = sequencer.New(scenes, c)
	a.Streamer = stream.NewStreamer(a.Client, a.Sequencer, renderer, c, stream.Topics{
		Stream:  cfg.Mqtt.Topics.Stream,
		Caption: cfg.Mqtt.Topics.Caption,
		Control: cfg.Mqtt.Topics.Control,
	}, cfg.Display.FrameRate)
	a.Api = api.NewApi(a.Sequencer, renderer, c, api.Options{
		Page:      cfg.Page,
		PublicURL: cfg.HTTP.PublicURL,
		PreviewPx: cfg.HTTP.PreviewPx,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.run(ctx); err != nil {
		log.Fatalf("Run: %v", err)
	}
}
