package stream

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/eclipse/paho.mqtt.golang"
)

// Subscriber is the part of mqtt.Client used to receive control messages.
type Subscriber interface {
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
}

// ControlMessage is a user intent sent to the control topic.
type ControlMessage struct {
	Type string `json:"type"`
}

// Control message types.
const (
	ControlStart = "start"
	ControlReset = "reset"
)

func (s *Streamer) handleControlMessages(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s: %s\n", msg.MessageID(), msg.Topic(), msg.Payload())

	var message ControlMessage
	if err := json.Unmarshal(msg.Payload(), &message); err != nil {
		log.Printf("Ignoring malformed control message: %v", err)
		return
	}

	switch message.Type {
	case ControlStart:
		s.sequencer.Start()
	case ControlReset:
		s.sequencer.Reset()
	default:
		log.Printf("Ignoring control message of type %q", message.Type)
	}
}

// Subscribe listens for start and reset intents on the control topic.
func (s *Streamer) Subscribe(client Subscriber) error {
	if token := client.Subscribe(s.topics.Control, 0, s.handleControlMessages); token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribe %s: %w", s.topics.Control, token.Error())
	}
	return nil
}
