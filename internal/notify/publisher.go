package notify

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// LeadEvent is the machine-readable side of a new-lead notification.
// Subscribers (the ops dashboard, the email relay bridge) get both this
// JSON payload and the plain-text summary.
type LeadEvent struct {
	QuoteID   uint      `json:"quote_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher pushes lead notifications to the MQTT broker. Delivery is
// best effort: the caller logs failures and moves on, a lost
// notification never blocks a stored lead.
type Publisher struct {
	client      mqtt.Client
	topicPrefix string
	enabled     bool
}

type PublisherConfig struct {
	Broker      string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
	Enabled     bool
}

func NewPublisher(cfg PublisherConfig) (*Publisher, error) {
	if !cfg.Enabled {
		return &Publisher{enabled: false}, nil
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetConnectionLostHandler(func(c mqtt.Client, err error) {
			log.Printf("MQTT connection lost: %v", err)
		}).
		SetOnConnectHandler(func(c mqtt.Client) {
			log.Println("MQTT connected")
		})

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	return &Publisher{
		client:      client,
		topicPrefix: cfg.TopicPrefix,
		enabled:     true,
	}, nil
}

// PublishLead announces a new quote request: the summary text on the
// summary topic and the structured event, retained, on the event topic.
func (p *Publisher) PublishLead(event LeadEvent, summary string) error {
	if !p.enabled {
		return nil
	}

	summaryTopic := fmt.Sprintf("%s/leads/%d/summary", p.topicPrefix, event.QuoteID)
	token := p.client.Publish(summaryTopic, 0, false, summary)
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("failed to publish lead summary: %w", token.Error())
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal lead event: %w", err)
	}

	eventTopic := fmt.Sprintf("%s/leads/new", p.topicPrefix)
	token = p.client.Publish(eventTopic, 0, true, payload)
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("failed to publish lead event: %w", token.Error())
	}

	return nil
}

// PublishTestimonial flags a pending testimonial for moderation.
func (p *Publisher) PublishTestimonial(id uint, name string) error {
	if !p.enabled {
		return nil
	}

	payload, _ := json.Marshal(map[string]interface{}{
		"testimonial_id": id,
		"name":           name,
		"timestamp":      time.Now(),
	})

	topic := fmt.Sprintf("%s/testimonials/pending", p.topicPrefix)
	token := p.client.Publish(topic, 0, false, payload)
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("failed to publish testimonial event: %w", token.Error())
	}
	return nil
}

func (p *Publisher) IsConnected() bool {
	if !p.enabled {
		return false
	}
	return p.client.IsConnected()
}

func (p *Publisher) Close() {
	if p.enabled && p.client != nil {
		p.client.Disconnect(1000)
	}
}
