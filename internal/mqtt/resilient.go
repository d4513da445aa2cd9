package mqtt

import (
	"fmt"
	"log"
	"sync"

	"github.com/sweeney/traffic-light/internal/light"
)

// RawPublisher is the low-level broker surface the resilient wrapper needs.
type RawPublisher interface {
	ConnectionStatus
	PublishRaw(topic string, qos byte, retained bool, payload []byte) error
	Close() error
}

// DefaultBufferCapacity bounds how many messages are held while the broker
// is unreachable. At one transition every 1-3 seconds this covers several
// minutes of outage.
const DefaultBufferCapacity = 256

// ResilientPublisher wraps a broker connection with an offline replay
// buffer. While the broker is unreachable, messages are buffered instead of
// failing; once a publish finds the connection back, buffered messages are
// drained in order first.
type ResilientPublisher struct {
	mu     sync.Mutex
	inner  RawPublisher
	buffer *replayBuffer
}

// NewResilientPublisher wraps the given publisher with a replay buffer of
// DefaultBufferCapacity.
func NewResilientPublisher(inner RawPublisher) *ResilientPublisher {
	return &ResilientPublisher{
		inner:  inner,
		buffer: newReplayBuffer(DefaultBufferCapacity),
	}
}

// Publish sends a phase change event, buffering it if the broker is down.
func (p *ResilientPublisher) Publish(t light.Transition) error {
	payload, err := FormatPayload(t)
	if err != nil {
		return fmt.Errorf("format payload: %w", err)
	}
	return p.send(bufferedMsg{topic: Topic, payload: payload, qos: 0})
}

// PublishSystem sends a system lifecycle event, buffering it if the broker
// is down.
func (p *ResilientPublisher) PublishSystem(event SystemEvent) error {
	payload, err := FormatSystemPayload(event)
	if err != nil {
		return fmt.Errorf("format system payload: %w", err)
	}
	return p.send(bufferedMsg{topic: TopicSystem, payload: payload, qos: 1, retained: event.Retained})
}

func (p *ResilientPublisher) send(msg bufferedMsg) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.inner.IsConnected() {
		p.buffer.push(msg)
		return nil
	}

	if err := p.drainLocked(); err != nil {
		// Connection dropped mid-drain; keep this message too.
		p.buffer.push(msg)
		return nil
	}

	if err := p.inner.PublishRaw(msg.topic, msg.qos, msg.retained, msg.payload); err != nil {
		p.buffer.push(msg)
		log.Printf("mqtt: publish failed, buffered: %v", err)
		return nil
	}
	return nil
}

// drainLocked replays buffered messages in order. On failure the remaining
// messages are put back for the next attempt. Caller holds p.mu.
func (p *ResilientPublisher) drainLocked() error {
	pending := p.buffer.drainAll()
	if len(pending) == 0 {
		return nil
	}

	log.Printf("mqtt: draining %d buffered messages", len(pending))
	for i, msg := range pending {
		if err := p.inner.PublishRaw(msg.topic, msg.qos, msg.retained, msg.payload); err != nil {
			for _, rest := range pending[i:] {
				p.buffer.push(rest)
			}
			return fmt.Errorf("drain: %w", err)
		}
	}
	return nil
}

// Buffered returns the number of messages waiting for the broker.
func (p *ResilientPublisher) Buffered() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.buffer.len()
}

// IsConnected reports the wrapped connection's status.
func (p *ResilientPublisher) IsConnected() bool {
	return p.inner.IsConnected()
}

// Close disconnects the wrapped publisher. Buffered messages are dropped.
func (p *ResilientPublisher) Close() error {
	return p.inner.Close()
}
