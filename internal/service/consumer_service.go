package service

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"catalog-assistant-be/internal/dto"
	"catalog-assistant-be/internal/pkg/logger"
)

// IConsumerService aggregates published search queries in memory so the
// analyst dashboard can show what users are looking for. Counts live for the
// process lifetime only.
type IConsumerService interface {
	Consume(ctx context.Context) error
	TopQueries(limit int) []dto.TopQueryResponse
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	log       logger.ILogger

	mu     sync.Mutex
	counts map[string]int
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		log:       log,
		counts:    make(map[string]int),
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.SearchQueryMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("ConsumerService", "Failed to unmarshal query event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	key := strings.ToLower(strings.TrimSpace(payload.Query))
	if key != "" {
		cs.mu.Lock()
		cs.counts[key]++
		cs.mu.Unlock()
	}

	msg.Ack()
}

func (cs *consumerService) TopQueries(limit int) []dto.TopQueryResponse {
	cs.mu.Lock()
	out := make([]dto.TopQueryResponse, 0, len(cs.counts))
	for q, n := range cs.counts {
		out = append(out, dto.TopQueryResponse{Query: q, Count: n})
	}
	cs.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Query < out[j].Query
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
