package service

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-assistant-be/internal/dto"
	"catalog-assistant-be/internal/pkg/logger"
)

const testQueryTopic = "SEARCH_QUERY"

func newConsumerFixture(t *testing.T) (*gochannel.GoChannel, IPublisherService, IConsumerService) {
	t.Helper()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { pubSub.Close() })

	publisher := NewPublisherService(testQueryTopic, pubSub)
	consumer := NewConsumerService(pubSub, testQueryTopic, logger.NewNopLogger())
	require.NoError(t, consumer.Consume(context.Background()))

	return pubSub, publisher, consumer
}

func totalCount(consumer IConsumerService) int {
	total := 0
	for _, q := range consumer.TopQueries(0) {
		total += q.Count
	}
	return total
}

func TestConsumerAggregatesQueries(t *testing.T) {
	_, publisher, consumer := newConsumerFixture(t)

	// Same query in different casing/whitespace counts as one key; blank
	// queries are dropped.
	inputs := []string{"laptop", "Laptop ", "desk lamp", "laptop", "   ", "desk lamp", "monitor"}
	for _, q := range inputs {
		require.NoError(t, publisher.PublishSearchQuery(q))
	}

	require.Eventually(t, func() bool {
		return totalCount(consumer) == 6
	}, time.Second, 10*time.Millisecond)

	top := consumer.TopQueries(0)
	require.Len(t, top, 3)
	assert.Equal(t, dto.TopQueryResponse{Query: "laptop", Count: 3}, top[0])
	assert.Equal(t, dto.TopQueryResponse{Query: "desk lamp", Count: 2}, top[1])
	assert.Equal(t, dto.TopQueryResponse{Query: "monitor", Count: 1}, top[2])
}

func TestConsumerTopQueriesOrdering(t *testing.T) {
	_, publisher, consumer := newConsumerFixture(t)

	for _, q := range []string{"zebra", "apple", "mango", "mango"} {
		require.NoError(t, publisher.PublishSearchQuery(q))
	}

	require.Eventually(t, func() bool {
		return totalCount(consumer) == 4
	}, time.Second, 10*time.Millisecond)

	t.Run("equal counts break ties alphabetically", func(t *testing.T) {
		top := consumer.TopQueries(0)
		require.Len(t, top, 3)
		assert.Equal(t, "mango", top[0].Query)
		assert.Equal(t, "apple", top[1].Query)
		assert.Equal(t, "zebra", top[2].Query)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		top := consumer.TopQueries(2)
		require.Len(t, top, 2)
		assert.Equal(t, "mango", top[0].Query)
	})
}

func TestConsumerSkipsMalformedPayload(t *testing.T) {
	pubSub, publisher, consumer := newConsumerFixture(t)

	// A garbage frame must be acked and skipped, not wedge the consumer.
	require.NoError(t, pubSub.Publish(testQueryTopic, message.NewMessage(watermill.NewUUID(), []byte("not json"))))
	require.NoError(t, publisher.PublishSearchQuery("laptop"))

	require.Eventually(t, func() bool {
		top := consumer.TopQueries(0)
		return len(top) == 1 && top[0].Count == 1
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, []dto.TopQueryResponse{{Query: "laptop", Count: 1}}, consumer.TopQueries(0))
}
