package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-assistant-be/internal/pkg/logger"
	"catalog-assistant-be/pkg/gateway"
	"catalog-assistant-be/pkg/ranking"
)

type stubGateway struct {
	offerings []gateway.Offering
	failWith  error
	listCalls int
}

func (s *stubGateway) ListOfferings(ctx context.Context) ([]gateway.Offering, error) {
	s.listCalls++
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.offerings, nil
}

func (s *stubGateway) GetOffering(ctx context.Context, id string) (*gateway.Offering, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for _, o := range s.offerings {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, errors.New("offering not found: " + id)
}

func (s *stubGateway) ListOrders(ctx context.Context) ([]gateway.Order, error) {
	return nil, nil
}

func (s *stubGateway) ListUsers(ctx context.Context) ([]gateway.User, error) {
	return nil, nil
}

type stubPublisher struct {
	queries []string
}

func (s *stubPublisher) PublishSearchQuery(query string) error {
	s.queries = append(s.queries, query)
	return nil
}

func catalogFixture() []gateway.Offering {
	return []gateway.Offering{
		{ID: "a1", Name: "Laptop Pro 15", Description: "Powerful laptop for professionals"},
		{ID: "a2", Name: "Laptop Air 13", Description: "Light laptop for travel"},
		{ID: "a3", Name: "Desk Lamp", Description: "LED lamp"},
	}
}

func TestSuggestions(t *testing.T) {
	t.Run("short queries are suppressed without a lookup", func(t *testing.T) {
		gw := &stubGateway{offerings: catalogFixture()}
		pub := &stubPublisher{}
		svc := NewSearchService(gw, ranking.NewEngine(), pub, 3, logger.NewNopLogger())

		got, err := svc.Suggestions(context.Background(), "la")

		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Equal(t, 0, gw.listCalls)
		assert.Empty(t, pub.queries)
	})

	t.Run("ranks offerings and publishes the query", func(t *testing.T) {
		gw := &stubGateway{offerings: catalogFixture()}
		pub := &stubPublisher{}
		svc := NewSearchService(gw, ranking.NewEngine(), pub, 3, logger.NewNopLogger())

		got, err := svc.Suggestions(context.Background(), "laptop pro")

		require.NoError(t, err)
		require.NotEmpty(t, got)
		assert.Equal(t, "a1", got[0].Id)
		assert.Equal(t, []string{"laptop pro"}, pub.queries)
	})

	t.Run("gateway failure surfaces as an error", func(t *testing.T) {
		gw := &stubGateway{failWith: errors.New("connection refused")}
		svc := NewSearchService(gw, ranking.NewEngine(), &stubPublisher{}, 3, logger.NewNopLogger())

		_, err := svc.Suggestions(context.Background(), "laptop")
		assert.Error(t, err)
	})
}

func TestSimilarItems(t *testing.T) {
	gw := &stubGateway{offerings: catalogFixture()}
	svc := NewSearchService(gw, ranking.NewEngine(), &stubPublisher{}, 3, logger.NewNopLogger())

	got, err := svc.SimilarItems(context.Background(), "a1")

	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, item := range got {
		assert.NotEqual(t, "a1", item.Id)
	}
	assert.Equal(t, "a2", got[0].Id)
}
