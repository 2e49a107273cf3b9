package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"catalog-assistant-be/internal/dto"
	"catalog-assistant-be/internal/pkg/logger"
	"catalog-assistant-be/pkg/gateway"
	"catalog-assistant-be/pkg/ranking"
)

// ISearchService backs the search bar suggestions and the "similar items"
// panel. Ranking itself lives in pkg/ranking; this layer owns the
// caller-side policies (min query length, event publishing).
type ISearchService interface {
	Suggestions(ctx context.Context, query string) ([]dto.RankedItemResponse, error)
	SimilarItems(ctx context.Context, offeringId string) ([]dto.RankedItemResponse, error)
}

type searchService struct {
	catalogGateway gateway.CatalogGateway
	engine         *ranking.Engine
	publisher      IPublisherService
	minQueryLen    int
	log            logger.ILogger
}

func NewSearchService(
	catalogGateway gateway.CatalogGateway,
	engine *ranking.Engine,
	publisher IPublisherService,
	minQueryLen int,
	log logger.ILogger,
) ISearchService {
	return &searchService{
		catalogGateway: catalogGateway,
		engine:         engine,
		publisher:      publisher,
		minQueryLen:    minQueryLen,
		log:            log,
	}
}

// Suggestions ranks catalog offerings against the query. Queries below the
// minimum length are suppressed here, before any lookup, to avoid degenerate
// all-equal-score noise.
func (ss *searchService) Suggestions(ctx context.Context, query string) ([]dto.RankedItemResponse, error) {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < ss.minQueryLen {
		return []dto.RankedItemResponse{}, nil
	}

	offerings, err := ss.catalogGateway.ListOfferings(ctx)
	if err != nil {
		return nil, err
	}

	pool := toCandidates(offerings)

	// Single-word queries get the cheap containment variant; multi-word
	// queries get token-set similarity
	var ranked []ranking.Scored
	if strings.ContainsRune(trimmed, ' ') {
		ranked = ss.engine.Suggest(trimmed, pool)
	} else {
		ranked = ss.engine.SubstringSuggest(trimmed, pool)
	}

	if err := ss.publisher.PublishSearchQuery(trimmed); err != nil {
		// Analytics must never break search
		ss.log.Warn("SearchService", "Failed to publish query event", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return toRankedDTOs(ranked), nil
}

// SimilarItems ranks the rest of the catalog against one offering by the
// composite name/description score. The offering itself is excluded.
func (ss *searchService) SimilarItems(ctx context.Context, offeringId string) ([]dto.RankedItemResponse, error) {
	offering, err := ss.catalogGateway.GetOffering(ctx, offeringId)
	if err != nil {
		return nil, err
	}

	offerings, err := ss.catalogGateway.ListOfferings(ctx)
	if err != nil {
		return nil, err
	}

	ref := ranking.Candidate{ID: offering.ID, Name: offering.Name, Description: offering.Description}
	ranked := ss.engine.SimilarItems(ref, toCandidates(offerings))
	return toRankedDTOs(ranked), nil
}

func toCandidates(offerings []gateway.Offering) []ranking.Candidate {
	pool := make([]ranking.Candidate, 0, len(offerings))
	for _, o := range offerings {
		pool = append(pool, ranking.Candidate{
			ID:          o.ID,
			Name:        o.Name,
			Description: o.Description,
		})
	}
	return pool
}

func toRankedDTOs(ranked []ranking.Scored) []dto.RankedItemResponse {
	out := make([]dto.RankedItemResponse, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, dto.RankedItemResponse{
			Id:          s.Candidate.ID,
			Name:        s.Candidate.Name,
			Description: s.Candidate.Description,
			Score:       s.Score,
			Rank:        s.Rank,
		})
	}
	return out
}
