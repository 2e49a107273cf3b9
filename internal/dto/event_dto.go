package dto

import "time"

// SearchQueryMessage is the payload published for every accepted search
// query, consumed by the in-process analytics aggregator.
type SearchQueryMessage struct {
	Query      string    `json:"query"`
	OccurredAt time.Time `json:"occurred_at"`
}
