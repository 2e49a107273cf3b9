package dto

type RankedItemResponse struct {
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
	Rank        int     `json:"rank"`
}

type TopQueryResponse struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}
