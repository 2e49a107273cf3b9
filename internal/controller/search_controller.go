package controller

import (
	"catalog-assistant-be/internal/pkg/serverutils"
	"catalog-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	Suggestions(ctx *fiber.Ctx) error
	SimilarItems(ctx *fiber.Ctx) error
	TopQueries(ctx *fiber.Ctx) error
}

type searchController struct {
	searchService   service.ISearchService
	consumerService service.IConsumerService
}

func NewSearchController(searchService service.ISearchService, consumerService service.IConsumerService) ISearchController {
	return &searchController{
		searchService:   searchService,
		consumerService: consumerService,
	}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/search/v1")
	h.Get("suggestions", c.Suggestions)
	h.Get("similar/:id", c.SimilarItems)
	h.Get("top-queries", c.TopQueries)
}

func (c *searchController) Suggestions(ctx *fiber.Ctx) error {
	query := ctx.Query("q")

	res, err := c.searchService.Suggestions(ctx.Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get suggestions", res))
}

func (c *searchController) SimilarItems(ctx *fiber.Ctx) error {
	res, err := c.searchService.SimilarItems(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get similar items", res))
}

func (c *searchController) TopQueries(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 10)

	res := c.consumerService.TopQueries(limit)
	return ctx.JSON(serverutils.SuccessResponse("Success get top queries", res))
}
