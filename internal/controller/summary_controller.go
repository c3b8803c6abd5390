package controller

import (
	"plot-editor-be/internal/dto"
	"plot-editor-be/internal/pkg/serverutils"
	"plot-editor-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISummaryController interface {
	RegisterRoutes(r fiber.Router)
	SummarizeCharacter(ctx *fiber.Ctx) error
	SummarizeWork(ctx *fiber.Ctx) error
	SummarizeEpisode(ctx *fiber.Ctx) error
	SummarizePlot(ctx *fiber.Ctx) error
}

type summaryController struct {
	service service.ISummaryService
}

func NewSummaryController(service service.ISummaryService) ISummaryController {
	return &summaryController{service: service}
}

func (c *summaryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/summary/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("character/:id", c.SummarizeCharacter)
	h.Post("work/:id", c.SummarizeWork)
	h.Post("episode/:id", c.SummarizeEpisode)
	h.Post("plot/:id", c.SummarizePlot)
}

// parseSummarizeRequest tolerates an empty body: a bare POST is a fresh
// summarization.
func parseSummarizeRequest(ctx *fiber.Ctx) *dto.SummarizeRequest {
	var req dto.SummarizeRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return &dto.SummarizeRequest{}
		}
	}
	return &req
}

func (c *summaryController) SummarizeCharacter(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.SummarizeCharacter(ctx.Context(), userId, id, parseSummarizeRequest(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success summarize character", res))
}

func (c *summaryController) SummarizeWork(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.SummarizeWork(ctx.Context(), userId, id, parseSummarizeRequest(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success summarize work", res))
}

func (c *summaryController) SummarizeEpisode(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.SummarizeEpisode(ctx.Context(), userId, id, parseSummarizeRequest(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success summarize episode", res))
}

func (c *summaryController) SummarizePlot(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.SummarizePlot(ctx.Context(), userId, id, parseSummarizeRequest(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success summarize plot", res))
}
