package controller

import (
	"plot-editor-be/internal/dto"
	"plot-editor-be/internal/pkg/serverutils"
	"plot-editor-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPlotController interface {
	RegisterRoutes(r fiber.Router)
	GetAllByEpisode(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	SaveContent(ctx *fiber.Ctx) error
	GetContent(ctx *fiber.Ctx) error
}

type plotController struct {
	service service.IPlotService
}

func NewPlotController(service service.IPlotService) IPlotController {
	return &plotController{service: service}
}

func (c *plotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/plot/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("episode/:episodeId", c.GetAllByEpisode)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Put(":id/content", c.SaveContent)
	h.Get(":id/content", c.GetContent)
}

func (c *plotController) GetAllByEpisode(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	episodeId, _ := uuid.Parse(ctx.Params("episodeId"))

	res, err := c.service.GetAllByEpisode(ctx.Context(), userId, episodeId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get plots", res))
}

func (c *plotController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreatePlotRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create plot", res))
}

func (c *plotController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	id, _ := uuid.Parse(ctx.Params("id"))

	res, err := c.service.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show plot", res))
}

func (c *plotController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	id, _ := uuid.Parse(ctx.Params("id"))

	var req dto.UpdatePlotRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update plot", res))
}

func (c *plotController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	id, _ := uuid.Parse(ctx.Params("id"))

	if err := c.service.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete plot", nil))
}

// SaveContent stores the raw request body as the plot's document. The body
// is the editor's own JSON; it is not validated here.
func (c *plotController) SaveContent(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	id, _ := uuid.Parse(ctx.Params("id"))

	body := make([]byte, len(ctx.Body()))
	copy(body, ctx.Body())

	req := dto.SavePlotContentRequest{Id: id, Content: body}
	if err := c.service.SaveContent(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success save plot content", nil))
}

// GetContent returns the stored document verbatim, or "{}" when the plot
// has no content yet.
func (c *plotController) GetContent(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	id, _ := uuid.Parse(ctx.Params("id"))

	data, err := c.service.GetContent(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Send(data)
}
