package controller

import (
	"plot-editor-be/internal/dto"
	"plot-editor-be/internal/pkg/serverutils"
	"plot-editor-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IGraphController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
}

type graphController struct {
	service service.IGraphService
}

func NewGraphController(service service.IGraphService) IGraphController {
	return &graphController{service: service}
}

func (c *graphController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/graph-layout/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get(":workId", c.Show)
	h.Put(":workId", c.Save)
}

func (c *graphController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	workId, _ := uuid.Parse(ctx.Params("workId"))

	res, err := c.service.Show(ctx.Context(), userId, workId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get graph layout", res))
}

func (c *graphController) Save(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	workId, _ := uuid.Parse(ctx.Params("workId"))

	var req dto.SaveGraphLayoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.WorkId = workId
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.Save(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success save graph layout", nil))
}
