package controller

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"business-chat-be/internal/apperrors"
	"business-chat-be/internal/dto"
	"business-chat-be/internal/pkg/serverutils"
	"business-chat-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type chatController struct {
	documentService service.IDocumentService
	chatService     service.IChatService
}

func NewChatController(
	documentService service.IDocumentService,
	chatService service.IChatService,
) IChatController {
	return &chatController{
		documentService: documentService,
		chatService:     chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("upload", c.Upload)
	h.Post("send", c.Send)
	h.Get("history/:id", c.History)
}

func (c *chatController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return apperrors.NewValidation("no file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperrors.NewValidation("unable to read uploaded file")
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return apperrors.NewValidation("unable to read uploaded file")
	}

	// Optional: reuse an existing session for the new document.
	sessionID := ctx.FormValue("session_id")

	res, err := c.documentService.Ingest(ctx.Context(), sessionID, fileHeader.Filename, raw)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload document", res))
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidation("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendChat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	res, err := c.chatService.GetHistory(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get history", res))
}
