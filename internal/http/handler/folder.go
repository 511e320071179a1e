package handler

import (
	"github.com/gofiber/fiber/v2"

	"textvault/internal/http/middleware"
	"textvault/internal/service"
)

type createFolderRequest struct {
	Name string `json:"name"`
}

// CreateFolder adds a folder for the authenticated owner.
func CreateFolder(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createFolderRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
		}

		folder, err := svc.Create(c.UserContext(), middleware.OwnerID(c), req.Name)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(folder)
	}
}

// ListFolders returns the owner's folders, oldest first.
func ListFolders(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		folders, err := svc.List(c.UserContext(), middleware.OwnerID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(folders)
	}
}

// DeleteFolder removes a folder, detaching its member documents.
func DeleteFolder(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		res, err := svc.Delete(c.UserContext(), middleware.OwnerID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
