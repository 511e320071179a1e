package handler

import (
	"github.com/gofiber/fiber/v2"

	"textvault/internal/http/middleware"
	"textvault/internal/repository"
	"textvault/internal/service"
)

// SearchDocuments matches the q query parameter against the owner's
// documents. The search_type parameter selects the scope: all (default),
// filename or content.
func SearchDocuments(svc service.SearchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scope := repository.SearchScope(c.Query("search_type", string(repository.ScopeAll)))

		res, err := svc.Search(c.UserContext(), middleware.OwnerID(c), c.Query("q"), scope)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
