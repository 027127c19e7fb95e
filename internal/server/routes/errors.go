package routes

import (
	"errors"
	"net/http"

	"github.com/OFFIS-RIT/npdirectory/backend/pkg/logger"
	"github.com/OFFIS-RIT/npdirectory/backend/pkg/relation"

	"github.com/labstack/echo/v4"
)

type messageResponse struct {
	Message string `json:"message"`
}

// relationErrorStatus maps core errors onto HTTP status codes and client
// facing messages. Unknown errors become a generic 500.
func relationErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, relation.ErrDuplicateEdge):
		return http.StatusConflict, "Relation already exists"
	case errors.Is(err, relation.ErrNotFound):
		return http.StatusNotFound, "Relation not found"
	case errors.Is(err, relation.ErrUnknownRelationType):
		return http.StatusBadRequest, "Unknown relation type"
	case errors.Is(err, relation.ErrIntegrityViolation):
		return http.StatusBadRequest, "Invalid relation"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func relationError(c echo.Context, op string, err error) error {
	status, message := relationErrorStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("[Relation]["+op+"] Request failed", "err", err)
	} else {
		logger.Debug("[Relation]["+op+"] Request rejected", "status", status, "err", err)
	}
	return c.JSON(status, messageResponse{Message: message})
}

func internalError(c echo.Context, op string, err error) error {
	logger.Error("[Relation]["+op+"] Request failed", "err", err)
	return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
}

func invalidParams(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid request params"})
}
