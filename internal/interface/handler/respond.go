// Package handler provides the HTTP handlers of the API. Handlers bind
// and validate request bodies, gate mutations through the ownership
// checkers and translate domain errors into HTTP statuses.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/domain"
	"recipe_backend/internal/interface/dto"
	jwtmw "recipe_backend/internal/platform/jwt"
)

// maxImageSize bounds uploaded image bodies.
const maxImageSize = 10 << 20

// AdminRole grants every gated operation regardless of ownership.
const AdminRole = "ROLE_ADMIN"

// writeError translates a domain error into an HTTP response. Unknown
// errors are logged and folded into a 500 without leaking internals.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrMenuNotFound),
		errors.Is(err, domain.ErrIngredientNotFound),
		errors.Is(err, domain.ErrCommentNotFound),
		errors.Is(err, domain.ErrImageNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "invalid username or password"})
	default:
		slog.Error("request failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}

// pathID parses the :id path parameter, writing a 400 on garbage.
func pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// ownershipCheck is the shape shared by all checker predicates.
type ownershipCheck func(ctx context.Context, id uint, username string) (bool, error)

// isAdmin reports whether the authenticated principal carries AdminRole.
func isAdmin(c *gin.Context) bool {
	for _, role := range jwtmw.PrincipalRoles(c) {
		if role == AdminRole {
			return true
		}
	}
	return false
}

// authorize gates a mutation on the given ownership predicate, with
// AdminRole as an override. A missing target surfaces as 404 through
// the checker's typed error; a plain denial as 403. Returns false after
// writing the response when the request must not proceed.
func authorize(c *gin.Context, id uint, check ownershipCheck) bool {
	if isAdmin(c) {
		return true
	}
	ok, err := check(c.Request.Context(), id, jwtmw.PrincipalUsername(c))
	if err != nil {
		writeError(c, err)
		return false
	}
	if !ok {
		slog.Warn("authorization denied",
			"username", jwtmw.PrincipalUsername(c), "path", c.FullPath(), "id", id)
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "forbidden"})
		return false
	}
	return true
}

// requireAdmin gates an operation on AdminRole alone.
func requireAdmin(c *gin.Context) bool {
	if isAdmin(c) {
		return true
	}
	slog.Warn("authorization denied",
		"username", jwtmw.PrincipalUsername(c), "path", c.FullPath())
	c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "forbidden"})
	return false
}

// readImageFile pulls the "file" part out of a multipart upload,
// writing a 400 on a missing or oversized part.
func readImageFile(c *gin.Context) ([]byte, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing file"})
		return nil, false
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "file too large"})
		return nil, false
	}
	f, err := fileHeader.Open()
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, maxImageSize+1))
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	if len(data) > maxImageSize {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "file too large"})
		return nil, false
	}
	return data, true
}

// serveImage writes raw image bytes with a sniffed content type.
func serveImage(c *gin.Context, data []byte) {
	c.Data(http.StatusOK, http.DetectContentType(data), data)
}
