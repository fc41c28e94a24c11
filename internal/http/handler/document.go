package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"unidocs/internal/generator"
	"unidocs/internal/model"
	"unidocs/internal/registry"
	"unidocs/internal/service"
)

// GenerateResponse is the success body for document generation.
type GenerateResponse struct {
	Success     bool   `json:"success"`
	Filename    string `json:"filename"`
	DownloadURL string `json:"download_url"`
	Message     string `json:"message"`
	GeneratedAt string `json:"generated_at"`
}

// GenerateDocument handles POST /generate-document.
//
// @Summary Generate a university document
// @Accept json
// @Produce json
// @Param request body model.DocumentRequest true "generation request"
// @Success 201 {object} GenerateResponse
// @Router /generate-document [post]
func GenerateDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.DocumentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}

		doc, err := svc.Generate(c.UserContext(), req)
		if err != nil {
			return writeGenerateError(c, err)
		}

		return c.Status(fiber.StatusCreated).JSON(GenerateResponse{
			Success:     true,
			Filename:    doc.Filename,
			DownloadURL: service.DownloadURL(doc.Filename),
			Message:     "Document generated successfully: " + doc.Filename,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// writeGenerateError maps generation failures onto the error taxonomy:
// unknown codes are NotFound, bad student data or unsatisfiable placeholders
// are client errors, anything else is an internal error.
func writeGenerateError(c *fiber.Ctx, err error) error {
	var vErr *service.ValidationError
	var rErr *generator.RenderError
	switch {
	case errors.Is(err, registry.ErrUnknownUniversity):
		return writeError(c, fiber.StatusNotFound, "UNIVERSITY_NOT_FOUND", "unknown university code")
	case errors.Is(err, registry.ErrUnknownTemplate):
		return writeError(c, fiber.StatusNotFound, "TEMPLATE_NOT_FOUND", "unknown document type")
	case errors.As(err, &vErr):
		return writeErrorDetails(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid student data", vErr.Problems)
	case errors.As(err, &rErr):
		return writeError(c, fiber.StatusBadRequest, "RENDER_ERROR", rErr.Error())
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ListDocuments handles GET /documents with limit/offset pagination.
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// GetDocument handles GET /documents/:filename, serving indexed metadata.
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := svc.Get(c.UserContext(), c.Params("filename"))
		if err != nil {
			return writeDocumentError(c, err)
		}
		return c.JSON(doc)
	}
}

// DownloadDocument handles GET /download/:filename, streaming the artifact.
func DownloadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filename := c.Params("filename")
		rc, info, err := svc.Download(c.UserContext(), filename)
		if err != nil {
			return writeDocumentError(c, err)
		}

		ct := info.ContentType
		if ct == "" {
			ct = model.DocxContentType
		}
		c.Set(fiber.HeaderContentType, ct)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		if info.Size > 0 {
			return c.SendStream(rc, int(info.Size))
		}
		return c.SendStream(rc)
	}
}

// DeleteDocument handles DELETE /documents/:filename. Deleting an unknown or
// already-deleted filename returns 404.
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("filename")); err != nil {
			return writeDocumentError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func writeDocumentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
	case errors.Is(err, service.ErrFilenameRequired), errors.Is(err, service.ErrFilenameInvalid):
		return writeError(c, fiber.StatusBadRequest, "INVALID_FILENAME", "invalid filename")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
