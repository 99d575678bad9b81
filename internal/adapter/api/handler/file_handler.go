package handler

import (
	"github.com/labstack/echo/v4"

	"influmarket/internal/usecase"
	"influmarket/pkg/errors"
	"influmarket/pkg/response"
)

type FileHandler struct {
	userUseCase *usecase.UserUseCase
	fileUseCase *usecase.FileUseCase
}

func NewFileHandler(userUseCase *usecase.UserUseCase, fileUseCase *usecase.FileUseCase) *FileHandler {
	return &FileHandler{
		userUseCase: userUseCase,
		fileUseCase: fileUseCase,
	}
}

// UploadChatFile stores an attachment and returns its URL. The caller then
// references the URL in a send_message payload.
func (h *FileHandler) UploadChatFile(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("No file provided", err))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to open uploaded file", err))
	}
	defer src.Close()

	userID := c.Get("uid").(string)
	meta, err := h.fileUseCase.UploadChatFile(c.Request().Context(), userID, src, fileHeader.Filename, fileHeader.Size)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, meta)
}

func (h *FileHandler) DeleteFile(c echo.Context) error {
	userID := c.Get("uid").(string)
	if err := h.fileUseCase.Delete(c.Request().Context(), userID, c.Param("fileId")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "File deleted"})
}

func (h *FileHandler) UploadProfileImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("No file provided", err))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to open uploaded file", err))
	}
	defer src.Close()

	userID := c.Get("uid").(string)
	result, err := h.userUseCase.UploadProfileImage(c.Request().Context(), userID, src, fileHeader.Filename, fileHeader.Size)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, result)
}
