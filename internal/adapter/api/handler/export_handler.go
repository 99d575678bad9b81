package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"influmarket/internal/usecase"
	"influmarket/pkg/response"
)

type ExportHandler struct {
	exportUseCase *usecase.ExportUseCase
}

func NewExportHandler(exportUseCase *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{
		exportUseCase: exportUseCase,
	}
}

func (h *ExportHandler) StartExport(c echo.Context) error {
	taskID := h.exportUseCase.Start()
	return c.JSON(http.StatusAccepted, map[string]string{"task_id": taskID})
}

// Download reports the task state until the file is ready, then serves it as
// an attachment.
func (h *ExportHandler) Download(c echo.Context) error {
	taskID := c.Param("taskId")

	task, err := h.exportUseCase.Status(taskID)
	if err != nil {
		return response.Error(c, err)
	}

	switch task.State {
	case usecase.TaskStatePending:
		return c.JSON(http.StatusAccepted, map[string]string{"message": "Task is pending"})
	case usecase.TaskStateFailure:
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Task failed"})
	}

	path, err := h.exportUseCase.FilePath(taskID)
	if err != nil {
		return response.Error(c, err)
	}
	return c.Attachment(path, task.Filename)
}
