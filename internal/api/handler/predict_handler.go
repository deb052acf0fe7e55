package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gradefresh/quality-api/internal/core/domain"
	"github.com/gradefresh/quality-api/internal/core/ports"
)

type predictResponse struct {
	Filename string          `json:"filename"`
	Verdict  *domain.Verdict `json:"verdict"`
}

type predictBatchResponse struct {
	Count   int                     `json:"count"`
	Results []ports.BatchItemResult `json:"results"`
}

type classesResponse struct {
	Classes []string `json:"classes"`
}

// PredictHandler handles image classification requests.
type PredictHandler struct {
	grading ports.GradingService
}

func NewPredictHandler(grading ports.GradingService) *PredictHandler {
	return &PredictHandler{grading: grading}
}

// Predict classifies a single uploaded image.
//
// @Summary      Classify a single image
// @Tags         predict
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      200   {object}  predictResponse
// @Failure      400   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /predict [post]
func (h *PredictHandler) Predict(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	data, err := readUpload(fh)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read file")
	}

	verdict, err := h.grading.Classify(c.Request().Context(), fh.Filename, data)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, predictResponse{Filename: fh.Filename, Verdict: verdict})
}

// PredictBatch classifies up to 10 uploaded images, isolating per-item failures.
//
// @Summary      Classify a batch of images
// @Tags         predict
// @Accept       multipart/form-data
// @Produce      json
// @Param        files  formData  file  true  "Image files (max 10)"
// @Success      200    {object}  predictBatchResponse
// @Failure      400    {object}  errorResponse
// @Failure      503    {object}  errorResponse
// @Router       /predict-batch [post]
func (h *PredictHandler) PredictBatch(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
	}

	files := form.File["files"]
	if len(files) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one file is required")
	}
	if len(files) > ports.MaxBatchSize {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("too many files: %d, max %d", len(files), ports.MaxBatchSize))
	}

	items := make([]ports.BatchItem, 0, len(files))
	for _, fh := range files {
		data, err := readUpload(fh)
		if err != nil {
			// Unreadable uploads still occupy a result slot; empty data fails
			// the image sniff in the service, not the whole batch.
			data = nil
		}
		items = append(items, ports.BatchItem{Filename: fh.Filename, Data: data})
	}

	results, err := h.grading.ClassifyBatch(c.Request().Context(), items)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, predictBatchResponse{Count: len(results), Results: results})
}

// Classes returns the model's class labels.
//
// @Summary      List model classes
// @Tags         predict
// @Produce      json
// @Success      200  {object}  classesResponse
// @Failure      503  {object}  errorResponse
// @Router       /classes [get]
func (h *PredictHandler) Classes(c echo.Context) error {
	classes, err := h.grading.Classes()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classesResponse{Classes: classes})
}

// ModelInfo returns metadata about the loaded model.
//
// @Summary      Model information
// @Tags         predict
// @Produce      json
// @Success      200  {object}  ports.ModelInfo
// @Failure      503  {object}  errorResponse
// @Router       /model-info [get]
func (h *PredictHandler) ModelInfo(c echo.Context) error {
	info, err := h.grading.ModelInfo()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
