// Package feed exposes the catalog transformation endpoints: upload a raw
// catalog export, get back the canonical feed document or its diagnostics.
package feed

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/Gobusters/ectologger"
	"github.com/labstack/echo/v4"

	"github.com/stellyes/catalog-csv-filtering/pkg/csvio"
	"github.com/stellyes/catalog-csv-filtering/pkg/models"
	"github.com/stellyes/catalog-csv-filtering/pkg/pipeline"
	"github.com/stellyes/catalog-csv-filtering/pkg/reqcontext"
)

// OutputFileName is the attachment name for the transformed document.
const OutputFileName = "transformed_products.csv"

// Register registers feed routes
func Register(g *echo.Group) {
	g.POST("/feed/transform", TransformFeed)
	g.POST("/feed/inspect", InspectFeed)
}

// TransformFeed accepts a multipart CSV upload and responds with the
// transformed feed document. Summary counts travel in response headers; the
// inspect endpoint carries the full rejection log.
func TransformFeed(c echo.Context) error {
	result, err := runUpload(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := csvio.Write(&buf, result.Records); err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("failed to render output document: %v", err))
	}

	c.Response().Header().Set("Content-Disposition", `attachment; filename="`+OutputFileName+`"`)
	c.Response().Header().Set("X-Batch-Id", result.BatchID)
	c.Response().Header().Set("X-Admitted-Count", strconv.Itoa(result.AdmittedCount))
	c.Response().Header().Set("X-Rejected-Count", strconv.Itoa(len(result.Rejections)))

	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

// InspectFeed accepts the same upload and responds with the batch
// diagnostics: admitted count, rejection log, and the columns observed in the
// source header.
func InspectFeed(c echo.Context) error {
	result, err := runUpload(c)
	if err != nil {
		return err
	}

	rejections := result.Rejections
	if rejections == nil {
		rejections = []models.RejectionEntry{}
	}
	columns := result.SourceColumns
	if columns == nil {
		columns = []string{}
	}

	return c.JSON(http.StatusOK, models.InspectResponse{
		BatchID:       result.BatchID,
		AdmittedCount: result.AdmittedCount,
		RejectedCount: len(rejections),
		SourceRows:    result.SourceRows,
		SourceColumns: columns,
		Rejections:    rejections,
	})
}

// runUpload reads the uploaded document and runs it through the pipeline.
// A malformed document fails the whole batch with a 400; row-level problems
// never surface as errors.
func runUpload(c echo.Context) (*models.BatchResult, error) {
	ctx := c.Request().Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, httperror.NewHTTPError(http.StatusBadRequest, "a CSV file upload named 'file' is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, httperror.NewHTTPError(http.StatusBadRequest, "failed to open uploaded file")
	}
	defer src.Close()

	batch, err := csvio.Read(src)
	if err != nil {
		ctx, logger, _ := ectoinject.GetContext[ectologger.Logger](ctx)
		logger.WithContext(ctx).WithError(err).Warn("Rejected malformed source document")
		return nil, httperror.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("failed to process file: %v", err))
	}

	ctx, p, err := ectoinject.GetContext[*pipeline.Pipeline](ctx)
	if err != nil {
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "pipeline not available")
	}

	result := p.Run(ctx, batch)

	// Stamp the batch onto the request so the request log line carries it.
	c.SetRequest(c.Request().WithContext(reqcontext.SetBatchID(c.Request().Context(), result.BatchID)))

	return result, nil
}
