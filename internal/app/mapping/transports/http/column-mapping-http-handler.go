package column_mapping_http_handler

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/init-pkg/column-mapper/domain/app"
	"github.com/init-pkg/column-mapper/domain/dtos"
)

type ColumnMappingHttpHandler struct {
	service  app.MappingService
	registry app.SchemaRegistry
	validate *validator.Validate
	log      *slog.Logger
}

func New(service app.MappingService, registry app.SchemaRegistry, validate *validator.Validate, log *slog.Logger) *ColumnMappingHttpHandler {
	return &ColumnMappingHttpHandler{service, registry, validate, log}
}

func (this *ColumnMappingHttpHandler) Register(mainApp *fiber.App) {
	var api = mainApp.Group("/api/v1")

	api.Get("/industries", this.industries)

	var mappings = api.Group("/column-mappings")
	mappings.Post("/headers", this.mapHeaders)
	mappings.Post("/upload", this.upload)
	mappings.Post("/commit", this.commit)
	mappings.Get("/commits/:uploadId", this.committed)
}

// industries godoc
// @Summary      List industries
// @Description  Registered industries with their canonical fields
// @Tags         industries
// @Produce      json
// @Success      200  {array}  dtos.IndustryResponse
// @Router       /industries [get]
func (this *ColumnMappingHttpHandler) industries(fctx fiber.Ctx) error {
	var names = this.registry.Industries()
	var res = make([]dtos.IndustryResponse, 0, len(names))
	for _, name := range names {
		res = append(res, dtos.IndustryResponse{Name: name, Fields: this.registry.CatalogueFor(name)})
	}
	return fctx.JSON(res)
}

// mapHeaders godoc
// @Summary      Map a header row
// @Tags         column-mappings
// @Accept       json
// @Produce      json
// @Param        request  body      dtos.MapHeadersRequest  true  "Headers to map"
// @Success      200      {object}  app.MapResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /column-mappings/headers [post]
func (this *ColumnMappingHttpHandler) mapHeaders(fctx fiber.Ctx) error {
	var req dtos.MapHeadersRequest
	if err := this.decode(fctx, &req); err != nil {
		return err
	}

	res, err := this.service.MapHeaders(fctx.Context(), req.Headers, req.SampleRows, req.Industry, req.Strategy)
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	return fctx.JSON(res)
}

// upload godoc
// @Summary      Map the header row of a spreadsheet
// @Description  Accepts .csv, .xlsx and .xls files. The first sheet's first row is the header row.
// @Tags         column-mappings
// @Accept       mpfd
// @Produce      json
// @Param        file      formData  file    true   "Spreadsheet"
// @Param        industry  formData  string  false  "Industry hint"
// @Param        strategy  formData  string  false  "local, external or auto"
// @Success      200       {object}  app.MapResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      422       {object}  ErrorResponse
// @Router       /column-mappings/upload [post]
func (this *ColumnMappingHttpHandler) upload(fctx fiber.Ctx) error {
	var req = dtos.UploadMappingRequest{
		Industry: fctx.FormValue("industry"),
		Strategy: fctx.FormValue("strategy"),
	}
	if err := this.validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	fh, err := fctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	file, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	res, e := this.service.MapFile(fctx.Context(), fh.Filename, file, req.Industry, req.Strategy)
	if e != nil {
		this.log.Warn("upload rejected", "file", fh.Filename, "error", e)
		return fiber.NewError(fiber.StatusUnprocessableEntity, e.Error())
	}
	return fctx.JSON(res)
}

// commit godoc
// @Summary      Commit a reviewed mapping
// @Tags         column-mappings
// @Accept       json
// @Produce      json
// @Param        request  body      dtos.CommitMappingRequest  true  "Reviewed mapping"
// @Success      200      {object}  app.MapResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /column-mappings/commit [post]
func (this *ColumnMappingHttpHandler) commit(fctx fiber.Ctx) error {
	var req dtos.CommitMappingRequest
	if err := this.decode(fctx, &req); err != nil {
		return err
	}

	res, err := this.service.Commit(fctx.Context(), req.UploadID, req.Headers, req.Result, req.Overrides)
	if err != nil {
		return err
	}
	return fctx.JSON(res)
}

// committed godoc
// @Summary      Get a committed mapping
// @Tags         column-mappings
// @Produce      json
// @Param        uploadId  path      string  true  "Upload id"
// @Success      200       {object}  app.CommittedMapping
// @Failure      404       {object}  ErrorResponse
// @Router       /column-mappings/commits/{uploadId} [get]
func (this *ColumnMappingHttpHandler) committed(fctx fiber.Ctx) error {
	var uploadID = fctx.Params("uploadId")

	res, err := this.service.Committed(fctx.Context(), uploadID)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, app.ErrCommitNotFound.Error())
	}
	return fctx.JSON(res)
}

func (this *ColumnMappingHttpHandler) decode(fctx fiber.Ctx, dst any) error {
	if err := json.Unmarshal(fctx.Body(), dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json body: "+err.Error())
	}
	if err := this.validate.Struct(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}
