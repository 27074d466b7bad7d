package dtos

import "github.com/init-pkg/column-mapper/domain/app"

type MapHeadersRequest struct {
	Headers    []string         `json:"headers" validate:"required,min=1,dive,required"`
	SampleRows []map[string]any `json:"sampleRows"`
	Industry   string           `json:"industry"`
	Strategy   string           `json:"strategy" validate:"omitempty,oneof=local external auto"`
}

type UploadMappingRequest struct {
	Industry string `form:"industry" json:"industry"`
	Strategy string `form:"strategy" json:"strategy" validate:"omitempty,oneof=local external auto"`
}

type CommitMappingRequest struct {
	UploadID  string            `json:"uploadId" validate:"required,uuid"`
	Headers   []string          `json:"headers" validate:"required,min=1"`
	Result    app.MappingResult `json:"result"`
	Overrides []app.Override    `json:"overrides" validate:"dive"`
}

type IndustryResponse struct {
	Name   string               `json:"name"`
	Fields []app.CanonicalField `json:"fields"`
}
