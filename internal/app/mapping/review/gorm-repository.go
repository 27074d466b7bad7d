package review_repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/init-pkg/column-mapper/domain/app"
	"gorm.io/gorm"
)

type committedMappingModel struct {
	UploadID     string `gorm:"primaryKey"`
	IndustryType string
	Confidence   float64
	Result       []byte `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (committedMappingModel) TableName() string {
	return "committed_mappings"
}

type GormRepository struct {
	db *gorm.DB
}

var _ app.ReviewRepository = &GormRepository{}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Save(ctx context.Context, m *app.CommittedMapping) error {
	b, err := json.Marshal(m.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	model := committedMappingModel{
		UploadID:     m.UploadID,
		IndustryType: m.Result.IndustryType,
		Confidence:   m.Result.Confidence,
		Result:       b,
	}
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return fmt.Errorf("save committed mapping %s: %w", m.UploadID, err)
	}
	return nil
}

func (r *GormRepository) Find(ctx context.Context, uploadID string) (*app.CommittedMapping, error) {
	var model committedMappingModel
	err := r.db.WithContext(ctx).Where("upload_id = ?", uploadID).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, app.ErrCommitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find committed mapping %s: %w", uploadID, err)
	}

	var result app.MappingResult
	if err := json.Unmarshal(model.Result, &result); err != nil {
		return nil, fmt.Errorf("decode committed mapping %s: %w", uploadID, err)
	}
	return &app.CommittedMapping{UploadID: model.UploadID, Result: result}, nil
}
