package service

import (
	"context"

	"github.com/mistveil/backoffice-next/internal/model"
	"github.com/mistveil/backoffice-next/internal/model/types"
	"github.com/mistveil/backoffice-next/internal/repo"
)

type CharTemplate struct {
	CharTemplateRepo *repo.CharTemplate
}

func NewCharTemplate(charTemplateRepo *repo.CharTemplate) *CharTemplate {
	return &CharTemplate{
		CharTemplateRepo: charTemplateRepo,
	}
}

func (s *CharTemplate) GetTemplates(ctx context.Context, rarity *int) ([]*model.CharTemplate, error) {
	if rarity != nil {
		return s.CharTemplateRepo.GetTemplatesByRarity(ctx, *rarity)
	}
	return s.CharTemplateRepo.GetTemplates(ctx)
}

func (s *CharTemplate) GetTemplateByID(ctx context.Context, templateID int) (*model.CharTemplate, error) {
	return s.CharTemplateRepo.GetTemplateByID(ctx, templateID)
}

func (s *CharTemplate) CreateTemplate(ctx context.Context, request *types.CreateCharTemplateRequest) (*model.CharTemplate, error) {
	template := &model.CharTemplate{
		Name:        request.Name,
		Rarity:      request.Rarity,
		Description: request.Description,
		ImageSmURL:  request.ImageSmURL,
		ImageLgURL:  request.ImageLgURL,
		BaseHp:      request.BaseHp,
		BaseMp:      request.BaseMp,
		BaseAtk:     request.BaseAtk,
		BaseSpd:     request.BaseSpd,
		BaseDef:     request.BaseDef,
	}
	if err := s.CharTemplateRepo.CreateTemplate(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

// UpdateTemplate applies a typed partial update: only non-nil request fields
// touch the stored template.
func (s *CharTemplate) UpdateTemplate(ctx context.Context, templateID int, request *types.UpdateCharTemplateRequest) (*model.CharTemplate, error) {
	template, err := s.CharTemplateRepo.GetTemplateByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		template.Name = *request.Name
	}
	if request.Rarity != nil {
		template.Rarity = *request.Rarity
	}
	if request.Description.Valid {
		template.Description = request.Description
	}
	if request.ImageSmURL.Valid {
		template.ImageSmURL = request.ImageSmURL
	}
	if request.ImageLgURL.Valid {
		template.ImageLgURL = request.ImageLgURL
	}
	if request.BaseHp != nil {
		template.BaseHp = *request.BaseHp
	}
	if request.BaseMp != nil {
		template.BaseMp = *request.BaseMp
	}
	if request.BaseAtk != nil {
		template.BaseAtk = *request.BaseAtk
	}
	if request.BaseSpd != nil {
		template.BaseSpd = *request.BaseSpd
	}
	if request.BaseDef != nil {
		template.BaseDef = *request.BaseDef
	}

	if err := s.CharTemplateRepo.UpdateTemplate(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *CharTemplate) DeleteTemplate(ctx context.Context, templateID int) error {
	return s.CharTemplateRepo.DeleteTemplate(ctx, templateID)
}
