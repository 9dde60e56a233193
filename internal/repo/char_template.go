package repo

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/mistveil/backoffice-next/internal/model"
	"github.com/mistveil/backoffice-next/internal/repo/selector"
)

type CharTemplate struct {
	db  *bun.DB
	sel selector.S[model.CharTemplate]
}

func NewCharTemplate(db *bun.DB) *CharTemplate {
	return &CharTemplate{
		db:  db,
		sel: selector.New[model.CharTemplate](db),
	}
}

func (r *CharTemplate) GetTemplates(ctx context.Context) ([]*model.CharTemplate, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("template_id ASC")
	})
}

func (r *CharTemplate) GetTemplatesByRarity(ctx context.Context, rarity int) ([]*model.CharTemplate, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("rarity = ?", rarity).Order("template_id ASC")
	})
}

func (r *CharTemplate) GetTemplateByID(ctx context.Context, templateID int) (*model.CharTemplate, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("template_id = ?", templateID)
	})
}

func (r *CharTemplate) CreateTemplate(ctx context.Context, template *model.CharTemplate) error {
	_, err := r.db.NewInsert().
		Model(template).
		Returning("template_id").
		Exec(ctx)
	return err
}

func (r *CharTemplate) UpdateTemplate(ctx context.Context, template *model.CharTemplate) error {
	res, err := r.db.NewUpdate().
		Model(template).
		WherePK().
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *CharTemplate) DeleteTemplate(ctx context.Context, templateID int) error {
	res, err := r.db.NewDelete().
		Model((*model.CharTemplate)(nil)).
		Where("template_id = ?", templateID).
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
