package repo

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/mistveil/backoffice-next/internal/model"
	"github.com/mistveil/backoffice-next/internal/repo/selector"
)

type Account struct {
	db  *bun.DB
	sel selector.S[model.User]
}

func NewAccount(db *bun.DB) *Account {
	return &Account{
		db:  db,
		sel: selector.New[model.User](db),
	}
}

func (r *Account) GetUsers(ctx context.Context) ([]*model.User, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("user_id ASC")
	})
}

func (r *Account) GetUserByID(ctx context.Context, userID int) (*model.User, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("user_id = ?", userID)
	})
}

func (r *Account) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("username = ?", username)
	})
}

func (r *Account) TouchLastLogin(ctx context.Context, userID int, at time.Time) error {
	res, err := r.db.NewUpdate().
		Model((*model.User)(nil)).
		Set("last_login = ?", at).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
