package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"airline-ticketing/internal/data/entity"
	"airline-ticketing/pkg/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DraftRepository stores in-progress purchases in redis. Each account holds at
// most one draft; the TTL is refreshed on every save so an active buyer never
// loses the draft mid-flow.
type DraftRepository interface {
	Get(ctx context.Context, accountID uuid.UUID) (*entity.PurchaseDraft, error)
	Save(ctx context.Context, accountID uuid.UUID, draft *entity.PurchaseDraft) error
	Clear(ctx context.Context, accountID uuid.UUID) error
}

type draftRepository struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewDraftRepository(rdb *redis.Client, config utils.PurchaseConfig, log *zap.Logger) DraftRepository {
	return &draftRepository{
		rdb: rdb,
		ttl: time.Duration(config.DraftTTLMinutes) * time.Minute,
		log: log.With(zap.String("repository", "draft")),
	}
}

func draftKey(accountID uuid.UUID) string {
	return fmt.Sprintf("purchase:draft:%s", accountID.String())
}

func (r *draftRepository) Get(ctx context.Context, accountID uuid.UUID) (*entity.PurchaseDraft, error) {
	data, err := r.rdb.Get(ctx, draftKey(accountID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to get purchase draft",
			zap.Error(err),
			zap.String("account_id", accountID.String()),
		)
		return nil, fmt.Errorf("get purchase draft for %s: %w", accountID.String(), err)
	}

	var draft entity.PurchaseDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		r.log.Error("Failed to decode purchase draft",
			zap.Error(err),
			zap.String("account_id", accountID.String()),
		)
		return nil, fmt.Errorf("decode purchase draft for %s: %w", accountID.String(), err)
	}

	return &draft, nil
}

func (r *draftRepository) Save(ctx context.Context, accountID uuid.UUID, draft *entity.PurchaseDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode purchase draft for %s: %w", accountID.String(), err)
	}

	if err := r.rdb.Set(ctx, draftKey(accountID), data, r.ttl).Err(); err != nil {
		r.log.Error("Failed to save purchase draft",
			zap.Error(err),
			zap.String("account_id", accountID.String()),
		)
		return fmt.Errorf("save purchase draft for %s: %w", accountID.String(), err)
	}

	return nil
}

func (r *draftRepository) Clear(ctx context.Context, accountID uuid.UUID) error {
	if err := r.rdb.Del(ctx, draftKey(accountID)).Err(); err != nil {
		r.log.Error("Failed to clear purchase draft",
			zap.Error(err),
			zap.String("account_id", accountID.String()),
		)
		return fmt.Errorf("clear purchase draft for %s: %w", accountID.String(), err)
	}

	return nil
}
