package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/DylanZhuo/GoodLand-W1/internal/domain"
)

type reminderRepository struct {
	db *sqlx.DB
}

func NewReminderRepository(db *sqlx.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

// Upsert writes a flag keyed by (stage, investor, scheduled date). The
// unique constraint on the key makes the human mark action idempotent.
func (r *reminderRepository) Upsert(ctx context.Context, flag *domain.PaymentReminderFlag) error {
	if flag.ID == uuid.Nil {
		flag.ID = uuid.New()
	}
	now := time.Now()
	if flag.CreatedAt.IsZero() {
		flag.CreatedAt = now
	}
	flag.UpdatedAt = now

	query := `
	INSERT INTO payment_reminder_flags (id, stage, investor_id, scheduled_date, paid, ignored, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (stage, investor_id, scheduled_date)
	DO UPDATE SET paid = EXCLUDED.paid,
	              ignored = EXCLUDED.ignored,
	              updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		flag.ID,
		flag.Stage,
		flag.InvestorID,
		flag.ScheduledDate,
		flag.Paid,
		flag.Ignored,
		flag.CreatedAt,
		flag.UpdatedAt,
	)
	return err
}

func (r *reminderRepository) ListByStage(ctx context.Context, stage string) ([]domain.PaymentReminderFlag, error) {
	query := `
	SELECT id, stage, investor_id, scheduled_date, paid, ignored, created_at, updated_at
	FROM payment_reminder_flags
	WHERE stage = $1
	ORDER BY scheduled_date
	`

	var flags []domain.PaymentReminderFlag
	if err := r.db.SelectContext(ctx, &flags, query, stage); err != nil {
		return nil, err
	}
	return flags, nil
}
