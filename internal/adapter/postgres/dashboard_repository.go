package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-insights/internal/core/domain"
)

// DashboardRepository implements port.DashboardRepository using pgxpool
// for PostgreSQL. Campaign rows live in campaign_rows, ordered by
// position; metrics, cards and charts are kept as JSONB in a single
// dashboard_snapshots row.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository returns a new repository instance.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

var campaignColumns = []string{
	"position", "id", "campaign", "status", "impressions", "clicks",
	"conversions", "ctr", "cpc", "revenue", "date",
}

// Snapshot reads the stored dashboard inside a repeatable-read transaction
// so the rows and the header always belong to the same refresh.
func (r *DashboardRepository) Snapshot(ctx context.Context) (d domain.Dashboard, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return d, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var metrics, cards, charts []byte
	err = tx.QueryRow(ctx, `SELECT metrics, cards, charts, generated_at FROM dashboard_snapshots WHERE singleton`).
		Scan(&metrics, &cards, &charts, &d.GeneratedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return d, domain.ErrNoData
	}
	if err != nil {
		return d, err
	}
	if err = json.Unmarshal(metrics, &d.Metrics); err != nil {
		return d, fmt.Errorf("decode metrics: %w", err)
	}
	if err = json.Unmarshal(cards, &d.Cards); err != nil {
		return d, fmt.Errorf("decode cards: %w", err)
	}
	if err = json.Unmarshal(charts, &d.Charts); err != nil {
		return d, fmt.Errorf("decode charts: %w", err)
	}

	rows, err := tx.Query(ctx, `
        SELECT id, campaign, status, impressions, clicks, conversions, ctr, cpc, revenue, date
        FROM campaign_rows
        ORDER BY position`)
	if err != nil {
		return d, err
	}
	d.Campaigns, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignRow, error) {
		var c domain.CampaignRow
		err := row.Scan(
			&c.ID,
			&c.Campaign,
			&c.Status,
			&c.Impressions,
			&c.Clicks,
			&c.Conversions,
			&c.CTR,
			&c.CPC,
			&c.Revenue,
			&c.Date,
		)
		return c, err
	})
	return d, err
}

// Replace swaps the stored dashboard in one serializable transaction.
func (r *DashboardRepository) Replace(ctx context.Context, d domain.Dashboard) (err error) {
	metrics, err := json.Marshal(d.Metrics)
	if err != nil {
		return fmt.Errorf("encode metrics: %w", err)
	}
	cards, err := json.Marshal(d.Cards)
	if err != nil {
		return fmt.Errorf("encode cards: %w", err)
	}
	charts, err := json.Marshal(d.Charts)
	if err != nil {
		return fmt.Errorf("encode charts: %w", err)
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM campaign_rows`); err != nil {
		return err
	}
	src := make([][]any, len(d.Campaigns))
	for i, c := range d.Campaigns {
		src[i] = []any{i, c.ID, c.Campaign, string(c.Status), c.Impressions, c.Clicks, c.Conversions, c.CTR, c.CPC, c.Revenue, c.Date}
	}
	if _, err = tx.CopyFrom(ctx, pgx.Identifier{"campaign_rows"}, campaignColumns, pgx.CopyFromRows(src)); err != nil {
		return fmt.Errorf("copy campaign rows: %w", err)
	}
	_, err = tx.Exec(ctx, `
        INSERT INTO dashboard_snapshots (singleton, metrics, cards, charts, generated_at)
        VALUES (TRUE, $1, $2, $3, $4)
        ON CONFLICT (singleton) DO UPDATE
        SET metrics = EXCLUDED.metrics,
            cards = EXCLUDED.cards,
            charts = EXCLUDED.charts,
            generated_at = EXCLUDED.generated_at`,
		metrics, cards, charts, d.GeneratedAt)
	return err
}
