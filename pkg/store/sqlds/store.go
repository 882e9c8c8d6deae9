package sqlds

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/impact-atlas/pkg/models/store"
)

// Store reads dataset records from a relational table, for deployments that
// keep the source data in a warehouse instead of a flat file.
type Store interface {
	GetRecords(ctx context.Context) ([]store.Record, error)
}

type recordStore struct {
	db    *sql.DB
	table string
}

func NewStore(db *sql.DB, table string) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if table == "" {
		return nil, fmt.Errorf("table name is required")
	}
	return &recordStore{db: db, table: table}, nil
}

func (s *recordStore) GetRecords(ctx context.Context) ([]store.Record, error) {
	query := fmt.Sprintf(`
		SELECT
		  year, country, industry, top_ai_tool, regulation_status,
		  ai_adoption_rate, job_loss_rate, revenue_increase_rate,
		  human_ai_collaboration_rate
		FROM %s
		ORDER BY year, country, industry`, s.table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := make([]store.Record, 0)
	for rows.Next() {
		var r store.Record
		err := rows.Scan(
			&r.Year,
			&r.Country,
			&r.Industry,
			&r.TopAITool,
			&r.RegulationStatus,
			&r.AdoptionRate,
			&r.JobLossRate,
			&r.RevenueIncrease,
			&r.CollaborationRate,
		)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return records, nil
}
