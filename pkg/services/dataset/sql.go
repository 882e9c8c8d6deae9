package dataset

import (
	"context"

	"github.com/de-tools/impact-atlas/pkg/adapters"
	"github.com/de-tools/impact-atlas/pkg/models/domain"
	"github.com/de-tools/impact-atlas/pkg/store/sqlds"
)

// LoadStore reads the dataset from a relational store. Record order is
// whatever the store returns; it becomes the dataset order.
func LoadStore(ctx context.Context, s sqlds.Store) (*domain.Dataset, error) {
	records, err := s.GetRecords(ctx)
	if err != nil {
		return nil, &domain.DataLoadError{Source: "sql", Err: err}
	}

	domainRecords := make([]domain.Record, 0, len(records))
	for _, r := range records {
		domainRecords = append(domainRecords, adapters.MapStoreRecordToDomain(r))
	}

	ds, err := domain.NewDataset(domainRecords)
	if err != nil {
		return nil, &domain.DataLoadError{Source: "sql", Err: err}
	}
	return ds, nil
}
