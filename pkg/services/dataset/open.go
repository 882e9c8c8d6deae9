package dataset

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/impact-atlas/pkg/models/domain"
	"github.com/de-tools/impact-atlas/pkg/services/config"
	"github.com/de-tools/impact-atlas/pkg/store/sqlds"
)

// Open resolves a dataset profile from the registry and loads the dataset
// from whichever source the profile describes. SQL profiles require the
// named database/sql driver to be linked into the binary.
func Open(ctx context.Context, registry config.Registry, profile string) (*domain.Dataset, error) {
	p, err := registry.GetProfile(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dataset profile: %w", err)
	}

	switch p.Type {
	case config.SourceCSV:
		return LoadCSV(p.Path)
	case config.SourceSQL:
		db, err := sql.Open(p.Driver, p.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open sql source: %w", err)
		}
		defer db.Close()

		store, err := sqlds.NewStore(db, p.Table)
		if err != nil {
			return nil, fmt.Errorf("failed to create record store: %w", err)
		}
		return LoadStore(ctx, store)
	}

	return nil, fmt.Errorf("unsupported dataset source type %q", p.Type)
}
