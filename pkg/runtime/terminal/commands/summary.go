package commands

import (
	"context"
	"fmt"

	"github.com/de-tools/impact-atlas/pkg/models/domain"
	"github.com/de-tools/impact-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/impact-atlas/pkg/services/config"
	"github.com/de-tools/impact-atlas/pkg/services/dashboard"
	"github.com/de-tools/impact-atlas/pkg/services/dataset"

	"github.com/spf13/cobra"
)

type SummaryCmd struct {
	configPath string
	profile    string
	yearFrom   int
	yearTo     int
	countries  []string
	industries []string
	tools      []string
	statuses   []string
	reporter   *export.Reporter
}

// NewSummaryCmd filters the dataset from flags and renders the full
// analysis report. Dimensions left unspecified fall back to the default
// selection; an explicitly empty selection yields an empty report.
func NewSummaryCmd(reporter *export.Reporter) *cobra.Command {
	sc := &SummaryCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize AI adoption metrics for a filtered slice of the dataset",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.configPath, "config", "impact-atlas.yaml", "Path to the configuration file")
	cmd.Flags().StringVar(&sc.profile, "profile", "", "Dataset profile to load (defaults to the configured one)")
	cmd.Flags().IntVar(&sc.yearFrom, "from", 0, "First year of the range (defaults to the dataset minimum)")
	cmd.Flags().IntVar(&sc.yearTo, "to", 0, "Last year of the range (defaults to the dataset maximum)")
	cmd.Flags().StringSliceVar(&sc.countries, "countries", nil, "Countries to include")
	cmd.Flags().StringSliceVar(&sc.industries, "industries", nil, "Industries to include")
	cmd.Flags().StringSliceVar(&sc.tools, "tools", nil, "Top AI tools to include")
	cmd.Flags().StringSliceVar(&sc.statuses, "statuses", nil, "Regulation statuses to include")

	return cmd
}

func (sc *SummaryCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	explorer, err := buildExplorer(ctx, sc.configPath, sc.profile)
	if err != nil {
		return err
	}

	criteria := sc.criteria(cmd, explorer.Options(ctx).Defaults)
	report := dashboard.BuildReport(ctx, explorer, criteria)

	return sc.reporter.Handle(report)
}

func (sc *SummaryCmd) criteria(cmd *cobra.Command, defaults domain.FilterCriteria) domain.FilterCriteria {
	criteria := defaults

	if cmd.Flags().Changed("from") {
		criteria.Years.Min = sc.yearFrom
	}
	if cmd.Flags().Changed("to") {
		criteria.Years.Max = sc.yearTo
	}
	if cmd.Flags().Changed("countries") {
		criteria.Countries = sc.countries
	}
	if cmd.Flags().Changed("industries") {
		criteria.Industries = sc.industries
	}
	if cmd.Flags().Changed("tools") {
		criteria.Tools = sc.tools
	}
	if cmd.Flags().Changed("statuses") {
		criteria.RegulationStatuses = sc.statuses
	}

	return criteria
}

func buildExplorer(ctx context.Context, configPath, profileOverride string) (dashboard.Explorer, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	registry, err := config.NewRegistry(cfg.Dataset.Profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset profiles: %w", err)
	}

	profile := cfg.Dataset.Profile
	if profileOverride != "" {
		profile = profileOverride
	}

	ds, err := dataset.Open(ctx, registry, profile)
	if err != nil {
		return nil, err
	}

	return dashboard.NewExplorer(ds, dashboard.Settings{
		DefaultCountries:  cfg.Defaults.Countries,
		DefaultIndustries: cfg.Defaults.Industries,
	}), nil
}
