package commands

import (
	"github.com/de-tools/impact-atlas/pkg/models/domain"
	"github.com/de-tools/impact-atlas/pkg/runtime/terminal/export"

	"github.com/spf13/cobra"
)

type FiltersCmd struct {
	configPath string
	profile    string
	reporter   *export.Reporter
}

// NewFiltersCmd lists the filterable values observed in the dataset.
func NewFiltersCmd(reporter *export.Reporter) *cobra.Command {
	fc := &FiltersCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "filters",
		Short: "List the filter values available in the dataset",
		RunE:  fc.run,
	}

	cmd.Flags().StringVar(&fc.configPath, "config", "impact-atlas.yaml", "Path to the configuration file")
	cmd.Flags().StringVar(&fc.profile, "profile", "", "Dataset profile to load (defaults to the configured one)")

	return cmd
}

func (fc *FiltersCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	explorer, err := buildExplorer(ctx, fc.configPath, fc.profile)
	if err != nil {
		return err
	}

	options := explorer.Options(ctx)

	report := &domain.Report{
		Title: "Available Filters",
		Years: options.Years,
	}

	for _, dim := range []struct {
		title  string
		values []string
	}{
		{"Countries", options.Countries},
		{"Industries", options.Industries},
		{"Top AI Tools", options.Tools},
		{"Regulation Statuses", options.RegulationStatuses},
	} {
		section := domain.ReportSection{
			Title:   dim.title,
			Summary: map[string]interface{}{"values": len(dim.values)},
		}
		for _, v := range dim.values {
			section.Details = append(section.Details, domain.ReportDetail{Name: v, Value: ""})
		}
		report.Sections = append(report.Sections, section)
	}

	return fc.reporter.Handle(report)
}
