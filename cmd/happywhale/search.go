package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seawatch/happywhale"
)

var presetNames = map[string]happywhale.Preset{
	"all-time":   happywhale.PresetAllTime,
	"past-year":  happywhale.PresetPastYear,
	"past-month": happywhale.PresetPastMonth,
	"past-week":  happywhale.PresetPastWeek,
}

// encounterFlags holds the date and location flags of the encounters command.
type encounterFlags struct {
	on, before, after string
	from, to          string
	preset            string

	bounds   []float64
	location string
	ocean    string
	sea      string

	species     string
	connections bool
	dryRun      bool
}

// dateFilter picks the date variant from whichever flag was given.
// Without any date flag the search covers all time.
func (f *encounterFlags) dateFilter(cmd *cobra.Command) (happywhale.DateFilter, error) {
	changed := cmd.Flags().Changed
	switch {
	case changed("on"):
		return happywhale.DateOn{Date: f.on}, nil
	case changed("before"):
		return happywhale.DateBefore{Date: f.before}, nil
	case changed("after"):
		return happywhale.DateAfter{Date: f.after}, nil
	case changed("from"), changed("to"):
		return happywhale.DateBetween{Start: f.from, End: f.to}, nil
	case changed("preset"):
		p, ok := presetNames[strings.ToLower(f.preset)]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q (want all-time, past-year, past-month or past-week): %w",
				f.preset, happywhale.ErrInvalidVariant)
		}
		return happywhale.DatePreset{Preset: p}, nil
	default:
		return happywhale.DatePreset{Preset: happywhale.PresetAllTime}, nil
	}
}

// locationFilter picks the location variant. Without any location flag the
// search covers the whole world.
func (f *encounterFlags) locationFilter(cmd *cobra.Command) (happywhale.LocationFilter, error) {
	changed := cmd.Flags().Changed
	switch {
	case changed("bounds"):
		if len(f.bounds) != 4 {
			return nil, fmt.Errorf("--bounds needs minLat,minLng,maxLat,maxLng, got %d values: %w",
				len(f.bounds), happywhale.ErrMissingParameter)
		}
		return happywhale.MapBounds{
			MinLat: f.bounds[0], MinLng: f.bounds[1],
			MaxLat: f.bounds[2], MaxLng: f.bounds[3],
		}, nil
	case changed("location"):
		return happywhale.NamedLocation{Location: f.location}, nil
	case changed("ocean"), changed("sea"):
		return happywhale.WaterGeo{OceanName: f.ocean, SeaName: f.sea}, nil
	default:
		return happywhale.WholeWorld{}, nil
	}
}

func encountersCommand(a *app) *cobra.Command {
	f := &encounterFlags{}

	cmd := &cobra.Command{
		Use:   "encounters",
		Short: "Search encounters by date, location and species",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := f.dateFilter(cmd)
			if err != nil {
				return err
			}
			l, err := f.locationFilter(cmd)
			if err != nil {
				return err
			}

			opts := []happywhale.EncounterOption{happywhale.WithShowConnections(f.connections)}
			if f.species != "" {
				opts = append(opts, happywhale.WithSpecies(f.species))
			}

			q, err := a.client.BuildEncounterSearch(cmd.Context(), d, l, opts...)
			if err != nil {
				return err
			}
			return a.runQuery(cmd, q, f.dryRun)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.on, "on", "", "encounters on this date")
	fl.StringVar(&f.before, "before", "", "encounters before this date")
	fl.StringVar(&f.after, "after", "", "encounters after this date")
	fl.StringVar(&f.from, "from", "", "start of a date range (with --to)")
	fl.StringVar(&f.to, "to", "", "end of a date range (with --from)")
	fl.StringVar(&f.preset, "preset", "", "relative range: all-time, past-year, past-month, past-week")
	fl.Float64SliceVar(&f.bounds, "bounds", nil, "map bounds minLat,minLng,maxLat,maxLng")
	fl.StringVar(&f.location, "location", "", "free-text place name")
	fl.StringVar(&f.ocean, "ocean", "", "ocean name")
	fl.StringVar(&f.sea, "sea", "", "sea name within --ocean")
	fl.StringVar(&f.species, "species", "", "species display name")
	fl.BoolVar(&f.connections, "connections", false, "include connected encounters")
	fl.BoolVar(&f.dryRun, "dry-run", false, "print the query instead of submitting it")

	cmd.MarkFlagsMutuallyExclusive("on", "before", "after", "from", "preset")
	cmd.MarkFlagsMutuallyExclusive("on", "before", "after", "to", "preset")
	cmd.MarkFlagsMutuallyExclusive("bounds", "location", "ocean")
	cmd.MarkFlagsMutuallyExclusive("bounds", "location", "sea")

	return cmd
}

func individualsCommand(a *app) *cobra.Command {
	var (
		species     string
		connections bool
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "individuals",
		Short: "Search identified individuals of a species",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := a.client.BuildIndividualSearch(cmd.Context(), species,
				happywhale.WithShowConnections(connections))
			if err != nil {
				return err
			}
			return a.runQuery(cmd, q, dryRun)
		},
	}

	cmd.Flags().StringVar(&species, "species", "", "species display name")
	cmd.Flags().BoolVar(&connections, "connections", false, "include connected encounters")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the query instead of submitting it")

	return cmd
}

// runQuery prints q on dry runs, otherwise submits it and prints the raw reply body.
func (a *app) runQuery(cmd *cobra.Command, q *happywhale.Query, dryRun bool) error {
	if dryRun {
		return writeJSON(cmd.OutOrStdout(), q)
	}

	res, err := a.client.Submit(cmd.Context(), q)
	if err != nil {
		return err
	}
	a.log.Info("search submitted",
		zap.String("kind", q.Kind()),
		zap.Int("status", res.StatusCode),
		zap.String("request_id", res.RequestID),
	)

	if _, err := cmd.OutOrStdout().Write(res.Body); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
