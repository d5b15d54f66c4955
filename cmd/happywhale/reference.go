package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/seawatch/happywhale"
)

func oceansCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "oceans",
		Short: "List oceans known to the lookup database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			oceans, err := a.client.Oceans(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), oceans)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME")
			for _, o := range oceans {
				fmt.Fprintf(tw, "%d\t%s\n", o.ID, o.Name)
			}
			return tw.Flush()
		},
	}
}

func seasCommand(a *app) *cobra.Command {
	var (
		ocean   string
		oceanID int64
	)

	cmd := &cobra.Command{
		Use:   "seas",
		Short: "List the seas of an ocean",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				seas []happywhale.Sea
				err  error
			)
			if cmd.Flags().Changed("ocean-id") {
				seas, err = a.client.SeasByOceanID(cmd.Context(), oceanID)
			} else {
				seas, err = a.client.Seas(cmd.Context(), ocean)
			}
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), seas)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tOCEAN")
			for _, s := range seas {
				fmt.Fprintf(tw, "%d\t%s\t%d\n", s.ID, s.Name, s.OceanID)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&ocean, "ocean", "", "ocean name")
	cmd.Flags().Int64Var(&oceanID, "ocean-id", 0, "ocean id")
	cmd.MarkFlagsMutuallyExclusive("ocean", "ocean-id")
	cmd.MarkFlagsOneRequired("ocean", "ocean-id")

	return cmd
}

func speciesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "species",
		Short: "List species display names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := a.client.SpeciesNames(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), names)
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}

func healthCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the lookup database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h := a.client.Health(cmd.Context())
			if err := writeJSON(cmd.OutOrStdout(), h); err != nil {
				return err
			}
			if h.Status != "ok" {
				return fmt.Errorf("unhealthy: %v", h.Checks)
			}
			return nil
		},
	}
}
