package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"passaro-ok/internal/domain/birds"
	"passaro-ok/internal/domain/health"
	"passaro-ok/internal/domain/healthlogs"
	"passaro-ok/internal/platform/config"
	"passaro-ok/internal/ports/capabilities"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write a default config file (stdout if no path)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return config.Write(cmd.OutOrStdout(), config.Default())
			}
			f, err := os.OpenFile(args[0], os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
			if err != nil {
				return fmt.Errorf("create config: %w", err)
			}
			defer f.Close()
			if err := config.Write(f, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", args[0])
			return nil
		},
	})
	return cmd
}

func newBirdsCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "birds",
		Short: "Manage birds",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List birds with their current status",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), f)
			if err != nil {
				return err
			}
			defer a.Close()

			items, err := a.Birds.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSPECIES\tSTATUS\tLAST UPDATE")
			for _, b := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", b.ID, b.Name, b.Species, b.Status.Text(), b.LastUpdate.Local().Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		},
	})

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a bird",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			species, _ := cmd.Flags().GetString("species")
			age, _ := cmd.Flags().GetString("age")
			acquired, _ := cmd.Flags().GetString("acquired")

			in := birds.CreateInput{Name: args[0], Species: species, Age: age}
			if acquired != "" {
				t, err := time.Parse("2006-01-02", acquired)
				if err != nil {
					return fmt.Errorf("--acquired must be YYYY-MM-DD")
				}
				in.AcquiredOn = &t
			}

			a, err := newApp(cmd.Context(), f)
			if err != nil {
				return err
			}
			defer a.Close()

			b, err := a.Birds.Create(cmd.Context(), in)
			if err != nil {
				return explain(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s) id=%s\n", b.Name, b.Species, b.ID)
			return nil
		},
	}
	add.Flags().StringP("species", "s", "", "species, free text or one of: "+strings.Join(birds.SpeciesOptions, ", ")+" (default "+birds.DefaultSpecies+")")
	add.Flags().String("age", "", "free-text age")
	add.Flags().String("acquired", "", "acquisition date YYYY-MM-DD")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <birdID>",
		Short: "Delete a bird with its history and records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), f)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Birds.Delete(cmd.Context(), args[0]); err != nil {
				return explain(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	})
	return cmd
}

func newCheckCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <birdID>",
		Short: "Record today's health check",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := map[string]string{}
			for _, c := range health.Categories {
				v, _ := cmd.Flags().GetString(string(c))
				raw[string(c)] = v
			}
			notes, _ := cmd.Flags().GetString("notes")

			answers, err := health.ParseAnswers(raw)
			if err != nil {
				return err
			}
			if missing := answers.Missing(); len(missing) > 0 {
				names := make([]string, 0, len(missing))
				for _, m := range missing {
					names = append(names, "--"+string(m))
				}
				return fmt.Errorf("missing answers: %s", strings.Join(names, ", "))
			}

			a, err := newApp(cmd.Context(), f)
			if err != nil {
				return err
			}
			defer a.Close()

			l, err := a.Checks.Record(cmd.Context(), args[0], healthlogs.RecordInput{Answers: answers, Notes: notes})
			if err != nil {
				return explain(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", l.ResultStatus.Text(), l.ResultStatus.Message())
			return nil
		},
	}
	for _, c := range health.Categories {
		values := make([]string, 0)
		for _, o := range health.Options(c) {
			values = append(values, o.Value)
		}
		cmd.Flags().String(string(c), "", strings.Join(values, "|"))
	}
	cmd.Flags().String("notes", "", "free-text notes")
	return cmd
}

func newHistoryCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "history <birdID>",
		Short: "Show health check history (newest first)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), f)
			if err != nil {
				return err
			}
			defer a.Close()

			h, err := a.Checks.History(cmd.Context(), args[0])
			if err != nil {
				return explain(err)
			}
			printHistory(cmd.OutOrStdout(), h)
			return nil
		},
	}
}

func printHistory(w io.Writer, h healthlogs.History) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tSTATUS\tAPPETITE\tACTIVITY\tDROPPINGS\tSINGING\tNOTES")
	for _, l := range h.Logs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.Date.Local().Format("2006-01-02 15:04"), l.ResultStatus.Text(),
			l.Appetite, l.Activity, l.Droppings, l.Singing, l.Notes)
	}
	_ = tw.Flush()
	if h.Truncated {
		fmt.Fprintf(w, "\n%d of %d shown. %s\n", len(h.Logs), h.Total, capabilities.Notice)
	}
}

func newExportCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <birdID>",
		Short: "Export full history as CSV (premium)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), f)
			if err != nil {
				return err
			}
			defer a.Close()

			out, _ := cmd.Flags().GetString("output")
			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				file, err := os.Create(out)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}
			return explain(a.Checks.ExportCSV(cmd.Context(), args[0], w))
		},
	}
	cmd.Flags().StringP("output", "o", "-", "output file (- for stdout)")
	return cmd
}

func newPremiumCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "premium <on|off>",
		Short:     "Toggle the local premium flag",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var on bool
			switch args[0] {
			case "on":
				on = true
			case "off":
			default:
				return fmt.Errorf("expected on or off, got %q", args[0])
			}

			a, err := newApp(cmd.Context(), f)
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.Settings.SetPremium(cmd.Context(), on); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "premium=%t\n", on)
			return nil
		},
	}
}

// explain traduce errores de dominio a mensajes para la terminal.
func explain(err error) error {
	var locked *capabilities.LockedError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &locked):
		return fmt.Errorf("%s (%s)", capabilities.Notice, locked.Capability)
	case errors.Is(err, birds.ErrNotFound):
		return fmt.Errorf("bird not found")
	case errors.Is(err, healthlogs.ErrIncompleteAnswers):
		return fmt.Errorf("answer all four categories")
	default:
		return err
	}
}
