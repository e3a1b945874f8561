package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rhyrak/course-planner/internal/scheduler"
	"github.com/rhyrak/course-planner/internal/tui"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [query]",
	Short: "List the courses of the catalog",
	Long: `Lists the catalog courses whose name or instructor contains the query.
With --check every time descriptor is parsed strictly and malformed ones are
reported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		courses, err := newCatalogSource(cfg).Catalog(cmd.Context())
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		query := ""
		if len(args) == 1 {
			query = strings.TrimSpace(args[0])
		}
		check, _ := cmd.Flags().GetBool("check")

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCOURSE\tINSTRUCTOR\tCREDIT\tYEAR\tTIME")
		shown, broken := 0, 0
		for _, c := range courses {
			if query != "" && !strings.Contains(c.Name, query) && !strings.Contains(c.Instructor, query) {
				continue
			}
			shown++
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n", c.ID, c.Name, c.Instructor, c.Credit, c.Year, c.RawTime)
			if !check {
				continue
			}
			if _, err := scheduler.ParseStrict(c.RawTime); err != nil {
				broken++
				fmt.Fprintf(w, "\t%s\t\t\t\t\n", tui.Error(err.Error()))
			}
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), tui.Muted(fmt.Sprintf("%d of %d courses", shown, len(courses))))
		if broken > 0 {
			return fmt.Errorf("%d course(s) have malformed time descriptors", broken)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().Bool("check", false, "Report courses whose time descriptor does not parse")
}
