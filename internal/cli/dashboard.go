package cli

import (
	"fmt"
	"time"

	"wordgen/internal/app"
	"wordgen/internal/domain"
	"wordgen/internal/view"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func dashboardCmd(load func() (*app.Services, *zap.Logger, error)) *cobra.Command {
	var tab string
	var search string

	c := &cobra.Command{
		Use:   "dashboard",
		Short: "Print one admin dashboard tab",
		RunE: func(cmd *cobra.Command, _ []string) error {
			selected, err := domain.ParseTab(tab)
			if err != nil {
				return err
			}

			services, logger, err := load()
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer services.Close()

			session := domain.NewSession()
			session.Tab = selected
			session.Search = search

			text, err := view.Tab(services.Dashboard, session, time.Now())
			if err != nil {
				return fmt.Errorf("render %s: %w", selected, err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}

	c.Flags().StringVarP(&tab, "tab", "t", string(domain.TabOverview), "Tab: overview|users|transactions|alerts|analytics")
	c.Flags().StringVarP(&search, "search", "s", "", "Filter users and transactions")
	return c
}
