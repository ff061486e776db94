package main

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/shutter/internal/app"
	"github.com/llehouerou/shutter/internal/errmsg"
	"github.com/llehouerou/shutter/internal/notify"
	"github.com/llehouerou/shutter/internal/preview"
	"github.com/llehouerou/shutter/internal/ui/styles"
)

// Version is set at build time via ldflags.
var Version = "dev"

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "shutter",
		Short: "Browse Flickr photos and keep favorites from the terminal",
		Long: `shutter shows the most recent public Flickr photos in a grid.
Search by keyword, mark photos as favorites and switch between the
browse list and your favorites. Favorites are kept in a local database.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), configPath)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate("shutter version {{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", "", "additional config file (TOML)")

	root.AddCommand(
		newFavoritesCmd(&configPath),
		newRecentCmd(&configPath),
		newSearchCmd(&configPath),
	)
	return root
}

func runTUI(ctx context.Context, configPath string) error {
	e, err := openEnv(ctx, configPath)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer e.Close()

	var notifier notify.Notifier = notify.Disabled()
	if e.cfg.NotificationsEnabled() {
		if n, err := notify.New(); err != nil {
			e.logger.Warn("notifications_unavailable", "error", err.Error())
		} else {
			notifier = n
		}
	}

	m := app.New(app.Options{
		Feed:         e.newFeed(),
		Previews:     preview.NewLoader(string(styles.T().BgBase)),
		Notifier:     notifier,
		Logger:       e.logger,
		PreviewWidth: e.cfg.GetPreviewConfig().Width,
	})
	defer m.Close()

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func newFavoritesCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "List favorite photos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer e.Close()

			entries, err := e.favorites.List(cmd.Context())
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpFavoritesLoad, err))
			}
			return newPrinter(cmd.OutOrStdout()).Favorites(entries)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every favorite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer e.Close()

			entries, err := e.favorites.List(cmd.Context())
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpFavoritesLoad, err))
			}
			if err := e.favorites.Clear(cmd.Context()); err != nil {
				return errors.New(errmsg.Format(errmsg.OpFavoritesClear, err))
			}
			newPrinter(cmd.OutOrStdout()).Cleared(len(entries))
			return nil
		},
	})
	return cmd
}

func newRecentCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "Print the most recent public photos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer e.Close()

			photos, err := e.flickr.Recent(cmd.Context())
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpLoadRecent, err))
			}
			return newPrinter(cmd.OutOrStdout()).Photos(photos)
		},
	}
}

func newSearchCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query...]",
		Short: "Print photos matching a keyword search",
		Long: `Print photos matching a keyword search. The arguments are joined
with spaces. A blank query prints the most recent photos, like clearing
the search box in the interactive view.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer e.Close()

			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				photos, err := e.flickr.Recent(cmd.Context())
				if err != nil {
					return errors.New(errmsg.Format(errmsg.OpLoadRecent, err))
				}
				return newPrinter(cmd.OutOrStdout()).Photos(photos)
			}

			photos, err := e.flickr.Search(cmd.Context(), query)
			if err != nil {
				return errors.New(errmsg.FormatWith(errmsg.OpSearch, query, err))
			}
			return newPrinter(cmd.OutOrStdout()).Photos(photos)
		},
	}
}
