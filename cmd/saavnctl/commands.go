package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cesargomez89/saavnsource/internal/app"
	"github.com/cesargomez89/saavnsource/internal/config"
	"github.com/cesargomez89/saavnsource/internal/http/dto"
	"github.com/cesargomez89/saavnsource/internal/logger"
)

type rootOptions struct {
	apiBaseURL string
	quality    string
	maxResults int
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "saavnctl",
		Short: "saavnctl - JioSaavn source operations from the command line",
		Long: `saavnctl classifies identifiers, loads songs, albums and playlists, searches
the catalog and resolves stream URLs using the same code path as the server.
Configuration is read from the environment; flags override it.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.apiBaseURL, "api-base-url", "", "provider API base URL (overrides JIOSAAVN_API_BASE_URL)")
	root.PersistentFlags().StringVar(&opts.quality, "quality", "", "stream quality: lowest, low, medium, high (overrides AUDIO_QUALITY)")
	root.PersistentFlags().IntVar(&opts.maxResults, "max-results", 0, "search result limit (overrides MAX_SEARCH_RESULTS)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "error", "log level (debug, info, warn, error)")

	root.AddCommand(
		newCheckCmd(opts),
		newLoadCmd(opts),
		newSearchCmd(opts),
		newStreamCmd(opts),
		newDecodeCmd(opts),
	)
	return root
}

// build loads configuration, applies flag overrides and wires the application.
func (o *rootOptions) build(cmd *cobra.Command) (*app.App, error) {
	cfg := config.Load()
	if o.apiBaseURL != "" {
		cfg.APIBaseURL = strings.TrimRight(o.apiBaseURL, "/")
	}
	if o.quality != "" {
		cfg.Quality = strings.ToLower(o.quality)
	}
	if o.maxResults != 0 {
		cfg.MaxSearchResults = o.maxResults
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.New(logger.Config{
		Level:  o.logLevel,
		Format: "text",
		Output: cmd.ErrOrStderr(),
	})
	return app.New(cfg, log), nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <identifier>",
		Short: "Report whether the source recognises an identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.build(cmd)
			if err != nil {
				return err
			}
			c, ok := a.Manager.GetProvider().Check(args[0])
			return printJSON(cmd, dto.NewCheckResponse(c, ok))
		},
	}
}

func newLoadCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "load <identifier>",
		Short: "Load a song, album or playlist URL, or a jssearch:/jsrec: shortcut",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.build(cmd)
			if err != nil {
				return err
			}
			return printJSON(cmd, a.Manager.LoadTracks(cmd.Context(), args[0]))
		},
	}
}

func newSearchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query...>",
		Short: "Search the catalog for songs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.build(cmd)
			if err != nil {
				return err
			}
			return printJSON(cmd, a.Manager.GetProvider().Search(cmd.Context(), strings.Join(args, " ")))
		},
	}
}

func newStreamCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stream <song-id> [title]",
		Short: "Resolve a playable stream URL for a song id",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.build(cmd)
			if err != nil {
				return err
			}
			title := ""
			if len(args) > 1 {
				title = args[1]
			}
			return printJSON(cmd, a.Manager.GetProvider().RetrieveStream(cmd.Context(), args[0], title))
		},
	}
}

func newDecodeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <encoded-track>",
		Short: "Decode an encoded track token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.build(cmd)
			if err != nil {
				return err
			}
			info, err := a.Codec.Decode(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, dto.NewDecodedTrack(args[0], info))
		},
	}
}
