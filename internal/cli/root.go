// Package cli implements the airscope command-line client.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/airscope/airscope/internal/airquality"
	"github.com/airscope/airscope/internal/app"
	"github.com/airscope/airscope/internal/config"
	"github.com/airscope/airscope/internal/location"
)

// OpenFunc builds the services a command runs against.
type OpenFunc func(ctx context.Context) (*app.Services, error)

// Options configure the root command.
type Options struct {
	Version   string
	BuildTime string

	// Open defaults to OpenFromEnv.
	Open OpenFunc
}

type runner struct {
	opts      Options
	jsonOut   bool
	hours     int
	olderThan time.Duration
}

// NewRootCommand returns the airscope command tree.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Open == nil {
		opts.Open = OpenFromEnv
	}
	r := &runner{opts: opts}

	root := &cobra.Command{
		Use:           "airscope",
		Short:         "Air quality readings for Indian cities",
		Long:          "airscope fetches air quality readings, forecasts and government station data, falling back to cached or synthetic readings when upstreams fail.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&r.jsonOut, "json", false, "print JSON instead of text")

	forecast := &cobra.Command{
		Use:   "forecast <location>",
		Short: "Project the index for the coming hours",
		Args:  cobra.MinimumNArgs(1),
		RunE:  r.runForecast,
	}
	forecast.Flags().IntVar(&r.hours, "hours", airquality.DefaultForecastHours, "forecast horizon in hours (1-72)")

	prune := &cobra.Command{
		Use:   "prune",
		Short: "Remove old entries from the local cache",
		Args:  cobra.NoArgs,
		RunE:  r.runPrune,
	}
	prune.Flags().DurationVar(&r.olderThan, "older-than", 7*24*time.Hour, "remove entries not written within this duration")

	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local cache",
	}
	cacheCmd.AddCommand(prune)

	root.AddCommand(
		&cobra.Command{
			Use:   "aqi <location>",
			Short: "Show the current reading for a place",
			Args:  cobra.MinimumNArgs(1),
			RunE:  r.runAQI,
		},
		&cobra.Command{
			Use:   "geo <lat> <lng>",
			Short: "Show the current reading for a coordinate pair",
			Args:  cobra.ExactArgs(2),
			RunE:  r.runGeo,
		},
		&cobra.Command{
			Use:   "search <query>",
			Short: "Search for places",
			Args:  cobra.MinimumNArgs(1),
			RunE:  r.runSearch,
		},
		forecast,
		&cobra.Command{
			Use:   "stations [city]",
			Short: "List government monitoring stations",
			Args:  cobra.MaximumNArgs(1),
			RunE:  r.runStations,
		},
		cacheCmd,
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "airscope %s (built: %s)\n", opts.Version, opts.BuildTime)
			},
		},
	)

	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute(version, buildTime string) int {
	root := NewRootCommand(Options{Version: version, BuildTime: buildTime})
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

// OpenFromEnv loads the configuration and builds the services. Unless
// CACHE_BACKEND is set, readings are cached in the local SQLite file so
// repeated invocations reuse them.
func OpenFromEnv(ctx context.Context) (*app.Services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if os.Getenv("CACHE_BACKEND") == "" {
		cfg.Cache.Backend = config.BackendSQLite
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.ErrorLevel).
		With().
		Timestamp().
		Logger()
	if cfg.Level() < zerolog.InfoLevel {
		logger = logger.Level(cfg.Level())
	}

	return app.Build(ctx, cfg, app.Options{Logger: logger})
}

func (r *runner) open(cmd *cobra.Command) (*app.Services, error) {
	return r.opts.Open(cmd.Context())
}

func (r *runner) print(w io.Writer, v any, text string) error {
	if r.jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := io.WriteString(w, text)
	return err
}

func queryArg(args []string) (string, error) {
	q := strings.TrimSpace(strings.Join(args, " "))
	if len([]rune(q)) < location.MinQueryLength {
		return "", fmt.Errorf("%w: need at least %d characters", airquality.ErrInvalidQuery, location.MinQueryLength)
	}
	return q, nil
}

func (r *runner) runAQI(cmd *cobra.Command, args []string) error {
	query, err := queryArg(args)
	if err != nil {
		return err
	}
	s, err := r.open(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	reading := s.Gateway.FetchReading(cmd.Context(), query)
	return r.print(cmd.OutOrStdout(), reading, renderReading(reading))
}

func (r *runner) runGeo(cmd *cobra.Command, args []string) error {
	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("%w: lat %q", airquality.ErrInvalidCoordinates, args[0])
	}
	lng, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("%w: lng %q", airquality.ErrInvalidCoordinates, args[1])
	}

	s, err := r.open(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	reading, err := s.Gateway.FetchReadingByCoordinates(cmd.Context(), location.Coordinates{Lat: lat, Lng: lng})
	if err != nil {
		return err
	}
	return r.print(cmd.OutOrStdout(), reading, renderReading(reading))
}

func (r *runner) runSearch(cmd *cobra.Command, args []string) error {
	query, err := queryArg(args)
	if err != nil {
		return err
	}
	s, err := r.open(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	suggestions := s.Search.Search(cmd.Context(), query)
	if len(suggestions) == 0 && !r.jsonOut {
		fmt.Fprintf(cmd.OutOrStdout(), "No places match %q.\n", query)
		return nil
	}

	var b strings.Builder
	for _, sg := range suggestions {
		b.WriteString(renderSuggestion(sg))
	}
	return r.print(cmd.OutOrStdout(), suggestions, b.String())
}

func (r *runner) runForecast(cmd *cobra.Command, args []string) error {
	if r.hours < 1 || r.hours > airquality.MaxForecastHours {
		return fmt.Errorf("%w: hours must be between 1 and %d", airquality.ErrInvalidQuery, airquality.MaxForecastHours)
	}
	query, err := queryArg(args)
	if err != nil {
		return err
	}
	s, err := r.open(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	reading := s.Gateway.FetchReading(cmd.Context(), query)
	forecast := s.Forecaster.Project(reading, r.hours)
	return r.print(cmd.OutOrStdout(), forecast, renderForecast(forecast))
}

func (r *runner) runStations(cmd *cobra.Command, args []string) error {
	city := ""
	if len(args) == 1 {
		city = args[0]
	}
	s, err := r.open(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	stations := s.Stations.Stations(cmd.Context(), city)
	if len(stations) == 0 && !r.jsonOut {
		fmt.Fprintln(cmd.OutOrStdout(), "No station data available.")
		return nil
	}

	var b strings.Builder
	for _, st := range stations {
		b.WriteString(renderStation(st))
	}
	return r.print(cmd.OutOrStdout(), stations, b.String())
}

func (r *runner) runPrune(cmd *cobra.Command, _ []string) error {
	s, err := r.open(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	removed, err := s.PruneCache(cmd.Context(), time.Now().Add(-r.olderThan))
	if errors.Is(err, app.ErrPruneUnsupported) {
		fmt.Fprintln(cmd.OutOrStdout(), "The configured cache backend does not support pruning.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("pruning: %w", err)
	}

	if removed == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to prune.")
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d cache entries.\n", removed)
	}
	return nil
}
