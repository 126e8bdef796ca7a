package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/ijalalfrz/trip-flight-planner/internal/app/config"
	"github.com/ijalalfrz/trip-flight-planner/internal/app/dto"
	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/logger"
	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/sheet"
	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/utils"
	"github.com/spf13/cobra"
	"google.golang.org/api/option"
)

var (
	tripFileArg string
	cacheKeyArg string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Search the trip once and write the result to the sheet or stdout",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if tripFileArg != "" {
			cfg.TripFile = tripFileArg
		}

		if cacheKeyArg != "" {
			cfg.Cache.Key = cacheKeyArg
		}

		return runTrip(ctx, &cfg, cmd.OutOrStdout())
	},
}

func init() {
	runCmd.Flags().StringVarP(&tripFileArg, "trip", "t", "", "Trip definition file, overrides TRIP_FILE")
	runCmd.Flags().StringVarP(&cacheKeyArg, "cache-key", "k", "", "Cache record name, overrides CACHE_KEY")
}

// Presenter hands a trip result to whoever reviews it.
type Presenter interface {
	Present(ctx context.Context, result dto.TripResult) error
}

type jsonPresenter struct {
	out io.Writer
}

func (p jsonPresenter) Present(_ context.Context, result dto.TripResult) error {
	encoder := json.NewEncoder(p.out)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(result.Normalize()); err != nil {
		return fmt.Errorf("encode trip result: %w", err)
	}

	return nil
}

func runTrip(ctx context.Context, cfg *config.Config, out io.Writer) error {
	ctx = logger.WithRunID(ctx, uuid.NewString())

	spec, err := config.LoadTripSpec(cfg.TripFile)
	if err != nil {
		return err
	}

	deps, err := newDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.close()

	presenter, err := newPresenter(ctx, cfg, out)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "searching trip",
		slog.String("trip_file", cfg.TripFile),
		slog.String("cache_key", cfg.Cache.Key))

	result, hit, err := deps.newTripService().SearchTrip(ctx, spec, cfg.Cache.Key)
	if err != nil {
		return fmt.Errorf("search trip: %w", err)
	}

	logSummary(ctx, result, hit)

	if err := presenter.Present(ctx, result); err != nil {
		return fmt.Errorf("present trip result: %w", err)
	}

	return nil
}

func newPresenter(ctx context.Context, cfg *config.Config, out io.Writer) (Presenter, error) {
	if cfg.Sheet.SpreadsheetID == "" {
		return jsonPresenter{out: out}, nil
	}

	writer, err := sheet.NewWriter(ctx, cfg.Sheet.SpreadsheetID, cfg.Sheet.Name,
		option.WithCredentialsFile(cfg.Sheet.CredentialsFile))
	if err != nil {
		return nil, err
	}

	return writer, nil
}

func logSummary(ctx context.Context, result dto.TripResult, hit bool) {
	attrs := []any{
		slog.Bool("cache_hit", hit),
		slog.Int("outbound_flights", len(result.Outbound)),
		slog.Int("inbound_flights", len(result.Inbound)),
	}

	if cheapest, ok := cheapestPrice(result.Outbound); ok {
		attrs = append(attrs, slog.String("cheapest_outbound", utils.FormatEuro(cheapest)))
	}

	if cheapest, ok := cheapestPrice(result.Inbound); ok {
		attrs = append(attrs, slog.String("cheapest_inbound", utils.FormatEuro(cheapest)))
	}

	slog.InfoContext(ctx, "trip search finished", attrs...)
}

func cheapestPrice(flights []dto.FlightResult) (float64, bool) {
	if len(flights) == 0 {
		return 0, false
	}

	cheapest := flights[0].Price
	for _, f := range flights[1:] {
		if f.Price < cheapest {
			cheapest = f.Price
		}
	}

	return cheapest, true
}
