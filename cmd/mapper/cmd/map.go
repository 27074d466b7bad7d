package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/init-pkg/column-mapper/domain/app"
	mapping_cache "github.com/init-pkg/column-mapper/internal/app/mapping/cache"
	industry_classifier_service "github.com/init-pkg/column-mapper/internal/app/mapping/classifier"
	column_mapper_service "github.com/init-pkg/column-mapper/internal/app/mapping/column"
	mapping_events "github.com/init-pkg/column-mapper/internal/app/mapping/events"
	external_mapping_service "github.com/init-pkg/column-mapper/internal/app/mapping/external"
	mapping_service "github.com/init-pkg/column-mapper/internal/app/mapping/general"
	mapping_reconciler "github.com/init-pkg/column-mapper/internal/app/mapping/reconcile"
	schema_registry "github.com/init-pkg/column-mapper/internal/app/mapping/registry"
	review_repository "github.com/init-pkg/column-mapper/internal/app/mapping/review"
	sheet_parser_service "github.com/init-pkg/column-mapper/internal/app/sheet-parser/service"
	openai_client "github.com/init-pkg/column-mapper/internal/clients/openai"
	"github.com/spf13/cobra"
)

var (
	industry     string
	strategy     string
	apply        bool
	dropUnmapped bool
	verbose      bool
)

type mapOutput struct {
	*app.MapResponse
	Records []map[string]any `json:"records,omitempty"`
}

var mapCmd = &cobra.Command{
	Use:   "map <file>",
	Short: "Map the header row of a .csv, .xlsx or .xls file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		parser := sheet_parser_service.New(log)
		sheet, appErr := parser.Parse(cmd.Context(), args[0], file)
		if appErr != nil {
			return appErr
		}

		service := newService(parser, log)
		resp, appErr := service.MapHeaders(cmd.Context(), sheet.Header, sheet.Records(cfg.Mapping.MaxSampleRows), industry, strategy)
		if appErr != nil {
			return appErr
		}
		resp.Headers = sheet.Header

		out := mapOutput{MapResponse: resp}
		if apply {
			out.Records = mapping_reconciler.ApplyToRecords(sheet.Records(0), resp.Result, dropUnmapped)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

// newService wires the mapping pipeline without the HTTP server or any
// infrastructure client other than the optional OpenAI one.
func newService(parser app.SheetParserService, log *slog.Logger) app.MappingService {
	registry := schema_registry.Default()
	classifier := industry_classifier_service.New(registry, cfg.Mapping.DefaultIndustry)
	mapper := column_mapper_service.New(registry, classifier, cfg.Mapping.Threshold, log)

	var completer external_mapping_service.Completer
	if cfg.Clients.OpenAI.Enabled {
		completer = openai_client.New(cfg)
	}
	external := external_mapping_service.New(
		completer,
		registry,
		mapping_cache.NewMemory(cfg.Cache.Ttl),
		external_mapping_service.OptionsFromConfig(cfg),
		log,
	)

	return mapping_service.New(
		registry,
		classifier,
		mapper,
		external,
		parser,
		review_repository.NewMemory(),
		mapping_events.NoopPublisher{},
		cfg,
		log,
	)
}

func init() {
	mapCmd.Flags().StringVar(&industry, "industry", "", "industry hint, see the industries command")
	mapCmd.Flags().StringVar(&strategy, "strategy", "", "local, external or auto (default from config)")
	mapCmd.Flags().BoolVar(&apply, "apply", false, "also print every row renamed to canonical fields")
	mapCmd.Flags().BoolVar(&dropUnmapped, "drop-unmapped", false, "with --apply, drop columns that were not mapped")
	mapCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
	RootCmd.AddCommand(mapCmd)
}
