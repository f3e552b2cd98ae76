package cmd

import (
	"context"
	"fmt"

	"basemedia/feature/integrity"
	"basemedia/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the base sets",
	Long:  `Scans the media source and reports the missing and corrupt files of the active sets, the source structure and the inventory schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

var integritySetsCmd = &cobra.Command{
	Use:   "sets",
	Short: "Check the files of the active sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

var integrityStructureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check the bucket and the presence of manifests",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

var integritySchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the inventory database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(integritySetsCmd, integrityStructureCmd, integritySchemaCmd)
}

func runIntegrityChecks(ctx context.Context, runSets, runStructure, runSchema bool) error {
	env, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	logg := env.logger
	defer logg.Sync()

	svc := integrity.NewService(env.sets, env.source, env.client, env.bucket(), env.db, logg)

	if runStructure {
		logg.Info("Checking media source structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}
		if len(missing) == 0 {
			logg.Info("Every kind has at least one manifest.")
		} else {
			logg.Warn("Kinds without manifests", zap.Strings("missing", missing))
		}
	}

	if runSets {
		logg.Info("Scanning base sets...")
		if _, err := env.sets.Rescan(ctx); err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}
		reports, err := svc.CheckSets()
		if err != nil {
			return fmt.Errorf("set check failed: %w", err)
		}
		for _, r := range reports {
			logSetReport(logg, r)
		}
	}

	if runSchema {
		if env.db == nil {
			logg.Warn("No database connection, skipping schema check")
			return nil
		}
		logg.Info("Checking inventory schema...", zap.String("driver", env.cfg.Database.Driver))
		report, err := svc.CheckSchema()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		if report.Matched {
			logg.Info("Inventory schema matches the models.")
		} else {
			logg.Warn("Inventory schema mismatches found")
			for table, tbl := range report.Tables {
				if tbl.Status == "ok" {
					continue
				}
				if len(tbl.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
				if len(tbl.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	return nil
}

func logSetReport(logg *zap.Logger, r checks.SetReport) {
	switch r.Status {
	case checks.StatusNone:
		logg.Warn("No usable set", zap.String("kind", r.Kind))
		return
	case checks.StatusOK:
		logg.Info("Active set is intact", zap.String("kind", r.Kind), zap.String("set", r.Active), zap.Int("version", r.Version))
		return
	}

	logg.Warn("Active set has problems",
		zap.String("kind", r.Kind),
		zap.String("set", r.Active),
		zap.String("status", r.Status),
		zap.Int("problems", len(r.Problems)),
	)
	for _, p := range r.Problems {
		logg.Warn("File "+p.Status.String(),
			zap.String("kind", r.Kind),
			zap.String("file", p.Path),
			zap.String("hint", p.Message),
		)
	}
}
