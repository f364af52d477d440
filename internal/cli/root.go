// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The modern-go-template Authors

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/DehanLUO/modern-go-template/internal/config"
	"github.com/DehanLUO/modern-go-template/internal/logger"
	"github.com/DehanLUO/modern-go-template/internal/report"
	"github.com/DehanLUO/modern-go-template/internal/service"
	"github.com/DehanLUO/modern-go-template/internal/tui"
	"github.com/DehanLUO/modern-go-template/models"
)

const appName = "project"

type servicesFactory func(metadata models.BuildMetadata, logger *logger.Logger) (*service.Services, error)

// app carries what every command needs once configuration is loaded.
type app struct {
	metadata    models.BuildMetadata
	newServices servicesFactory

	cfg      *config.StructuredConfig
	logger   *logger.Logger
	services *service.Services
}

// NewRootCmd returns the root command for a binary described by metadata.
func NewRootCmd(metadata models.BuildMetadata) *cobra.Command {
	return newRootCmd(metadata, service.NewServices)
}

// Execute runs the root command with ctx and the process arguments.
func Execute(ctx context.Context, metadata models.BuildMetadata) error {
	return NewRootCmd(metadata).ExecuteContext(ctx)
}

func newRootCmd(metadata models.BuildMetadata, newServices servicesFactory) *cobra.Command {
	a := &app{metadata: metadata, newServices: newServices}

	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "Print the build information of this binary",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			return a.runReport(cmd)
		},
	}
	config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newAddCmd(), newVersionCmd(a))
	return rootCmd
}

// setup loads configuration, then creates the logger and services.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log := logger.NewLogger(appName, level, cmd.ErrOrStderr())
	log.Debug().Any("config", cfg).Msg("received configs")

	services, err := a.newServices(a.metadata, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	cmd.SetContext(log.WithContext(cmd.Context()))
	a.cfg = cfg
	a.logger = log
	a.services = services
	return nil
}

func (a *app) runReport(cmd *cobra.Command) (err error) {
	ctx := cmd.Context()

	if a.cfg.Report.Interactive {
		ui, err := tui.New(a.services, a.logger)
		if err != nil {
			return fmt.Errorf("error creating ui: %w", err)
		}
		return ui.Run(ctx, os.Stdin, os.Stdout)
	}

	out := cmd.OutOrStdout()
	if path := a.cfg.Report.Output; path != "" {
		f, createErr := os.Create(path)
		if createErr != nil {
			return fmt.Errorf("error opening report output: %w", createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				err = errors.Join(err, closeErr)
			}
		}()
		out = f
		logger.FromContext(ctx).Info().Str("path", path).Msg("writing build information report to file")
	}

	return a.report(ctx, out)
}

func (a *app) report(ctx context.Context, w io.Writer) error {
	variant := report.Variant(a.cfg.Report.Variant)
	format := report.Format(a.cfg.Report.Format)

	if w == os.Stdout && variant == report.VariantLibrary && format == report.FormatText {
		return report.DumpBuildInfoStdout(a.services.BuildInfoService.GetBuildMetadata(ctx))
	}
	return a.services.BuildInfoService.Report(ctx, w, variant, format)
}
