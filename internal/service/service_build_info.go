package service

import (
	"context"
	"io"

	"github.com/DehanLUO/modern-go-template/internal/logger"
	"github.com/DehanLUO/modern-go-template/internal/report"
	"github.com/DehanLUO/modern-go-template/models"
)

type buildInfoService struct {
	metadata models.BuildMetadata

	logger *logger.Logger
}

func NewBuildInfoService(metadata models.BuildMetadata, logger *logger.Logger) (BuildInfoService, error) {
	if metadata.Version() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &buildInfoService{
		metadata: metadata,
		logger:   logger,
	}, nil
}

func (s *buildInfoService) GetAppVersion(ctx context.Context) string {
	return s.metadata.Version()
}

func (s *buildInfoService) GetBuildMetadata(ctx context.Context) models.BuildMetadata {
	return s.metadata
}

func (s *buildInfoService) Report(ctx context.Context, w io.Writer, variant report.Variant, format report.Format) error {
	s.logger.Debug().
		Str("variant", string(variant)).
		Str("format", string(format)).
		Msg("rendering build information report")

	err := report.Render(w, s.metadata, variant, format)
	if err != nil {
		s.logger.Error().Err(err).Msg("error rendering build information report")
	}
	return err
}
