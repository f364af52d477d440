package service

import (
	"fmt"

	"github.com/DehanLUO/modern-go-template/internal/logger"
	"github.com/DehanLUO/modern-go-template/models"
)

type Services struct {
	BuildInfoService BuildInfoService
}

func NewServices(metadata models.BuildMetadata, logger *logger.Logger) (*Services, error) {
	buildInfoService, err := NewBuildInfoService(metadata, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating build info service: %w", err)
	}

	return &Services{
		BuildInfoService: buildInfoService,
	}, nil
}
