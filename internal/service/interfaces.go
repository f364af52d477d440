//go:generate mockgen -source=interfaces.go -destination=../mock/build_info_service_mock.go -package=mock

package service

import (
	"context"
	"io"

	"github.com/DehanLUO/modern-go-template/internal/report"
	"github.com/DehanLUO/modern-go-template/models"
)

// BuildInfoService exposes the build metadata embedded in the binary.
type BuildInfoService interface {
	// GetAppVersion returns the release identifier of the running binary.
	GetAppVersion(ctx context.Context) string
	// GetBuildMetadata returns the full immutable metadata record.
	GetBuildMetadata(ctx context.Context) models.BuildMetadata
	// Report renders the build information report into w.
	// Errors from w are returned unchanged.
	Report(ctx context.Context, w io.Writer, variant report.Variant, format report.Format) error
}
