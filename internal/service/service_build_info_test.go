package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DehanLUO/modern-go-template/internal/logger"
	"github.com/DehanLUO/modern-go-template/internal/report"
	"github.com/DehanLUO/modern-go-template/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMetadata(version string) models.BuildMetadata {
	return models.NewBuildMetadata(models.BuildMetadataParams{
		Version:        version,
		BuildType:      "RELEASE",
		BuildTimestamp: "2024-01-01 00:00:00 UTC",
		GitCommitHash:  "unknown",
	})
}

type brokenWriter struct{ err error }

func (b brokenWriter) Write([]byte) (int, error) { return 0, b.err }

// ─────────────────────────────────────────────
// NewBuildInfoService
// ─────────────────────────────────────────────

func TestNewBuildInfoService_Success(t *testing.T) {
	svc, err := NewBuildInfoService(testMetadata("1.0.0"), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewBuildInfoService_ZeroRecord_ReturnsError(t *testing.T) {
	svc, err := NewBuildInfoService(models.BuildMetadata{}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

func TestNewServices_WiresBuildInfoService(t *testing.T) {
	services, err := NewServices(testMetadata("1.0.0"), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, services.BuildInfoService)
}

func TestNewServices_ZeroRecord_ReturnsError(t *testing.T) {
	services, err := NewServices(models.BuildMetadata{}, logger.Nop())

	assert.Nil(t, services)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

// ─────────────────────────────────────────────
// GetAppVersion / GetBuildMetadata
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsRecordVersion(t *testing.T) {
	svc, err := NewBuildInfoService(testMetadata("3.1.4"), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_SentinelWhenUnknown(t *testing.T) {
	svc, err := NewBuildInfoService(testMetadata(""), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, models.SentinelUnknown, svc.GetAppVersion(context.Background()))
}

func TestGetBuildMetadata_ReturnsSameRecord(t *testing.T) {
	md := testMetadata("0.0.1")
	svc, err := NewBuildInfoService(md, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, md, svc.GetBuildMetadata(context.Background()))
}

// ─────────────────────────────────────────────
// Report
// ─────────────────────────────────────────────

func TestReport_WritesReport(t *testing.T) {
	svc, err := NewBuildInfoService(testMetadata("1.0.0"), logger.Nop())
	require.NoError(t, err)

	var buf bytes.Buffer
	err = svc.Report(context.Background(), &buf, report.VariantBinary, report.FormatText)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Build    : RELEASE (2024-01-01 00:00:00 UTC)")
	assert.Contains(t, buf.String(), "Commit   : unknown")
	assert.NotContains(t, buf.String(), "Version")
}

func TestReport_IsStableAcrossCalls(t *testing.T) {
	svc, err := NewBuildInfoService(testMetadata("1.0.0"), logger.Nop())
	require.NoError(t, err)

	var first, second bytes.Buffer
	require.NoError(t, svc.Report(context.Background(), &first, report.VariantBoth, report.FormatText))
	require.NoError(t, svc.Report(context.Background(), &second, report.VariantBoth, report.FormatText))

	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, 2, strings.Count(first.String(), report.Title))
}

func TestReport_SinkErrorIsNotWrapped(t *testing.T) {
	svc, err := NewBuildInfoService(testMetadata("1.0.0"), logger.Nop())
	require.NoError(t, err)
	errSink := errors.New("disk full")

	err = svc.Report(context.Background(), brokenWriter{err: errSink}, report.VariantLibrary, report.FormatText)

	assert.True(t, err == errSink, "got %v", err)
}

func TestReport_UnknownFormat(t *testing.T) {
	svc, err := NewBuildInfoService(testMetadata("1.0.0"), logger.Nop())
	require.NoError(t, err)

	err = svc.Report(context.Background(), &bytes.Buffer{}, report.VariantLibrary, report.Format("xml"))

	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}
