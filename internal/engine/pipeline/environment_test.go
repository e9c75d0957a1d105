package pipeline_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/core/ports/mocks"
	"go.trai.ch/cascade/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestInitEnvironment_ResolvesPrimary(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockVersionResolver(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	cfg := domain.DefaultConfig()
	rc := domain.NewRuntimeContext("/w", linux, nil)

	resolver.EXPECT().Resolve([]string{filepath.Join("/w", "version.properties")}).
		Return(domain.Version{Major: "1", Minor: "2", Patch: "3"}, nil)

	pipeline.InitEnvironment(rc, cfg, resolver, logger)

	v, ok := rc.Lookup("CAMERA_CASCADE_VERSION")
	assert.True(t, ok)
	assert.Equal(t, "U.1.2.3.0", v)
	upgrade, _ := rc.Lookup("SELF_UPGRADE")
	assert.Equal(t, "0", upgrade)
}

func TestInitEnvironment_FallsBackToSecondary(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockVersionResolver(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	rc := domain.NewRuntimeContext("/w", linux, nil)

	gomock.InOrder(
		resolver.EXPECT().Resolve([]string{filepath.Join("/w", "version.properties")}).
			Return(domain.Version{}, zerr.Wrap(domain.ErrVersionFileNotFound, "resolving version")),
		resolver.EXPECT().Resolve([]string{filepath.Join("/w", "tools/udi-debug-gui/version.properties")}).
			Return(domain.Version{Major: "4", Minor: "5", Patch: "6"}, nil),
	)

	pipeline.InitEnvironment(rc, domain.DefaultConfig(), resolver, logger)

	v, _ := rc.Lookup("CAMERA_CASCADE_VERSION")
	assert.Equal(t, "U.4.5.6.0", v)
}

func TestInitEnvironment_UnresolvedWarnsAndContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockVersionResolver(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	rc := domain.NewRuntimeContext("/w", linux, nil)

	resolver.EXPECT().Resolve(gomock.Any()).
		Return(domain.Version{}, zerr.Wrap(domain.ErrVersionFileNotFound, "resolving version")).Times(2)
	logger.EXPECT().Warn(gomock.Any()).Times(1)

	pipeline.InitEnvironment(rc, domain.DefaultConfig(), resolver, logger)

	_, ok := rc.Lookup("CAMERA_CASCADE_VERSION")
	assert.False(t, ok)
	assert.Equal(t, []string{"SELF_UPGRADE=0"}, rc.Overrides())
}

func TestInitEnvironment_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockVersionResolver(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	cfg := domain.DefaultConfig()
	rc := domain.NewRuntimeContext("/w", linux, nil)

	resolver.EXPECT().Resolve(gomock.Any()).
		Return(domain.Version{Major: "1", Minor: "0", Patch: "0"}, nil).Times(1)

	pipeline.InitEnvironment(rc, cfg, resolver, logger)
	first := rc.Overrides()
	pipeline.InitEnvironment(rc, cfg, resolver, logger)

	assert.Equal(t, first, rc.Overrides())
}

func TestInitEnvironment_InheritedValuesWin(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockVersionResolver(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	rc := domain.NewRuntimeContext("/w", linux, []string{
		"CAMERA_CASCADE_VERSION=U.9.9.9.0",
		"SELF_UPGRADE=1",
	})

	pipeline.InitEnvironment(rc, domain.DefaultConfig(), resolver, logger)

	assert.Empty(t, rc.Overrides())
	v, _ := rc.Lookup("CAMERA_CASCADE_VERSION")
	assert.Equal(t, "U.9.9.9.0", v)
}

func TestInitEnvironment_WindowsLeavesUpgradeFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockVersionResolver(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	rc := domain.NewRuntimeContext(`C:\w`, windows, []string{"CAMERA_CASCADE_VERSION=U.1.2.3.0"})

	pipeline.InitEnvironment(rc, domain.DefaultConfig(), resolver, logger)

	_, ok := rc.Lookup("SELF_UPGRADE")
	assert.False(t, ok)
}
