package pipeline_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cascade/internal/adapters/telemetry"
	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/core/ports"
	"go.trai.ch/cascade/internal/core/ports/mocks"
	"go.trai.ch/cascade/internal/engine/pipeline"
	"go.trai.ch/cascade/internal/engine/runner"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// recordingRunner records every command and fails the step named failOn.
type recordingRunner struct {
	steps   []string
	repeats []int
	failOn  string
}

func (r *recordingRunner) Run(
	_ context.Context, step string, _ *domain.CommandLine, _ *domain.RuntimeContext, opts ...ports.SpanOption,
) error {
	r.steps = append(r.steps, step)
	var cfg ports.SpanConfig
	for _, o := range opts {
		o(&cfg)
	}
	if repeat, ok := cfg.Attributes["repeat"].(int); ok {
		r.repeats = append(r.repeats, repeat)
	}
	if step == r.failOn {
		return zerr.With(zerr.Wrap(domain.ErrCommandFailed, "running "+step), "exit_code", 1)
	}
	return nil
}

type harness struct {
	runner   *recordingRunner
	tracer   *mocks.MockTracer
	renderer *mocks.MockRenderer
	logger   *mocks.MockLogger
	store    *mocks.MockStampStore
	hasher   *mocks.MockHasher
	commands pipeline.Commands
}

func newHarness(t *testing.T, mutate func(*domain.Options)) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		runner:   &recordingRunner{},
		tracer:   mocks.NewMockTracer(ctrl),
		renderer: mocks.NewMockRenderer(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		store:    mocks.NewMockStampStore(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
	}
	h.commands = commandsFor(linux, mutate)
	h.commands.WorkDir = t.TempDir()
	h.commands.BuildPath = filepath.Join(h.commands.WorkDir, "build")

	h.tracer.EXPECT().EmitPlan(gomock.Any(), gomock.Any()).AnyTimes()
	h.hasher.EXPECT().Fingerprint(gomock.Any()).Return("fp-make").AnyTimes()
	h.store.EXPECT().Get(gomock.Any()).Return(nil, nil).AnyTimes()
	h.store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return h
}

func (h *harness) pipeline() *pipeline.Pipeline {
	rc := domain.NewRuntimeContext(h.commands.WorkDir, h.commands.Platform, nil)
	return pipeline.New(h.commands, rc, h.runner, h.tracer, h.renderer, h.logger, h.store, h.hasher)
}

func TestPipeline_Run_BuildAndTest(t *testing.T) {
	h := newHarness(t, nil)
	h.renderer.EXPECT().Notice("test repeat: 0")

	require.NoError(t, h.pipeline().Run(context.Background()))
	assert.Equal(t, []string{pipeline.StepGenerate, pipeline.StepBuild, pipeline.StepTest}, h.runner.steps)
}

func TestPipeline_Run_InstallsWhenRequested(t *testing.T) {
	h := newHarness(t, func(o *domain.Options) { o.InstallDependencies = true; o.OnlyBuild = true })

	require.NoError(t, h.pipeline().Run(context.Background()))
	assert.Equal(t, []string{pipeline.StepInstall, pipeline.StepGenerate, pipeline.StepBuild}, h.runner.steps)
}

func TestPipeline_Run_TestOnly(t *testing.T) {
	h := newHarness(t, func(o *domain.Options) { o.OnlyTest = true; o.InstallDependencies = true })
	h.renderer.EXPECT().Notice(gomock.Any())

	require.NoError(t, h.pipeline().Run(context.Background()))
	assert.Equal(t, []string{pipeline.StepTest}, h.runner.steps)
}

func TestPipeline_Run_EmitsPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t, func(o *domain.Options) { o.InstallDependencies = true })
	h.tracer = mocks.NewMockTracer(ctrl)
	h.tracer.EXPECT().EmitPlan(gomock.Any(), []string{
		pipeline.StepInstall, pipeline.StepGenerate, pipeline.StepBuild, pipeline.StepTest,
	})
	h.renderer.EXPECT().Notice(gomock.Any())

	require.NoError(t, h.pipeline().Run(context.Background()))
}

func TestPipeline_Run_BuildFailureSkipsTests(t *testing.T) {
	h := newHarness(t, nil)
	h.runner.failOn = pipeline.StepBuild

	err := h.pipeline().Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCommandFailed))
	assert.NotContains(t, h.runner.steps, pipeline.StepTest)
}

func TestPipeline_Run_InstallFailureSkipsGenerate(t *testing.T) {
	h := newHarness(t, func(o *domain.Options) { o.InstallDependencies = true })
	h.runner.failOn = pipeline.StepInstall

	require.Error(t, h.pipeline().Run(context.Background()))
	assert.Equal(t, []string{pipeline.StepInstall}, h.runner.steps)
}

func TestPipeline_Test_Repeats(t *testing.T) {
	h := newHarness(t, func(o *domain.Options) { o.Repeat = 3 })
	gomock.InOrder(
		h.renderer.EXPECT().Notice("test repeat: 0"),
		h.renderer.EXPECT().Notice("test repeat: 1"),
		h.renderer.EXPECT().Notice("test repeat: 2"),
	)

	require.NoError(t, h.pipeline().Test(context.Background()))
	assert.Equal(t, []string{pipeline.StepTest, pipeline.StepTest, pipeline.StepTest}, h.runner.steps)
	assert.Equal(t, []int{0, 1, 2}, h.runner.repeats)
}

func TestPipeline_Test_FailureStopsRepeats(t *testing.T) {
	h := newHarness(t, func(o *domain.Options) { o.Repeat = 3 })
	h.runner.failOn = pipeline.StepTest
	h.renderer.EXPECT().Notice("test repeat: 0")

	require.Error(t, h.pipeline().Test(context.Background()))
	assert.Len(t, h.runner.steps, 1)
}

func TestPipeline_Test_CoverageSummary(t *testing.T) {
	h := newHarness(t, func(o *domain.Options) { o.MeasureCoverage = true; o.CoberturaFormat = true })
	report := filepath.Join(h.commands.WorkDir, "Coverage.xml")
	require.NoError(t, os.WriteFile(report, []byte(`<coverage line-rate="0.8734">`), domain.FilePerm))

	gomock.InOrder(
		h.renderer.EXPECT().Notice("test repeat: 0"),
		h.renderer.EXPECT().Banner("['Cover 87%', 'Uncover 13%']"),
	)

	require.NoError(t, h.pipeline().Test(context.Background()))
}

func TestPipeline_Test_CoverageHTMLSummary(t *testing.T) {
	h := newHarness(t, func(o *domain.Options) { o.MeasureCoverage = true })
	report := filepath.Join(h.commands.WorkDir, "Coverage", "index.html")
	require.NoError(t, os.MkdirAll(filepath.Dir(report), domain.DirPerm))
	require.NoError(t, os.WriteFile(report, []byte("x('labels', ['Cover 87%','Uncover 13%']);\n"), domain.FilePerm))

	h.renderer.EXPECT().Notice(gomock.Any())
	h.renderer.EXPECT().Banner("['Cover 87%','Uncover 13%']")

	require.NoError(t, h.pipeline().Test(context.Background()))
}

func TestPipeline_Test_CoverageMissWithoutOutput(t *testing.T) {
	h := newHarness(t, func(o *domain.Options) { o.MeasureCoverage = true; o.CoberturaFormat = true })
	report := filepath.Join(h.commands.WorkDir, "Coverage.xml")
	require.NoError(t, os.WriteFile(report, []byte("<coverage/>"), domain.FilePerm))
	h.renderer.EXPECT().Notice(gomock.Any())

	require.NoError(t, h.pipeline().Test(context.Background()))
}

func TestPipeline_Test_MissingReportWarns(t *testing.T) {
	h := newHarness(t, func(o *domain.Options) { o.MeasureCoverage = true })
	h.renderer.EXPECT().Notice(gomock.Any())
	h.logger.EXPECT().Warn(gomock.Any())

	require.NoError(t, h.pipeline().Test(context.Background()))
}

func TestPipeline_Generate_GeneratorChangeWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t, func(o *domain.Options) { o.AlternateGenerator = true })
	h.store = mocks.NewMockStampStore(ctrl)
	h.hasher = mocks.NewMockHasher(ctrl)

	h.hasher.EXPECT().Fingerprint("-G", "Ninja").Return("fp-ninja")
	h.store.EXPECT().Get(h.commands.BuildPath).
		Return(&domain.Stamp{Generator: `-G "Unix Makefiles"`, Fingerprint: "fp-make"}, nil)
	h.logger.EXPECT().Warn(gomock.Any())
	h.store.EXPECT().Put(h.commands.BuildPath, domain.Stamp{Generator: "-G Ninja", Fingerprint: "fp-ninja"}).Return(nil)

	require.NoError(t, h.pipeline().Generate(context.Background()))
}

func TestPipeline_Generate_StampErrorsAreNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t, nil)
	h.store = mocks.NewMockStampStore(ctrl)

	h.store.EXPECT().Get(gomock.Any()).Return(nil, zerr.Wrap(domain.ErrStampUnmarshalFailed, "bad json"))
	h.store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(zerr.Wrap(domain.ErrStampWriteFailed, "read-only"))
	h.logger.EXPECT().Warn(gomock.Any()).Times(2)

	require.NoError(t, h.pipeline().Generate(context.Background()))
}

func TestPipeline_Generate_FailureLeavesStampUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t, nil)
	h.store = mocks.NewMockStampStore(ctrl)
	h.store.EXPECT().Get(gomock.Any()).Return(nil, nil)
	h.runner.failOn = pipeline.StepGenerate

	require.Error(t, h.pipeline().Generate(context.Background()))
}

// A failing build command ends the run before the test binary is started.
func TestPipeline_Run_WithRunner_BuildExitStopsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t, nil)
	executor := mocks.NewMockExecutor(ctrl)

	h.renderer.EXPECT().Banner(gomock.Any()).Times(2)
	gomock.InOrder(
		executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil),
		executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(1, nil),
	)

	rc := domain.NewRuntimeContext(h.commands.WorkDir, h.commands.Platform, nil)
	r := runner.New(executor, h.renderer, telemetry.NewNoOpTracer())
	p := pipeline.New(h.commands, rc, r, h.tracer, h.renderer, h.logger, h.store, h.hasher)

	err := p.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCommandFailed))
}
