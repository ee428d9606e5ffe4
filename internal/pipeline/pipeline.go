package pipeline

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/jankowskaweronika/mojifix/internal/corruption"
	"github.com/jankowskaweronika/mojifix/internal/document"
	"github.com/jankowskaweronika/mojifix/internal/model"
	"github.com/jankowskaweronika/mojifix/internal/repair"
	"go.uber.org/zap"
)

// Store reads and atomically replaces target files
type Store interface {
	Read(path string) ([]byte, error)
	Save(path, text string) error
}

// Pipeline runs the read -> decode -> transform -> write sequence
type Pipeline struct {
	store  Store
	table  corruption.Map
	logger *zap.Logger
	config *model.Config
}

// NewPipeline creates a pipeline over store using the default corruption map
func NewPipeline(cfg *model.Config, store Store, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		store:  store,
		table:  corruption.Default(),
		logger: logger,
		config: cfg,
	}
}

// WithMap replaces the corruption map used by the pipeline
func (p *Pipeline) WithMap(m corruption.Map) *Pipeline {
	p.table = m
	return p
}

// Run repairs a single file. Either the full corrected text replaces the
// file or the file is left as it was.
func (p *Pipeline) Run(ctx context.Context, path string) (*model.Report, error) {
	log := p.logger.With(zap.String("path", path))

	// 1. Read
	if err := ctx.Err(); err != nil {
		return nil, &StageError{Stage: StageRead, Path: path, Err: err}
	}
	data, err := p.store.Read(path)
	if err != nil {
		return nil, &StageError{Stage: StageRead, Path: path, Err: err}
	}
	log.Debug("Read file", zap.Int("bytes", len(data)))

	// 2. Decode
	if err := ctx.Err(); err != nil {
		return nil, &StageError{Stage: StageDecode, Path: path, Err: err}
	}
	text, err := document.Decode(path, data)
	if err != nil {
		return nil, &StageError{Stage: StageDecode, Path: path, Err: err}
	}

	// 3. Transform
	if err := ctx.Err(); err != nil {
		return nil, &StageError{Stage: StageTransform, Path: path, Err: err}
	}
	fixed, hits := repair.Apply(p.table, text)
	if !utf8.ValidString(fixed) {
		return nil, &StageError{Stage: StageTransform, Path: path, Err: errors.New("corruption map produced invalid UTF-8")}
	}

	report := &model.Report{
		Path:     path,
		BytesIn:  len(data),
		BytesOut: len(fixed),
		Hits:     hits,
		Changed:  fixed != text,
		DryRun:   p.config.Write.DryRun,
	}
	for _, h := range hits {
		log.Debug("Replaced sequence", zap.String("name", h.Name), zap.Int("count", h.Count))
	}

	if !report.Changed {
		log.Info("Nothing to repair")
		return report, nil
	}
	if report.DryRun {
		log.Info("Dry run, not writing", zap.Int("replacements", report.Total()))
		return report, nil
	}

	// 4. Write
	if err := ctx.Err(); err != nil {
		return nil, &StageError{Stage: StageWrite, Path: path, Err: err}
	}
	if err := p.store.Save(path, fixed); err != nil {
		return nil, &StageError{Stage: StageWrite, Path: path, Err: err}
	}
	report.Written = true
	log.Info("Repaired file", zap.Int("replacements", report.Total()), zap.Int("bytes", report.BytesOut))

	return report, nil
}

// RunAll repairs paths in order and stops at the first failure. Reports for
// files completed before the failure are still returned.
func (p *Pipeline) RunAll(ctx context.Context, paths []string) ([]*model.Report, error) {
	reports := make([]*model.Report, 0, len(paths))
	for _, path := range paths {
		report, err := p.Run(ctx, path)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
