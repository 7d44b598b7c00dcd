package worker

import (
	"runtime"
	"sort"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-go/internal/config"
	"github.com/lgbarn/chess-go/internal/hashing"
	"github.com/lgbarn/chess-go/internal/obslog"
	"github.com/lgbarn/chess-go/internal/processing"
	"github.com/lgbarn/chess-go/internal/session"
)

// ReplayFunc returns a ProcessFunc that replays each item in its own
// session. When dups is not nil, games that end in an already seen
// position are marked as duplicates.
func ReplayFunc(dups *hashing.ThreadSafeDuplicateDetector, opts ...session.Option) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Path: item.Path, Index: item.Index}
		report, err := processing.ReplayFile(item.Path, opts...)
		result.Report = report
		result.Error = err
		if err != nil || report == nil || dups == nil {
			return result
		}

		sig := hashing.NewSignature(item.Path, &report.Final.Board, report.Final.Turn, report.Analysis.Plies)
		if first, dup := dups.CheckAndAdd(sig); dup {
			result.DuplicateOf = first
		}
		return result
	}
}

// ReplayAll replays every path with the pool sized by cfg and returns the
// results in input order. A failed replay is reported in its result and
// does not stop the others.
func ReplayAll(cfg config.ReplayConfig, paths []string, opts ...session.Option) []ProcessResult {
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	dups := hashing.NewThreadSafeDuplicateDetector(false, 0)
	pool := NewPoolWithOptions(ReplayFunc(dups, opts...),
		WithWorkers(workers),
		WithBufferSize(cfg.BufferSize))
	pool.Start()

	go func() {
		for i, path := range paths {
			pool.Submit(WorkItem{Path: path, Index: i})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(paths))
	for r := range pool.Results() {
		if r.Error != nil {
			obslog.L().Warn("batch_replay_failed", zap.String("file", r.Path), zap.Error(r.Error))
		}
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })

	obslog.L().Info("batch_replay",
		zap.Int("games", len(results)),
		zap.Int("workers", pool.NumWorkers()),
		zap.Int("duplicates", dups.DuplicateCount()))
	return results
}
