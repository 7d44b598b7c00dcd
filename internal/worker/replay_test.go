package worker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lgbarn/chess-go/internal/config"
	"github.com/lgbarn/chess-go/internal/errors"
	"github.com/lgbarn/chess-go/internal/hashing"
	"github.com/lgbarn/chess-go/internal/session"
	"github.com/lgbarn/chess-go/internal/testutil"
)

func writeGames(t *testing.T, games map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range games {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

func TestReplayAll(t *testing.T) {
	dir := writeGames(t, map[string]string{
		"fools.pgn":   "1. f3 e5 2. g4 Qh4# 0-1\n",
		"scholar.raw": "e2 e4\ne7 e5\nf1 c4\nb8 c6\nd1 h5\ng8 f6\nh5 f7\n",
		"broken.pgn":  "1. e4 e5 2. Ke3 *\n",
		"draw.pgn":    "1. d4 d5 1/2-1/2\n",
	})
	paths := []string{
		filepath.Join(dir, "fools.pgn"),
		filepath.Join(dir, "scholar.raw"),
		filepath.Join(dir, "broken.pgn"),
		filepath.Join(dir, "draw.pgn"),
	}

	results := ReplayAll(config.ReplayConfig{Workers: 3, BufferSize: 2}, paths)
	testutil.AssertEqual(t, len(results), len(paths))

	for i, r := range results {
		testutil.AssertEqual(t, r.Index, i)
		testutil.AssertEqual(t, r.Path, paths[i])
		testutil.AssertNotNil(t, r.Report)
	}

	testutil.AssertNoError(t, results[0].Error)
	testutil.AssertEqual(t, results[0].Report.Analysis.State, session.Checkmate)
	testutil.AssertEqual(t, results[0].Report.Analysis.Winner, "black")

	testutil.AssertNoError(t, results[1].Error)
	testutil.AssertEqual(t, results[1].Report.Analysis.State, session.Checkmate)
	testutil.AssertEqual(t, results[1].Report.Analysis.Winner, "white")
	testutil.AssertEqual(t, results[1].Report.Analysis.Captures, 1)

	testutil.AssertErrorIs(t, results[2].Error, errors.ErrInvalidNotation)
	testutil.AssertEqual(t, results[2].Report.Analysis.Plies, 2)

	testutil.AssertNoError(t, results[3].Error)
	testutil.AssertEqual(t, results[3].Report.Analysis.State, session.Drawn)
}

func TestReplayAll_DefaultWorkers(t *testing.T) {
	dir := writeGames(t, map[string]string{"short.pgn": "1. e4 *\n"})

	results := ReplayAll(*config.NewReplayConfig(), []string{filepath.Join(dir, "short.pgn")})
	testutil.AssertEqual(t, len(results), 1)
	testutil.AssertNoError(t, results[0].Error)
	testutil.AssertEqual(t, results[0].Report.Analysis.Plies, 1)
}

func TestReplayFunc_Duplicates(t *testing.T) {
	dir := writeGames(t, map[string]string{
		"a.pgn": "1. e4 e5 2. Nf3 Nc6 *\n",
		"b.pgn": "1. Nf3 Nc6 2. e4 e5 *\n",
		"c.pgn": "1. d4 d5 *\n",
	})
	dups := hashing.NewThreadSafeDuplicateDetector(false, 0)
	replay := ReplayFunc(dups)

	first := replay(WorkItem{Path: filepath.Join(dir, "a.pgn"), Index: 0})
	second := replay(WorkItem{Path: filepath.Join(dir, "b.pgn"), Index: 1})
	other := replay(WorkItem{Path: filepath.Join(dir, "c.pgn"), Index: 2})

	testutil.AssertEqual(t, first.DuplicateOf, "")
	testutil.AssertEqual(t, second.DuplicateOf, first.Path)
	testutil.AssertEqual(t, other.DuplicateOf, "")
	testutil.AssertEqual(t, dups.DuplicateCount(), 1)
}

func TestReplayFunc_MissingFile(t *testing.T) {
	replay := ReplayFunc(nil)
	r := replay(WorkItem{Path: filepath.Join(t.TempDir(), "missing.pgn")})
	testutil.AssertError(t, r.Error, "missing file")
	testutil.AssertEqual(t, r.DuplicateOf, "")
}
