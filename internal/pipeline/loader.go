package pipeline

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/theirongolddev/fintrack/internal/export"
	"github.com/theirongolddev/fintrack/internal/ledger"
	"github.com/theirongolddev/fintrack/internal/logger"

	"go.uber.org/zap"
)

// LoadResult holds the merged ledger and per-file outcome counts.
type LoadResult struct {
	Ledger      *ledger.Ledger
	TotalFiles  int
	LoadedFiles int
	FileErrors  int
	Errors      map[string]error // keyed by path
}

// ProgressFunc is called during loading to report progress.
// current is the number of files processed so far, total is the total count.
type ProgressFunc func(current, total int)

type fileResult struct {
	ledger *ledger.Ledger
	err    error
}

// Load reads every file with a bounded worker pool and merges the records
// into one ledger. Records keep file order first, then row order. Files that
// fail to load are counted and skipped.
func Load(files []string, progressFn ProgressFunc) *LoadResult {
	result := &LoadResult{
		Ledger:     ledger.New(),
		TotalFiles: len(files),
		Errors:     make(map[string]error),
	}
	if len(files) == 0 {
		return result
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 4
	}
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	work := make(chan int, len(files))
	results := make([]fileResult, len(files))
	var wg sync.WaitGroup
	var processed atomic.Int64

	for i := range files {
		work <- i
	}
	close(work)

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				l, err := export.FromFile(files[idx])
				results[idx] = fileResult{ledger: l, err: err}
				n := processed.Add(1)
				if progressFn != nil {
					progressFn(int(n), len(files))
				}
			}
		}()
	}

	wg.Wait()

	for i, fr := range results {
		if fr.err != nil {
			result.FileErrors++
			result.Errors[files[i]] = fr.err
			logger.Warn("export file skipped", zap.String("path", files[i]), zap.Error(fr.err))
			continue
		}
		result.LoadedFiles++
		for _, e := range fr.ledger.Records() {
			result.Ledger.Append(e)
		}
	}

	return result
}
