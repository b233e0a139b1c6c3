package components

import (
	"context"
	"iter"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"veb_counter/pkg/set"
	"veb_counter/pkg/util"
)

const maxReaders = 1024

// merged keys between context checks and progress updates
const mergeCheckInterval = 4096

// Read counts the distinct keys over all sets. The key space is split into
// ParallelReaderCount ranges and each range is merged on its own goroutine;
// the sets are only read, never modified.
func Read(ctx context.Context, cfg *ReadConfigs) (uint64, error) {
	logger := slog.Default().With("system", "read")

	var sets []set.Set
	for _, segmentSets := range cfg.SetsPerSegment {
		sets = append(sets, segmentSets...)
	}

	// count of keys read from all sets, duplicates included
	var readCount atomic.Uint64
	// count of unique keys
	var uniqCount atomic.Uint64

	if cfg.ProgressInterval > 0 {
		stop := util.SetInterval(func(start, now time.Time) {
			sec := max(uint64(now.Sub(start).Seconds()), 1)
			n := readCount.Load()
			logger.Info("progress", "readCount", n, "uniqCount", uniqCount.Load(), "sec", sec, "eps", n/sec)
		}, cfg.ProgressInterval)
		defer stop()
	}

	readers := uint64(min(max(cfg.ParallelReaderCount, 1), maxReaders))
	const universe = uint64(math.MaxUint32) + 1

	g, ctx := errgroup.WithContext(ctx)
	for i := range readers {
		from := uint32(universe * i / readers)
		to := uint32(universe*(i+1)/readers - 1)

		g.Go(func() error {
			iterators := make([]iter.Seq[uint32], len(sets))
			for j, s := range sets {
				iterators[j] = s.Range(from, to)
			}

			var last uint32
			seen, uniq, read := false, uint64(0), uint64(0)
			// keys arrive in increasing order, so a key is new
			// whenever it differs from the previous one
			for key := range util.MultiIterator(iterators) {
				if read%mergeCheckInterval == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				if read++; read%mergeCheckInterval == 0 {
					readCount.Add(mergeCheckInterval)
				}
				if !seen || key != last {
					last, seen = key, true
					uniq++
				}
			}

			readCount.Add(read % mergeCheckInterval)
			uniqCount.Add(uniq)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	logger.Info("sets merged", "sets", len(sets), "readCount", readCount.Load(), "uniqCount", uniqCount.Load())
	return uniqCount.Load(), nil
}
