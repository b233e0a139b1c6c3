package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"veb_counter/pkg/ip"
	"veb_counter/pkg/set"
	"veb_counter/pkg/util"
)

// lines between context checks
const cancelCheckInterval = 4096

// Write reads the ip file and loads its addresses into sets, returning the
// sealed sets of every segment.
func Write(ctx context.Context, cfg *WriteConfigs) ([][]set.Set, error) {
	logger := slog.Default().With("system", "write")

	// validate the backend before touching the file
	if _, err := set.New(cfg.Backend); err != nil {
		return nil, err
	}

	ipFile, err := os.Open(cfg.IPFilePath)
	if err != nil {
		return nil, err
	}
	defer ipFile.Close()

	stat, err := ipFile.Stat()
	if err != nil {
		return nil, err
	}

	// breaking file into segments for parallel reading
	segments, err := ip.Segments(ipFile, stat.Size(), cfg.IPIteratorCount)
	if err != nil {
		return nil, fmt.Errorf("splitting %s: %w", cfg.IPFilePath, err)
	}
	logger.Info("reading ip file", "path", cfg.IPFilePath, "size", stat.Size(), "segments", len(segments))

	setsPerSegment := make([][]set.Set, len(segments))

	// count of ips read from ip file and put into sets
	var writeCount atomic.Uint64

	if cfg.ProgressInterval > 0 {
		stop := util.SetInterval(func(start, now time.Time) {
			sec := max(uint64(now.Sub(start).Seconds()), 1)
			n := writeCount.Load()
			logger.Info("progress", "writeCount", n, "sec", sec, "eps", n/sec)
		}, cfg.ProgressInterval)
		defer stop()
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, segment := range segments {
		g.Go(func() error {
			parser := ip.Parser()
			processStage := stageProcessor(logger, i, &setsPerSegment[i])
			current, err := set.New(cfg.Backend)
			if err != nil {
				return err
			}

			lines := 0
			for line, err := range segment.Lines(cfg.IPReaderPageSize) {
				if err != nil {
					return fmt.Errorf("segment %d: %w", i, err)
				}
				if lines%cancelCheckInterval == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				lines++

				addr, err := parser.Parse(line)
				if err != nil {
					return fmt.Errorf("segment %d: %w", i, err)
				}
				writeCount.Add(1)
				current.Put(uint32(addr))

				if cfg.ElementsPerStage > 0 && current.Count() == uint64(cfg.ElementsPerStage) {
					processStage(current)
					if current, err = set.New(cfg.Backend); err != nil {
						return err
					}
				}
			}

			// the rest of the segment
			if current.Count() > 0 {
				processStage(current)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Info("ip file loaded", "writeCount", writeCount.Load())
	return setsPerSegment, nil
}
