package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"

	"veb_counter/components"
	"veb_counter/pkg/ip"
	"veb_counter/pkg/set"
	"veb_counter/pkg/util"
)

const ipPageSize = 4 * 1024 * 1024 // 4MB

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:    "veb_counter",
		Usage:   "count unique IPv4 addresses with a van Emde Boas set",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				EnvVars: []string{"VEB_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "text or json",
				EnvVars: []string{"VEB_LOG_FMT"},
			},
		},
		Before: func(cctx *cli.Context) error {
			_, err := util.SetupSlog(util.LogOptions{
				LogLevel:  cctx.String("log-level"),
				LogFormat: cctx.String("log-format"),
			})
			return err
		},
	}
	app.Commands = []*cli.Command{
		cmdCount,
		cmdGenerate,
	}
	return app.Run(args)
}

var cmdCount = &cli.Command{
	Name:      "count",
	Usage:     "print the number of unique addresses in a file with one address per line",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "segments",
			Usage:   "number of file segments read in parallel",
			Value:   runtime.NumCPU(),
			EnvVars: []string{"VEB_SEGMENTS"},
		},
		&cli.IntFlag{
			Name:    "readers",
			Usage:   "number of key ranges merged in parallel",
			Value:   runtime.NumCPU(),
			EnvVars: []string{"VEB_READERS"},
		},
		&cli.IntFlag{
			Name:    "stage-size",
			Usage:   "seal a set after this many unique addresses, 0 for never",
			EnvVars: []string{"VEB_STAGE_SIZE"},
		},
		&cli.IntFlag{
			Name:    "page-size",
			Usage:   "read buffer size per segment in bytes",
			Value:   ipPageSize,
			EnvVars: []string{"VEB_PAGE_SIZE"},
		},
		&cli.StringFlag{
			Name:    "backend",
			Usage:   "set implementation: veb or rbtree",
			Value:   string(set.KindVEB),
			EnvVars: []string{"VEB_BACKEND"},
		},
		&cli.DurationFlag{
			Name:  "progress",
			Usage: "progress log interval, 0 to disable",
			Value: time.Second,
		},
	},
	Action: func(cctx *cli.Context) error {
		if cctx.Args().Len() != 1 {
			return fmt.Errorf("expected exactly one file argument")
		}
		start := time.Now()

		setsPerSegment, err := components.Write(cctx.Context, &components.WriteConfigs{
			IPFilePath:       cctx.Args().First(),
			IPIteratorCount:  cctx.Int("segments"),
			IPReaderPageSize: cctx.Int("page-size"),
			ElementsPerStage: cctx.Int("stage-size"),
			Backend:          set.Kind(cctx.String("backend")),
			ProgressInterval: cctx.Duration("progress"),
		})
		if err != nil {
			return err
		}

		uniqCount, err := components.Read(cctx.Context, &components.ReadConfigs{
			SetsPerSegment:      setsPerSegment,
			ParallelReaderCount: cctx.Int("readers"),
			ProgressInterval:    cctx.Duration("progress"),
		})
		if err != nil {
			return err
		}

		fmt.Println(uniqCount)
		fmt.Fprintln(os.Stderr, "took", time.Since(start))
		return nil
	},
}

var cmdGenerate = &cli.Command{
	Name:      "generate",
	Usage:     "write random addresses to a file, one per line",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "count",
			Usage: "number of addresses",
			Value: 1_000_000,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "random seed",
			Value: 1,
		},
		&cli.BoolFlag{
			Name:  "append",
			Usage: "append instead of truncating",
		},
	},
	Action: func(cctx *cli.Context) error {
		if cctx.Args().Len() != 1 {
			return fmt.Errorf("expected exactly one file argument")
		}

		flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		if cctx.Bool("append") {
			flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
		}
		f, err := os.OpenFile(cctx.Args().First(), flags, 0o644)
		if err != nil {
			return err
		}

		if err := ip.Generate(f, cctx.Int("count"), cctx.Int64("seed")); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
}
