package components

import (
	"time"

	"veb_counter/pkg/set"
)

type WriteConfigs struct {
	IPFilePath string

	// number of segments the ip file is split into, each read by its own goroutine
	IPIteratorCount int

	// read buffer size per segment, also the longest accepted line
	IPReaderPageSize int

	// a set holding this many keys is sealed and a new one started; 0 never seals
	ElementsPerStage int

	Backend set.Kind

	// 0 disables progress logging
	ProgressInterval time.Duration
}

type ReadConfigs struct {
	// sealed sets, grouped by the segment that filled them
	SetsPerSegment [][]set.Set

	// number of key ranges merged in parallel
	ParallelReaderCount int

	ProgressInterval time.Duration
}
