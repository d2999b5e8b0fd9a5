// Package progress emits advisory progress notifications during the
// transfer loop of a split run.
package progress

import (
	"fmt"
	"log/slog"

	"github.com/marmos91/dirsplit/internal/logger"
	"github.com/marmos91/dirsplit/pkg/split"
	"github.com/marmos91/dirsplit/pkg/transfer"
)

// DefaultInterval is the shard-index interval between progress notifications.
const DefaultInterval = 100

var _ split.ProgressReporter = (*Reporter)(nil)

// Reporter watches the shard index of each transferred file and logs a
// marker whenever the transfer loop crosses into a new shard whose index is
// a multiple of the reporting interval. It is constructed per run and passed
// to the splitter; a nil Reporter is valid and reports nothing.
//
// Reporter is not safe for concurrent use. The transfer loop is sequential.
type Reporter struct {
	log       *slog.Logger
	mode      transfer.Mode
	interval  int
	lastIndex int
}

// NewReporter creates a Reporter for a run in the given mode. A
// non-positive interval falls back to DefaultInterval.
func NewReporter(log *slog.Logger, mode transfer.Mode, interval int) *Reporter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Reporter{
		log:      log,
		mode:     mode,
		interval: interval,
	}
}

// FileTransferred records that a file was placed into the shard with the
// given 1-based index and name. A notification is logged only when the index
// differs from the previous file's and is a multiple of the interval.
func (r *Reporter) FileTransferred(shardIndex int, shardName string) {
	if r == nil {
		return
	}

	if r.lastIndex != shardIndex && shardIndex%r.interval == 0 {
		r.log.Info(fmt.Sprintf("%s files into %s directory.", r.mode.Verb(), shardName),
			logger.Shard(shardName),
			logger.ShardIndex(shardIndex),
		)
	}

	r.lastIndex = shardIndex
}
