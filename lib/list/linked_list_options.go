package list

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/benz9527/xlist/lib/xlog"
)

const (
	defaultMaxPreallocArenaCap = 1 << 20
)

type linkedListOption struct {
	printer       io.Writer
	logger        xlog.XLogger
	meterProvider metric.MeterProvider
	stats         *linkedListStats
	statsName     string
	arenaCap      int
	enableStats   bool
}

// validate fills the defaults and adjusts the unreasonable values.
func (opt *linkedListOption) validate() {
	if opt.logger == nil {
		opt.logger = xlog.NewNopXLogger()
	}
	if opt.printer == nil {
		opt.printer = os.Stdout
	}
	if opt.arenaCap == 0 {
		opt.arenaCap = defaultArenaCap
	}
	if opt.arenaCap > defaultMaxPreallocArenaCap {
		opt.logger.Warn("[linked-list options] adjust the arena capacity",
			zap.Int("from", opt.arenaCap),
			zap.Int("to", defaultMaxPreallocArenaCap),
		)
		opt.arenaCap = defaultMaxPreallocArenaCap
	}
	if opt.enableStats && opt.stats == nil {
		if opt.meterProvider == nil {
			opt.meterProvider = otel.GetMeterProvider()
		}
		opt.stats = newLinkedListStats(opt.meterProvider, opt.statsName)
	}
}

type LinkedListOption func(opt *linkedListOption)

// WithLinkedListArenaCapacity preallocates the node slots.
func WithLinkedListArenaCapacity(capacity int) LinkedListOption {
	return func(opt *linkedListOption) {
		if capacity < 0 {
			panic(fmt.Sprintf("linked-list' arena capacity must be greater than or equals to 0, but got %d", capacity))
		}
		opt.arenaCap = capacity
	}
}

// WithLinkedListPrinter sets the output of the Print* traversals.
func WithLinkedListPrinter(w io.Writer) LinkedListOption {
	return func(opt *linkedListOption) {
		if w == nil {
			panic("linked-list' printer must not be nil")
		}
		opt.printer = w
	}
}

func WithLinkedListLogger(logger xlog.XLogger) LinkedListOption {
	return func(opt *linkedListOption) {
		if logger == nil {
			panic("linked-list' logger must not be nil")
		}
		opt.logger = logger
	}
}

// WithLinkedListStats enables the otel metrics of the list.
func WithLinkedListStats(name string) LinkedListOption {
	return func(opt *linkedListOption) {
		if len(strings.TrimSpace(name)) <= 0 {
			panic("linked-list' stats name must not be empty or blank")
		}
		opt.enableStats = true
		opt.statsName = name
	}
}

func WithLinkedListMeterProvider(mp metric.MeterProvider) LinkedListOption {
	return func(opt *linkedListOption) {
		if mp == nil {
			panic("linked-list' meter provider must not be nil")
		}
		opt.meterProvider = mp
	}
}
