package list

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	LinkedListStatsName = "xlist/linked-list"
)

// linkedListStats records the node lifecycle of a list.
// All the methods are nil receiver safe, the stats are disabled by default.
type linkedListStats struct {
	attrs         metric.MeasurementOption
	nodeCount     metric.Int64UpDownCounter
	nodeInserted  metric.Int64Counter
	nodeRemoved   metric.Int64Counter
	indexOverflow metric.Int64Counter
}

func (stats *linkedListStats) RecordInserted(n int64) {
	if stats == nil || n <= 0 {
		return
	}
	stats.nodeCount.Add(context.Background(), n, stats.attrs)
	stats.nodeInserted.Add(context.Background(), n, stats.attrs)
}

func (stats *linkedListStats) RecordRemoved(n int64) {
	if stats == nil || n <= 0 {
		return
	}
	stats.nodeCount.Add(context.Background(), -n, stats.attrs)
	stats.nodeRemoved.Add(context.Background(), n, stats.attrs)
}

func (stats *linkedListStats) IncreaseIndexOutOfRange(op string) {
	if stats == nil {
		return
	}
	stats.indexOverflow.Add(context.Background(), 1,
		stats.attrs,
		metric.WithAttributes(attribute.String("xlist.op", op)),
	)
}

func newLinkedListStats(mp metric.MeterProvider, name string) *linkedListStats {
	meter := mp.Meter(fmt.Sprintf("%s/%s", LinkedListStatsName, name))
	return &linkedListStats{
		attrs: metric.WithAttributeSet(attribute.NewSet(
			attribute.String("xlist.name", name),
		)),
		nodeCount: lo.Must[metric.Int64UpDownCounter](meter.Int64UpDownCounter(
			"xlist.node.count",
			metric.WithDescription("The number of nodes in the linked list."),
		)),
		nodeInserted: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xlist.node.inserted",
			metric.WithDescription("The number of nodes inserted into the linked list."),
		)),
		nodeRemoved: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xlist.node.removed",
			metric.WithDescription("The number of nodes removed from the linked list."),
		)),
		indexOverflow: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xlist.index.out_of_range",
			metric.WithDescription("The number of rejected out of range index accesses."),
		)),
	}
}
