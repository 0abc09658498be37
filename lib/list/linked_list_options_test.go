package list

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"

	"github.com/benz9527/xlist/lib/xlog"
)

type recordXLogger struct {
	xlog.XLogger
	debugs []string
	warns  []string
}

func (l *recordXLogger) Debug(msg string, fields ...zap.Field) {
	l.debugs = append(l.debugs, msg)
}

func (l *recordXLogger) Warn(msg string, fields ...zap.Field) {
	l.warns = append(l.warns, msg)
}

func TestLinkedListOptions_Defaults(t *testing.T) {
	opt := &linkedListOption{}
	opt.validate()
	require.NotNil(t, opt.logger)
	require.Equal(t, os.Stdout, opt.printer)
	require.Equal(t, defaultArenaCap, opt.arenaCap)
	require.Nil(t, opt.stats)
}

func TestLinkedListOptions_Invalid(t *testing.T) {
	testcases := []struct {
		name string
		opt  LinkedListOption
	}{
		{"negative arena capacity", WithLinkedListArenaCapacity(-1)},
		{"nil printer", WithLinkedListPrinter(nil)},
		{"nil logger", WithLinkedListLogger(nil)},
		{"blank stats name", WithLinkedListStats("  ")},
		{"nil meter provider", WithLinkedListMeterProvider(nil)},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			require.Panics(t, func() {
				_ = NewLinkedList[int](tc.opt)
			})
		})
	}
}

func TestLinkedListOptions_ArenaCapacity(t *testing.T) {
	dlist := NewLinkedList[int](WithLinkedListArenaCapacity(64))
	require.Equal(t, 65, cap(dlist.(*doublyLinkedList[int]).arena.nodes))

	logger := &recordXLogger{XLogger: xlog.NewNopXLogger()}
	dlist = NewLinkedList[int](
		WithLinkedListArenaCapacity(defaultMaxPreallocArenaCap+1),
		WithLinkedListLogger(logger),
	)
	require.Equal(t, defaultMaxPreallocArenaCap, dlist.(*doublyLinkedList[int]).opt.arenaCap)
	require.Len(t, logger.warns, 1)
}

func TestLinkedListOptions_Logger(t *testing.T) {
	logger := &recordXLogger{XLogger: xlog.NewNopXLogger()}
	dlist := NewLinkedList[int](WithLinkedListLogger(logger))
	other := NewLinkedList[int]()

	dlist.InsertAfter(other.AddTail(1), 2)
	dlist.InsertBefore(NodeElement[int]{}, 2)
	dlist.RemoveAt(0)
	_, err := dlist.At(0)
	require.Error(t, err)
	require.Len(t, logger.debugs, 4)
	require.Equal(t, int64(0), dlist.NodeCount())
}

func collectSums(t *testing.T, reader sdkmetric.Reader) map[string][]metricdata.DataPoint[int64] {
	t.Helper()
	rm := metricdata.ResourceMetrics{}
	require.NoError(t, reader.Collect(context.Background(), &rm))
	sums := make(map[string][]metricdata.DataPoint[int64])
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				sums[m.Name] = append(sums[m.Name], sum.DataPoints...)
			}
		}
	}
	return sums
}

func sumOf(points []metricdata.DataPoint[int64]) int64 {
	total := int64(0)
	for _, p := range points {
		total += p.Value
	}
	return total
}

func TestLinkedListStats(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() {
		require.NoError(t, mp.Shutdown(context.Background()))
	}()

	dlist := NewLinkedList[int](
		WithLinkedListStats("orders"),
		WithLinkedListMeterProvider(mp),
	)
	dlist.AddNodesTail(1, 2, 3, 1)
	dlist.AddHead(0)
	require.Equal(t, int64(2), dlist.Remove(1))
	require.True(t, dlist.RemoveTail())
	_, err := dlist.InsertAt(9, 10)
	require.True(t, errors.Is(err, ErrLinkedListIndexOutOfRange))
	_, err = dlist.At(-1)
	require.Error(t, err)
	cpy := dlist.Clone()
	require.Equal(t, int64(2), cpy.NodeCount())

	sums := collectSums(t, reader)
	// The clone shares the stats with its origin.
	require.Equal(t, int64(7), sumOf(sums["xlist.node.inserted"]))
	require.Equal(t, int64(3), sumOf(sums["xlist.node.removed"]))
	require.Equal(t, int64(4), sumOf(sums["xlist.node.count"]))

	overflow := sums["xlist.index.out_of_range"]
	require.Len(t, overflow, 2)
	require.Equal(t, int64(2), sumOf(overflow))
	for _, p := range overflow {
		name, ok := p.Attributes.Value("xlist.name")
		require.True(t, ok)
		require.Equal(t, attribute.StringValue("orders"), name)
		op, ok := p.Attributes.Value("xlist.op")
		require.True(t, ok)
		require.Contains(t, []string{"InsertAt", "At"}, op.AsString())
	}

	dlist.Clear()
	sums = collectSums(t, reader)
	require.Equal(t, int64(5), sumOf(sums["xlist.node.removed"]))
	require.Equal(t, int64(2), sumOf(sums["xlist.node.count"]))
}

func TestLinkedListStats_NilSafe(t *testing.T) {
	var stats *linkedListStats
	require.NotPanics(t, func() {
		stats.RecordInserted(1)
		stats.RecordRemoved(1)
		stats.IncreaseIndexOutOfRange("At")
	})
}
