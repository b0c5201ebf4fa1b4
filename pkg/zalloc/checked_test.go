package zalloc

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/zeromem/zalloc-go/pkg/zalloc/logging"
)

func TestCheckedObservesZeroOnFree(t *testing.T) {
	// The checked allocator sits underneath the zeroizing wrapper, so
	// its snapshots show exactly what the system allocator receives.
	checked := NewChecked(System, logging.New(slog.New(slog.NewTextHandler(io.Discard, nil))))
	za := New(checked)

	l := MustLayout(256, 16)
	p := za.Alloc(l)
	require.NotNil(t, p)

	b := Bytes(p, l)
	for i := range b {
		b[i] = byte(i)
	}
	za.Dealloc(p, l)

	snaps := checked.Snapshots()
	require.Len(t, snaps, 1)
	require.Equal(t, p, snaps[0].Ptr)
	require.Equal(t, make([]byte, 256), snaps[0].Data)
	require.Zero(t, checked.Report(context.Background()))
}

func TestCheckedLiveTracking(t *testing.T) {
	checked := NewChecked(System, logging.New(slog.New(slog.NewTextHandler(io.Discard, nil))))

	l := MustLayout(64, 8)
	p1 := checked.Alloc(l)
	p2 := checked.AllocZeroed(l)
	require.NotNil(t, p1)
	require.NotNil(t, p2)
	require.Equal(t, 2, checked.LiveCount())

	checked.Dealloc(p1, l)
	require.Equal(t, 1, checked.LiveCount())
	checked.Dealloc(p2, l)
	require.Equal(t, 0, checked.LiveCount())
}

func TestCheckedDetectsDoubleFree(t *testing.T) {
	checked := NewChecked(System, logging.New(slog.New(slog.NewTextHandler(io.Discard, nil))))

	l := MustLayout(32, 8)
	p := checked.Alloc(l)
	require.NotNil(t, p)

	checked.Dealloc(p, l)
	checked.Dealloc(p, l) // flagged and swallowed, not forwarded

	require.Equal(t, 1, checked.DoubleFrees())
	require.Len(t, checked.Snapshots(), 1)
}

func TestCheckedDetectsForeignPointer(t *testing.T) {
	checked := NewChecked(System, logging.New(slog.New(slog.NewTextHandler(io.Discard, nil))))

	var local [16]byte
	checked.Dealloc(unsafe.Pointer(&local[0]), MustLayout(16, 1))

	require.Equal(t, 1, checked.ForeignFrees())
	require.Empty(t, checked.Snapshots())
}

func TestCheckedReportCountsLeaks(t *testing.T) {
	checked := NewChecked(System, logging.New(slog.New(slog.NewTextHandler(io.Discard, nil))))

	l := MustLayout(48, 8)
	p := checked.Alloc(l)
	require.NotNil(t, p)

	require.Equal(t, 1, checked.Report(context.Background()))
	checked.Dealloc(p, l)
	require.Zero(t, checked.Report(context.Background()))
}
