package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"runtime"
	"syscall"
	"testing"

	"github.com/TomTonic/xox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorFromSeed(t *testing.T) {
	g, err := generator(args{Seed: "autovivification"})
	require.NoError(t, err)
	assert.Equal(t, uint64(0xe6cb90eb01058266), g.Uint64())
}

func TestGeneratorRejectsShortSeed(t *testing.T) {
	_, err := generator(args{Seed: "too short"})
	assert.Error(t, err)
}

func TestGeneratorFromSystem(t *testing.T) {
	g1, err := generator(args{System: true})
	require.NoError(t, err)
	g2, err := generator(args{System: true})
	require.NoError(t, err)
	assert.NotEqual(t, g1, g2)
}

func TestStreamCount(t *testing.T) {
	for _, count := range []int64{1, 8, 4095, 4096, 4097, 10_000} {
		g := xox.FromSeed([16]byte([]byte("autovivification")))
		var buf bytes.Buffer
		require.NoError(t, stream(&buf, &g, count))
		assert.Equal(t, int(count), buf.Len())
	}
}

func TestStreamIsConcatenatedOutputs(t *testing.T) {
	g := xox.FromSeed([16]byte([]byte("autovivification")))
	var buf bytes.Buffer
	require.NoError(t, stream(&buf, &g, 3*blockSize))

	ref := xox.FromSeed([16]byte([]byte("autovivification")))
	out := buf.Bytes()
	for i := 0; i < len(out); i += 8 {
		require.Equal(t, ref.Uint64(), binary.LittleEndian.Uint64(out[i:]), "offset %d", i)
	}
}

type failingWriter struct{ after int }

var errClosed = errors.New("closed")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after == 0 {
		return 0, errClosed
	}
	w.after--
	return len(p), nil
}

func TestStreamEndlessStopsOnWriteError(t *testing.T) {
	g := xox.FromSeed([16]byte([]byte("autovivification")))
	err := stream(&failingWriter{after: 3}, &g, 0)
	assert.ErrorIs(t, err, errClosed)
}

func TestStreamEndsQuietlyWhenReaderCloses(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("broken pipes are not reported as EPIPE on windows")
	}
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, r.Close())

	g := xox.FromSeed([16]byte([]byte("autovivification")))
	err = stream(w, &g, 0)
	require.ErrorIs(t, err, syscall.EPIPE)
	assert.NoError(t, endOfStream(err))
}

func TestEndOfStreamKeepsOtherErrors(t *testing.T) {
	assert.NoError(t, endOfStream(nil))
	assert.ErrorIs(t, endOfStream(errClosed), errClosed)
}
