package record

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/containerd/errdefs"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDefineAndLookup(t *testing.T) {
	reg := NewRegistry()
	typ, err := reg.Define("book").Text("title").Build()
	require.NoError(t, err)

	got, err := reg.Lookup("book")
	require.NoError(t, err)
	assert.Same(t, typ, got)
}

func TestRegistryLookupMiss(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Lookup("book")
	require.Error(t, err)
	assert.True(t, errdefs.IsNotFound(err))
	assert.Contains(t, err.Error(), `record type "book"`)
}

func TestRegistryDuplicateTypeName(t *testing.T) {
	reg := NewRegistry()
	first, err := reg.Define("book").Text("title").Build()
	require.NoError(t, err)

	_, err = reg.Define("book").Number("pageCount").Build()
	require.Error(t, err)
	assert.True(t, errdefs.IsAlreadyExists(err))

	// The original registration is untouched.
	got, err := reg.Lookup("book")
	require.NoError(t, err)
	assert.Same(t, first, got)
}

func TestRegistryTypeNamesSorted(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"pamphlet", "atlas", "book"} {
		_, err := reg.Define(name).Build()
		require.NoError(t, err)
	}
	want := []string{"atlas", "book", "pamphlet"}
	if diff := cmp.Diff(want, reg.TypeNames()); diff != "" {
		t.Errorf("TypeNames mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	reg := NewRegistry(WithLogger(logger))

	_, err := reg.Define("book").Text("title").Build()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "record type defined")
	assert.Contains(t, buf.String(), "type=book")

	buf.Reset()
	_, err = reg.Lookup("atlas")
	require.Error(t, err)
	assert.Contains(t, buf.String(), "record type lookup missed")
}

func TestRegistryConcurrentUse(t *testing.T) {
	reg := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("shape%d", i)
			if _, err := reg.Define(name).Text("label").Build(); err != nil {
				t.Errorf("define %s: %v", name, err)
				return
			}
			if _, err := reg.Lookup(name); err != nil {
				t.Errorf("lookup %s: %v", name, err)
			}
			reg.TypeNames()
		}(i)
	}
	wg.Wait()
	assert.Len(t, reg.TypeNames(), 8)
}
