package wizard

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileOfSize(name string, n int) File {
	return File{Name: name, ContentType: "image/jpeg", Data: bytes.Repeat([]byte("a"), n)}
}

func TestGuardAcceptsWithinLimits(t *testing.T) {
	g := NewGuard(MaxQuoteImages, MaxUploadBytes)

	require.NoError(t, g.Add(fileOfSize("a.jpg", 1<<20)))
	require.NoError(t, g.Add(fileOfSize("b.jpg", 1<<20), fileOfSize("c.jpg", 1<<20)))

	assert.Equal(t, 3, g.Count())
	assert.Equal(t, int64(3<<20), g.TotalSize())
}

func TestGuardRejectsOverCount(t *testing.T) {
	g := NewGuard(MaxQuoteImages, MaxUploadBytes)
	require.NoError(t, g.Add(fileOfSize("a.jpg", 100), fileOfSize("b.jpg", 100)))

	err := g.Add(fileOfSize("c.jpg", 100), fileOfSize("d.jpg", 100))
	require.Error(t, err)
	assert.Equal(t, "Maximum 3 images allowed", err.Error())
	assert.Equal(t, 2, g.Count(), "rejected addition must not change the selection")
}

func TestGuardRejectsOverBudgetAtomically(t *testing.T) {
	g := NewGuard(MaxQuoteImages, MaxUploadBytes)
	require.NoError(t, g.Add(fileOfSize("a.jpg", 3<<20)))

	// The second file alone fits, but the pair would exceed the budget;
	// neither may land.
	err := g.Add(fileOfSize("b.jpg", 2<<20))
	require.Error(t, err)
	assert.Equal(t, "Total upload size exceeds 4MB limit. Please use smaller images.", err.Error())
	assert.Equal(t, 1, g.Count())
	assert.Equal(t, int64(3<<20), g.TotalSize())
}

func TestGuardExactBudgetAllowed(t *testing.T) {
	g := NewGuard(MaxQuoteImages, MaxUploadBytes)
	require.NoError(t, g.Add(fileOfSize("a.jpg", int(MaxUploadBytes))))
	assert.Equal(t, MaxUploadBytes, int(g.TotalSize()))
}

func TestGuardRemove(t *testing.T) {
	g := NewGuard(MaxQuoteImages, MaxUploadBytes)
	require.NoError(t, g.Add(fileOfSize("a.jpg", 10), fileOfSize("b.jpg", 20)))

	g.Remove(0)
	require.Equal(t, 1, g.Count())
	assert.Equal(t, "b.jpg", g.Files()[0].Name)

	// Out-of-range removals are no-ops.
	g.Remove(5)
	g.Remove(-1)
	assert.Equal(t, 1, g.Count())
}

func TestGuardRemoveFreesBudget(t *testing.T) {
	g := NewGuard(MaxQuoteImages, MaxUploadBytes)
	require.NoError(t, g.Add(fileOfSize("a.jpg", 3<<20)))
	require.Error(t, g.Add(fileOfSize("b.jpg", 2<<20)))

	g.Remove(0)
	assert.NoError(t, g.Add(fileOfSize("b.jpg", 2<<20)))
}

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "0 MB", FormatFileSize(0))
	assert.Equal(t, "50.0 KB", FormatFileSize(50<<10))
	assert.Equal(t, "2.5 MB", FormatFileSize(5<<19))
}
