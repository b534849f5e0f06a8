package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStatsGrowsWithContent(t *testing.T) {
	d := New()
	empty := d.MemoryStats()

	o, err := d.RootObject()
	require.NoError(t, err)
	require.NoError(t, o.AddNum("pi", 3.14159))
	o.AddString("name", "a fairly long string value for the table")
	for i := 0; i < 20; i++ {
		require.NoError(t, o.AddInt("k", int64(i+MaxShortInt)))
	}

	filled := d.MemoryStats()
	assert.Greater(t, filled.TotalUsed(), empty.TotalUsed())
	assert.GreaterOrEqual(t, filled.TotalReserved(), filled.TotalUsed())
}

func TestMemoryStatsTotalsSumArenas(t *testing.T) {
	d := New()
	o, err := d.RootObject()
	require.NoError(t, err)
	require.NoError(t, o.AddInt("a", MaxShortInt+1))

	s := d.MemoryStats()
	assert.Equal(t, s.Nums.Used+s.Ints.Used+s.Objects.Used+s.Arrays.Used+s.Strings.Used, s.TotalUsed())
}
