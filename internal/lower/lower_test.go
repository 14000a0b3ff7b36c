package lower

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sunholo/vhdlelab/internal/design"
)

func TestLowerRegistersUnit(t *testing.T) {
	reg := NewRegistry()
	d := NewDefault(reg, Config{RecordTimings: true})

	u, err := d.Lower("top.u1", &design.Block{Name: "u1"})
	require.NoError(t, err)
	require.Equal(t, 1, reg.Len(), "expected 1 registered unit")
	require.False(t, u.Finalized(), "expected not yet finalized")
	_, ok := u.PhaseTimings["collect"]
	require.True(t, ok, "expected collect phase timing recorded")
}

func TestFinalizeThenFlush(t *testing.T) {
	reg := NewRegistry()
	d := NewDefault(reg, Config{})
	d.Lower("top", &design.Block{Name: "top"})

	u, ok := reg.Finalize("top")
	require.True(t, ok)
	require.True(t, u.Finalized(), "expected top finalized")
	require.Equal(t, 1, reg.Len(), "expected finalize to keep the unit registered")

	flushed, ok := reg.Flush("top")
	require.True(t, ok)
	require.Same(t, u, flushed, "expected flush to return the finalized unit")
	require.Equal(t, 0, reg.Len(), "expected registry empty after flush")
}

func TestPhaseHookInvoked(t *testing.T) {
	reg := NewRegistry()
	var seen []string
	d := NewDefault(reg, Config{PhaseHook: func(phase string, _ time.Duration) {
		seen = append(seen, phase)
	}})
	d.Lower("top", &design.Block{Name: "top"})

	require.Equal(t, []string{"collect", "emit"}, seen, "expected both phases reported to the hook")
}
