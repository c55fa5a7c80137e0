package observability

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/matchday-standings/internal/config"
	"github.com/riskibarqy/matchday-standings/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartProfiling_Disabled(t *testing.T) {
	p, err := StartProfiling(config.Config{}, logging.NewNop())
	require.NoError(t, err)
	assert.Empty(t, p.Addr())
	assert.NoError(t, p.Stop(time.Second))
}

func TestStartProfiling_ServesPprof(t *testing.T) {
	p, err := StartProfiling(config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Stop(time.Second) })

	addr := p.Addr()
	require.NotEmpty(t, addr)

	resp, err := http.Get("http://" + addr + "/debug/pprof/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), "goroutine"), "expected pprof index, got %q", body)

	require.NoError(t, p.Stop(time.Second))
	assert.Empty(t, p.Addr())
}

func TestStartProfiling_AddressInUse(t *testing.T) {
	first, err := StartProfiling(config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = first.Stop(time.Second) })

	_, err = StartProfiling(config.Config{PprofEnabled: true, PprofAddr: first.Addr()}, logging.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen pprof")
}

func TestProfiling_NilStop(t *testing.T) {
	var p *Profiling
	assert.NoError(t, p.Stop(time.Second))
	assert.Empty(t, p.Addr())
}
