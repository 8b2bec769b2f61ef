package server_test

import (
	"errors"
	"net"
	"strconv"
	"syscall"
	"testing"

	"yukari-engine/core/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeListener struct {
	addr net.Addr
}

func (f *fakeListener) Accept() (net.Conn, error) { return nil, errors.New("fake listener") }
func (f *fakeListener) Close() error              { return nil }
func (f *fakeListener) Addr() net.Addr            { return f.addr }

// fakeListen refuses every port in busy and records each attempted address.
func fakeListen(busy map[int]bool, attempts *[]int) server.ListenFunc {
	return func(network, address string) (net.Listener, error) {
		_, p, err := net.SplitHostPort(address)
		if err != nil {
			return nil, err
		}
		port, _ := strconv.Atoi(p)
		*attempts = append(*attempts, port)
		if busy[port] {
			return nil, &net.OpError{Op: "listen", Net: network, Err: syscall.EADDRINUSE}
		}
		return &fakeListener{addr: &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: port}}, nil
	}
}

func testConfig() server.Config {
	return server.Config{Host: "127.0.0.1", BasePort: 50027, MaxPort: 50050}
}

func TestAllocate_Monotonic(t *testing.T) {
	tests := []struct {
		name     string
		occupied int
		want     int
	}{
		{"BaseFree", 0, 50027},
		{"OneBusy", 1, 50028},
		{"FiveBusy", 5, 50032},
		{"AllButLast", 23, 50050},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			busy := map[int]bool{}
			for i := 0; i < tt.occupied; i++ {
				busy[50027+i] = true
			}
			var attempts []int

			ln, port, err := server.NewAllocator(testConfig(), zap.NewNop()).
				WithListenFunc(fakeListen(busy, &attempts)).
				Allocate()

			require.NoError(t, err)
			assert.Equal(t, tt.want, port)
			assert.Equal(t, tt.want, ln.Addr().(*net.TCPAddr).Port)
			assert.Len(t, attempts, tt.occupied+1)
			for i, p := range attempts {
				assert.Equal(t, 50027+i, p)
			}
		})
	}
}

func TestAllocate_AllOccupied(t *testing.T) {
	busy := map[int]bool{}
	for p := 50027; p <= 50050; p++ {
		busy[p] = true
	}
	var attempts []int

	ln, port, err := server.NewAllocator(testConfig(), zap.NewNop()).
		WithListenFunc(fakeListen(busy, &attempts)).
		Allocate()

	assert.Nil(t, ln)
	assert.Equal(t, 50050, port)
	assert.ErrorIs(t, err, server.ErrNoPortAvailable)
	// full scan plus the final attempt at the top of the range
	assert.Len(t, attempts, 25)
	assert.Equal(t, 50050, attempts[len(attempts)-1])
}

func TestAllocate_FinalAttemptSucceeds(t *testing.T) {
	calls := 0
	listen := func(network, address string) (net.Listener, error) {
		calls++
		if calls <= 2 {
			return nil, syscall.EADDRINUSE
		}
		return &fakeListener{addr: &net.TCPAddr{Port: 50028}}, nil
	}
	cfg := server.Config{Host: "127.0.0.1", BasePort: 50027, MaxPort: 50028}

	ln, port, err := server.NewAllocator(cfg, zap.NewNop()).WithListenFunc(listen).Allocate()
	require.NoError(t, err)
	assert.NotNil(t, ln)
	assert.Equal(t, 50028, port)
	assert.Equal(t, 3, calls)
}

func TestAllocate_LogsOccupiedPorts(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	var attempts []int

	_, _, err := server.NewAllocator(testConfig(), zap.New(core)).
		WithListenFunc(fakeListen(map[int]bool{50027: true, 50028: true}, &attempts)).
		Allocate()
	require.NoError(t, err)

	assert.Equal(t, 2, logs.FilterMessage("Port is occupied").Len())
	selected := logs.FilterMessage("Selected port").All()
	require.Len(t, selected, 1)
	assert.Equal(t, "127.0.0.1:50029", selected[0].ContextMap()["address"])
}

func TestAllocate_InvalidRange(t *testing.T) {
	cfg := server.Config{Host: "127.0.0.1", BasePort: 50050, MaxPort: 50027}
	_, _, err := server.NewAllocator(cfg, zap.NewNop()).Allocate()
	assert.ErrorIs(t, err, server.ErrInvalidPortRange)
}

func TestAllocate_RealSocket(t *testing.T) {
	held, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer held.Close()
	base := held.Addr().(*net.TCPAddr).Port
	if base+20 > 65535 {
		t.Skip("ephemeral port too close to the top of the range")
	}

	cfg := server.Config{Host: "127.0.0.1", BasePort: base, MaxPort: base + 20}
	ln, port, err := server.NewAllocator(cfg, zap.NewNop()).Allocate()
	if errors.Is(err, server.ErrNoPortAvailable) {
		t.Skip("no free port near the held one")
	}
	require.NoError(t, err)
	defer ln.Close()

	assert.Greater(t, port, base)
	assert.Equal(t, port, ln.Addr().(*net.TCPAddr).Port)
}
