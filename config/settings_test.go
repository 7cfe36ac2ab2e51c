package config

import (
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	k "odo/kinematics"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, Origin{}, s.Origin)
	assert.Equal(t, DefaultPeriod, s.Period)
}

func TestLoad(t *testing.T) {
	doc := `
origin:
  x: 90
  y: 0
  theta: 90
period: 20ms
host: 10.0.0.2
command_port: 10023
`
	s, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, Origin{X: 90, Y: 0, Theta: 90}, s.Origin)
	assert.Equal(t, k.Origin{X: 90, Y: 0, Theta: 90}, s.Origin.Kinematics())
	assert.Equal(t, 20*time.Millisecond, s.Period)
	assert.Equal(t, uint16(10023), s.CommandPort)
	assert.Equal(t, uint16(DefaultLogPort), s.LogPort)

	host, err := s.ResolveHost()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.2", host)
	assert.Equal(t, "10.0.0.2:10023", s.CommandAddr(host))
	assert.Equal(t, "10.0.0.2:8887", s.LogAddr(host))
}

func TestLoadEmpty(t *testing.T) {
	s, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"negative origin": "origin: {x: -1}",
		"zero period":     "period: 0s",
		"zero port":       "log_port: 0",
		"reconnect":       "reconnect_min: 2s\nreconnect_max: 1s",
		"buffer":          "log_buffer: 0",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid), err.Error())
		})
	}

	_, err := Load(strings.NewReader("origin: [1, 2"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalid))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "odo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("origin: {x: 70, y: 80, theta: 90}\n"), 0o600))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Origin{X: 70, Y: 80, Theta: 90}, s.Origin)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestOriginHeadingWrapped(t *testing.T) {
	s, err := Load(strings.NewReader("origin: {x: 10, y: 20, theta: -90}"))
	require.NoError(t, err)
	assert.Equal(t, k.Origin{X: 10, Y: 20, Theta: 270}, s.Origin.Kinematics())

	assert.Equal(t, 90, Origin{Theta: 450}.Kinematics().Theta)

	p := Origin{Theta: -90}.Kinematics().StartPosition()
	assert.InDelta(t, -90.0, p.Theta.Degrees(), 1e-9)
}

func TestResolveHostDefault(t *testing.T) {
	host, err := Default().ResolveHost()
	require.NoError(t, err)
	assert.Equal(t, DefaultHost, host)
}

func TestInterfaceIP(t *testing.T) {
	_, err := InterfaceIP("no-such-interface0")
	assert.Error(t, err)

	ifaces, err := net.Interfaces()
	require.NoError(t, err)
	for _, iface := range ifaces {
		ip, err := InterfaceIP(iface.Name)
		if err != nil {
			continue
		}
		assert.NotNil(t, net.ParseIP(ip).To4(), iface.Name)
	}
}
