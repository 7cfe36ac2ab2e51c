package config

import (
	"io"
	"net"
	"os"
	"strconv"
	"time"

	a "odo/angle"
	k "odo/kinematics"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultHost = "localhost"
const DefaultCommandPort = 9999
const DefaultLogPort = 8887
const DefaultPeriod = 50 * time.Millisecond
const DefaultReconnectMin = 500 * time.Millisecond
const DefaultReconnectMax = 5 * time.Second
const DefaultLogBuffer = 100

var ErrInvalid = errors.New("invalid settings")

// Origin is the configured starting pose: millimeters and whole degrees.
type Origin struct {
	X     int `yaml:"x"`
	Y     int `yaml:"y"`
	Theta int `yaml:"theta"`
}

// Kinematics converts the origin for the pose model, with the heading
// brought into [0, 360).
func (o Origin) Kinematics() k.Origin {
	return k.Origin{
		X:     o.X,
		Y:     o.Y,
		Theta: a.CircularChecker(o.Theta),
	}
}

// Settings configures the dead-reckoning daemon.
type Settings struct {
	// Origin is the pose the tracker starts from and resets to.
	Origin Origin `yaml:"origin"`
	// Period between two integration steps.
	Period time.Duration `yaml:"period"`

	// Host of the velocity controller and the log collector. When empty the
	// first IPv4 address of Interface is used, then DefaultHost.
	Host        string `yaml:"host"`
	Interface   string `yaml:"interface"`
	CommandPort uint16 `yaml:"command_port"`
	LogPort     uint16 `yaml:"log_port"`

	ReconnectMin time.Duration `yaml:"reconnect_min"`
	ReconnectMax time.Duration `yaml:"reconnect_max"`
	LogBuffer    int           `yaml:"log_buffer"`
}

func Default() Settings {
	return Settings{
		Period:       DefaultPeriod,
		CommandPort:  DefaultCommandPort,
		LogPort:      DefaultLogPort,
		ReconnectMin: DefaultReconnectMin,
		ReconnectMax: DefaultReconnectMax,
		LogBuffer:    DefaultLogBuffer,
	}
}

// Load reads YAML settings on top of the defaults. An empty document yields
// the defaults.
func Load(r io.Reader) (Settings, error) {
	s := Default()
	err := yaml.NewDecoder(r).Decode(&s)
	if err != nil && !errors.Is(err, io.EOF) {
		return s, errors.Wrap(err, "decoding settings")
	}
	return s, s.Validate()
}

func LoadFile(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Default(), errors.Wrap(err, "opening settings")
	}
	defer f.Close()
	return Load(f)
}

func (s Settings) Validate() error {
	if s.Origin.X < 0 || s.Origin.Y < 0 {
		return errors.Wrapf(ErrInvalid, "origin %+v must not be negative", s.Origin)
	}
	if s.Period <= 0 {
		return errors.Wrapf(ErrInvalid, "period %v must be positive", s.Period)
	}
	if s.CommandPort == 0 || s.LogPort == 0 {
		return errors.Wrap(ErrInvalid, "ports must be set")
	}
	if s.ReconnectMin <= 0 || s.ReconnectMax < s.ReconnectMin {
		return errors.Wrapf(ErrInvalid, "reconnect window %v-%v", s.ReconnectMin, s.ReconnectMax)
	}
	if s.LogBuffer <= 0 {
		return errors.Wrapf(ErrInvalid, "log buffer %d must be positive", s.LogBuffer)
	}
	return nil
}

// ResolveHost picks the host to dial.
func (s Settings) ResolveHost() (string, error) {
	if s.Host != "" {
		return s.Host, nil
	}
	if s.Interface != "" {
		return InterfaceIP(s.Interface)
	}
	return DefaultHost, nil
}

func (s Settings) CommandAddr(host string) string {
	return net.JoinHostPort(host, strconv.Itoa(int(s.CommandPort)))
}

func (s Settings) LogAddr(host string) string {
	return net.JoinHostPort(host, strconv.Itoa(int(s.LogPort)))
}
