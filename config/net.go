package config

import (
	"net"

	"github.com/pkg/errors"
)

// InterfaceIP returns the first IPv4 address of the named network interface.
func InterfaceIP(name string) (string, error) {
	nic, err := net.InterfaceByName(name)
	if err != nil {
		return "", errors.Wrapf(err, "interface %q", name)
	}
	addrs, err := nic.Addrs()
	if err != nil {
		return "", errors.Wrapf(err, "addresses of %q", name)
	}
	for _, v := range addrs {
		ipNet, ok := v.(*net.IPNet)
		if !ok {
			continue
		}
		if ip := ipNet.IP.To4(); ip != nil {
			return ip.String(), nil
		}
	}
	return "", errors.Errorf("interface %q has no IPv4 address", name)
}
