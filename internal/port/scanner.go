package port

import (
	"fmt"
	"net"
	"strconv"
)

// Scanner checks whether specific TCP ports are bindable on this host.
//
// It asks the operating system directly via net.Listen rather than
// parsing /proc/net/* or shelling out to `ss`, which may require
// elevated permissions and goes stale between read and bind anyway.
//
// The struct carries the bind host so the probe exercises the same
// address the notebook server will be told to listen on. It also makes
// the Scanner injectable as a dependency, which keeps the run mode
// testable.
type Scanner struct {
	// host is the address to bind during probes. Empty means all
	// interfaces.
	host string
}

// NewScanner creates a Scanner that probes ports on the given host.
// Pass the local hostname so availability is judged against the
// address the server will actually bind; pass "" for all interfaces.
func NewScanner(host string) *Scanner {
	return &Scanner{host: host}
}

// IsPortAvailable reports whether a TCP listener can currently be
// bound at (host, port). The listener is closed immediately; the probe
// only tests availability, it never accepts connections.
func (s *Scanner) IsPortAvailable(port int) bool {
	addr := net.JoinHostPort(s.host, strconv.Itoa(port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return false
	}
	defer func() { _ = listener.Close() }()
	return true
}

// FindAvailablePort probes ports base, base+1, ... base+width-1 in
// increasing order and returns the first one that binds.
//
// The deterministic low-to-high order means the same user lands on the
// same port across runs as long as it is still free, which keeps the
// printed SSH tunnel instructions stable from day to day.
//
// Returns an error when no port in the window binds. The chosen port
// may still be taken before the server claims it; the server's own
// port search covers that race.
func (s *Scanner) FindAvailablePort(base, width int) (int, error) {
	for offset := 0; offset < width; offset++ {
		if s.IsPortAvailable(base + offset) {
			return base + offset, nil
		}
	}
	return 0, fmt.Errorf("no free TCP port in range %d-%d", base, base+width-1)
}
