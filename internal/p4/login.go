package p4

import (
	"fmt"
	"strings"

	"github.com/danbrakeley/p4opts/internal/options"
)

// NeedsLogin determines if we have a valid ticket or not.
func (p *P4) NeedsLogin() (bool, error) {
	var sb strings.Builder
	sb.Grow(256)
	cmd := p.CommandLine(Call{Command: "login", Options: options.Login(options.LoginDisplayStatus, "")})
	err := p.sh.Cmd(cmd).Out(nil).Err(&sb).RunErr()
	if err == nil {
		return false, nil
	}
	out := sb.String()
	if isLoginNeeded(out) {
		return true, nil
	}
	return false, fmt.Errorf("%s", strings.TrimSpace(out))
}

func isLoginNeeded(stderr string) bool {
	return strings.HasPrefix(stderr, "Your session has expired, please login again") ||
		strings.HasPrefix(stderr, "Perforce password (P4PASSWD) invalid or unset")
}
