package profile

import (
	"fmt"
	"strings"
)

// argSet is an insertion-ordered flag map. Flags are keyed by the text
// before the first "=" with leading dashes stripped; adding a flag whose key
// was already seen overwrites the value but keeps the original position
// (last-write-wins, first-seen-key order).
type argSet struct {
	keys   []string
	values map[string]string
}

func newArgSet() *argSet {
	return &argSet{values: make(map[string]string)}
}

func (s *argSet) add(arg string) {
	key := arg
	value := ""
	if i := strings.Index(arg, "="); i >= 0 {
		key = arg[:i]
		value = strings.TrimSpace(arg[i+1:])
	}
	key = strings.TrimLeft(strings.TrimSpace(key), "-")
	if _, seen := s.values[key]; !seen {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

func (s *argSet) addAll(args []string) {
	for _, arg := range args {
		s.add(arg)
	}
}

func (s *argSet) list() []string {
	out := make([]string, 0, len(s.keys))
	for _, key := range s.keys {
		if value := s.values[key]; value != "" {
			out = append(out, "--"+key+"="+value)
		} else {
			out = append(out, "--"+key)
		}
	}
	return out
}

// BrowserArgs composes the definitive, order-stable, duplicate-free CLI flag
// list for the browser process: the baseline catalog (minus any suppressed
// entries), user-supplied extras, the profile-directory flag, then the
// conditional catalogs for container, headless, disabled-security, and
// deterministic-rendering modes, and finally window geometry. A later flag
// sharing a key with an earlier one silently overrides its value.
func (p *Profile) BrowserArgs() []string {
	return p.browserArgs(RunningInContainer())
}

func (p *Profile) browserArgs(inContainer bool) []string {
	var baseline []string
	switch {
	case p.IgnoreDefaultArgs.All:
		// suppress the whole catalog
	case len(p.IgnoreDefaultArgs.Args) > 0:
		suppressed := make(map[string]struct{}, len(p.IgnoreDefaultArgs.Args))
		for _, arg := range p.IgnoreDefaultArgs.Args {
			suppressed[arg] = struct{}{}
		}
		for _, arg := range DefaultArgs {
			if _, ok := suppressed[arg]; !ok {
				baseline = append(baseline, arg)
			}
		}
	default:
		baseline = DefaultArgs
	}

	headless := p.Headless != nil && *p.Headless

	set := newArgSet()
	set.addAll(baseline)
	set.addAll(p.Args)
	set.add("--profile-directory=" + p.ProfileDirectory)
	if inContainer {
		set.addAll(ContainerArgs)
	}
	if headless {
		set.addAll(HeadlessArgs)
	}
	if p.DisableSecurity {
		set.addAll(DisableSecurityArgs)
	}
	if p.DeterministicRendering {
		set.addAll(DeterministicRenderingArgs)
	}
	// Window geometry only makes sense with a window: headless composition
	// gets neither a size nor a maximize flag.
	switch {
	case headless:
	case p.WindowSize != nil:
		set.add(fmt.Sprintf("--window-size=%d,%d", p.WindowSize.Width, p.WindowSize.Height))
	default:
		set.add("--start-maximized")
	}
	if p.WindowPosition != nil {
		set.add(fmt.Sprintf("--window-position=%d,%d", p.WindowPosition.X, p.WindowPosition.Y))
	}
	return set.list()
}
