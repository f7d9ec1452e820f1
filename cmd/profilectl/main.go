// Command profilectl resolves a browser launch configuration from a YAML
// option file plus command-line overrides and prints the composed CLI flags
// or the full set of driver-call projections as JSON. It is a debugging aid
// for inspecting exactly what a controlled browser would be launched with.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/entrhq/browserprofile/pkg/profile"
)

// output is the JSON document printed in -json mode.
type output struct {
	Args              []string                            `json:"args"`
	Connect           profile.ConnectArgs                 `json:"connect"`
	Launch            profile.LaunchArgs                  `json:"launch"`
	PersistentContext profile.LaunchPersistentContextArgs `json:"persistent_context"`
	NewContext        profile.NewContextArgs              `json:"new_context"`
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML profile option file")
	headless := flag.Bool("headless", false, "Force headless mode (omit for auto-detection)")
	detectDisplay := flag.Bool("detect-display", false, "Resolve window/viewport geometry from the physical display")
	prepare := flag.Bool("prepare", false, "Materialize the user data and downloads directories")
	asJSON := flag.Bool("json", false, "Print composed args and all projections as JSON")
	flag.Parse()

	p, err := loadProfile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "profilectl: %v\n", err)
		os.Exit(1)
	}

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "headless" {
			p.Headless = profile.Bool(*headless)
		}
	})

	if *detectDisplay {
		p.DetectDisplayConfiguration()
	}
	if err := p.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "profilectl: %v\n", err)
		os.Exit(1)
	}
	if *prepare {
		if err := p.PrepareUserDataDir(); err != nil {
			fmt.Fprintf(os.Stderr, "profilectl: %v\n", err)
			os.Exit(1)
		}
	}

	if *asJSON {
		doc := output{
			Args:              p.BrowserArgs(),
			Connect:           p.ConnectArgs(),
			Launch:            p.LaunchArgs(),
			PersistentContext: p.LaunchPersistentContextArgs(),
			NewContext:        p.NewContextArgs(),
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(doc); err != nil {
			fmt.Fprintf(os.Stderr, "profilectl: encode output: %v\n", err)
			os.Exit(1)
		}
		return
	}

	for _, arg := range p.BrowserArgs() {
		fmt.Println(arg)
	}
}

func loadProfile(path string) (*profile.Profile, error) {
	if path == "" {
		return profile.New(nil)
	}
	return profile.Load(path)
}
