package server

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/klauseduard/hl7-tools/internal/profile"
)

const defaultMaxBodyBytes = 5 << 20

// Options configures server creation.
type Options struct {
	// MaxBodyBytes caps request body size; 0 means the default 5 MB.
	MaxBodyBytes int64
	// ProfilePaths maps profile names to JSON overlay files loaded at
	// startup; requests select one by name.
	ProfilePaths map[string]string
	Logger       *log.Logger
}

// loadProfiles reads every configured overlay up front so a broken
// profile file fails the daemon at startup, not mid-request.
func loadProfiles(paths map[string]string) (map[string]*profile.Profile, error) {
	profiles := make(map[string]*profile.Profile)
	for name, path := range paths {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		p, err := profile.Load(path)
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", name, err)
		}
		profiles[name] = p
	}
	return profiles, nil
}

func profileNames(profiles map[string]*profile.Profile) []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
