package shell

import (
	"runtime"
	"strings"

	"go.trai.ch/cdb/internal/core/domain"
)

type envVar struct {
	key   string
	value string
}

// CaptureEnvironment returns base extended with the variables the preload library reads.
// Existing entries with the same key are replaced in place; base is not modified.
func CaptureEnvironment(base []string, reportDir, library string) []string {
	return captureEnvironment(base, reportDir, library, runtime.GOOS)
}

func captureEnvironment(base []string, reportDir, library, goos string) []string {
	overrides := []envVar{{domain.EnvOutput, reportDir}}
	if goos == "darwin" {
		overrides = append(overrides,
			envVar{domain.EnvPreloadDarwin, library},
			envVar{domain.EnvFlatNamespace, "1"},
		)
	} else {
		overrides = append(overrides, envVar{domain.EnvPreloadLinux, library})
	}
	return resolveEnvironment(base, overrides)
}

// resolveEnvironment applies overrides to sysEnv keeping the original order of sysEnv.
func resolveEnvironment(sysEnv []string, overrides []envVar) []string {
	result := make([]string, 0, len(sysEnv)+len(overrides))
	index := make(map[string]int, len(sysEnv))
	for _, entry := range sysEnv {
		k, _, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if i, seen := index[k]; seen {
			// Later duplicates win, as they do for getenv.
			result[i] = entry
			continue
		}
		index[k] = len(result)
		result = append(result, entry)
	}

	for _, o := range overrides {
		entry := o.key + "=" + o.value
		if i, seen := index[o.key]; seen {
			result[i] = entry
			continue
		}
		index[o.key] = len(result)
		result = append(result, entry)
	}
	return result
}
