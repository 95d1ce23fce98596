package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/drift/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir             string
	statsFile       *os.File
	transitionsFile *os.File

	// Track if headers have been written
	statsHeaderWritten       bool
	transitionsHeaderWritten bool
}

// NewOutputManager creates an output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	statsPath := filepath.Join(dir, "stats.csv")
	f, err := os.Create(statsPath)
	if err != nil {
		return nil, fmt.Errorf("creating stats.csv: %w", err)
	}
	om.statsFile = f

	transitionsPath := filepath.Join(dir, "transitions.csv")
	f, err = os.Create(transitionsPath)
	if err != nil {
		om.statsFile.Close()
		return nil, fmt.Errorf("creating transitions.csv: %w", err)
	}
	om.transitionsFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteStats writes a window stats record to stats.csv.
func (om *OutputManager) WriteStats(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}

	if !om.statsHeaderWritten {
		if err := gocsv.Marshal(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		om.statsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
	}

	return nil
}

// WriteTransitions writes state transition records to transitions.csv.
func (om *OutputManager) WriteTransitions(records []Transition) error {
	if om == nil || len(records) == 0 {
		return nil
	}

	if !om.transitionsHeaderWritten {
		if err := gocsv.Marshal(records, om.transitionsFile); err != nil {
			return fmt.Errorf("writing transitions: %w", err)
		}
		om.transitionsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.transitionsFile); err != nil {
			return fmt.Errorf("writing transitions: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error

	if om.statsFile != nil {
		if err := om.statsFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if om.transitionsFile != nil {
		if err := om.transitionsFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
