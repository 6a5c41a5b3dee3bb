package tags

import (
	"os"

	"github.com/krail/prototags/internal/scan"
)

// Collector is a scan.Sink that gathers tags for one file, dropping kinds
// outside the configured selection. The selection is fixed at construction;
// the scanner itself always reports everything it recognizes.
type Collector struct {
	file    string
	enabled scan.KindSet
	tags    []Tag
}

func NewCollector(file string, enabled scan.KindSet) *Collector {
	if enabled == nil {
		enabled = scan.DefaultKinds()
	}
	return &Collector{
		file:    file,
		enabled: enabled,
	}
}

func (c *Collector) Emit(tag scan.Tag) {
	if !c.enabled[tag.Kind] {
		return
	}
	c.tags = append(c.tags, Tag{
		Name: tag.Name,
		Kind: tag.Kind,
		File: c.file,
		Line: tag.Line,
	})
}

// Tags returns the collected tags in document order.
func (c *Collector) Tags() []Tag {
	return c.tags
}

// ScanBytes extracts tags from one definition source held in memory.
func ScanBytes(file string, src []byte, enabled scan.KindSet) []Tag {
	collector := NewCollector(file, enabled)
	scan.Scan(src, collector)
	return collector.Tags()
}

// ScanFile extracts tags from the definition file at path. Each file is an
// independent scan with fresh state.
func ScanFile(path string, enabled scan.KindSet) ([]Tag, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ScanBytes(path, src, enabled), nil
}
