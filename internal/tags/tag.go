package tags

import (
	"encoding/json"
	"fmt"

	"github.com/krail/prototags/internal/scan"
)

// Tag is an extracted symbol attributed to its source file.
type Tag struct {
	Name string
	Kind scan.Kind
	File string
	Line int
}

type tagRecord struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	File string `json:"file"`
	Line int    `json:"line"`
}

func (t Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(tagRecord{
		Name: t.Name,
		Kind: t.Kind.Name(),
		File: t.File,
		Line: t.Line,
	})
}

func (t *Tag) UnmarshalJSON(data []byte) error {
	var rec tagRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	kind, ok := scan.KindFromName(rec.Kind)
	if !ok {
		return fmt.Errorf("unknown tag kind `%s`", rec.Kind)
	}
	t.Name = rec.Name
	t.Kind = kind
	t.File = rec.File
	t.Line = rec.Line
	return nil
}
