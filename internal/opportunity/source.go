package opportunity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SourceKind is the collector family a data source came from.
type SourceKind string

// Known source kinds. The set is open: unrecognized bare strings are kept
// as-is, and the pipeline's {"other": "..."} wrapper decodes to KindOther.
const (
	KindGitHub  SourceKind = "git_hub"
	KindHACS    SourceKind = "hacs"
	KindYouTube SourceKind = "youtube"
	KindReddit  SourceKind = "reddit"
	KindOther   SourceKind = "other"
)

// SourceType is the wire-level source_type tag.
type SourceType struct {
	Kind SourceKind
	// Label carries the free-form name inside an {"other": ...} wrapper.
	Label string
}

// String returns the label for wrapped types and the kind otherwise.
func (s SourceType) String() string {
	if s.Kind == KindOther && s.Label != "" {
		return s.Label
	}
	return string(s.Kind)
}

// UnmarshalJSON accepts either a bare string or an {"other": "label"} object.
func (s *SourceType) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = SourceType{}
		return nil
	}

	if data[0] == '"' {
		var kind string
		if err := json.Unmarshal(data, &kind); err != nil {
			return err
		}
		*s = SourceType{Kind: SourceKind(kind)}
		return nil
	}

	var wrapped map[string]string
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return fmt.Errorf("source_type: %w", err)
	}
	label, ok := wrapped[string(KindOther)]
	if !ok {
		return fmt.Errorf("source_type: unsupported object %s", string(data))
	}
	*s = SourceType{Kind: KindOther, Label: label}
	return nil
}

// MarshalJSON emits the same encoding the pipeline produces.
func (s SourceType) MarshalJSON() ([]byte, error) {
	if s.Kind == KindOther && s.Label != "" {
		return json.Marshal(map[string]string{string(KindOther): s.Label})
	}
	return json.Marshal(string(s.Kind))
}
