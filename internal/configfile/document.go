// Package configfile reads, mutates and writes the master Alacritty
// configuration. The document is an open-ended TOML mapping; the only field
// the switcher interprets is the general.import list, which alone determines
// the active theme.
package configfile

// Document is a parsed configuration. All keys round-trip untouched except
// general.import, which mutations replace on a deep copy.
type Document map[string]any

// Imports returns the general.import list, or nil when absent.
func (d Document) Imports() []string {
	general, ok := d["general"].(map[string]any)
	if !ok {
		return nil
	}

	switch raw := general["import"].(type) {
	case []string:
		out := make([]string, len(raw))
		copy(out, raw)
		return out
	case []any:
		out := make([]string, 0, len(raw))
		for _, entry := range raw {
			if s, ok := entry.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// WithImports returns a deep copy of the document with general.import
// replaced by the given list. The receiver is never mutated, so a failed
// write later on can simply discard the copy.
func (d Document) WithImports(imports []string) Document {
	doc := d.DeepCopy()

	general, ok := doc["general"].(map[string]any)
	if !ok {
		general = make(map[string]any)
		doc["general"] = general
	}

	list := make([]string, len(imports))
	copy(list, imports)
	general["import"] = list
	return doc
}

// DeepCopy returns a structural copy sharing no mutable state with the
// receiver.
func (d Document) DeepCopy() Document {
	return Document(copyValue(map[string]any(d)).(map[string]any))
}

func copyValue(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, val := range typed {
			out[key] = copyValue(val)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, val := range typed {
			out[i] = copyValue(val)
		}
		return out
	case []string:
		out := make([]string, len(typed))
		copy(out, typed)
		return out
	case []map[string]any:
		out := make([]map[string]any, len(typed))
		for i, val := range typed {
			out[i] = copyValue(val).(map[string]any)
		}
		return out
	default:
		return v
	}
}
