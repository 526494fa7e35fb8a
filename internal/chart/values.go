package chart

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Values represents helm chart values as a map.
type Values map[string]any

// Merge combines multiple Values maps with later maps taking precedence.
// Nested maps are merged recursively.
func Merge(valueMaps ...Values) Values {
	result := make(Values)
	for _, m := range valueMaps {
		result = deepMerge(result, m)
	}
	return result
}

// MergeCustomValues merges free-form user overrides over built values.
// Override keys win; nested objects are merged rather than replaced.
func MergeCustomValues(values Values, custom map[string]any) Values {
	if len(custom) == 0 {
		return values
	}
	return deepMerge(values, Values(custom))
}

// deepMerge merges src over dst recursively, returning a new map.
// When both sides hold a map for the same key the maps are merged;
// otherwise the src value overwrites.
func deepMerge(dst, src Values) Values {
	result := make(Values, len(dst)+len(src))
	for k, v := range dst {
		result[k] = v
	}
	for k, srcVal := range src {
		if dstVal, exists := result[k]; exists {
			srcMap, srcIsMap := asValues(srcVal)
			dstMap, dstIsMap := asValues(dstVal)
			if srcIsMap && dstIsMap {
				result[k] = deepMerge(dstMap, srcMap)
				continue
			}
		}
		result[k] = srcVal
	}
	return result
}

func asValues(v any) (Values, bool) {
	switch m := v.(type) {
	case Values:
		return m, true
	case map[string]any:
		return Values(m), true
	}
	return nil, false
}

// ToMap converts values to a plain map[string]any recursively.
// Helm expects plain maps, not named map types, in render values.
func (v Values) ToMap() map[string]any {
	result := make(map[string]any, len(v))
	for key, val := range v {
		result[key] = plainValue(val)
	}
	return result
}

func plainValue(val any) any {
	switch t := val.(type) {
	case Values:
		return t.ToMap()
	case map[string]any:
		return Values(t).ToMap()
	case []Values:
		items := make([]any, 0, len(t))
		for _, item := range t {
			items = append(items, item.ToMap())
		}
		return items
	case []any:
		items := make([]any, 0, len(t))
		for _, item := range t {
			items = append(items, plainValue(item))
		}
		return items
	default:
		return val
	}
}

// ToYAML converts values to YAML bytes.
func (v Values) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(v.ToMap()); err != nil {
		return nil, fmt.Errorf("failed to encode values to YAML: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses YAML bytes into Values.
func FromYAML(data []byte) (Values, error) {
	var values Values
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse YAML values: %w", err)
	}
	return values, nil
}
