package guard

import (
	"fmt"
	"slices"
)

// Property declares the rule for a single object field. Exactly one of
// Guard or Detail should be set; which form a field uses is fixed here, at
// schema definition time. Transform runs before the rule, Default fills a
// missing optional field in the detailed form.
type Property struct {
	Name      string
	Guard     Guard
	Detail    Validator[any]
	Required  bool
	Default   any
	Transform func(any) (any, error)
}

// ObjectConfig governs how keys outside the declared property list are
// treated. Unknown keys fail validation only when Strict is set and
// AllowUnknown is not.
type ObjectConfig struct {
	Strict       bool
	AllowUnknown bool
}

func (cfg ObjectConfig) rejectsUnknown() bool {
	return cfg.Strict && !cfg.AllowUnknown
}

// Object builds a predicate over a map[string]any from an ordered, closed
// list of property rules. Properties are checked in declaration order:
// required presence first, then the optional transform, then the field rule.
// The predicate short-circuits on the first failing field. With a strict
// config, any key not present in the property list fails the whole object.
func Object(props []Property, cfg ObjectConfig) Guard {
	return func(value any) bool {
		m, ok := value.(map[string]any)
		if !ok {
			return false
		}

		for _, p := range props {
			raw, present := m[p.Name]
			if !present {
				if p.Required {
					return false
				}
				continue
			}
			if p.Transform != nil {
				var err error
				raw, err = p.Transform(raw)
				if err != nil {
					return false
				}
			}
			if !checkProperty(p, raw) {
				return false
			}
		}

		if cfg.rejectsUnknown() {
			declared := declaredNames(props)
			for key := range m {
				if _, ok := declared[key]; !ok {
					return false
				}
			}
		}

		return true
	}
}

// ObjectValidator builds the detailed form of Object. It never
// short-circuits: every missing required field, failed transform, failing
// field rule and unknown key is collected before returning. Field errors are
// prefixed with the property name so nested composites aggregate depth-first
// into readable paths. On success the returned data holds the transformed
// field values, defaults applied for missing optional fields, and undeclared
// keys carried through unchanged when the config permits them.
func ObjectValidator(props []Property, cfg ObjectConfig) Validator[map[string]any] {
	return func(value any) Result[map[string]any] {
		m, ok := value.(map[string]any)
		if !ok {
			return Fail[map[string]any]("value is not an object")
		}

		var errs []string
		out := make(map[string]any, len(m))

		for _, p := range props {
			raw, present := m[p.Name]
			if !present {
				if p.Required {
					errs = append(errs, fmt.Sprintf("property %q: value is required", p.Name))
				} else if p.Default != nil {
					out[p.Name] = p.Default
				}
				continue
			}
			if p.Transform != nil {
				var err error
				raw, err = p.Transform(raw)
				if err != nil {
					errs = append(errs, fmt.Sprintf("property %q: transform failed: %v", p.Name, err))
					continue
				}
			}
			if p.Detail != nil {
				res := p.Detail(raw)
				if !res.Valid {
					for _, e := range res.Errors {
						errs = append(errs, fmt.Sprintf("property %q: %s", p.Name, e))
					}
					continue
				}
				out[p.Name] = res.Data
				continue
			}
			if p.Guard != nil && !p.Guard(raw) {
				errs = append(errs, fmt.Sprintf("property %q: invalid value", p.Name))
				continue
			}
			out[p.Name] = raw
		}

		declared := declaredNames(props)
		var unknown []string
		for key := range m {
			if _, ok := declared[key]; !ok {
				unknown = append(unknown, key)
			}
		}
		// Sorted so repeated runs report unknown keys in a stable order.
		slices.Sort(unknown)
		for _, key := range unknown {
			if cfg.rejectsUnknown() {
				errs = append(errs, fmt.Sprintf("unknown property %q", key))
				continue
			}
			out[key] = m[key]
		}

		if len(errs) > 0 {
			return Fail[map[string]any](errs...)
		}
		return Ok(out)
	}
}

func checkProperty(p Property, raw any) bool {
	if p.Detail != nil {
		return p.Detail(raw).Valid
	}
	if p.Guard != nil {
		return p.Guard(raw)
	}
	return true
}

func declaredNames(props []Property) map[string]struct{} {
	names := make(map[string]struct{}, len(props))
	for _, p := range props {
		names[p.Name] = struct{}{}
	}
	return names
}
