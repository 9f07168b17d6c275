package perf

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// KeyFunc derives the cache key for a value. Values that should share a
// cached result must map to the same key; values that must not share one
// must map to different keys.
type KeyFunc func(value any) string

// CanonicalKey is the default KeyFunc. Primitives render with a type prefix
// so values of different types never collide ("string:5" vs "int:5").
// Composites marshal through encoding/json, which sorts map keys, so
// structurally equal maps collide regardless of insertion order. Values json
// cannot represent fall back to fmt formatting, which is stable for plain
// data but not guaranteed unique for exotic types; inject a custom KeyFunc
// for those.
func CanonicalKey(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case string:
		return "string:" + v
	case bool:
		return "bool:" + strconv.FormatBool(v)
	case int:
		return "int:" + strconv.FormatInt(int64(v), 10)
	case int8:
		return "int:" + strconv.FormatInt(int64(v), 10)
	case int16:
		return "int:" + strconv.FormatInt(int64(v), 10)
	case int32:
		return "int:" + strconv.FormatInt(int64(v), 10)
	case int64:
		return "int:" + strconv.FormatInt(v, 10)
	case uint:
		return "uint:" + strconv.FormatUint(uint64(v), 10)
	case uint8:
		return "uint:" + strconv.FormatUint(uint64(v), 10)
	case uint16:
		return "uint:" + strconv.FormatUint(uint64(v), 10)
	case uint32:
		return "uint:" + strconv.FormatUint(uint64(v), 10)
	case uint64:
		return "uint:" + strconv.FormatUint(v, 10)
	case float32:
		return "float:" + strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return "float:" + strconv.FormatFloat(v, 'g', -1, 64)
	default:
		if b, err := json.Marshal(value); err == nil {
			return fmt.Sprintf("%T:%s", value, b)
		}
		return fmt.Sprintf("%T:%v", value, value)
	}
}
