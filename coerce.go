package paramcache

import (
	"strconv"
	"strings"
)

// coerce normalizes string writes to numeric paths: values containing a
// '.' parse as float64, others as int. Best-effort and silent: a value
// that does not parse is kept as the original string. The allow-list is
// alias-aware, so a write through a historical name coerces like its
// canonical path.
func (s *service) coerce(path string, v Value) Value {
	raw, ok := v.(string)
	if !ok {
		return v
	}
	if !s.numericPath(path) {
		return v
	}
	if strings.Contains(raw, ".") {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	} else {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	}
	s.hooks.CoercionFailed(path, raw)
	s.log.Debug("numeric coercion failed; keeping string", Fields{"path": path})
	return v
}

func (s *service) numericPath(path string) bool {
	if _, ok := s.numeric[path]; ok {
		return true
	}
	for _, a := range s.aliases.aliasesOf(path) {
		if _, ok := s.numeric[a]; ok {
			return true
		}
	}
	return false
}
