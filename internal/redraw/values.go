package redraw

import (
	"fmt"

	"github.com/neovim/go-client/nvim"
)

// The helpers below convert go-client's decoded msgpack values. Integers
// arrive as int64 or uint64 depending on their encoding.

func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case float64:
		return int(n), nil
	case float32:
		return int(n), nil
	case nvim.Window:
		return int(n), nil
	case nvim.Tabpage:
		return int(n), nil
	case nvim.Buffer:
		return int(n), nil
	}
	return 0, fmt.Errorf("expected integer, got %T", v)
}

func toInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case uint64:
		return int64(n), nil
	}
	i, err := toInt(v)
	return int64(i), err
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	}
	i, err := toInt(v)
	return float64(i), err
}

func toString(v interface{}) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	}
	return "", fmt.Errorf("expected string, got %T", v)
}

func toBool(v interface{}) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, fmt.Errorf("expected bool, got %T", v)
}

func toArray(v interface{}) ([]interface{}, error) {
	if a, ok := v.([]interface{}); ok {
		return a, nil
	}
	return nil, fmt.Errorf("expected array, got %T", v)
}

func toMap(v interface{}) (map[string]interface{}, error) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, nil
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, val := range m {
			key, err := toString(k)
			if err != nil {
				return nil, err
			}
			out[key] = val
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected map, got %T", v)
}

func toWindow(v interface{}) (nvim.Window, error) {
	if w, ok := v.(nvim.Window); ok {
		return w, nil
	}
	n, err := toInt(v)
	return nvim.Window(n), err
}

func toTabpage(v interface{}) (nvim.Tabpage, error) {
	if t, ok := v.(nvim.Tabpage); ok {
		return t, nil
	}
	n, err := toInt(v)
	return nvim.Tabpage(n), err
}

// args is a cursor over one event's argument tuple.
type args struct {
	vals []interface{}
	pos  int
	err  error
}

func newArgs(v interface{}) *args {
	a, err := toArray(v)
	return &args{vals: a, err: err}
}

func (a *args) next(name string) (interface{}, bool) {
	if a.err != nil {
		return nil, false
	}
	if a.pos >= len(a.vals) {
		a.err = fmt.Errorf("missing argument %q", name)
		return nil, false
	}
	v := a.vals[a.pos]
	a.pos++
	return v, true
}

func (a *args) has() bool {
	return a.err == nil && a.pos < len(a.vals)
}

func (a *args) fail(name string, err error) {
	if a.err == nil && err != nil {
		a.err = fmt.Errorf("argument %q: %w", name, err)
	}
}

func (a *args) int(name string) int {
	v, ok := a.next(name)
	if !ok {
		return 0
	}
	n, err := toInt(v)
	a.fail(name, err)
	return n
}

func (a *args) int64(name string) int64 {
	v, ok := a.next(name)
	if !ok {
		return 0
	}
	n, err := toInt64(v)
	a.fail(name, err)
	return n
}

func (a *args) float(name string) float64 {
	v, ok := a.next(name)
	if !ok {
		return 0
	}
	f, err := toFloat(v)
	a.fail(name, err)
	return f
}

func (a *args) string(name string) string {
	v, ok := a.next(name)
	if !ok {
		return ""
	}
	s, err := toString(v)
	a.fail(name, err)
	return s
}

func (a *args) bool(name string) bool {
	v, ok := a.next(name)
	if !ok {
		return false
	}
	b, err := toBool(v)
	a.fail(name, err)
	return b
}

func (a *args) array(name string) []interface{} {
	v, ok := a.next(name)
	if !ok {
		return nil
	}
	arr, err := toArray(v)
	a.fail(name, err)
	return arr
}

func (a *args) raw(name string) interface{} {
	v, _ := a.next(name)
	return v
}

func (a *args) window(name string) nvim.Window {
	v, ok := a.next(name)
	if !ok {
		return 0
	}
	w, err := toWindow(v)
	a.fail(name, err)
	return w
}

func (a *args) tabpage(name string) nvim.Tabpage {
	v, ok := a.next(name)
	if !ok {
		return 0
	}
	t, err := toTabpage(v)
	a.fail(name, err)
	return t
}

// truthy accepts either a msgpack bool or a Vim number.
func (a *args) truthy(name string) bool {
	v, ok := a.next(name)
	if !ok {
		return false
	}
	if b, isBool := v.(bool); isBool {
		return b
	}
	n, err := toInt(v)
	a.fail(name, err)
	return n != 0
}
