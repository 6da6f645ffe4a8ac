package event

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/heathj/minievent/webidl"
)

type clickPayload struct {
	Type string
	X, Y int
	note string
}

type taggedPayload struct {
	Kind   string `mapstructure:"type"`
	Button int    `mapstructure:"button"`
}

type constructionTestcase struct {
	name     string
	args     []any
	wantType string
	wantData any
	fields   map[string]any
}

var constructionTests = []constructionTestcase{
	{"no arguments", nil, "", nil, nil},
	{"type only", []any{"click"}, "click", nil, nil},
	{"type and scalar", []any{"change", 42}, "change", 42, nil},
	{"type and string", []any{"input", "abc"}, "input", "abc", nil},
	{"falsy zero dropped", []any{"change", 0}, "change", nil, nil},
	{"falsy empty string dropped", []any{"change", ""}, "change", nil, nil},
	{"falsy false dropped", []any{"change", false}, "change", nil, nil},
	{"nil data dropped", []any{"change", nil}, "change", nil, nil},
	{"nil slice dropped", []any{"change", []int(nil)}, "change", nil, nil},
	{"empty slice kept", []any{"change", []int{}}, "change", []int{}, nil},
	{"object argument", []any{map[string]any{"type": "x", "a": 1}}, "x", nil, map[string]any{"a": 1}},
	{"object without type", []any{map[string]any{"a": 1}}, "", nil, map[string]any{"a": 1}},
	{"object data field", []any{map[string]any{"type": "x", "data": "d"}}, "x", "d", nil},
	{"object with falsy data field", []any{map[string]any{"data": 0}}, "", 0, nil},
	{"typed map object", []any{map[string]int{"a": 1, "b": 2}}, "", nil, map[string]any{"a": 1, "b": 2}},
	{"nil map object", []any{map[string]any(nil)}, "", nil, nil},
	{"struct object", []any{clickPayload{Type: "click", X: 3, Y: 4}}, "click", nil, map[string]any{"X": 3, "Y": 4}},
	{"struct pointer object", []any{&clickPayload{Type: "click", X: 1}}, "click", nil, map[string]any{"X": 1, "Y": 0}},
	{"tagged struct object", []any{taggedPayload{Kind: "mouseup", Button: 2}}, "mouseup", nil, map[string]any{"button": 2}},
	{"explicit type wins", []any{"outer", map[string]any{"type": "inner", "a": 1}}, "outer", nil, map[string]any{"a": 1}},
	{"explicit type with struct data", []any{"outer", clickPayload{X: 5}}, "outer", nil, map[string]any{"X": 5, "Y": 0}},
	{"empty explicit type keeps object type", []any{"", map[string]any{"type": "inner"}}, "inner", nil, nil},
	{"non-string type ignored", []any{7, "d"}, "", "d", nil},
	{"named string type", []any{webidl.DOMString("focus")}, "focus", nil, nil},
	{"non-string type field kept as field", []any{map[string]any{"type": 5}}, "", nil, map[string]any{"type": 5}},
	{"extra arguments ignored", []any{"a", "b", "c"}, "a", "b", nil},
	{"map keys match data exactly", []any{map[string]any{"Data": 1, "data": 2}}, "", 2, map[string]any{"Data": 1}},
	{"map keys match type exactly", []any{map[string]any{"Type": "x"}}, "", nil, map[string]any{"Type": "x"}},
	{"upper case map keys are fields", []any{"click", map[string]any{"TYPE": "x", "DATA": "d"}}, "click", nil, map[string]any{"TYPE": "x", "DATA": "d"}},
	{"typed map keys match exactly", []any{map[string]string{"type": "x", "Type": "y"}}, "x", nil, map[string]any{"Type": "y"}},
}

func TestNew(t *testing.T) {
	for _, tt := range constructionTests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := New(tt.args...)
			require.Equal(t, tt.wantType, e.Type)
			require.Equal(t, tt.wantData, e.Data)
			require.Equal(t, tt.fields, e.Fields)
			require.False(t, e.IsDefaultPrevented())
			require.False(t, e.IsPropagationStopped())
			require.False(t, e.IsImmediatePropagationStopped())
		})
	}
}

func TestNew_Empty(t *testing.T) {
	e := New()
	require.Empty(t, e.Type)
	_, ok := e.Get("type")
	require.False(t, ok)
	_, ok = e.Get("data")
	require.False(t, ok)
	require.Nil(t, e.Host())
	require.Equal(t, "[Event type=]", e.String())
}

func TestNew_ShallowCopy(t *testing.T) {
	inner := map[string]any{"n": 1}
	obj := map[string]any{"type": "x", "inner": inner}
	e := New(obj)

	obj["late"] = true
	_, ok := e.Get("late")
	require.False(t, ok, "fields are copied at construction")

	inner["n"] = 2
	got, ok := e.Get("inner")
	require.True(t, ok)
	require.Equal(t, 2, got.(map[string]any)["n"], "nested values are shared, not cloned")
}

func TestNew_NaNIsFalsy(t *testing.T) {
	e := New("measure", math.NaN())
	require.Nil(t, e.Data)
}

func TestNamedConstructors(t *testing.T) {
	require.Equal(t, New("click"), NewType("click"))
	require.Equal(t, New("click", 1), NewWithData("click", 1))
	require.Equal(t, New(map[string]any{"type": "x", "a": 1}), FromObject(map[string]any{"type": "x", "a": 1}))

	e := FromObject("not an object")
	require.Empty(t, e.Type)
	require.Equal(t, "not an object", e.Data)
}

func TestGetAndProperties(t *testing.T) {
	e := New("click", map[string]any{"data": "d", "x": 1})

	v, ok := e.Get("type")
	require.True(t, ok)
	require.Equal(t, "click", v)
	v, ok = e.Get("data")
	require.True(t, ok)
	require.Equal(t, "d", v)
	v, ok = e.Get("x")
	require.True(t, ok)
	require.Equal(t, 1, v)
	_, ok = e.Get("y")
	require.False(t, ok)

	require.Equal(t, map[string]any{"type": "click", "data": "d", "x": 1}, e.Properties())
}

func TestFlags(t *testing.T) {
	t.Run("prevent default is idempotent", func(t *testing.T) {
		e := New("submit")
		e.PreventDefault()
		e.PreventDefault()
		require.True(t, e.IsDefaultPrevented())
		require.False(t, e.IsPropagationStopped())
		require.False(t, e.IsImmediatePropagationStopped())
	})

	t.Run("stop propagation leaves immediate unset", func(t *testing.T) {
		e := New("click")
		e.StopPropagation()
		require.True(t, e.IsPropagationStopped())
		require.False(t, e.IsImmediatePropagationStopped())
		require.False(t, e.IsDefaultPrevented())
	})

	t.Run("immediate stop implies stop", func(t *testing.T) {
		e := New("click")
		e.StopImmediatePropagation()
		require.True(t, e.IsPropagationStopped())
		require.True(t, e.IsImmediatePropagationStopped())
		require.False(t, e.IsDefaultPrevented())
	})

	t.Run("flags are per instance", func(t *testing.T) {
		a, b := New("click"), New("click")
		a.PreventDefault()
		a.StopImmediatePropagation()
		require.False(t, b.IsDefaultPrevented())
		require.False(t, b.IsPropagationStopped())
		require.False(t, b.IsImmediatePropagationStopped())
	})
}

func TestDecode(t *testing.T) {
	type click struct {
		Type   string
		Data   string
		Button int `mapstructure:"button"`
	}

	e := New("click", map[string]any{"data": "left", "button": 1})
	var got click
	require.NoError(t, e.Decode(&got))
	require.Equal(t, click{Type: "click", Data: "left", Button: 1}, got)

	err := e.Decode(got)
	require.Error(t, err)
	require.Contains(t, err.Error(), `decode event "click"`)

	bad := New(map[string]any{"button": "left"})
	require.Error(t, bad.Decode(&got))
}

func TestProperties_TypeAndScalarData(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		typ := rapid.StringMatching(`[a-z]{1,12}`).Draw(rt, "type")
		data := rapid.OneOf(
			rapid.Map(rapid.IntRange(1, math.MaxInt32), func(i int) any { return i }),
			rapid.Map(rapid.StringMatching(`.{1,16}`), func(s string) any { return s }),
			rapid.Just[any](true),
		).Draw(rt, "data")

		e := New(typ, data)
		require.Equal(rt, typ, e.Type)
		require.Equal(rt, data, e.Data)
		require.Nil(rt, e.Fields)
	})
}

func TestProperties_ObjectArgument(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		typ := rapid.StringMatching(`[a-z]{1,12}`).Draw(rt, "type")
		extra := rapid.MapOf(rapid.StringMatching(`[a-c][a-z]{0,6}`), rapid.Int()).Draw(rt, "extra")

		obj := map[string]any{"type": typ}
		for k, v := range extra {
			obj[k] = v
		}

		e := New(obj)
		require.Equal(rt, typ, e.Type)
		for k, v := range extra {
			got, ok := e.Get(k)
			require.True(rt, ok, "field %q", k)
			require.Equal(rt, v, got)
		}
	})
}

func TestProperties_FlagsNeverReset(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		e := New("click")
		var prevented, stopped, immediate bool

		ops := rapid.SliceOfN(rapid.IntRange(0, 2), 0, 20).Draw(rt, "ops")
		for _, op := range ops {
			switch op {
			case 0:
				e.PreventDefault()
				prevented = true
			case 1:
				e.StopPropagation()
				stopped = true
			case 2:
				e.StopImmediatePropagation()
				stopped, immediate = true, true
			}
			require.Equal(rt, prevented, e.IsDefaultPrevented())
			require.Equal(rt, stopped, e.IsPropagationStopped())
			require.Equal(rt, immediate, e.IsImmediatePropagationStopped())
			if e.IsImmediatePropagationStopped() {
				require.True(rt, e.IsPropagationStopped())
			}
		}
	})
}
