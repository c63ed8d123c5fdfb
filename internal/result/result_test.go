package result

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOk_Value verifies that a success built with Ok exposes its value.
func TestOk_Value(t *testing.T) {
	r := Ok("value")

	require.True(t, r.Success())
	v, ok := r.Value()
	assert.True(t, ok)
	assert.Equal(t, "value", v)
	assert.Nil(t, r.Detail())
	assert.NoError(t, r.Err())
	assert.Equal(t, "Ok(value)", r.String())
}

// TestValue_Absent covers every way a success can lack a value.
func TestValue_Absent(t *testing.T) {
	var nilPtr *int
	var nilMap map[string]string

	tests := []struct {
		name string
		r    interface{ String() string }
		ok   func() bool
	}{
		{"empty", Empty[string](), func() bool { _, ok := Empty[string]().Value(); return ok }},
		{"nil pointer", Ok(nilPtr), func() bool { _, ok := Ok(nilPtr).Value(); return ok }},
		{"nil map", Ok(nilMap), func() bool { _, ok := Ok(nilMap).Value(); return ok }},
		{"nil any", Ok[any](nil), func() bool { _, ok := Ok[any](nil).Value(); return ok }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.ok())
			assert.Equal(t, "Ok()", tt.r.String())
		})
	}
}

// TestFail verifies failure accessors and that a nil detail is replaced.
func TestFail(t *testing.T) {
	d := NewValidationError("bad input")
	r := Fail[int](d)

	assert.False(t, r.Success())
	assert.Same(t, d, r.Detail())
	assert.Equal(t, d, r.Err())
	_, ok := r.Value()
	assert.False(t, ok)

	r = Fail[int](nil)
	require.NotNil(t, r.Detail())
	assert.Equal(t, KindError, r.Detail().Kind)
}

// TestOnValue checks that OnValue only fires for present values and always
// returns the receiver.
func TestOnValue(t *testing.T) {
	var got []string
	record := func(v string) { got = append(got, v) }

	ok := Ok("a")
	assert.Same(t, ok, ok.OnValue(record))

	empty := Empty[string]()
	assert.Same(t, empty, empty.OnValue(record))

	fail := Fail[string](NewError("x"))
	assert.Same(t, fail, fail.OnValue(record))

	assert.Equal(t, []string{"a"}, got)
}

// TestOnFailure checks that OnFailure receives the failing Result itself.
func TestOnFailure(t *testing.T) {
	var seen *Result[int]
	fail := Fail[int](NewError("x"))

	assert.Same(t, fail, fail.OnFailure(func(r *Result[int]) { seen = r }))
	assert.Same(t, fail, seen)

	seen = nil
	Ok(1).OnFailure(func(r *Result[int]) { seen = r })
	assert.Nil(t, seen)
}

// TestThen verifies chaining and failure propagation.
func TestThen(t *testing.T) {
	parse := func(s string) *Result[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Fail[int](FromError(err))
		}
		return Ok(n)
	}

	r := Then(Ok("42"), parse)
	v, ok := r.Value()
	require.True(t, ok)
	assert.Equal(t, 42, v)

	r = Then(Ok("nope"), parse)
	assert.False(t, r.Success())
	assert.Equal(t, KindError, r.Detail().Kind)

	d := NewValidationError("upstream")
	r = Then(Fail[string](d), parse)
	assert.Same(t, d, r.Detail())
}

// TestMap verifies value transformation and that Empty stays Empty.
func TestMap(t *testing.T) {
	double := func(n int) int { return n * 2 }

	v, ok := Map(Ok(21), double).Value()
	require.True(t, ok)
	assert.Equal(t, 42, v)

	m := Map(Empty[int](), double)
	assert.True(t, m.Success())
	_, ok = m.Value()
	assert.False(t, ok)

	d := NewError("x")
	assert.Same(t, d, Map(Fail[int](d), double).Detail())
}

// TestIsNil covers nillable and non-nillable kinds.
func TestIsNil(t *testing.T) {
	var p *Detail
	var s []int
	var e error

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(s))
	assert.True(t, IsNil(e))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil(&Detail{}))
	assert.False(t, IsNil([]int{}))
}
