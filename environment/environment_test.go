/*
File    : loxgo/environment/environment_test.go
Package : environment
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rverma-dev/loxgo/value"
)

func TestEnvironment_DefineAndGet(t *testing.T) {
	env := New()
	env.Define("x", value.Number{Value: 42})

	got, err := env.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, value.Number{Value: 42}, got)
}

func TestEnvironment_GetUndefinedIsError(t *testing.T) {
	env := New()
	_, err := env.Get("missing")
	assert.EqualError(t, err, "Undefined variable missing.")
}

func TestEnvironment_AssignDoesNotCreate(t *testing.T) {
	env := New()
	err := env.Assign("never_declared", value.Bool{Value: true})
	assert.EqualError(t, err, "Undefined variable never_declared.")
}

func TestEnvironment_BlockShadowsThenRestores(t *testing.T) {
	outer := New()
	outer.Define("a", value.String{Value: "outer"})

	inner := outer.Push()
	inner.Define("a", value.String{Value: "inner"})

	got, _ := inner.Get("a")
	assert.Equal(t, value.String{Value: "inner"}, got)

	restored := inner.Pop()
	got, _ = restored.Get("a")
	assert.Equal(t, value.String{Value: "outer"}, got)
}

func TestEnvironment_AssignUpdatesInnermostDefiningScope(t *testing.T) {
	outer := New()
	outer.Define("count", value.Number{Value: 0})

	inner := outer.Push()
	// count is not redeclared in inner, so Assign must reach through to outer.
	err := inner.Assign("count", value.Number{Value: 1})
	assert.NoError(t, err)

	got, _ := outer.Get("count")
	assert.Equal(t, value.Number{Value: 1}, got)
}

func TestEnvironment_RedeclarationInSameScopeOverwrites(t *testing.T) {
	env := New()
	env.Define("x", value.Number{Value: 1})
	env.Define("x", value.Number{Value: 2})

	got, _ := env.Get("x")
	assert.Equal(t, value.Number{Value: 2}, got)
}
