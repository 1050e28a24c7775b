package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ReturnsNonNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	// must not panic even without any configured writer
	l.Info().Msg("discarded")
}

func TestGetChildLogger_ReturnsIndependentInstance(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_NeverNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

func TestFromRequest_NeverNil(t *testing.T) {
	r := httptest.NewRequest("GET", "/users", nil)
	l := FromRequest(r)
	require.NotNil(t, l)
}
