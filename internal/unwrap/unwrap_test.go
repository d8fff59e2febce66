package unwrap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/charmingruby/sumtypes/internal/unwrap"
)

func TestMessages(t *testing.T) {
	t.Parallel()

	assert.EqualError(t, unwrap.ErrNone, "Tried to unwrap a None!")
	assert.EqualError(t, unwrap.ErrErr, "Tried to unwrap an Err!")
	assert.EqualError(t, unwrap.ErrOk, "Tried to unwrapErr an Ok!")
	assert.NotErrorIs(t, unwrap.ErrErr, unwrap.ErrOk)
}
