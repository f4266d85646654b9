package closer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseAll(t *testing.T) {
	var order []string
	boom := errors.New("boom")

	AddNamed("first", func(context.Context) error {
		order = append(order, "first")
		return nil
	})
	AddNamed("second", func(context.Context) error {
		order = append(order, "second")
		return boom
	})
	Add(func(context.Context) error {
		order = append(order, "third")
		return nil
	})

	err := CloseAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "second")
	assert.Equal(t, []string{"third", "second", "first"}, order)

	require.NoError(t, CloseAll(context.Background()))
	assert.Len(t, order, 3)
}
