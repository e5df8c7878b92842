package exitcode_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtsforge/dtsforge/internal/exitcode"
)

func TestGet(t *testing.T) {
	base := exitcode.Set(errors.New(""), exitcode.InternalFail)
	wrapped := fmt.Errorf("wrapping: %w", base)

	cases := map[string]struct {
		err  error
		want int
	}{
		"nil":     {nil, exitcode.Success},
		"default": {errors.New("boom"), exitcode.Diagnostics},
		"set":     {exitcode.Set(errors.New(""), exitcode.UsageError), exitcode.UsageError},
		"wrapped": {wrapped, exitcode.InternalFail},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, exitcode.Get(tc.err))
		})
	}
}

func TestSet(t *testing.T) {
	t.Run("same-message", func(t *testing.T) {
		err := errors.New("hello")
		coded := exitcode.Set(err, exitcode.UsageError)
		assert.Equal(t, err.Error(), coded.Error())
	})

	t.Run("keeps-chain", func(t *testing.T) {
		err := errors.New("hello")
		coded := exitcode.Set(err, exitcode.InternalFail)
		assert.ErrorIs(t, coded, err)
	})
}
