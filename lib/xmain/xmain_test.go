package xmain_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/xos"

	"oss.terrastruct.com/polygons/lib/xmain"
)

func TestErrors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "exiting with code 2: sides must be set", xmain.ExitErrorf(2, "%s must be set", "sides").Error())
	assert.Equal(t, "exiting with code 1", xmain.ExitError{Code: 1}.Error())
	assert.Equal(t, "bad usage: unexpected argument", xmain.UsageErrorf("unexpected %s", "argument").Error())
}

func TestStateMain(t *testing.T) {
	t.Parallel()

	ms := &xmain.State{
		Name: "test",
		Env:  xos.NewEnv(nil),
	}
	sigs := make(chan os.Signal)

	err := ms.Main(context.Background(), sigs, func(ctx context.Context, ms *xmain.State) error {
		return nil
	})
	assert.NoError(t, err)

	exp := xmain.UsageErrorf("nope")
	err = ms.Main(context.Background(), sigs, func(ctx context.Context, ms *xmain.State) error {
		return exp
	})
	var uerr xmain.UsageError
	assert.True(t, errors.As(err, &uerr))
}
