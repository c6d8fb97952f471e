package errutil_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/blueprint-app/blueprint/pkg/utils/errutil"
)

func TestHandle(t *testing.T) {
	ctx := context.Background()

	t.Run("nil passes through", func(t *testing.T) {
		gt.NoError(t, errutil.Handle(ctx, nil, "should not log"))
	})

	t.Run("error is returned unchanged", func(t *testing.T) {
		origErr := goerr.New("boom", goerr.V("key", "value"))
		gt.Value(t, errutil.Handle(ctx, origErr, "failed")).Equal(origErr)
	})
}
