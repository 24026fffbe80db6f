package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/lanternhq/lantern/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "no_deploy_target",
			code:    errors.ErrNoDeployTarget,
			message: "no deploy target configured",
			wantStr: "[NO_DEPLOY_TARGET] no deploy target configured",
		},
		{
			name:    "invalid_slug",
			code:    errors.ErrInvalidSlug,
			message: "workspace isn't valid",
			wantStr: "[INVALID_SLUG] workspace isn't valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	err := errors.Wrap(inner, errors.ErrAuthRequired, "credential lookup failed")

	assert.Equal(t, errors.ErrAuthRequired, err.Code)
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "[AUTH_REQUIRED]")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "should be dropped"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "should be %s", "dropped"))
}

func TestIsMatchesByCode(t *testing.T) {
	a := errors.New(errors.ErrMissingTitle, "one message")
	b := errors.New(errors.ErrMissingTitle, "another message")
	c := errors.New(errors.ErrMissingMessage, "different code")

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, c))
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrWorkspaceNotFound, "workspace %q not found", "acme")

	assert.True(t, errors.IsErrorCode(err, errors.ErrWorkspaceNotFound))
	assert.False(t, errors.IsErrorCode(err, errors.ErrProjectMissing))
	assert.False(t, errors.IsErrorCode(fmt.Errorf("plain"), errors.ErrWorkspaceNotFound))
}

func TestGetErrorCode(t *testing.T) {
	err := errors.New(errors.ErrMisconfigured, "stale record")
	wrapped := fmt.Errorf("outer: %w", err)

	assert.Equal(t, errors.ErrMisconfigured, errors.GetErrorCode(wrapped))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
}
