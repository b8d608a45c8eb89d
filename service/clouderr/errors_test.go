package clouderr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOfClassifiesCallErrors(t *testing.T) {
	err := NewCallError("aws", "DescribeInstances", KindRateLimited, errors.New("throttled"))

	assert.Equal(t, KindRateLimited, KindOf(err))
	assert.Equal(t, KindRateLimited, KindOf(fmt.Errorf("listing vms: %w", err)))
}

func TestKindOfContextExpiry(t *testing.T) {
	assert.Equal(t, KindTimeout, KindOf(context.DeadlineExceeded))
	assert.Equal(t, KindTimeout, KindOf(context.Canceled))
	assert.Equal(t, KindUnknown, KindOf(errors.New("mystery")))
}

func TestRetryableKinds(t *testing.T) {
	assert.True(t, KindRateLimited.Retryable())
	assert.True(t, KindTimeout.Retryable())
	assert.True(t, KindUnavailable.Retryable())
	assert.False(t, KindAuth.Retryable())
	assert.False(t, KindUnknown.Retryable())
}

func TestInvalidCredentialError(t *testing.T) {
	err := &InvalidCredentialError{Provider: "gcp", Field: "private_key"}

	assert.Equal(t, "invalid gcp credential shape: missing private_key", err.Error())
	assert.True(t, IsInvalidCredential(fmt.Errorf("resolving: %w", err)))
	assert.False(t, IsInvalidCredential(errors.New("other")))
}

func TestCallErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewCallError("azure", "ListAll", KindUnavailable, cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "azure ListAll")
}
