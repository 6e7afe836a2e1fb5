package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindHelpersMatchWrappedErrors(t *testing.T) {
	cause := errors.New("boom")

	provider := fmt.Errorf("indexing GEN.1: %w", NewProviderError("scripture", cause))
	assert.True(t, IsProvider(provider))
	assert.False(t, IsPersistence(provider))

	unavailable := fmt.Errorf("search: %w", &SearchUnavailableError{Err: cause})
	assert.True(t, IsSearchUnavailable(unavailable))
	assert.False(t, IsProvider(unavailable))

	validation := fmt.Errorf("request: %w", NewValidationError("query must not be empty"))
	assert.True(t, IsValidation(validation))

	persistence := fmt.Errorf("upsert: %w", NewPersistenceError("upsert verse", cause))
	assert.True(t, IsPersistence(persistence))
	assert.False(t, IsValidation(persistence))

	assert.False(t, IsProvider(cause))
	assert.False(t, IsProvider(nil))
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("connection refused")

	require.ErrorIs(t, NewProviderError("embedding", cause), cause)
	require.ErrorIs(t, NewPersistenceError("save checkpoint", cause), cause)
	require.ErrorIs(t, &SearchUnavailableError{Err: cause}, cause)
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "scripture provider: timeout",
		NewProviderError("scripture", errors.New("timeout")).Error())
	assert.Equal(t, "persistence: upsert verse: bad conn",
		NewPersistenceError("upsert verse", errors.New("bad conn")).Error())
	assert.Equal(t, "limit must be between 1 and 100",
		NewValidationError("limit must be between %d and %d", 1, 100).Error())
}
