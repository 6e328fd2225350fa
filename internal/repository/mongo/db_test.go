package mongo

import (
	"context"
	"errors"
	"testing"

	"fitnesshub/fitness-app/internal/repository"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestWrapErr(t *testing.T) {
	assert.NoError(t, wrapErr("noop", nil))

	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "duplicate key"}}}
	assert.ErrorIs(t, wrapErr("insert", dup), repository.ErrDuplicate)

	timeout := wrapErr("find", context.DeadlineExceeded)
	assert.ErrorIs(t, timeout, repository.ErrUnavailable)
	assert.Contains(t, timeout.Error(), "find")

	other := wrapErr("find", errors.New("boom"))
	assert.NotErrorIs(t, other, repository.ErrUnavailable)
	assert.NotErrorIs(t, other, repository.ErrDuplicate)
	assert.EqualError(t, other, "find: boom")
}
