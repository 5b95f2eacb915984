package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("no rows")
	wrapped := fmt.Errorf("get article: %w", E(KindArticleNotFound, cause))

	assert.Equal(t, KindArticleNotFound, KindOf(wrapped))
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, KindUnknown, KindOf(cause))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "user not found", E(KindUserNotFound, nil).Error())
	assert.Equal(t, "bad request: boom", E(KindBadRequest, errors.New("boom")).Error())
}

func TestNewComment_Validate(t *testing.T) {
	assert.NoError(t, NewComment{Username: "butter_bridge", Body: "hi"}.Validate())
	assert.Equal(t, KindBadRequest, KindOf(NewComment{Body: "hi"}.Validate()))
	assert.Equal(t, KindBadRequest, KindOf(NewComment{Username: "butter_bridge"}.Validate()))
}
