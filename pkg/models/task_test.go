package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskSerializeRoundTrip(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	due := time.Now().Add(5 * time.Minute)
	task := NewMuteRemovalTask(due, "#help", "troll!*@*", "troll")

	data, err := task.Serialize()
	require.NoError(err)

	decoded, err := DeserializeTask(data)
	require.NoError(err)

	assert.Equal(task.ID, decoded.ID)
	assert.Equal(TaskTypeMuteRemoval, decoded.Type)
	assert.Equal(TaskStatusPending, decoded.Status)

	payload, ok := decoded.Data.(PunishmentRemovalTaskData)
	require.True(ok, "payload decodes back into its typed form")
	assert.Equal("#help", payload.Channel)
	assert.Equal("troll!*@*", payload.Mask)
	assert.Equal("troll", payload.UserID)
}

func TestTaskIsDue(t *testing.T) {
	assert := assert.New(t)

	assert.True(NewBanRemovalTask(time.Now().Add(-time.Second), "#help", "troll!*@*", "troll").IsDue())
	assert.False(NewBanRemovalTask(time.Now().Add(time.Hour), "#help", "troll!*@*", "troll").IsDue())
}
