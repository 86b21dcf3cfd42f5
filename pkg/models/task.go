package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const taskIDPrefix = "task"

const (
	TaskTypeMuteRemoval = "mute_removal"
	TaskTypeBanRemoval  = "ban_removal"
)

const (
	TaskStatusPending   = "pending"
	TaskStatusComplete  = "complete"
	TaskStatusCancelled = "cancelled"
)

// Task is a scheduled punishment-removal job. The bot creates one when it
// applies a timed mute or ban on a channel; the scheduler publishes it to
// the queue once due, and the bot lifts the channel mode on receipt.
type Task struct {
	ID        string    `firestore:"id" json:"id"`
	Type      string    `firestore:"type" json:"type"`
	CreatedAt time.Time `firestore:"created_at" json:"created_at"`
	DueAt     time.Time `firestore:"due_at" json:"due_at"`
	Status    string    `firestore:"status" json:"status"`
	Data      any       `firestore:"data" json:"data"`
}

// PunishmentRemovalTaskData identifies the channel mode to undo.
type PunishmentRemovalTaskData struct {
	Channel string `firestore:"channel" json:"channel"`
	Mask    string `firestore:"mask" json:"mask"`
	UserID  string `firestore:"user_id" json:"user_id"`
}

func NewMuteRemovalTask(dueAt time.Time, channel, mask, userID string) *Task {
	return newPendingTask(TaskTypeMuteRemoval, dueAt, PunishmentRemovalTaskData{
		Channel: channel,
		Mask:    mask,
		UserID:  userID,
	})
}

func NewBanRemovalTask(dueAt time.Time, channel, mask, userID string) *Task {
	return newPendingTask(TaskTypeBanRemoval, dueAt, PunishmentRemovalTaskData{
		Channel: channel,
		Mask:    mask,
		UserID:  userID,
	})
}

func newPendingTask(taskType string, due time.Time, payload any) *Task {
	return &Task{
		ID:        fmt.Sprintf("%s-%s", taskIDPrefix, uuid.NewString()),
		Type:      taskType,
		CreatedAt: time.Now(),
		DueAt:     due,
		Status:    TaskStatusPending,
		Data:      payload,
	}
}

func (t *Task) IsDue() bool {
	return !t.DueAt.After(time.Now())
}

func (t *Task) Serialize() ([]byte, error) {
	return json.Marshal(t)
}

func DeserializeTask(data []byte) (*Task, error) {
	var task Task
	err := json.Unmarshal(data, &task)
	if err != nil {
		return nil, err
	}

	raw, ok := task.Data.(map[string]any)
	if !ok {
		return &task, nil
	}

	d, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}

	switch task.Type {
	case TaskTypeMuteRemoval, TaskTypeBanRemoval:
		var payload PunishmentRemovalTaskData
		if err = json.Unmarshal(d, &payload); err != nil {
			return nil, err
		}
		task.Data = payload
	}

	return &task, nil
}
