package firestore

import (
	"encoding/json"
	"fmt"
	"time"

	"chatmod/pkg/log"
	"chatmod/pkg/models"

	"cloud.google.com/go/firestore"
)

const collectionTasks = "tasks"

func (fs *Firestore) taskPath(id string) string {
	return fmt.Sprintf("moderators/%s/%s/%s", fs.cfg.IRC.Nick, collectionTasks, id)
}

func (fs *Firestore) tasksPath() string {
	return fmt.Sprintf("moderators/%s/%s", fs.cfg.IRC.Nick, collectionTasks)
}

// AddTask schedules a punishment-removal job for the scheduler to pick
// up once due.
func (fs *Firestore) AddTask(task *models.Task) error {
	return create(fs.ctx, fs.client, fs.taskPath(task.ID), task)
}

// DueTasks returns pending tasks whose due time has passed, oldest
// first.
func (fs *Firestore) DueTasks() ([]*models.Task, error) {
	criteria := QueryCriteria{
		Path: fs.tasksPath(),
		Filter: firestore.AndFilter{
			Filters: []firestore.EntityFilter{
				createPropertyFilter("status", Equal, models.TaskStatusPending),
				createPropertyFilter("due_at", LessThanOrEqual, time.Now()),
			},
		},
		OrderBy: []OrderBy{
			{Field: "due_at", Direction: firestore.Asc},
		},
	}

	tasks, err := query[models.Task](fs.ctx, fs.client, criteria)
	if err != nil {
		return nil, err
	}

	return populateTaskData(tasks)
}

// CompleteTask marks a task done so the scheduler never republishes it.
func (fs *Firestore) CompleteTask(id string) error {
	logger := log.Logger()

	err := update(fs.ctx, fs.client, fs.taskPath(id), map[string]any{"status": models.TaskStatusComplete})
	if err != nil {
		logger.Warningf(nil, "error completing task %s, %s", id, err)
	}

	return err
}

func populateTaskData(tasks []*models.Task) ([]*models.Task, error) {
	for _, task := range tasks {
		raw, ok := task.Data.(map[string]any)
		if !ok {
			continue
		}

		d, err := json.Marshal(raw)
		if err != nil {
			return nil, err
		}

		switch task.Type {
		case models.TaskTypeMuteRemoval, models.TaskTypeBanRemoval:
			var payload models.PunishmentRemovalTaskData
			if err = json.Unmarshal(d, &payload); err != nil {
				return nil, err
			}
			task.Data = payload
		}
	}

	return tasks, nil
}
