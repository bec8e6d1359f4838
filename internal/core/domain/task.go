package domain

import "time"

// Task is a to-do item, optionally assigned to a TaskGroup.
type Task struct {
	ID         int64      `json:"id" bson:"_id,omitempty"`
	UserID     int64      `json:"user_id" bson:"user_id"`
	GroupID    int64      `json:"group_id,omitempty" bson:"group_id,omitempty"`
	Title      string     `json:"title" bson:"title"`
	Done       bool       `json:"done" bson:"done"`
	Date       *time.Time `json:"date,omitempty" bson:"date,omitempty"`
	Recurrence int        `json:"recurrence" bson:"recurrence"`
	Color      string     `json:"color,omitempty" bson:"color,omitempty"`
}

// OwnerID implements Owned.
func (t *Task) OwnerID() int64 { return t.UserID }

// TaskGroup is a named bucket of tasks shown in the sidebar.
type TaskGroup struct {
	ID     int64  `json:"id" bson:"_id,omitempty"`
	UserID int64  `json:"user_id" bson:"user_id"`
	Title  string `json:"title" bson:"title"`
	Color  string `json:"color,omitempty" bson:"color,omitempty"`
}

// OwnerID implements Owned.
func (g *TaskGroup) OwnerID() int64 { return g.UserID }
