package domain

import "time"

// ActivityKind labels an entry in the session audit trail.
type ActivityKind string

const (
	ActivitySignup ActivityKind = "signup"
	ActivityLogin  ActivityKind = "login"
)

// Activity is an audit record of an authentication event. Written
// asynchronously by the activity dispatcher; never read on the request path.
type Activity struct {
	UserID    int64        `json:"user_id" bson:"user_id"`
	Kind      ActivityKind `json:"kind" bson:"kind"`
	Timestamp time.Time    `json:"timestamp" bson:"timestamp"`
}
