package domain

// Calendar groups events in the user's agenda.
type Calendar struct {
	ID          int64  `json:"id" bson:"_id,omitempty"`
	UserID      int64  `json:"user_id" bson:"user_id"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Color       string `json:"color,omitempty" bson:"color,omitempty"`
}

// OwnerID implements Owned.
func (c *Calendar) OwnerID() int64 { return c.UserID }
