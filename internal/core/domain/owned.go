package domain

// Owned is implemented by every resource bound to a single user. Authorization
// is a structural property of the repositories (every query combines resource
// id and owner id), so this interface mostly serves the generic ownership
// helpers in the service layer.
type Owned interface {
	OwnerID() int64
}
