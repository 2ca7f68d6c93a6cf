package domain

import "time"

// Follow is a directed edge: FollowerEmail follows FollowingEmail.
type Follow struct {
	FollowerEmail  string
	FollowingEmail string
	CreatedAt      time.Time
}
