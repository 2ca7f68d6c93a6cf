package foliosdk

import "time"

// ============================================================================
// Auth
// ============================================================================

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	// Email is an email address or a username
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionUser is the account summary returned with a session.
type SessionUser struct {
	Email             string     `json:"email"`
	Username          string     `json:"username,omitempty"`
	Role              string     `json:"role"`
	LastLogin         *time.Time `json:"lastLogin,omitempty"`
	PasswordChangedAt *time.Time `json:"passwordChangedAt,omitempty"`
}

// LoginResponse is returned by login and registration. The token is also set
// as the auth_token cookie.
type LoginResponse struct {
	Success   bool        `json:"success"`
	User      SessionUser `json:"user"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// ChangePasswordRequest is the body of POST /api/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// VerifySessionResponse always comes back with 200; Authenticated tells the
// caller whether the token is still good.
type VerifySessionResponse struct {
	Success       bool         `json:"success"`
	Authenticated bool         `json:"authenticated"`
	User          *SessionUser `json:"user,omitempty"`
	ExpiresAt     *time.Time   `json:"expiresAt,omitempty"`
}

// MessageResponse acknowledges a state change.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ============================================================================
// Registration
// ============================================================================

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Username    string `json:"username"`
}

// ============================================================================
// Profiles
// ============================================================================

// Profile is the public view of an account.
type Profile struct {
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	DisplayName string     `json:"displayName"`
	Bio         string     `json:"bio"`
	PhotoURL    string     `json:"photoURL"`
	Role        string     `json:"role"`
	Active      bool       `json:"active"`
	Followers   int        `json:"followers"`
	Following   int        `json:"following"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
}

type ProfileResponse struct {
	Success bool    `json:"success"`
	User    Profile `json:"user"`
}

type ProfileListResponse struct {
	Success bool      `json:"success"`
	Users   []Profile `json:"users"`
	Count   int       `json:"count"`
}

// ProfileUpdateRequest is the body of PATCH /api/users/me. Nil fields are
// left unchanged.
type ProfileUpdateRequest struct {
	DisplayName *string `json:"displayName,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	PhotoURL    *string `json:"photoURL,omitempty"`
}

// ============================================================================
// Follows
// ============================================================================

// FollowRequest is the body of POST /api/follows.
type FollowRequest struct {
	Email string `json:"email"`
}

type FollowStatusResponse struct {
	Success     bool `json:"success"`
	IsFollowing bool `json:"isFollowing"`
}

// FollowEdge is one follower -> following relationship.
type FollowEdge struct {
	Follower  string    `json:"follower"`
	Following string    `json:"following"`
	CreatedAt time.Time `json:"createdAt"`
}

type FollowListResponse struct {
	Success bool         `json:"success"`
	Follows []FollowEdge `json:"follows"`
	Count   int          `json:"count"`
}

// ============================================================================
// Administration
// ============================================================================

// SetActiveRequest suspends (false) or reinstates (true) an account.
type SetActiveRequest struct {
	Active bool `json:"active"`
}

// ResetPasswordRequest is the body of POST /api/admin/users/{email}/reset-password.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

type Analytics struct {
	TotalUsers     int `json:"totalUsers"`
	ActiveUsers    int `json:"activeUsers"`
	SuspendedUsers int `json:"suspendedUsers"`
	Owners         int `json:"owners"`
	NewUsers       int `json:"newUsers"`
	TotalFollows   int `json:"totalFollows"`
}

type AnalyticsResponse struct {
	Success   bool      `json:"success"`
	Analytics Analytics `json:"analytics"`
}

// ============================================================================
// Errors and health
// ============================================================================

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	// AttemptsRemaining accompanies a failed login
	AttemptsRemaining *int `json:"attemptsRemaining,omitempty"`
	// RetryAfter accompanies a locked-out login, in seconds
	RetryAfter *int `json:"retryAfter,omitempty"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency on /readyz.
type HealthChecks struct {
	Database string `json:"database"`
	Lockout  string `json:"lockout"`
}
