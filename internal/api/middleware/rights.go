package middleware

import (
	"net/http"

	"Peerpulse/internal/core/users"
)

// Rights checked by RequireRight
const (
	RightCreatePost           = "createPost"
	RightCreatePoll           = "createPoll"
	RightCommentPost          = "commentPost"
	RightQueryCollegePosts    = "queryCollegePosts"
	RightQueryCommentsForPost = "queryCommentsForPost"
	RightGetPostByID          = "getPostById"
	RightLikePost             = "likePost"
	RightCurrentUser          = "currentUser"
	RightSendMessage          = "sendMessage"
	RightGetUsers             = "getUsers"
	RightManageUsers          = "manageUsers"
)

var userRights = []string{
	RightCreatePost,
	RightCreatePoll,
	RightCommentPost,
	RightQueryCollegePosts,
	RightQueryCommentsForPost,
	RightGetPostByID,
	RightLikePost,
	RightCurrentUser,
	RightSendMessage,
}

// roleRights maps each role to the rights it holds. Admins hold every user right.
var roleRights = map[users.Role]map[string]bool{
	users.RoleUser:  rightSet(userRights),
	users.RoleAdmin: rightSet(append([]string{RightGetUsers, RightManageUsers}, userRights...)),
}

func rightSet(rights []string) map[string]bool {
	set := make(map[string]bool, len(rights))
	for _, r := range rights {
		set[r] = true
	}
	return set
}

// HasRight reports whether role grants right
func HasRight(role users.Role, right string) bool {
	return roleRights[role][right]
}

// RequireRight rejects authenticated callers whose role lacks right with 403.
// Must run after RequireAuth.
func RequireRight(right string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if GetUserID(r) == "" {
				writeAuthError(w, "Please authenticate")
				return
			}
			if !HasRight(GetRole(r), right) {
				writeJSONError(w, http.StatusForbidden, "Forbidden", "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
