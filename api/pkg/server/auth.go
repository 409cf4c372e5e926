package server

import (
	"context"
	"net/http"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/Artox/open-build-service/api/pkg/store"
	"github.com/Artox/open-build-service/api/pkg/types"
)

type contextKey string

const userKey contextKey = "user"

func setRequestUser(ctx context.Context, user *types.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// getRequestUser returns nil for anonymous requests
func getRequestUser(r *http.Request) *types.User {
	user, _ := r.Context().Value(userKey).(*types.User)
	return user
}

type adminAuth struct {
	adminUserIDs []string
	// this means ALL users
	// if '*' is included in the list
	developmentMode bool
}

func newAdminAuth(adminUserIDs []string) *adminAuth {
	return &adminAuth{
		adminUserIDs:    adminUserIDs,
		developmentMode: slices.Contains(adminUserIDs, "*"),
	}
}

func (auth *adminAuth) isUserAdmin(login string) bool {
	if auth.developmentMode {
		return true
	}
	if login == "" {
		return false
	}
	return slices.Contains(auth.adminUserIDs, login)
}

// authMiddleware trusts the login the frontend proxy puts into the header. Unknown
// logins are created on first sight.
type authMiddleware struct {
	store     store.Store
	header    string
	adminAuth *adminAuth
}

func newAuthMiddleware(store store.Store, header string, adminUserIDs []string) *authMiddleware {
	return &authMiddleware{
		store:     store,
		header:    header,
		adminAuth: newAdminAuth(adminUserIDs),
	}
}

func (auth *authMiddleware) getUser(ctx context.Context, login string) (*types.User, error) {
	if login == "" {
		return nil, nil
	}
	user, err := auth.store.EnsureUser(ctx, login)
	if err != nil {
		return nil, err
	}
	if auth.adminAuth.isUserAdmin(user.Login) {
		user.Admin = true
	}
	return user, nil
}

// extractMiddleware attaches the user of the request, if any, to the request context
func (auth *authMiddleware) extractMiddleware(next http.Handler) http.Handler {
	f := func(w http.ResponseWriter, r *http.Request) {
		user, err := auth.getUser(r.Context(), r.Header.Get(auth.header))
		if err != nil {
			log.Ctx(r.Context()).Error().Err(err).Msg("failed to load request user")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if user != nil {
			r = r.WithContext(setRequestUser(r.Context(), user))
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(f)
}

func requireUser(next http.Handler) http.Handler {
	f := func(w http.ResponseWriter, r *http.Request) {
		if getRequestUser(r) == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(f)
}
