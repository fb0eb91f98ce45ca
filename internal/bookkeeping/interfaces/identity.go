package interfaces

import (
	"net/http"
	"strconv"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
)

// identityFromRequest rebuilds the caller identity from the values the auth
// middleware stored on the request context.
func identityFromRequest(r *http.Request) (domain.Identity, bool) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok || userID == "" {
		return domain.Identity{}, false
	}
	elevated, _ := r.Context().Value("isStaff").(bool)
	return domain.Identity{UserID: userID, Elevated: elevated}, true
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}
