package http

import (
	"net/http"

	"github.com/mzhurov/postboard/internal/logger"
	"github.com/mzhurov/postboard/internal/store"
)

// withDBSession is an HTTP middleware that checks a dedicated database
// connection out of the pool and attaches it to the request context via
// [store.WithSession]. Every repository call made while handling the request
// then runs on that single connection instead of grabbing an arbitrary one
// from the pool per query.
//
// The connection is returned to the pool when the handler chain finishes,
// whether the request succeeded or not. If no connection can be acquired
// (pool exhausted, database down), the request is rejected with
// HTTP 500 before reaching any handler.
func (h *Handler) withDBSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		ctx := r.Context()
		conn, err := h.storages.DB.AcquireSession(ctx)
		if err != nil {
			log.Err(err).Msg("error acquiring database session")
			apiError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		defer func() {
			if closeErr := conn.Close(); closeErr != nil {
				log.Err(closeErr).Msg("error releasing database session")
			}
		}()

		ctx = store.WithSession(ctx, conn)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
