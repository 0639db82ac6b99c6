// Package verify answers the admin login form. The adminauth middleware in
// front of it already checked the secret, so reaching the handler means the
// credential is good.
package verify

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"meetingBooker/internal/lib/api/response"
)

func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.verify.New"

		log.Info("admin secret verified", slog.String("op", op))

		render.JSON(w, r, response.OK())
	}
}
