package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the feedback board surface. Shared between the server binary
// and the handler tests so both exercise identical routing.
func Routes(feedbackHandler *FeedbackHandler, commentHandler *CommentHandler) chi.Router {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"feedbackboard"}`))
	})

	r.Route("/feedback", func(r chi.Router) {
		r.Post("/", feedbackHandler.CreateFeedback)
		r.Get("/", feedbackHandler.ListFeedback)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", feedbackHandler.GetFeedback)
			r.Delete("/", feedbackHandler.DeleteFeedback)
			r.Patch("/upvote", feedbackHandler.Upvote)
			r.Get("/comments", commentHandler.ListComments)
			r.Post("/comments", commentHandler.CreateComment)
		})
	})

	return r
}
