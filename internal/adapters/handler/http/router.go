package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(agendaHandler *AgendaHandler, sessionHandler *SessionHandler, voteHandler *VoteHandler, memberHandler *MemberHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/agendas", func(r chi.Router) {
			r.Post("/", agendaHandler.CreateAgenda)
			r.Get("/", agendaHandler.ListAgendas)
			r.Get("/{id}", agendaHandler.GetAgenda)
			r.Post("/{id}/sessions", sessionHandler.OpenSession)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", sessionHandler.ListSessions)
			r.Get("/{id}", sessionHandler.GetSession)
			r.Put("/{id}/close", sessionHandler.CloseSession)
			r.Get("/{id}/result", sessionHandler.GetResult)
			r.Post("/{id}/votes", voteHandler.RegisterVote)
		})

		r.Route("/members", func(r chi.Router) {
			r.Post("/", memberHandler.RegisterMember)
			r.Get("/", memberHandler.ListMembers)
			r.Get("/search", memberHandler.SearchByDocument)
			r.Get("/{id}", memberHandler.GetMember)
		})
	})

	return r
}
