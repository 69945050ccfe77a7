package app

import (
	"github.com/JCaesar45/Cut-a-rectangle/internal/handlers"
	"github.com/JCaesar45/Cut-a-rectangle/internal/rectcut"
	"github.com/JCaesar45/Cut-a-rectangle/internal/repository"
)

func (a *App) loadRoutes() {
	var repo *repository.Queries
	if a.db != nil {
		repo = repository.New(a.db)
	}

	cut := handlers.NewCutHandler(
		a.logger, rectcut.NewQuery(a.enum), repo, a.ws,
	)

	a.router.HandleFunc("GET /cut/count", cut.Count)
	a.router.HandleFunc("GET /cut/solutions", cut.Solutions)
	a.router.HandleFunc("GET /cut/solutions/connect", cut.ConnectWS)
	a.router.HandleFunc("GET /cut/records", cut.Records)
}
