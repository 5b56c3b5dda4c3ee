package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Health    *HealthHandler
	Translate *TranslateHandler
	Vocab     *VocabHandler
	Quiz      *QuizHandler
	Impex     *ImpexHandler
}

// NewRouter builds the HTTP route table. Middleware is applied by the caller.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/translate", h.Translate.Translate)
	mux.HandleFunc("GET /api/translate", h.Translate.GetSnapshot)
	mux.HandleFunc("GET /api/translate/events", h.Translate.Events)

	mux.HandleFunc("POST /api/folders", h.Vocab.CreateFolder)
	mux.HandleFunc("GET /api/folders", h.Vocab.ListFolders)
	mux.HandleFunc("GET /api/folders/{id}", h.Vocab.GetFolder)
	mux.HandleFunc("PUT /api/folders/{id}", h.Vocab.RenameFolder)
	mux.HandleFunc("DELETE /api/folders/{id}", h.Vocab.DeleteFolder)

	mux.HandleFunc("POST /api/cards", h.Vocab.CreateCard)
	mux.HandleFunc("GET /api/cards", h.Vocab.ListCards)
	mux.HandleFunc("GET /api/cards/{id}", h.Vocab.GetCard)
	mux.HandleFunc("PATCH /api/cards/{id}", h.Vocab.UpdateCard)
	mux.HandleFunc("DELETE /api/cards/{id}", h.Vocab.DeleteCard)

	mux.HandleFunc("POST /api/quiz", h.Quiz.Generate)

	mux.HandleFunc("GET /api/export", h.Impex.Export)
	mux.HandleFunc("POST /api/import", h.Impex.Import)

	return mux
}
