// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"globalplanner/internal/ai"
	"globalplanner/internal/markdown"
	"globalplanner/internal/models"
	"globalplanner/internal/planner"
	"globalplanner/internal/render"
	"globalplanner/internal/slug"
)

// Workspace groups the handlers for the planner views and its JSON API.
// Every handler delegates to one controller operation.
type Workspace struct {
	ctrl      *planner.Controller
	renderer  *render.Renderer
	chrome    *render.Chrome
	assistant *ai.Assistant
}

// NewWorkspace creates the handler group. assistant may be nil when no AI
// provider is configured.
func NewWorkspace(ctrl *planner.Controller, renderer *render.Renderer, chrome *render.Chrome, assistant *ai.Assistant) *Workspace {
	return &Workspace{
		ctrl:      ctrl,
		renderer:  renderer,
		chrome:    chrome,
		assistant: assistant,
	}
}

// stateResponse is the body returned by every state-changing endpoint.
type stateResponse struct {
	State         planner.State         `json:"state"`
	Templates     []models.Template     `json:"templates"`
	Notifications []models.Notification `json:"notifications"`
}

func (ws *Workspace) snapshot() stateResponse {
	return stateResponse{
		State:         ws.ctrl.State(),
		Templates:     ws.ctrl.FilteredTemplates(),
		Notifications: ws.ctrl.Notifications(),
	}
}

func (ws *Workspace) writeState(w http.ResponseWriter, status int) {
	writeJSON(w, status, ws.snapshot())
}

// Home renders the browser or the editor, whichever the state shows.
func (ws *Workspace) Home(w http.ResponseWriter, r *http.Request) {
	state := ws.ctrl.State()
	cat := ws.ctrl.Catalog()

	data := &render.ViewData{
		Chrome:        ws.chrome.State(),
		T:             ws.ctrl.Messages(),
		State:         state,
		Categories:    cat.Categories(),
		Templates:     ws.ctrl.FilteredTemplates(),
		TemplateCount: cat.Len(),
		Notifications: ws.ctrl.Notifications(),
		AIProvider:    ws.assistant.ProviderName(),
	}

	view := "browser"
	if page, ok := state.ActivePage(); ok && state.View == planner.ViewEditor {
		view = "editor"
		data.ActivePage = &page
		preview, err := markdown.ToHTML(page.Content)
		if err != nil {
			slog.Warn("markdown preview failed", "page_id", page.ID, "error", err)
		}
		// ToHTML output is sanitised.
		data.PreviewHTML = template.HTML(preview)
	}

	ws.renderer.Page(w, r, view, data)
}

// State returns the full workspace snapshot.
func (ws *Workspace) State(w http.ResponseWriter, r *http.Request) {
	ws.writeState(w, http.StatusOK)
}

// Categories lists the catalog categories.
func (ws *Workspace) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"categories": ws.ctrl.Catalog().Categories()})
}

// Templates lists the templates matching the current filters.
func (ws *Workspace) Templates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"templates": ws.ctrl.FilteredTemplates()})
}

type filtersRequest struct {
	Category *string `json:"category"`
	Query    *string `json:"query"`
}

// SetFilters updates the selected category and/or the search query.
func (ws *Workspace) SetFilters(w http.ResponseWriter, r *http.Request) {
	var req filtersRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Query != nil {
		if msg := validateQuery(*req.Query); msg != "" {
			writeError(w, http.StatusUnprocessableEntity, msg)
			return
		}
	}
	if req.Category != nil {
		if err := ws.ctrl.SetSelectedCategory(*req.Category); err != nil {
			writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Unknown category %q.", *req.Category))
			return
		}
	}
	if req.Query != nil {
		ws.ctrl.SetSearchQuery(*req.Query)
	}

	ws.writeState(w, http.StatusOK)
}

// ResetFilters selects every category and clears the search.
func (ws *Workspace) ResetFilters(w http.ResponseWriter, r *http.Request) {
	ws.ctrl.ResetFilters()
	ws.writeState(w, http.StatusOK)
}

// SelectTemplate instantiates a template as a new page.
func (ws *Workspace) SelectTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	page, err := ws.ctrl.SelectTemplate(r.Context(), id)
	switch {
	case errors.Is(err, planner.ErrTemplateNotFound):
		writeError(w, http.StatusNotFound, "Template not found.")
		return
	case errors.Is(err, planner.ErrPremiumRequired):
		writeJSON(w, http.StatusForbidden, map[string]any{
			"error":   ws.ctrl.Messages().PremiumOnly,
			"upgrade": true,
		})
		return
	case err != nil:
		slog.Error("select template failed", "template_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Could not create the page.")
		return
	}

	resp := ws.snapshot()
	writeJSON(w, http.StatusCreated, map[string]any{
		"page":          page,
		"state":         resp.State,
		"notifications": resp.Notifications,
	})
}

// Pages lists the saved pages, newest first.
func (ws *Workspace) Pages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"pages": ws.ctrl.State().Pages})
}

// Page returns a single page.
func (ws *Workspace) Page(w http.ResponseWriter, r *http.Request) {
	page, ok := ws.findPage(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Page not found.")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// PagePreview renders a page's content as sanitised HTML.
func (ws *Workspace) PagePreview(w http.ResponseWriter, r *http.Request) {
	page, ok := ws.findPage(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Page not found.")
		return
	}

	out, err := markdown.ToHTML(page.Content)
	if err != nil {
		slog.Error("markdown render failed", "page_id", page.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Could not render the preview.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": page.ID, "html": out})
}

// ExportPage downloads a page as a Markdown file named after its title.
func (ws *Workspace) ExportPage(w http.ResponseWriter, r *http.Request) {
	page, ok := ws.findPage(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Page not found.")
		return
	}

	name := slug.Filename(page.Title, "page-"+page.ID, ".md")
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, page.Content)
}

func (ws *Workspace) findPage(id string) (models.Page, bool) {
	pages := ws.ctrl.State().Pages
	i := models.FindPage(pages, id)
	if i < 0 {
		return models.Page{}, false
	}
	return pages[i], true
}

// NewPage returns to the template browser.
func (ws *Workspace) NewPage(w http.ResponseWriter, r *http.Request) {
	ws.ctrl.NewPage()
	ws.writeState(w, http.StatusOK)
}

// OpenPage opens an existing page in the editor.
func (ws *Workspace) OpenPage(w http.ResponseWriter, r *http.Request) {
	if err := ws.ctrl.OpenPage(chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, "Page not found.")
		return
	}
	ws.writeState(w, http.StatusOK)
}

// DeletePage asks for confirmation; the page is removed by Confirm.
func (ws *Workspace) DeletePage(w http.ResponseWriter, r *http.Request) {
	if err := ws.ctrl.RequestDeletePage(chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, "Page not found.")
		return
	}
	ws.writeState(w, http.StatusAccepted)
}

type editorRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SaveEditor stores the editor's title and content into the active page.
func (ws *Workspace) SaveEditor(w http.ResponseWriter, r *http.Request) {
	var req editorRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validatePage(req.Title, req.Content); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	saved := ws.ctrl.SavePage(r.Context(), req.Title, req.Content)
	resp := ws.snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"saved":         saved,
		"state":         resp.State,
		"notifications": resp.Notifications,
	})
}

// CloseEditor leaves the editor without saving.
func (ws *Workspace) CloseEditor(w http.ResponseWriter, r *http.Request) {
	ws.ctrl.CloseEditor()
	ws.writeState(w, http.StatusOK)
}

type generateRequest struct {
	Topic   string `json:"topic"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Generate drafts plan content with the AI assistant and returns the merged
// draft. The draft is not saved.
func (ws *Workspace) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateTopic(req.Topic); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	if msg := validatePage(req.Title, req.Content); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	draft, err := ws.ctrl.Generate(r.Context(), req.Topic, planner.Draft{Title: req.Title, Content: req.Content})

	status := http.StatusOK
	msgs := ws.ctrl.Messages()
	body := map[string]any{"draft": draft}

	switch {
	case err == nil:
	case errors.Is(err, planner.ErrEmptyTopic):
		status = http.StatusUnprocessableEntity
		body["error"] = msgs.GenerateEmpty
	case errors.Is(err, planner.ErrGenerationInProgress):
		status = http.StatusConflict
		body["error"] = msgs.Generating
	case errors.Is(err, ai.ErrCredentialMissing):
		status = http.StatusServiceUnavailable
		body["error"] = msgs.CredentialMissing
	default:
		status = http.StatusBadGateway
		body["error"] = msgs.GenerateError
	}

	body["notifications"] = ws.ctrl.Notifications()
	writeJSON(w, status, body)
}

// AIProviders reports the active AI provider and the configured ones.
func (ws *Workspace) AIProviders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"active":    ws.assistant.ProviderName(),
		"available": ws.assistant.Providers(),
	})
}

type aiProviderRequest struct {
	Provider string `json:"provider"`
}

// SetAIProvider switches the provider used for generation. Only providers
// with a configured credential can be selected.
func (ws *Workspace) SetAIProvider(w http.ResponseWriter, r *http.Request) {
	var req aiProviderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := ws.assistant.UseProvider(req.Provider); err != nil {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("AI provider %q is not configured.", req.Provider))
		return
	}
	ws.AIProviders(w, r)
}

// Confirm executes the pending confirmation.
func (ws *Workspace) Confirm(w http.ResponseWriter, r *http.Request) {
	confirmed := ws.ctrl.Confirm(r.Context())
	resp := ws.snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"confirmed":     confirmed,
		"state":         resp.State,
		"notifications": resp.Notifications,
	})
}

// Cancel drops the pending confirmation.
func (ws *Workspace) Cancel(w http.ResponseWriter, r *http.Request) {
	ws.ctrl.Cancel()
	ws.writeState(w, http.StatusOK)
}

// Upgrade activates the premium membership.
func (ws *Workspace) Upgrade(w http.ResponseWriter, r *http.Request) {
	ws.ctrl.Upgrade(r.Context())
	ws.writeState(w, http.StatusOK)
}

// OpenUpgradePrompt shows the upgrade dialog.
func (ws *Workspace) OpenUpgradePrompt(w http.ResponseWriter, r *http.Request) {
	ws.ctrl.OpenUpgradePrompt()
	ws.writeState(w, http.StatusOK)
}

// DismissUpgradePrompt hides the upgrade dialog.
func (ws *Workspace) DismissUpgradePrompt(w http.ResponseWriter, r *http.Request) {
	ws.ctrl.DismissUpgradePrompt()
	ws.writeState(w, http.StatusOK)
}

// ToggleLanguage asks for confirmation before switching language.
func (ws *Workspace) ToggleLanguage(w http.ResponseWriter, r *http.Request) {
	ws.ctrl.RequestLanguageToggle()
	ws.writeState(w, http.StatusAccepted)
}

// ToggleDarkMode flips the theme.
func (ws *Workspace) ToggleDarkMode(w http.ResponseWriter, r *http.Request) {
	ws.ctrl.ToggleDarkMode(r.Context())
	ws.writeState(w, http.StatusOK)
}

// ToggleSidebar opens or closes the sidebar.
func (ws *Workspace) ToggleSidebar(w http.ResponseWriter, r *http.Request) {
	ws.ctrl.ToggleSidebar()
	ws.writeState(w, http.StatusOK)
}

// Notifications lists the live notifications.
func (ws *Workspace) Notifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"notifications": ws.ctrl.Notifications()})
}

// DismissNotification removes a notification early.
func (ws *Workspace) DismissNotification(w http.ResponseWriter, r *http.Request) {
	if !ws.ctrl.DismissNotification(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "Notification not found.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeJSON reads a size-limited JSON body into v, answering 400 on
// failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return false
	}
	return true
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
