package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"simple_todo/internal/todo"
	"simple_todo/internal/version"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type todoHandler struct {
	store     todo.Store
	validator *todo.Validator
	logger    zerolog.Logger
}

type page struct {
	Title   string
	Notice  string
	Message string
	Todos   []todo.Todo
	Todo    *todo.Todo
	Form    *form
}

type form struct {
	Action string
	Method string
	Submit string
	Todo   *todo.Todo
	Errors []string
}

type errorResponse struct {
	Error  string                `json:"error"`
	Errors todo.ValidationErrors `json:"errors,omitempty"`
}

func newTodoHandler(store todo.Store, validator *todo.Validator, logger zerolog.Logger) *todoHandler {
	return &todoHandler{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

func todoPath(id int64) string {
	return fmt.Sprintf("/todos/%d", id)
}

func newForm(t *todo.Todo, errs []string) *form {
	return &form{Action: "/todos", Submit: "Create Todo", Todo: t, Errors: errs}
}

func editForm(t *todo.Todo, errs []string) *form {
	return &form{Action: todoPath(t.ID), Method: "patch", Submit: "Update Todo", Todo: t, Errors: errs}
}

func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

func (h *todoHandler) index(c *gin.Context) {
	todos, err := h.store.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, todos)
		return
	}
	c.HTML(http.StatusOK, "index.html", page{Title: "Todos", Notice: c.Query("notice"), Todos: todos})
}

func (h *todoHandler) show(c *gin.Context) {
	t, ok := h.load(c)
	if !ok {
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, t)
		return
	}
	c.HTML(http.StatusOK, "show.html", page{Title: t.Title, Notice: c.Query("notice"), Todo: t})
}

func (h *todoHandler) new(c *gin.Context) {
	c.HTML(http.StatusOK, "new.html", page{Title: "New todo", Form: newForm(&todo.Todo{}, nil)})
}

func (h *todoHandler) edit(c *gin.Context) {
	t, ok := h.load(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "edit.html", page{Title: "Editing todo", Form: editForm(t, nil)})
}

func (h *todoHandler) create(c *gin.Context) {
	params, err := bindParams(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	t := &todo.Todo{}
	params.Apply(t)
	if err = h.validator.Validate(t); err != nil {
		h.invalid(c, err, "new.html", page{Title: "New todo", Form: newForm(t, nil)})
		return
	}

	if err = h.store.Create(c.Request.Context(), t); err != nil {
		h.fail(c, err)
		return
	}

	if wantsJSON(c) {
		c.Header("Location", todoPath(t.ID))
		c.JSON(http.StatusCreated, t)
		return
	}
	redirect(c, http.StatusFound, todoPath(t.ID), "Todo was successfully created.")
}

func (h *todoHandler) update(c *gin.Context) {
	t, ok := h.load(c)
	if !ok {
		return
	}

	params, err := bindParams(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	params.Apply(t)
	if err = h.validator.Validate(t); err != nil {
		h.invalid(c, err, "edit.html", page{Title: "Editing todo", Form: editForm(t, nil)})
		return
	}

	if err = h.store.Update(c.Request.Context(), t); err != nil {
		if errors.Is(err, todo.ErrNotFound) {
			h.notFound(c, t.ID)
			return
		}
		h.fail(c, err)
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, t)
		return
	}
	redirect(c, http.StatusFound, todoPath(t.ID), "Todo was successfully updated.")
}

func (h *todoHandler) destroy(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, todo.ErrNotFound) {
			h.notFound(c, id)
			return
		}
		h.fail(c, err)
		return
	}

	if wantsJSON(c) {
		c.Status(http.StatusNoContent)
		return
	}
	redirect(c, http.StatusSeeOther, "/todos", "Todo was successfully destroyed.")
}

func (h *todoHandler) health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		h.logger.Warn().Err(err).Msg("Health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.GetShortVersion()})
}

func (h *todoHandler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.render404(c, fmt.Sprintf("Couldn't find Todo with 'id'=%s", c.Param("id")))
		return 0, false
	}
	return id, true
}

func (h *todoHandler) load(c *gin.Context) (*todo.Todo, bool) {
	id, ok := h.parseID(c)
	if !ok {
		return nil, false
	}

	t, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, todo.ErrNotFound) {
			h.notFound(c, id)
			return nil, false
		}
		h.fail(c, err)
		return nil, false
	}
	return t, true
}

// invalid re-renders the submitted form with the validation messages, or
// answers 422 with the error map for JSON clients.
func (h *todoHandler) invalid(c *gin.Context, err error, tmpl string, p page) {
	var ve todo.ValidationErrors
	if !errors.As(err, &ve) {
		h.fail(c, err)
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Errors: ve})
		return
	}

	p.Form.Errors = ve.FullMessages()
	c.HTML(http.StatusUnprocessableEntity, tmpl, p)
}

func (h *todoHandler) notFound(c *gin.Context, id int64) {
	h.render404(c, fmt.Sprintf("Couldn't find Todo with 'id'=%d", id))
}

func (h *todoHandler) render404(c *gin.Context, msg string) {
	if wantsJSON(c) {
		c.JSON(http.StatusNotFound, errorResponse{Error: msg})
		return
	}
	c.HTML(http.StatusNotFound, "not_found.html", page{Title: "Not found", Message: msg})
}

func (h *todoHandler) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func (h *todoHandler) fail(c *gin.Context, err error) {
	h.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Todo request failed")
	if wantsJSON(c) {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}
	c.String(http.StatusInternalServerError, "Internal Server Error")
}

func redirect(c *gin.Context, code int, path, notice string) {
	c.Redirect(code, path+"?notice="+url.QueryEscape(notice))
}

type jsonPayload struct {
	Todo *todo.Params `json:"todo"`
	todo.Params
}

// bindParams reads the todo attributes from a JSON body, either wrapped in
// a "todo" object or at the top level, or from todo[title] style form fields.
func bindParams(c *gin.Context) (todo.Params, error) {
	if c.ContentType() == gin.MIMEJSON {
		var payload jsonPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			return todo.Params{}, fmt.Errorf("invalid JSON body: %w", err)
		}
		if payload.Todo != nil {
			return *payload.Todo, nil
		}
		return payload.Params, nil
	}

	var params todo.Params
	if v, ok := c.GetPostForm("todo[title]"); ok {
		params.Title = &v
	}
	if v, ok := c.GetPostForm("todo[description]"); ok {
		params.Description = &v
	}
	return params, nil
}
