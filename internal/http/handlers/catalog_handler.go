// Catalog HTTP handlers: educational videos, nature sounds and the
// assistant's knowledge base. Reads of videos and sounds are public; every
// write and the knowledge listing are administrator-only.
package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// VideoRequest adds a resource video. URL accepts a bare 11-character id or
// any common YouTube link.
type VideoRequest struct {
	Title       string `json:"title" example:"Box breathing"`
	Description string `json:"description" example:"Four counts in, hold, out, hold."`
	URL         string `json:"url" example:"https://youtu.be/tEmt1Znux58"`
}

// SoundRequest adds a nature sound.
type SoundRequest struct {
	Name string `json:"name" example:"Rain on leaves"`
	URL  string `json:"url" example:"https://www.youtube.com/watch?v=q76bMs-NwRk"`
}

// KnowledgeRequest adds a knowledge document.
type KnowledgeRequest struct {
	Title   string `json:"title" example:"Crisis hotlines"`
	Content string `json:"content" example:"Call 111 for the national helpline."`
}

// maxMarkdownBytes bounds a knowledge import file.
const maxMarkdownBytes = 512 << 10

// ListVideos godoc
// @ID          listVideos
// @Summary     Resource videos, newest first
// @Tags        Catalog
// @Produce     json
// @Success     200  {array}  domain.ResourceVideo
// @Router      /resources/videos [get]
func (h *Handlers) ListVideos(c *gin.Context) {
	ok(c, http.StatusOK, h.Catalog.Videos(c.Request.Context()))
}

// AddVideo godoc
// @ID          addVideo
// @Summary     Add a resource video
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body  body      handlers.VideoRequest  true  "Video"
// @Success     201   {object}  domain.ResourceVideo
// @Failure     400   {object}  handlers.ErrorResponse  "Missing title or unrecognized link"
// @Failure     403   {object}  handlers.ErrorResponse
// @Router      /resources/videos [post]
func (h *Handlers) AddVideo(c *gin.Context) {
	var req VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	v, err := h.Catalog.AddVideo(c.Request.Context(), actor(c), req.Title, req.Description, req.URL)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, v)
}

// DeleteVideo godoc
// @ID          deleteVideo
// @Summary     Delete a resource video
// @Tags        Catalog
// @Security    BearerAuth
// @Param       id  path  string  true  "Video record ID"
// @Success     204
// @Failure     404  {object}  handlers.ErrorResponse
// @Router      /resources/videos/{id} [delete]
func (h *Handlers) DeleteVideo(c *gin.Context) {
	if err := h.Catalog.DeleteVideo(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		failErr(c, err)
		return
	}
	noContent(c)
}

// ListSounds godoc
// @ID          listSounds
// @Summary     Nature sounds, newest first
// @Tags        Catalog
// @Produce     json
// @Success     200  {array}  domain.NatureSound
// @Router      /resources/sounds [get]
func (h *Handlers) ListSounds(c *gin.Context) {
	ok(c, http.StatusOK, h.Catalog.Sounds(c.Request.Context()))
}

// AddSound godoc
// @ID          addSound
// @Summary     Add a nature sound
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body  body      handlers.SoundRequest  true  "Sound"
// @Success     201   {object}  domain.NatureSound
// @Failure     400   {object}  handlers.ErrorResponse
// @Router      /resources/sounds [post]
func (h *Handlers) AddSound(c *gin.Context) {
	var req SoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	s, err := h.Catalog.AddSound(c.Request.Context(), actor(c), req.Name, req.URL)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, s)
}

// DeleteSound godoc
// @ID          deleteSound
// @Summary     Delete a nature sound
// @Tags        Catalog
// @Security    BearerAuth
// @Param       id  path  string  true  "Sound record ID"
// @Success     204
// @Router      /resources/sounds/{id} [delete]
func (h *Handlers) DeleteSound(c *gin.Context) {
	if err := h.Catalog.DeleteSound(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		failErr(c, err)
		return
	}
	noContent(c)
}

// ListKnowledge godoc
// @ID          listKnowledge
// @Summary     Knowledge documents given to the assistant
// @Tags        Catalog
// @Produce     json
// @Security    BearerAuth
// @Success     200  {array}  domain.KnowledgeDocument
// @Router      /admin/knowledge [get]
func (h *Handlers) ListKnowledge(c *gin.Context) {
	ok(c, http.StatusOK, h.Catalog.Knowledge(c.Request.Context()))
}

// AddKnowledge godoc
// @ID          addKnowledge
// @Summary     Add a knowledge document
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body  body      handlers.KnowledgeRequest  true  "Document"
// @Success     201   {object}  domain.KnowledgeDocument
// @Router      /admin/knowledge [post]
func (h *Handlers) AddKnowledge(c *gin.Context) {
	var req KnowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	d, err := h.Catalog.AddKnowledge(c.Request.Context(), actor(c), req.Title, req.Content)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, d)
}

// ImportKnowledge godoc
// @ID          importKnowledge
// @Summary     Import a Markdown file as a knowledge document
// @Description Tables are flattened to readable rows. The title defaults to the file name.
// @Tags        Catalog
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       file   formData  file    true   "Markdown file"
// @Param       title  formData  string  false  "Document title"
// @Success     201    {object}  domain.KnowledgeDocument
// @Failure     400    {object}  handlers.ErrorResponse
// @Router      /admin/knowledge/import [post]
func (h *Handlers) ImportKnowledge(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil || fh.Size > maxMarkdownBytes {
		badRequest(c)
		return
	}
	f, err := fh.Open()
	if err != nil {
		badRequest(c)
		return
	}
	defer f.Close()
	src, err := io.ReadAll(io.LimitReader(f, maxMarkdownBytes))
	if err != nil {
		badRequest(c)
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(fh.Filename), filepath.Ext(fh.Filename))
	}
	d, err := h.Catalog.ImportKnowledgeMarkdown(c.Request.Context(), actor(c), title, src)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, d)
}

// DeleteKnowledge godoc
// @ID          deleteKnowledge
// @Summary     Delete a knowledge document
// @Tags        Catalog
// @Security    BearerAuth
// @Param       id  path  string  true  "Document ID"
// @Success     204
// @Router      /admin/knowledge/{id} [delete]
func (h *Handlers) DeleteKnowledge(c *gin.Context) {
	if err := h.Catalog.DeleteKnowledge(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		failErr(c, err)
		return
	}
	noContent(c)
}
