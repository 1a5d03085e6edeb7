package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	"simplehr.com/simplehr/core/models"
	"simplehr.com/simplehr/hiring"
	"simplehr.com/simplehr/infrastructure/filesystem"
	"simplehr.com/simplehr/utils"
	"simplehr.com/simplehr/web/common"
)

type candidateForm struct {
	FullName string `form:"full_name" binding:"required"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
	Position string `form:"position"`
	Source   string `form:"source"`
	Notes    string `form:"notes"`
}

type stageForm struct {
	Stage string `form:"stage"`
}

func (h *Handler) Pipeline(c *gin.Context) {
	buckets, err := hiring.ListByStage(h.db(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	common.Render(c, http.StatusOK, "hiring.tmpl", gin.H{
		"Title":       "Hiring",
		"Buckets":     buckets,
		"Transitions": hiring.Transitions(),
	})
}

func (h *Handler) NewCandidatePage(c *gin.Context) {
	common.Render(c, http.StatusOK, "candidate_new.tmpl", gin.H{
		"Title": "Add candidate",
		"Form":  candidateForm{},
	})
}

func (h *Handler) CreateCandidate(c *gin.Context) {
	var form candidateForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderCandidateForm(c, form, common.FormatBindingError(err))
		return
	}

	candidate := models.Candidate{
		FullName: form.FullName,
		Email:    utils.NilIfEmpty(form.Email),
		Phone:    utils.NilIfEmpty(form.Phone),
		Position: utils.NilIfEmpty(form.Position),
		Source:   utils.NilIfEmpty(form.Source),
		Notes:    utils.NilIfEmpty(form.Notes),
	}
	err := hiring.Create(h.db(c), &candidate)
	if errors.Is(err, hiring.ErrInvalidName) {
		h.renderCandidateForm(c, form, err.Error())
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	redirect(c, "/hiring")
}

func (h *Handler) renderCandidateForm(c *gin.Context, form candidateForm, message string) {
	common.Render(c, http.StatusBadRequest, "candidate_new.tmpl", gin.H{
		"Title": "Add candidate",
		"Form":  form,
		"Error": message,
	})
}

// candidate loads the candidate named by :id, redirecting to the pipeline
// when there is none.
func (h *Handler) candidate(c *gin.Context) (*models.Candidate, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		redirect(c, "/hiring")
		return nil, false
	}
	candidate, err := hiring.Get(h.db(c), id)
	if errors.Is(err, hiring.ErrCandidateNotFound) {
		redirect(c, "/hiring")
		return nil, false
	}
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return candidate, true
}

func (h *Handler) ViewCandidate(c *gin.Context) {
	candidate, ok := h.candidate(c)
	if !ok {
		return
	}
	h.renderCandidate(c, http.StatusOK, candidate, "")
}

func (h *Handler) renderCandidate(c *gin.Context, status int, candidate *models.Candidate, message string) {
	common.Render(c, status, "candidate.tmpl", gin.H{
		"Title":      candidate.FullName,
		"Candidate":  candidate,
		"NextStages": hiring.Stage(candidate.Stage).Next(),
		"Error":      message,
	})
}

// MoveCandidate applies a stage change. Unknown stages and moves the
// pipeline does not allow are ignored.
func (h *Handler) MoveCandidate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		redirect(c, "/hiring")
		return
	}
	detail := fmt.Sprintf("/hiring/%d", id)

	var form stageForm
	_ = c.ShouldBind(&form)
	requested, known := hiring.ParseStage(form.Stage)
	if !known {
		redirect(c, detail)
		return
	}

	moved, err := hiring.RequestTransition(h.db(c), id, requested)
	if errors.Is(err, hiring.ErrCandidateNotFound) {
		redirect(c, detail)
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	if moved && requested == hiring.StageHired {
		if candidate, err := hiring.Get(h.db(c), id); err == nil {
			h.notify(fmt.Sprintf("%s has been hired%s", candidate.FullName, positionSuffix(candidate)))
		}
	}
	redirect(c, detail)
}

func positionSuffix(c *models.Candidate) string {
	if c.Position == nil || *c.Position == "" {
		return ""
	}
	return " as " + *c.Position
}

func (h *Handler) UploadResume(c *gin.Context) {
	candidate, ok := h.candidate(c)
	if !ok {
		return
	}

	file, err := c.FormFile("resume")
	if err != nil {
		h.renderCandidate(c, http.StatusBadRequest, candidate, "Choose a resume file to upload")
		return
	}
	key, contentType, err := filesystem.ResumeKey(file.Filename)
	if errors.Is(err, filesystem.ErrUnsupportedFile) {
		h.renderCandidate(c, http.StatusBadRequest, candidate, "Resumes must be PDF, Word or text files")
		return
	}

	src, err := file.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	defer src.Close()

	if err := h.Resumes.Save(c.Request.Context(), key, contentType, src); err != nil {
		h.fail(c, err)
		return
	}
	if err := hiring.AttachResume(h.db(c), candidate.ID, key); err != nil {
		// nothing references the object now
		if derr := h.Resumes.Delete(c.Request.Context(), key); derr != nil {
			log.Printf("[ERROR] failed to remove unattached resume %s: %v", key, derr)
		}
		h.fail(c, err)
		return
	}
	redirect(c, fmt.Sprintf("/hiring/%d", candidate.ID))
}

func (h *Handler) DownloadResume(c *gin.Context) {
	candidate, ok := h.candidate(c)
	if !ok {
		return
	}
	if candidate.ResumeURL == nil || *candidate.ResumeURL == "" {
		redirect(c, fmt.Sprintf("/hiring/%d", candidate.ID))
		return
	}

	key := *candidate.ResumeURL
	c.Header("Content-Type", filesystem.ContentType(key))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="resume-%d%s"`, candidate.ID, path.Ext(key)))
	if err := h.Resumes.Read(c.Request.Context(), key, c.Writer); err != nil {
		if c.Writer.Written() {
			log.Printf("[ERROR] resume %s: %v", key, err)
			return
		}
		c.Header("Content-Disposition", "")
		h.fail(c, err)
	}
}
