package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-wellness-backend/internal/assessment"
)

// Question is one localized DASS-21 item.
type Question struct {
	Index int              `json:"index" example:"0"`
	Text  string           `json:"text" example:"I found it hard to wind down"`
	Scale assessment.Scale `json:"scale" example:"S"`
}

// QuestionnaireResponse is the localized questionnaire.
type QuestionnaireResponse struct {
	Locale      string     `json:"locale" example:"en"`
	Title       string     `json:"title"`
	Instruction string     `json:"instruction"`
	Options     []string   `json:"options"`
	Questions   []Question `json:"questions"`
}

// SubmitAssessmentRequest carries one answer (0-3) per question, in order.
type SubmitAssessmentRequest struct {
	Answers []int `json:"answers"`
}

// Questionnaire godoc
// @ID          questionnaire
// @Summary     DASS-21 questionnaire in the request locale
// @Description Question scales always come from the scoring table, so a translation cannot change how answers are scored.
// @Tags        Assessment
// @Produce     json
// @Param       lang  query     string  false  "Locale override"  example(vi)
// @Success     200   {object}  handlers.QuestionnaireResponse
// @Router      /assessment/questions [get]
func (h *Handlers) Questionnaire(c *gin.Context) {
	l := h.localizer(c)
	var items []struct {
		Text string `json:"text"`
	}
	_ = l.Decode("tests.dass21.questions", &items)
	var options []string
	_ = l.Decode("tests.dass21.options", &options)

	resp := QuestionnaireResponse{
		Locale:      l.Locale(),
		Title:       l.T("tests.dass21.title"),
		Instruction: l.T("tests.dass21.instruction"),
		Options:     options,
		Questions:   make([]Question, assessment.QuestionCount),
	}
	for i := range resp.Questions {
		q := Question{Index: i, Scale: assessment.Items[i]}
		if i < len(items) {
			q.Text = items[i].Text
		}
		resp.Questions[i] = q
	}
	ok(c, http.StatusOK, resp)
}

// SubmitAssessment godoc
// @ID          submitAssessment
// @Summary     Score and store a DASS-21 submission
// @Tags        Assessment
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body  body      handlers.SubmitAssessmentRequest  true  "21 answers"
// @Success     201   {object}  services.Outcome
// @Failure     400   {object}  handlers.ErrorResponse  "Incomplete or invalid answers"
// @Router      /assessment/results [post]
func (h *Handlers) SubmitAssessment(c *gin.Context) {
	var req SubmitAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	out, err := h.Assessments.Submit(c.Request.Context(), actor(c), req.Answers)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, out)
}

// AssessmentHistory godoc
// @ID          assessmentHistory
// @Summary     Stored results, newest first
// @Tags        Assessment
// @Produce     json
// @Security    BearerAuth
// @Success     200  {array}  services.Outcome
// @Router      /assessment/results [get]
func (h *Handlers) AssessmentHistory(c *gin.Context) {
	ok(c, http.StatusOK, h.Assessments.History(c.Request.Context(), actor(c)))
}
