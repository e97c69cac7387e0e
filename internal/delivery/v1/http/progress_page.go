package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/DRSN-tech/storefront-seeder/pkg/logger"
)

//go:embed templates/progress.html
var templatesFS embed.FS

var progressTemplate = template.Must(template.ParseFS(templatesFS, "templates/progress.html"))

// ProgressStage — заголовок, который показывается, когда шкала достигает Percent.
type ProgressStage struct {
	Percent int    `json:"percent"`
	Text    string `json:"text"`
}

// progressStages — этапы косметической шкалы прогресса. С реальным ходом импорта не связаны.
var progressStages = []ProgressStage{
	{Percent: 10, Text: "🚀 Hang tight, your demo store is on its way..."},
	{Percent: 20, Text: "🔧 Spinning up your store environment..."},
	{Percent: 30, Text: "📥 Importing demo content..."},
	{Percent: 70, Text: "🧹 Final cleanup and optimization..."},
	{Percent: 90, Text: "🎉 Ready! Launching your demo store..."},
}

const (
	progressTitle        = "⚙️ Initiating setup process..."
	progressStartPercent = 1
	progressStepPercent  = 10
	progressTick         = time.Second
	redirectDelay        = time.Second
	networkErrorMessage  = "Something went wrong! Please try again."
)

type progressPageData struct {
	Title               string
	Stages              []ProgressStage
	StartPercent        int
	StepPercent         int
	TickMillis          int64
	RedirectDelayMillis int64
	TriggerURL          string
	NetworkErrorMessage string
}

// ProgressHandler отдаёт страницу, которая запускает импорт и перенаправляет на витрину.
type ProgressHandler struct {
	triggerURL string
	logger     logger.Logger
}

func NewProgressHandler(triggerURL string, logger logger.Logger) *ProgressHandler {
	return &ProgressHandler{triggerURL: triggerURL, logger: logger}
}

func (h *ProgressHandler) page(w http.ResponseWriter, r *http.Request) {
	data := progressPageData{
		Title:               progressTitle,
		Stages:              progressStages,
		StartPercent:        progressStartPercent,
		StepPercent:         progressStepPercent,
		TickMillis:          progressTick.Milliseconds(),
		RedirectDelayMillis: redirectDelay.Milliseconds(),
		TriggerURL:          h.triggerURL,
		NetworkErrorMessage: networkErrorMessage,
	}

	var buf bytes.Buffer
	if err := progressTemplate.Execute(&buf, data); err != nil {
		h.logger.Errorf(err, "failed to render progress page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
