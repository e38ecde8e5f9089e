package notification

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/heartmarshall/planner-backend/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Subjects are fixed per event; activity events append the title.
const (
	subjectAssigned     = "Nova Atividade Atribuída: "
	subjectStatusChange = "Status Atualizado: "
	subjectDeleted      = "Atividade Deletada: "
	subjectDeadline     = "Prazo Próximo: "
	subjectDigest       = "Resumo Diário de Atividades"
	subjectReport       = "Relatório Semanal de Atividades"
	subjectTest         = "Email de Teste - Sistema 5W2H"
)

// Rendered is a composed email without a recipient.
type Rendered struct {
	Subject string
	HTML    string
}

// AreaCount is one row of the per-area breakdown in a report.
type AreaCount struct {
	Area  string
	Count int
}

// Summary feeds the digest and report templates.
type Summary struct {
	Pending        int
	InProgress     int
	Completed      int
	CompletionRate float64
	HighPriority   []activityView
	Areas          []AreaCount
}

type activityView struct {
	Title       string
	Description string
	Area        string
	Priority    string
	Deadline    string
	Location    string
}

func viewOf(a domain.Activity) activityView {
	return activityView{
		Title:       a.Title,
		Description: deref(a.Description),
		Area:        a.Area,
		Priority:    a.Priority.Label(),
		Deadline:    deref(a.Deadline),
		Location:    deref(a.Location),
	}
}

type pageData struct {
	Subject        string
	UserName       string
	Actor          string
	Activity       activityView
	OldStatus      string
	NewStatus      string
	Summary        Summary
	URL            string
	PreferencesURL string
}

// Composer renders notification emails from embedded HTML templates.
type Composer struct {
	appURL string
}

// NewComposer creates a Composer whose links point at appURL.
func NewComposer(appURL string) *Composer {
	return &Composer{appURL: strings.TrimRight(appURL, "/")}
}

func (c *Composer) page(subject, userName string) pageData {
	return pageData{
		Subject:        subject,
		UserName:       userName,
		URL:            c.appURL + "/dashboard/activities",
		PreferencesURL: c.appURL + "/dashboard/settings/notifications",
	}
}

// ComposeEvent renders an activity event. Digest, report and test events
// have their own methods.
func (c *Composer) ComposeEvent(ev domain.NotificationEvent) (Rendered, error) {
	var subject string
	switch ev.Type {
	case domain.EventAssigned:
		subject = subjectAssigned + ev.Activity.Title
	case domain.EventStatusChange:
		subject = subjectStatusChange + ev.Activity.Title
	case domain.EventDeleted:
		subject = subjectDeleted + ev.Activity.Title
	case domain.EventDeadline:
		subject = subjectDeadline + ev.Activity.Title
	default:
		return Rendered{}, fmt.Errorf("compose: unsupported event %q", ev.Type)
	}

	data := c.page(subject, ev.UserName)
	data.Actor = ev.UserName
	data.Activity = viewOf(ev.Activity)
	data.OldStatus = ev.OldStatus.Label()
	data.NewStatus = ev.NewStatus.Label()

	return render(ev.Type.String(), data)
}

// ComposeDigest renders the daily digest.
func (c *Composer) ComposeDigest(userName string, s Summary) (Rendered, error) {
	data := c.page(subjectDigest, userName)
	data.Summary = s
	return render(domain.EventDigest.String(), data)
}

// ComposeReport renders the weekly report.
func (c *Composer) ComposeReport(userName string, s Summary) (Rendered, error) {
	data := c.page(subjectReport, userName)
	data.Summary = s
	return render(domain.EventReport.String(), data)
}

// ComposeTest renders the delivery check message.
func (c *Composer) ComposeTest(userName string) (Rendered, error) {
	return render(domain.EventTest.String(), c.page(subjectTest, userName))
}

func render(name string, data pageData) (Rendered, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return Rendered{}, fmt.Errorf("render %s: %w", name, err)
	}
	return Rendered{Subject: data.Subject, HTML: buf.String()}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
