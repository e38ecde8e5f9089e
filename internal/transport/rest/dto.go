package rest

import (
	"time"

	"github.com/heartmarshall/planner-backend/internal/domain"
	"github.com/heartmarshall/planner-backend/internal/service/activity"
	"github.com/heartmarshall/planner-backend/internal/service/importer"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type activityRequest struct {
	Title       *string                `json:"title"`
	Description *string                `json:"description"`
	Area        *string                `json:"area"`
	Priority    *domain.Priority       `json:"priority"`
	Status      *domain.ActivityStatus `json:"status"`
	Responsible *string                `json:"responsible"`
	Deadline    *string                `json:"deadline"`
	Location    *string                `json:"location"`
	How         *string                `json:"how"`
	Cost        *string                `json:"cost"`
}

func (r activityRequest) toCreateInput() activity.CreateActivityInput {
	in := activity.CreateActivityInput{
		Description: r.Description,
		Priority:    r.Priority,
		Status:      r.Status,
		Responsible: r.Responsible,
		Deadline:    r.Deadline,
		Location:    r.Location,
		How:         r.How,
		Cost:        r.Cost,
	}
	if r.Title != nil {
		in.Title = *r.Title
	}
	if r.Area != nil {
		in.Area = *r.Area
	}
	return in
}

func (r activityRequest) toUpdateInput() activity.UpdateActivityInput {
	return activity.UpdateActivityInput{
		Title:       r.Title,
		Description: r.Description,
		Area:        r.Area,
		Priority:    r.Priority,
		Status:      r.Status,
		Responsible: r.Responsible,
		Deadline:    r.Deadline,
		Location:    r.Location,
		How:         r.How,
		Cost:        r.Cost,
	}
}

type preferencesRequest struct {
	ActivityAssigned    *bool   `json:"activityAssigned"`
	DeadlineApproaching *bool   `json:"deadlineApproaching"`
	StatusChanged       *bool   `json:"statusChanged"`
	ActivityDeleted     *bool   `json:"activityDeleted"`
	DailyDigest         *bool   `json:"dailyDigest"`
	WeeklyReport        *bool   `json:"weeklyReport"`
	QuietHoursStart     *string `json:"quietHoursStart"`
	QuietHoursEnd       *string `json:"quietHoursEnd"`
	ClearQuietHours     bool    `json:"clearQuietHours"`
}

func (r preferencesRequest) toPatch() domain.PreferencesPatch {
	return domain.PreferencesPatch{
		ActivityAssigned:    r.ActivityAssigned,
		DeadlineApproaching: r.DeadlineApproaching,
		StatusChanged:       r.StatusChanged,
		ActivityDeleted:     r.ActivityDeleted,
		DailyDigest:         r.DailyDigest,
		WeeklyReport:        r.WeeklyReport,
		QuietHoursStart:     r.QuietHoursStart,
		QuietHoursEnd:       r.QuietHoursEnd,
		ClearQuietHours:     r.ClearQuietHours,
	}
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

type activityResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	Area          string     `json:"area"`
	Priority      int        `json:"priority"`
	PriorityLabel string     `json:"priorityLabel"`
	Status        string     `json:"status"`
	StatusLabel   string     `json:"statusLabel"`
	Responsible   *string    `json:"responsible"`
	Deadline      *string    `json:"deadline"`
	Location      *string    `json:"location"`
	How           *string    `json:"how"`
	Cost          *string    `json:"cost"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	DeletedAt     *time.Time `json:"deletedAt,omitempty"`
}

func toActivityResponse(a *domain.Activity) activityResponse {
	return activityResponse{
		ID:            a.ID.String(),
		UserID:        a.UserID.String(),
		Title:         a.Title,
		Description:   a.Description,
		Area:          a.Area,
		Priority:      int(a.Priority),
		PriorityLabel: a.Priority.Label(),
		Status:        a.Status.String(),
		StatusLabel:   a.Status.Label(),
		Responsible:   a.Responsible,
		Deadline:      a.Deadline,
		Location:      a.Location,
		How:           a.How,
		Cost:          a.Cost,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
		DeletedAt:     a.DeletedAt,
	}
}

func toActivityList(list []domain.Activity) []activityResponse {
	out := make([]activityResponse, len(list))
	for i := range list {
		out[i] = toActivityResponse(&list[i])
	}
	return out
}

// uploadRow mirrors activityRequest so parsed rows can be posted back to
// the bulk endpoint unchanged.
type uploadRow struct {
	Title       string                `json:"title"`
	Description *string               `json:"description"`
	Area        string                `json:"area"`
	Priority    domain.Priority       `json:"priority"`
	Status      domain.ActivityStatus `json:"status"`
	Responsible *string               `json:"responsible"`
	Deadline    *string               `json:"deadline"`
	Location    *string               `json:"location"`
	How         *string               `json:"how"`
	Cost        *string               `json:"cost"`
}

type uploadRowError struct {
	Line    int    `json:"line"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message"`
}

type uploadResponse struct {
	Rows   []uploadRow      `json:"rows"`
	Errors []uploadRowError `json:"errors"`
	Count  int              `json:"count"`
}

func toUploadResponse(res *importer.UploadResult) uploadResponse {
	out := uploadResponse{
		Rows:   make([]uploadRow, len(res.Rows)),
		Errors: make([]uploadRowError, len(res.Errors)),
		Count:  len(res.Rows),
	}
	for i, in := range res.Rows {
		out.Rows[i] = uploadRow{
			Title:       in.Title,
			Description: in.Description,
			Area:        in.Area,
			Priority:    *in.Priority,
			Status:      *in.Status,
			Responsible: in.Responsible,
			Deadline:    in.Deadline,
			Location:    in.Location,
			How:         in.How,
			Cost:        in.Cost,
		}
	}
	for i, e := range res.Errors {
		out.Errors[i] = uploadRowError{Line: e.Line, Title: e.Title, Message: e.Message}
	}
	return out
}

type bulkFailureResponse struct {
	Index   int    `json:"index"`
	Title   string `json:"title"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type bulkResponse struct {
	Created  []activityResponse    `json:"created"`
	Failures []bulkFailureResponse `json:"failures"`
}

func toBulkResponse(res *activity.BulkResult) bulkResponse {
	out := bulkResponse{
		Created:  make([]activityResponse, len(res.Created)),
		Failures: make([]bulkFailureResponse, len(res.Failures)),
	}
	for i, a := range res.Created {
		out.Created[i] = toActivityResponse(a)
	}
	for i, f := range res.Failures {
		out.Failures[i] = bulkFailureResponse{Index: f.Index, Title: f.Title, Kind: f.Kind, Message: f.Message}
	}
	return out
}

type commentResponse struct {
	ID          string    `json:"id"`
	ActivityID  string    `json:"activityId"`
	UserID      string    `json:"userId"`
	Content     string    `json:"content"`
	AuthorName  string    `json:"authorName"`
	AuthorEmail string    `json:"authorEmail"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:          c.ID.String(),
		ActivityID:  c.ActivityID.String(),
		UserID:      c.UserID.String(),
		Content:     c.Content,
		AuthorName:  c.AuthorName,
		AuthorEmail: c.AuthorEmail,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type preferencesResponse struct {
	ActivityAssigned    bool      `json:"activityAssigned"`
	DeadlineApproaching bool      `json:"deadlineApproaching"`
	StatusChanged       bool      `json:"statusChanged"`
	ActivityDeleted     bool      `json:"activityDeleted"`
	DailyDigest         bool      `json:"dailyDigest"`
	WeeklyReport        bool      `json:"weeklyReport"`
	QuietHoursStart     *string   `json:"quietHoursStart"`
	QuietHoursEnd       *string   `json:"quietHoursEnd"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func toPreferencesResponse(p *domain.NotificationPreferences) preferencesResponse {
	return preferencesResponse{
		ActivityAssigned:    p.ActivityAssigned,
		DeadlineApproaching: p.DeadlineApproaching,
		StatusChanged:       p.StatusChanged,
		ActivityDeleted:     p.ActivityDeleted,
		DailyDigest:         p.DailyDigest,
		WeeklyReport:        p.WeeklyReport,
		QuietHoursStart:     p.QuietHoursStart,
		QuietHoursEnd:       p.QuietHoursEnd,
		UpdatedAt:           p.UpdatedAt,
	}
}

type emailLogResponse struct {
	ID         string    `json:"id"`
	EmailType  string    `json:"emailType"`
	ActivityID *string   `json:"activityId"`
	SentTo     string    `json:"sentTo"`
	Subject    string    `json:"subject"`
	Status     string    `json:"status"`
	Error      *string   `json:"error"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toEmailLogResponse(l domain.EmailLog) emailLogResponse {
	out := emailLogResponse{
		ID:        l.ID.String(),
		EmailType: string(l.EmailType),
		SentTo:    l.SentTo,
		Subject:   l.Subject,
		Status:    string(l.Status),
		Error:     l.Error,
		CreatedAt: l.CreatedAt,
	}
	if l.ActivityID != nil {
		id := l.ActivityID.String()
		out.ActivityID = &id
	}
	return out
}

type auditResponse struct {
	ID         string         `json:"id"`
	UserID     string         `json:"userId"`
	UserEmail  string         `json:"userEmail"`
	EntityType string         `json:"entityType"`
	EntityID   *string        `json:"entityId"`
	Action     string         `json:"action"`
	Changes    map[string]any `json:"changes"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func toAuditResponse(a domain.AuditRecord) auditResponse {
	out := auditResponse{
		ID:         a.ID.String(),
		UserID:     a.UserID.String(),
		UserEmail:  a.UserEmail,
		EntityType: string(a.EntityType),
		Action:     a.Action.String(),
		Changes:    a.Changes,
		CreatedAt:  a.CreatedAt,
	}
	if a.EntityID != nil {
		id := a.EntityID.String()
		out.EntityID = &id
	}
	return out
}

type statsResponse struct {
	Total          int                `json:"total"`
	Pending        int                `json:"pending"`
	InProgress     int                `json:"inProgress"`
	Completed      int                `json:"completed"`
	HighPriority   int                `json:"highPriority"`
	MediumPriority int                `json:"mediumPriority"`
	LowPriority    int                `json:"lowPriority"`
	ByArea         map[string]int     `json:"byArea"`
	CompletionRate float64            `json:"completionRate"`
	Recent         []activityResponse `json:"recent"`
}

func toStatsResponse(s *domain.ActivityStats) statsResponse {
	byArea := s.ByArea
	if byArea == nil {
		byArea = map[string]int{}
	}
	return statsResponse{
		Total:          s.Total,
		Pending:        s.ByStatus[domain.ActivityStatusPending],
		InProgress:     s.ByStatus[domain.ActivityStatusInProgress],
		Completed:      s.ByStatus[domain.ActivityStatusCompleted],
		HighPriority:   s.ByPriority[domain.PriorityHigh],
		MediumPriority: s.ByPriority[domain.PriorityMedium],
		LowPriority:    s.ByPriority[domain.PriorityLow],
		ByArea:         byArea,
		CompletionRate: s.CompletionRate,
		Recent:         toActivityList(s.Recent),
	}
}
