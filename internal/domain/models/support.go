package models

import "time"

// PerformanceMetrics summarises an agent's support track record.
type PerformanceMetrics struct {
	AvgResponseTime float64 `bson:"avg_response_time" json:"avg_response_time" validate:"gte=1,lte=60,decimals=2"`
	ResolutionRate  float64 `bson:"resolution_rate" json:"resolution_rate" validate:"gte=0.5,lte=1,decimals=2"`
	CustomerRating  float64 `bson:"customer_rating" json:"customer_rating" validate:"gte=1,lte=5,decimals=1"`
	TicketsHandled  int     `bson:"tickets_handled" json:"tickets_handled" validate:"gte=10,lte=500"`
}

// Agent is a support desk agent.
type Agent struct {
	ID                 string             `bson:"-" json:"_id" validate:"len=24,hexadecimal"`
	AgentID            string             `bson:"agent_id" json:"agent_id" validate:"pattern=agent_id"`
	Name               string             `bson:"name" json:"name" validate:"required"`
	Email              string             `bson:"email" json:"email" validate:"required,email,endswith=@tradingcompany.com"`
	Department         string             `bson:"department" json:"department" validate:"catalog=departments"`
	Status             string             `bson:"status" json:"status" validate:"catalog=agent_statuses"`
	Specializations    []string           `bson:"specializations" json:"specializations" validate:"min=1,max=3,unique,dive,catalog=categories"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at" validate:"required"`
	PerformanceMetrics PerformanceMetrics `bson:"performance_metrics" json:"performance_metrics"`
}

// DocumentID returns the 24-hex identifier stored as _id.
func (a Agent) DocumentID() string { return a.ID }

// UserAttachment is a file uploaded with a support request.
type UserAttachment struct {
	Filename    string    `bson:"filename" json:"filename" validate:"required"`
	ContentType string    `bson:"content_type" json:"content_type" validate:"required"`
	FileSize    int       `bson:"file_size" json:"file_size" validate:"gte=10,lte=5000"`
	UploadedAt  time.Time `bson:"uploaded_at" json:"uploaded_at" validate:"required"`
	URL         string    `bson:"url" json:"url" validate:"required,url"`
}

// Response is one agent reply on a support request.
type Response struct {
	ResponseID   string    `bson:"response_id" json:"response_id" validate:"len=24,hexadecimal"`
	AgentID      string    `bson:"agent_id" json:"agent_id" validate:"pattern=agent_id"`
	AgentName    string    `bson:"agent_name" json:"agent_name" validate:"required"`
	Message      string    `bson:"message" json:"message" validate:"catalog=response_messages"`
	ResponseType string    `bson:"response_type" json:"response_type" validate:"catalog=response_types"`
	Timestamp    time.Time `bson:"timestamp" json:"timestamp" validate:"required"`
}

// SlaMetrics holds response and resolution times in minutes.
type SlaMetrics struct {
	FirstResponseTime float64 `bson:"first_response_time" json:"first_response_time" validate:"gte=1,lte=120,decimals=2"`
	ResolutionTime    float64 `bson:"resolution_time" json:"resolution_time" validate:"gte=60,lte=4320,decimals=2"`
	EscalationCount   int     `bson:"escalation_count" json:"escalation_count" validate:"gte=0,lte=3"`
}

// SupportRequest is a customer ticket with its conversation and SLA data.
//
// ResolvedAt is nil for unresolved tickets and is persisted as null. When set
// it is never before UpdatedAt.
type SupportRequest struct {
	ID              string           `bson:"-" json:"_id" validate:"len=24,hexadecimal"`
	TicketID        string           `bson:"ticket_id" json:"ticket_id" validate:"pattern=ticket_id"`
	UserID          string           `bson:"user_id" json:"user_id" validate:"pattern=user_id"`
	Type            string           `bson:"type" json:"type" validate:"catalog=request_types"`
	Category        string           `bson:"category" json:"category" validate:"catalog=categories"`
	Priority        string           `bson:"priority" json:"priority" validate:"catalog=priorities"`
	Status          string           `bson:"status" json:"status" validate:"catalog=statuses"`
	Subject         string           `bson:"subject" json:"subject" validate:"required"`
	Description     string           `bson:"description" json:"description" validate:"required"`
	CreatedAt       time.Time        `bson:"created_at" json:"created_at" validate:"required"`
	UpdatedAt       time.Time        `bson:"updated_at" json:"updated_at" validate:"required"`
	ResolvedAt      *time.Time       `bson:"resolved_at" json:"resolved_at"`
	Tags            []string         `bson:"tags" json:"tags" validate:"min=1,max=3,unique,dive,catalog=categories"`
	EscalationLevel int              `bson:"escalation_level" json:"escalation_level" validate:"gte=0,lte=2"`
	UserAttachments []UserAttachment `bson:"user_attachments" json:"user_attachments" validate:"min=0,max=2,dive"`
	Responses       []Response       `bson:"responses" json:"responses" validate:"min=1,max=5,dive"`
	SlaMetrics      SlaMetrics       `bson:"sla_metrics" json:"sla_metrics"`
}

// DocumentID returns the 24-hex identifier stored as _id.
func (s SupportRequest) DocumentID() string { return s.ID }
