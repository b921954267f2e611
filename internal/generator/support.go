package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/tradeseed/internal/domain/models"
	"github.com/guttosm/tradeseed/internal/random"
)

const attachmentBaseURL = "https://storage.example.com/attachments"

// PerformanceMetrics returns count agent performance records.
func (g *Generator) PerformanceMetrics(count int) []models.PerformanceMetrics {
	return random.Times(count, func() models.PerformanceMetrics {
		return models.PerformanceMetrics{
			AvgResponseTime: g.num(1, 60),
			ResolutionRate:  g.rnd.Real(0.5, 1, 2),
			CustomerRating:  g.rnd.Real(1, 5, 1),
			TicketsHandled:  g.whole(10, 500),
		}
	})
}

// Agents returns count agents hired between 2020 and 2023. The email is
// derived from the generated name.
func (g *Generator) Agents(count int) []models.Agent {
	return random.Times(count, func() models.Agent {
		name := g.fullName()
		email := strings.ToLower(strings.Replace(name, " ", ".", 1)) + "@tradingcompany.com"

		return models.Agent{
			ID:                 g.rnd.ID(random.DefaultIDLength),
			AgentID:            g.agentID(),
			Name:               name,
			Email:              email,
			Department:         random.PickOne(g.rnd, models.Departments),
			Status:             random.PickOne(g.rnd, models.AgentStatuses),
			Specializations:    random.PickMany(g.rnd, models.Categories, g.rnd.IntRange(1, 3)),
			CreatedAt:          g.rnd.Instant(agentHiringStart, agentHiringEnd),
			PerformanceMetrics: single(g.PerformanceMetrics),
		}
	})
}

// Responses returns count agent replies.
func (g *Generator) Responses(count int) []models.Response {
	return random.Times(count, func() models.Response {
		return models.Response{
			ResponseID:   g.rnd.ID(random.DefaultIDLength),
			AgentID:      g.agentID(),
			AgentName:    g.fullName(),
			Message:      random.PickOne(g.rnd, models.ResponseMessages),
			ResponseType: random.PickOne(g.rnd, models.ResponseTypes),
			Timestamp:    g.sinceEpoch(),
		}
	})
}

// SlaMetrics returns count SLA records.
func (g *Generator) SlaMetrics(count int) []models.SlaMetrics {
	return random.Times(count, func() models.SlaMetrics {
		return models.SlaMetrics{
			FirstResponseTime: g.num(1, 120),
			ResolutionTime:    g.num(60, 4320),
			EscalationCount:   g.whole(0, 3),
		}
	})
}

// UserAttachments returns count attachments whose name and content type come
// from the same catalog row.
func (g *Generator) UserAttachments(count int) []models.UserAttachment {
	return random.Times(count, func() models.UserAttachment {
		kind := random.PickOne(g.rnd, models.AttachmentKinds)

		return models.UserAttachment{
			Filename:    kind.Filename,
			ContentType: kind.ContentType,
			FileSize:    g.whole(10, 5000),
			UploadedAt:  g.sinceEpoch(),
			URL:         fmt.Sprintf("%s/%s/%s", attachmentBaseURL, g.rnd.ID(random.DefaultIDLength), kind.Filename),
		}
	})
}

// SupportRequests returns count tickets. updated_at trails created_at by up to
// 47 hours; with probability 0.7 the ticket is resolved up to 23 hours after
// its last update, otherwise resolved_at stays nil.
func (g *Generator) SupportRequests(count int) []models.SupportRequest {
	return random.Times(count, func() models.SupportRequest {
		createdAt := g.sinceEpoch()
		updatedAt := createdAt.Add(time.Duration(g.rnd.IntN(48)) * time.Hour)

		var resolvedAt *time.Time
		if g.rnd.Chance(resolvedProbability) {
			at := updatedAt.Add(time.Duration(g.rnd.IntN(24)) * time.Hour)
			resolvedAt = &at
		}

		ticket := random.PickOne(g.rnd, models.Tickets)
		responses := g.rnd.IntRange(1, 5)
		attachments := g.rnd.IntRange(0, 2)

		return models.SupportRequest{
			ID:              g.rnd.ID(random.DefaultIDLength),
			TicketID:        fmt.Sprintf("TICK-%d", g.rnd.IntN(100000)),
			UserID:          g.userID(),
			Type:            random.PickOne(g.rnd, models.RequestTypes),
			Category:        random.PickOne(g.rnd, models.Categories),
			Priority:        random.PickOne(g.rnd, models.Priorities),
			Status:          random.PickOne(g.rnd, models.Statuses),
			Subject:         ticket.Subject,
			Description:     ticket.Description,
			CreatedAt:       createdAt,
			UpdatedAt:       updatedAt,
			ResolvedAt:      resolvedAt,
			Tags:            random.PickMany(g.rnd, models.Categories, g.rnd.IntRange(1, 3)),
			EscalationLevel: g.rnd.IntN(3),
			UserAttachments: g.UserAttachments(attachments),
			Responses:       g.Responses(responses),
			SlaMetrics:      single(g.SlaMetrics),
		}
	})
}
