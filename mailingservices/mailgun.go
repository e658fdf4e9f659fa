package mailingservices

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Mohfazam/CIVICOS/config"
	"github.com/Mohfazam/CIVICOS/models"
	"github.com/mailgun/mailgun-go/v4"
)

// Mailgun sends transactional mail. It satisfies services.IssueNotifier.
type Mailgun struct {
	Client *mailgun.MailgunImpl
	Config *config.Config
}

func (m *Mailgun) Init(conf *config.Config) {
	m.Config = conf
	m.Client = mailgun.NewMailgun(conf.MgDomain, conf.MailgunApiKey)
}

// IssueAssigned mails the MLA whose constituency the new issue was filed
// under. Delivery is best-effort: failures are logged, never returned.
func (m *Mailgun) IssueAssigned(issue *models.Issue, mla *models.MLA) {
	if m.Client == nil || mla.Email == "" {
		return
	}

	subject := fmt.Sprintf("New civic issue reported: %s", issue.Title)
	body := fmt.Sprintf(
		"Hello %s,\n\nA new issue has been reported in %s and assigned to you.\n\nTitle: %s\nCategory: %s\nSeverity: %s\nLocation: %s\n\nDescription:\n%s\n",
		mla.Name, mla.Constituency, issue.Title, issue.Category, issue.Severity, issue.Location, issue.Description,
	)

	message := m.Client.NewMessage(m.Config.MgEmailFrom, subject, body, mla.Email)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, _, err := m.Client.Send(ctx, message); err != nil {
			log.Printf("failed to notify MLA %s about issue %s: %v", mla.ID, issue.ID, err)
		}
	}()
}
