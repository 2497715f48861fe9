package ingest

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"

	"taskflow.app/server/core/config"
)

// imapSource reads unseen messages over IMAP with implicit TLS. A connection
// is dialed per fetch; mail volume is low and reconnecting avoids
// session-state bookkeeping.
type imapSource struct {
	cfg config.IMAPConfig
}

// NewIMAPSource builds a MailSource over the configured IMAP endpoint.
func NewIMAPSource(cfg config.IMAPConfig) MailSource {
	return &imapSource{cfg: cfg}
}

func (s *imapSource) FetchUnseen(ctx context.Context) ([]MailMessage, error) {
	c, err := client.DialTLS(s.cfg.Addr, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", s.cfg.Addr, err)
	}
	defer c.Logout()

	if err := c.Login(s.cfg.Username, s.cfg.Password); err != nil {
		return nil, fmt.Errorf("imap login: %w", err)
	}

	if _, err := c.Select(s.cfg.Mailbox, false); err != nil {
		return nil, fmt.Errorf("selecting %s: %w", s.cfg.Mailbox, err)
	}

	criteria := imap.NewSearchCriteria()
	criteria.WithoutFlags = []string{imap.SeenFlag}
	seqNums, err := c.Search(criteria)
	if err != nil {
		return nil, fmt.Errorf("searching unseen: %w", err)
	}
	if len(seqNums) == 0 {
		return nil, nil
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(seqNums...)

	// Fetching the text section without peek marks the message seen.
	section := &imap.BodySectionName{BodyPartName: imap.BodyPartName{Specifier: imap.TextSpecifier}}
	items := []imap.FetchItem{imap.FetchEnvelope, section.FetchItem()}

	ch := make(chan *imap.Message, len(seqNums))
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqset, items, ch)
	}()

	var messages []MailMessage
	for msg := range ch {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if msg.Envelope == nil {
			continue
		}

		body := ""
		if literal := msg.GetBody(section); literal != nil {
			raw, err := io.ReadAll(literal)
			if err == nil {
				body = strings.TrimSpace(string(raw))
			}
		}

		from := ""
		if len(msg.Envelope.From) > 0 {
			from = msg.Envelope.From[0].Address()
		}

		messages = append(messages, MailMessage{
			MessageID: msg.Envelope.MessageId,
			InReplyTo: msg.Envelope.InReplyTo,
			Subject:   msg.Envelope.Subject,
			From:      from,
			Body:      body,
		})
	}

	if err := <-done; err != nil {
		return nil, fmt.Errorf("fetching messages: %w", err)
	}
	return messages, nil
}

func (s *imapSource) Close() error {
	return nil
}
