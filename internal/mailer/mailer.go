package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const resendEndpoint = "https://api.resend.com/emails"

// BookingSummary carries the booking fields the agency email shows.
// Dates are pre-formatted; TotalPrice is nil for date-less requests.
type BookingSummary struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	StartDate     string
	EndDate       string
	Message       string
	TotalPrice    *float64
}

// Event is one outbound agency notification.
type Event struct {
	To         string
	AgencyName string
	CarTitle   string
	ReplyTo    string
	Booking    BookingSummary
}

type Client struct {
	apiKey string
	from   string
	http   *http.Client
	log    *zap.Logger
}

func NewClient(apiKey, from string, log *zap.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		from:   from,
		http:   &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}
}

// SendAgencyBookingEmail delivers the "new booking request" summary via
// the Resend HTTP API. Without an API key or recipient the send is
// skipped, not failed: email is best-effort everywhere in this system.
func (c *Client) SendAgencyBookingEmail(ctx context.Context, ev Event) error {
	if c.apiKey == "" {
		c.log.Warn("email skipped: RESEND_API_KEY not set")
		return nil
	}
	if ev.To == "" {
		c.log.Warn("email skipped: missing recipient")
		return nil
	}

	payload := map[string]any{
		"from":    c.from,
		"to":      []string{ev.To},
		"subject": subject(ev),
		"text":    bookingText(ev),
	}
	if ev.ReplyTo != "" {
		payload["reply_to"] = ev.ReplyTo
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		return fmt.Errorf("mailer: resend returned %d: %s", res.StatusCode, detail)
	}

	return nil
}

func subject(ev Event) string {
	title := ev.CarTitle
	if title == "" {
		title = "Véhicule"
	}
	return "Nouvelle réservation — " + title
}

func bookingText(ev Event) string {
	b := ev.Booking

	agency := ev.AgencyName
	if agency == "" {
		agency = "Agence"
	}

	text := fmt.Sprintf(
		"Bonjour %s,\n\n"+
			"Vous avez une nouvelle demande de réservation sur Vilis.\n\n"+
			"Véhicule : %s\n"+
			"Client   : %s\n"+
			"Téléphone: %s\n"+
			"Email    : %s\n"+
			"Période  : %s → %s\n"+
			"Message  : %s\n",
		agency,
		ev.CarTitle,
		orDash(b.CustomerName),
		orDash(b.CustomerPhone),
		orDash(b.CustomerEmail),
		orDash(b.StartDate), orDash(b.EndDate),
		orDash(b.Message),
	)

	if b.TotalPrice != nil {
		text += fmt.Sprintf("Total estimé : %.0f MAD\n", *b.TotalPrice)
	}

	text += "\nConnectez-vous au tableau de bord pour traiter la demande.\n\n— Vilis"
	return text
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
