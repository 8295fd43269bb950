// Package contact pushes B2B inquiry drafts and submissions to the external
// CRM backend. Drafts are created on first save and updated in place as the
// visitor advances through the form steps.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"fabricpro.io/fabric-web/internal/config"
)

const defaultTimeout = 8 * time.Second

// Inquiry status values accepted by the CRM.
const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
)

// MaxStep is the highest form step the flattened payload can report.
const MaxStep = 3

// ErrMissingID is returned when an update is attempted without a draft id.
var ErrMissingID = errors.New("contact: missing inquiry id")

// ErrIncomplete wraps validation failures on final submission.
var ErrIncomplete = errors.New("contact: incomplete submission")

// Inquiry is the flattened quote-request payload sent to the CRM.
type Inquiry struct {
	CompanyName                string   `json:"companyName"`
	ContactPerson              string   `json:"contactPerson"`
	Email                      string   `json:"email"`
	PhoneNumber                string   `json:"phoneNumber"`
	BusinessType               string   `json:"businessType"`
	AnnualFabricVolume         string   `json:"annualFabricVolume"`
	PrimaryMarkets             string   `json:"primaryMarkets"`
	FabricTypesOfInterest      []string `json:"fabricTypesOfInterest"`
	SpecificationsRequirements string   `json:"specificationsRequirements"`
	Timeline                   string   `json:"timeline"`
	AdditionalMessage          string   `json:"additionalMessage"`
	Status                     string   `json:"status"`
	StepCompleted              int      `json:"stepCompleted"`
}

// Normalize trims free-text fields, coerces the status to a known value, and
// clamps the step counter to its valid range.
func (i *Inquiry) Normalize() {
	i.CompanyName = strings.TrimSpace(i.CompanyName)
	i.ContactPerson = strings.TrimSpace(i.ContactPerson)
	i.Email = strings.TrimSpace(i.Email)
	i.PhoneNumber = strings.TrimSpace(i.PhoneNumber)
	i.BusinessType = strings.TrimSpace(i.BusinessType)
	i.AnnualFabricVolume = strings.TrimSpace(i.AnnualFabricVolume)
	i.PrimaryMarkets = strings.TrimSpace(i.PrimaryMarkets)
	i.SpecificationsRequirements = strings.TrimSpace(i.SpecificationsRequirements)
	i.Timeline = strings.TrimSpace(i.Timeline)
	i.AdditionalMessage = strings.TrimSpace(i.AdditionalMessage)

	if i.FabricTypesOfInterest == nil {
		i.FabricTypesOfInterest = []string{}
	}
	if i.Status != StatusSubmitted {
		i.Status = StatusDraft
	}
	if i.StepCompleted < 0 {
		i.StepCompleted = 0
	}
	if i.StepCompleted > MaxStep {
		i.StepCompleted = MaxStep
	}
}

// Validate enforces the submission contract. Drafts save with whatever the
// visitor has entered so far; a final submission needs the identity fields.
func (i Inquiry) Validate() error {
	if i.Status != StatusSubmitted {
		return nil
	}
	var missing []string
	if i.CompanyName == "" {
		missing = append(missing, "companyName")
	}
	if i.ContactPerson == "" {
		missing = append(missing, "contactPerson")
	}
	if i.Email == "" || !strings.Contains(i.Email, "@") {
		missing = append(missing, "email")
	}
	if i.PhoneNumber == "" {
		missing = append(missing, "phoneNumber")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(missing, ", "))
	}
	return nil
}

// Saved reports the CRM's identifier for a stored inquiry.
type Saved struct {
	ID     string
	Status string
}

// Client issues inquiry create and update calls against the CRM endpoint.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// NewClient constructs a CRM client. When no endpoint is configured, saves
// fail and the caller reports the outage to the visitor.
func NewClient(cfg config.Config, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.ContactURL), "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		log:     log,
	}
}

// Create stores a new inquiry and returns its CRM identifier.
func (c *Client) Create(ctx context.Context, inq Inquiry) (Saved, error) {
	inq.Normalize()
	if err := inq.Validate(); err != nil {
		return Saved{}, err
	}
	return c.send(ctx, http.MethodPost, c.baseURL, inq)
}

// Update overwrites an existing draft, typically advancing its step counter
// or flipping it to submitted.
func (c *Client) Update(ctx context.Context, id string, inq Inquiry) (Saved, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Saved{}, ErrMissingID
	}
	inq.Normalize()
	if err := inq.Validate(); err != nil {
		return Saved{}, err
	}
	endpoint, err := url.JoinPath(c.baseURL, id)
	if err != nil {
		return Saved{}, err
	}
	saved, err := c.send(ctx, http.MethodPut, endpoint, inq)
	if err != nil {
		return Saved{}, err
	}
	if saved.ID == "" {
		saved.ID = id
	}
	return saved, nil
}

func (c *Client) send(ctx context.Context, method, endpoint string, inq Inquiry) (Saved, error) {
	if c == nil || c.baseURL == "" {
		return Saved{}, errors.New("contact: no CRM endpoint configured")
	}
	payload, err := json.Marshal(inq)
	if err != nil {
		return Saved{}, err
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
	if err != nil {
		return Saved{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Saved{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return Saved{}, fmt.Errorf("contact: save status %d: %s", resp.StatusCode, drainError(resp.Body))
	}

	var body savedPayload
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Saved{}, err
	}
	return body.toSaved(inq.Status), nil
}

func drainError(r io.Reader) string {
	if r == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}

// savedPayload tolerates both the enveloped and the flat id shapes the CRM
// has been seen to answer with.
type savedPayload struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	MongoID string `json:"_id"`
	Data    struct {
		ID      string `json:"id"`
		MongoID string `json:"_id"`
		Status  string `json:"status"`
	} `json:"data"`
	Status string `json:"status"`
}

func (p savedPayload) toSaved(fallbackStatus string) Saved {
	id := firstNonEmpty(p.Data.MongoID, p.Data.ID, p.MongoID, p.ID)
	status := firstNonEmpty(p.Data.Status, p.Status, fallbackStatus)
	return Saved{ID: id, Status: status}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
