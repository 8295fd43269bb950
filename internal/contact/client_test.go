package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fabricpro.io/fabric-web/internal/config"
)

func TestInquiryNormalize(t *testing.T) {
	inq := Inquiry{
		CompanyName:   "  Acme Garments  ",
		Status:        "something-else",
		StepCompleted: 9,
	}
	inq.Normalize()
	if inq.CompanyName != "Acme Garments" {
		t.Errorf("companyName = %q", inq.CompanyName)
	}
	if inq.Status != StatusDraft {
		t.Errorf("status = %q, want draft", inq.Status)
	}
	if inq.StepCompleted != MaxStep {
		t.Errorf("stepCompleted = %d, want %d", inq.StepCompleted, MaxStep)
	}
	if inq.FabricTypesOfInterest == nil {
		t.Error("fabricTypesOfInterest should marshal as [], not null")
	}

	inq = Inquiry{Status: StatusSubmitted, StepCompleted: -2}
	inq.Normalize()
	if inq.Status != StatusSubmitted {
		t.Errorf("submitted status coerced to %q", inq.Status)
	}
	if inq.StepCompleted != 0 {
		t.Errorf("stepCompleted = %d, want 0", inq.StepCompleted)
	}
}

func TestInquiryValidate(t *testing.T) {
	draft := Inquiry{Status: StatusDraft}
	if err := draft.Validate(); err != nil {
		t.Errorf("draft should validate empty: %v", err)
	}

	sub := Inquiry{Status: StatusSubmitted}
	if err := sub.Validate(); err == nil {
		t.Error("empty submission should fail")
	}

	sub = Inquiry{
		Status:        StatusSubmitted,
		CompanyName:   "Acme Garments",
		ContactPerson: "J. Shah",
		Email:         "j.shah@acme.example",
		PhoneNumber:   "+911234567890",
	}
	if err := sub.Validate(); err != nil {
		t.Errorf("complete submission should pass: %v", err)
	}

	sub.Email = "not-an-email"
	if err := sub.Validate(); err == nil {
		t.Error("malformed email should fail submission")
	}
}

func TestCreateAndUpdate(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody Inquiry
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatal(err)
		}
		w.Write([]byte(`{"success":true,"data":{"_id":"inq-42","status":"draft"}}`))
	}))
	defer srv.Close()

	client := NewClient(config.Config{ContactURL: srv.URL}, nil)

	saved, err := client.Create(context.Background(), Inquiry{CompanyName: "Acme"})
	if err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodPost || gotPath != "/" {
		t.Errorf("create = %s %s", gotMethod, gotPath)
	}
	if saved.ID != "inq-42" {
		t.Errorf("saved id = %q", saved.ID)
	}
	if gotBody.Status != StatusDraft {
		t.Errorf("body status = %q, want draft", gotBody.Status)
	}

	saved, err = client.Update(context.Background(), "inq-42", Inquiry{CompanyName: "Acme", StepCompleted: 2})
	if err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodPut || gotPath != "/inq-42" {
		t.Errorf("update = %s %s", gotMethod, gotPath)
	}
	if saved.ID != "inq-42" {
		t.Errorf("saved id = %q", saved.ID)
	}
}

func TestUpdateRequiresID(t *testing.T) {
	client := NewClient(config.Config{ContactURL: "http://crm.local"}, nil)
	if _, err := client.Update(context.Background(), "  ", Inquiry{}); err != ErrMissingID {
		t.Errorf("err = %v, want ErrMissingID", err)
	}
}

func TestSaveErrorPaths(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "crm down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(config.Config{ContactURL: srv.URL}, nil)
	if _, err := client.Create(context.Background(), Inquiry{}); err == nil {
		t.Error("503 should surface as error")
	}

	client = NewClient(config.Config{}, nil)
	if _, err := client.Create(context.Background(), Inquiry{}); err == nil {
		t.Error("unconfigured endpoint should error")
	}
}
