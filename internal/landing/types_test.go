package landing

import (
	"encoding/json"
	"testing"
)

func TestIDRefUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"plain string", `"abc123"`, "abc123"},
		{"padded string", `"  abc123  "`, "abc123"},
		{"object string id", `{"_id":"abc123"}`, "abc123"},
		{"object numeric id", `{"_id":42}`, "42"},
		{"object missing id", `{"other":"x"}`, ""},
		{"null", `null`, ""},
		{"empty string", `""`, ""},
		{"number", `7`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ref IDRef
			if err := json.Unmarshal([]byte(tc.raw), &ref); err != nil {
				t.Fatalf("unmarshal(%s): %v", tc.raw, err)
			}
			if got := ref.ID(); got != tc.want {
				t.Errorf("ID() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIDRefInsideRecord(t *testing.T) {
	raw := `{"slug":"premium-cotton","product":{"_id":"p1"},"location":"loc1"}`
	var rec SeoRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.Fatal(err)
	}
	if rec.Product.ID() != "p1" {
		t.Errorf("product id = %q, want p1", rec.Product.ID())
	}
	if rec.Location.ID() != "loc1" {
		t.Errorf("location id = %q, want loc1", rec.Location.ID())
	}
}

func TestIDRefMarshal(t *testing.T) {
	var ref IDRef
	if err := json.Unmarshal([]byte(`{"_id":"p1"}`), &ref); err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(ref)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"p1"` {
		t.Errorf("marshal = %s, want \"p1\"", b)
	}

	var zero IDRef
	b, err = json.Marshal(zero)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `""` {
		t.Errorf("zero marshal = %s, want \"\"", b)
	}
}

func TestIDRefIsZero(t *testing.T) {
	var ref IDRef
	if !ref.IsZero() {
		t.Error("fresh ref should be zero")
	}
	if err := json.Unmarshal([]byte(`"x"`), &ref); err != nil {
		t.Fatal(err)
	}
	if ref.IsZero() {
		t.Error("populated ref should not be zero")
	}
}
