package users

import (
	"encoding/json"
	"testing"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2001-12-31")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.ISO() != "2001-12-31" {
		t.Errorf("ISO() = %q, expected %q", d.ISO(), "2001-12-31")
	}

	if _, err := ParseDate("31-12-2001"); err == nil {
		t.Error("expected error for non-ISO layout")
	}
}

func TestDateJSON(t *testing.T) {
	d, err := ParseDate("1990-05-17")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"1990-05-17"` {
		t.Errorf("Marshal = %s, expected quoted ISO string", data)
	}

	var decoded Date
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.ISO() != d.ISO() {
		t.Errorf("round-trip = %q, expected %q", decoded.ISO(), d.ISO())
	}

	if err := json.Unmarshal([]byte(`"mayo 17"`), &decoded); err == nil {
		t.Error("expected error for unparseable date")
	}
}
