package manifest

import "testing"

func TestValidateObjectRoot(t *testing.T) {
	result, err := Validate([]byte(`{"project_name": "x", "nested": {"a": 1}, "list": [1, 2]}`))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("Validate() invalid, issues: %v", result.Issues)
	}
}

func TestValidateEmptyObject(t *testing.T) {
	result, err := Validate([]byte(`{}`))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("empty object should be valid, issues: %v", result.Issues)
	}
}

func TestValidateNonObjectRoot(t *testing.T) {
	result, err := Validate([]byte(`[1, 2, 3]`))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Error("array root should be invalid")
	}
	if len(result.Issues) == 0 {
		t.Error("expected at least one issue")
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	if _, err := Validate([]byte(`{`)); err == nil {
		t.Error("malformed JSON should return an error")
	}
}
