package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestErrorResponse_Error(t *testing.T) {
	e := ErrorResponse{Message: "collection not found"}
	if e.Error() != "collection not found" {
		t.Fatalf("unexpected %q", e.Error())
	}

	e.ErrorDetails = `unknown collection "trades"`
	if e.Error() != `collection not found: unknown collection "trades"` {
		t.Fatalf("unexpected %q", e.Error())
	}
}

func TestNewErrorResponse(t *testing.T) {
	before := time.Now().UTC()
	e := NewErrorResponse("invalid position", errors.New("strconv.ParseInt: parsing \"x\": invalid syntax"))
	if e.Message != "invalid position" || !strings.Contains(e.ErrorDetails, "invalid syntax") {
		t.Fatalf("unexpected %+v", e)
	}
	if e.Timestamp.Before(before) || e.Timestamp.Location() != time.UTC {
		t.Fatalf("timestamp should be a current UTC instant, got %v", e.Timestamp)
	}
}

func TestNewErrorResponse_OmitsEmptyDetails(t *testing.T) {
	b, err := json.Marshal(NewErrorResponse("body must be a JSON object", nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "error_details") {
		t.Fatalf("error_details should be omitted: %s", b)
	}
}
