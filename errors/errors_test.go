package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeNotFound, "not found", http.StatusNotFound)
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "not found" {
		t.Errorf("expected message 'not found', got %q", err.Message)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, err.HTTPStatus)
	}
	if err.Retryable {
		t.Error("NOT_FOUND should not be retryable")
	}
}

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeTimeout, "timed out", http.StatusGatewayTimeout)
	if !err.Retryable {
		t.Error("TIMEOUT should be retryable")
	}
}

func TestAppError_MissingSettings_Success(t *testing.T) {
	err := MissingSettings("parse")
	if err.Code != ErrCodeConfigMissing {
		t.Errorf("expected CONFIG_MISSING, got %s", err.Code)
	}
	if err.Details["backend"] != "parse" {
		t.Errorf("expected backend=parse, got %v", err.Details["backend"])
	}
	if err.Retryable {
		t.Error("MissingSettings should not be retryable")
	}
}

func TestAppError_NotFound_Success(t *testing.T) {
	err := NotFound("GameScore", "abc")
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", err.Code)
	}
	if err.Details["class"] != "GameScore" {
		t.Errorf("expected class=GameScore, got %v", err.Details["class"])
	}
	if err.Details["objectId"] != "abc" {
		t.Errorf("expected objectId=abc, got %v", err.Details["objectId"])
	}
}

func TestAppError_NotFound_EmptyID(t *testing.T) {
	err := NotFound("GameScore", "")
	if _, ok := err.Details["objectId"]; ok {
		t.Error("expected no 'objectId' key in details when id is empty")
	}
}

func TestAppError_InvalidQuery_Cause(t *testing.T) {
	cause := fmt.Errorf("unsupported type: chan int")
	err := InvalidQuery(cause)
	if err.Code != ErrCodeInvalidQuery {
		t.Errorf("expected INVALID_QUERY, got %s", err.Code)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to match the cause")
	}
	if !strings.Contains(err.Error(), "cause:") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
}

func TestAppError_WithDetail(t *testing.T) {
	err := Unauthorized("").WithDetail("header", "X-Parse-REST-API-Key")
	if err.Details["header"] != "X-Parse-REST-API-Key" {
		t.Errorf("unexpected details: %v", err.Details)
	}
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("fetch users: %w", Timeout(nil))
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed")
	}
	if appErr.Code != ErrCodeTimeout {
		t.Errorf("expected TIMEOUT, got %s", appErr.Code)
	}

	if _, ok := AsAppError(fmt.Errorf("plain")); ok {
		t.Error("expected AsAppError to fail on a plain error")
	}
}

func TestFromParseCode_Mapped(t *testing.T) {
	cases := []struct {
		parseCode int
		want      ErrorCode
		retryable bool
	}{
		{ParseObjectNotFound, ErrCodeNotFound, false},
		{ParseInvalidQuery, ErrCodeInvalidQuery, false},
		{ParseOperationForbidden, ErrCodeForbidden, false},
		{ParseTimeout, ErrCodeTimeout, true},
		{ParseRequestLimitExceeded, ErrCodeRateLimited, true},
		{ParseInvalidSessionToken, ErrCodeSessionExpired, false},
	}
	for _, tc := range cases {
		err := FromParseCode(tc.parseCode, "boom", http.StatusBadRequest)
		if err.Code != tc.want {
			t.Errorf("code %d: expected %s, got %s", tc.parseCode, tc.want, err.Code)
		}
		if err.Retryable != tc.retryable {
			t.Errorf("code %d: expected retryable=%v", tc.parseCode, tc.retryable)
		}
		if err.Details["parse_code"] != tc.parseCode {
			t.Errorf("code %d: expected parse_code detail, got %v", tc.parseCode, err.Details)
		}
	}
}

func TestFromParseCode_Unmapped(t *testing.T) {
	err := FromParseCode(999, "", http.StatusBadRequest)
	if err.Code != ErrCodeBackend {
		t.Errorf("expected BACKEND_ERROR, got %s", err.Code)
	}
	if !strings.Contains(err.Message, "999") {
		t.Errorf("expected default message to carry the code, got %q", err.Message)
	}
}
