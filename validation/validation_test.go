package validation

import (
	"strings"
	"testing"

	"github.com/edgekit/iothub/errors"
)

type sample struct {
	HostName   string `json:"hostName" validate:"required"`
	APIVersion string `json:"apiVersion" validate:"required"`
	Mode       string `json:"mode" validate:"omitempty,oneof=sas x509"`
}

func TestStruct_Valid(t *testing.T) {
	s := sample{HostName: "myhub.azure-devices.net", APIVersion: "2018-06-30"}
	if err := Struct(s); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStruct_MissingRequired(t *testing.T) {
	err := Struct(sample{APIVersion: "2018-06-30"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.IsCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected invalid input code, got %v", errors.CodeOf(err))
	}
	if !strings.Contains(err.Error(), "hostName") {
		t.Errorf("error should name the json field, got %q", err.Error())
	}
}

func TestStruct_OneOf(t *testing.T) {
	err := Struct(sample{HostName: "h", APIVersion: "v", Mode: "bogus"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "must be one of") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestStruct_FieldDetails(t *testing.T) {
	err := Struct(sample{})
	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("expected *errors.AppError, got %T", err)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 2 {
		t.Fatalf("expected 2 field errors, got %v", appErr.Details["fields"])
	}
}

func TestNonEmpty(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"plain value", "m1", false},
		{"inner whitespace ok", "edge agent", false},
		{"empty", "", true},
		{"spaces", "   ", true},
		{"tabs and newlines", "\t\n ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NonEmpty("moduleId", tt.value)
			if tt.wantErr {
				if !errors.IsCode(err, errors.ErrCodeArgumentEmpty) {
					t.Errorf("expected argument-empty error, got %v", err)
				}
				if err != nil && !strings.Contains(err.Error(), "moduleId") {
					t.Errorf("error should name the argument, got %q", err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
