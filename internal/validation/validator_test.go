// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package validation

import (
	"strings"
	"testing"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

// ===================================================================================================
// Request Struct Tests
// ===================================================================================================

func TestSimilarRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       SimilarRequest
		wantErr   bool
		wantField string
		wantTag   string
	}{
		{"valid", SimilarRequest{Movie: "Star Wars (1977)", N: 5}, false, "", ""},
		{"zero n uses default", SimilarRequest{Movie: "Star Wars (1977)"}, false, "", ""},
		{"max n", SimilarRequest{Movie: "A", N: 1000}, false, "", ""},
		{"unicode title", SimilarRequest{Movie: "Amélie (2001)", N: 1}, false, "", ""},
		{"missing movie", SimilarRequest{N: 5}, true, "movie", "required"},
		{"blank movie", SimilarRequest{Movie: "   "}, true, "movie", "movietitle"},
		{"control character", SimilarRequest{Movie: "Star\x00Wars"}, true, "movie", "movietitle"},
		{"title too long", SimilarRequest{Movie: strings.Repeat("a", 513)}, true, "movie", "max"},
		{"negative n", SimilarRequest{Movie: "A", N: -1}, true, "n", "min"},
		{"n too large", SimilarRequest{Movie: "A", N: 1001}, true, "n", "max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("len(Errors()) = %d, want 1: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
		})
	}
}

func TestTopRatedRequest(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	tests := []struct {
		name    string
		req     TopRatedRequest
		wantErr bool
	}{
		{"defaults", TopRatedRequest{}, false},
		{"explicit floor", TopRatedRequest{N: 10, MinRatings: intPtr(50)}, false},
		{"zero floor", TopRatedRequest{MinRatings: intPtr(0)}, false},
		{"negative floor", TopRatedRequest{MinRatings: intPtr(-5)}, true},
		{"negative n", TopRatedRequest{N: -2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// ===================================================================================================
// Error Translation Tests
// ===================================================================================================

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		req  interface{}
		want string
	}{
		{"required", &SimilarRequest{}, "movie is required"},
		{"numeric max", &PopularRequest{N: 5000}, "n must be at most 1000"},
		{"numeric min", &PopularRequest{N: -1}, "n must be at least 0"},
		{"string max", &SimilarRequest{Movie: strings.Repeat("x", 600)}, "movie must be at most 512 characters"},
		{"custom tag", &SimilarRequest{Movie: "\t"}, "movie must be a non-blank title without control characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.req)
			if err == nil {
				t.Fatal("ValidateStruct() expected error, got nil")
			}
			if err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	err := ValidateStruct(&PopularRequest{N: 2000})
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != CodeValidationError {
		t.Errorf("Code = %q, want %q", apiErr.Code, CodeValidationError)
	}
	if apiErr.Details["field"] != "n" {
		t.Errorf("Details[field] = %v, want n", apiErr.Details["field"])
	}
	if apiErr.Details["tag"] != "max" {
		t.Errorf("Details[tag] = %v, want max", apiErr.Details["tag"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	err := ValidateStruct(&SimilarRequest{N: -1})
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != CodeValidationError {
		t.Errorf("Code = %q, want %q", apiErr.Code, CodeValidationError)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Details[fields] type = %T, want []map[string]interface{}", apiErr.Details["fields"])
	}
	if len(fields) != 2 {
		t.Errorf("len(fields) = %d, want 2", len(fields))
	}
	if !strings.Contains(apiErr.Message, "movie is required") || !strings.Contains(apiErr.Message, "n must be at least 0") {
		t.Errorf("Message = %q, want both field messages", apiErr.Message)
	}
}

func TestToAPIError_Empty(t *testing.T) {
	ve := &RequestValidationError{}
	if ve.Error() != "validation failed" {
		t.Errorf("Error() = %q, want validation failed", ve.Error())
	}
	if got := ve.ToAPIError(); got.Code != CodeValidationError || got.Message != "Validation failed" {
		t.Errorf("ToAPIError() = %+v", got)
	}
}
