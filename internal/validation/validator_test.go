// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/tomtom215/streakstats/internal/streak"
)

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

type statsQuery struct {
	User         string `param:"user" validate:"required,ghuser"`
	StartingYear int    `param:"starting_year" validate:"omitempty,gte=2005,lte=9999"`
	Mode         string `param:"mode" validate:"oneof=daily weekly"`
	ExcludeDays  string `param:"exclude_days" validate:"omitempty,weekdays"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     statsQuery
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{"minimal", statsQuery{User: "octocat", Mode: "daily"}, "", "", ""},
		{"full", statsQuery{User: "Dale-Carnegie-42", StartingYear: 2019, Mode: "weekly", ExcludeDays: "Sun, sat"}, "", "", ""},
		{"max length user", statsQuery{User: strings.Repeat("a", 39), Mode: "daily"}, "", "", ""},
		{"missing user", statsQuery{Mode: "daily"}, "user", "required", "user is required"},
		{"user too long", statsQuery{User: strings.Repeat("a", 40), Mode: "daily"}, "user", "ghuser", "up to 39"},
		{"user with underscore", statsQuery{User: "octo_cat", Mode: "daily"}, "user", "ghuser", "GitHub username"},
		{"year too early", statsQuery{User: "octocat", StartingYear: 1999, Mode: "daily"}, "starting_year", "gte", "starting_year must be at least 2005"},
		{"year too late", statsQuery{User: "octocat", StartingYear: 10000, Mode: "daily"}, "starting_year", "lte", "starting_year must be at most 9999"},
		{"unknown mode", statsQuery{User: "octocat", Mode: "monthly"}, "mode", "oneof", "mode must be one of: daily, weekly"},
		{"bad weekday", statsQuery{User: "octocat", Mode: "daily", ExcludeDays: "Sun,Funday"}, "exclude_days", "weekdays", "days of the week"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.input)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("ValidateStruct() = nil, want %s/%s failure", tt.wantField, tt.wantTag)
			}
			if len(verr.Fields) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(verr.Fields), verr)
			}
			fe := verr.Fields[0]
			if fe.Field != tt.wantField || fe.Tag != tt.wantTag {
				t.Errorf("got %s/%s, want %s/%s", fe.Field, fe.Tag, tt.wantField, tt.wantTag)
			}
			if !strings.Contains(fe.Error(), tt.wantMsg) {
				t.Errorf("message = %q, want it to contain %q", fe.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateStruct_GoFieldNameWithoutParamTag(t *testing.T) {
	type bare struct {
		Output string `validate:"oneof=table json"`
	}

	verr := ValidateStruct(&bare{Output: "yaml"})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if got := verr.Error(); got != "Output must be one of: table, json" {
		t.Errorf("Error() = %q", got)
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	verr := ValidateStruct(&statsQuery{User: "bad user", Mode: "hourly"})
	if verr == nil {
		t.Fatal("expected validation errors")
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("got %d errors, want 2", len(verr.Fields))
	}
	if !strings.Contains(verr.Error(), "; ") {
		t.Errorf("combined message should join errors: %q", verr.Error())
	}
}

func TestRequestValidationError_ToStreakError(t *testing.T) {
	verr := ValidateStruct(&statsQuery{User: "octocat", Mode: "daily", StartingYear: 1990})
	if verr == nil {
		t.Fatal("expected validation error")
	}

	err := verr.ToStreakError()
	if !errors.Is(err, streak.ErrInvalidInput) {
		t.Errorf("ToStreakError() = %v, want InvalidInput", err)
	}
	if streak.StatusOf(err) != 400 {
		t.Errorf("StatusOf = %d, want 400", streak.StatusOf(err))
	}
	if streak.MessageOf(err) != "starting_year must be at least 2005" {
		t.Errorf("message = %q", streak.MessageOf(err))
	}
}

func TestRequestValidationError_Empty(t *testing.T) {
	var verr RequestValidationError
	if verr.Error() != "validation failed" {
		t.Errorf("Error() = %q", verr.Error())
	}
}
