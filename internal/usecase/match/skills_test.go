package match

import (
	"reflect"
	"testing"
)

func TestMatchSkills(t *testing.T) {
	tests := []struct {
		name        string
		required    string
		candidate   string
		wantMatched []string
		wantMissing []string
		wantScore   float64
	}{
		{
			name:        "partial overlap case-insensitive",
			required:    "React,Node,SQL",
			candidate:   "react, sql, python",
			wantMatched: []string{"react", "sql"},
			wantMissing: []string{"node"},
			wantScore:   2.0 / 3.0,
		},
		{
			name:        "full match",
			required:    "go, redis",
			candidate:   "Redis,Go",
			wantMatched: []string{"go", "redis"},
			wantMissing: []string{},
			wantScore:   1,
		},
		{
			name:        "no overlap",
			required:    "rust",
			candidate:   "cobol",
			wantMatched: []string{},
			wantMissing: []string{"rust"},
			wantScore:   0,
		},
		{
			name:        "empty required scores zero",
			required:    "",
			candidate:   "go, redis",
			wantMatched: []string{},
			wantMissing: []string{},
			wantScore:   0,
		},
		{
			name:        "empty candidate",
			required:    "go",
			candidate:   "",
			wantMatched: []string{},
			wantMissing: []string{"go"},
			wantScore:   0,
		},
		{
			name:        "whitespace and empty entries ignored",
			required:    " go , , redis ",
			candidate:   "GO,  redis  ",
			wantMatched: []string{"go", "redis"},
			wantMissing: []string{},
			wantScore:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchSkills(tt.required, tt.candidate)
			if !reflect.DeepEqual(got.Matched, tt.wantMatched) {
				t.Errorf("matched = %v, want %v", got.Matched, tt.wantMatched)
			}
			if !reflect.DeepEqual(got.Missing, tt.wantMissing) {
				t.Errorf("missing = %v, want %v", got.Missing, tt.wantMissing)
			}
			if diff := got.Score - tt.wantScore; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("score = %v, want %v", got.Score, tt.wantScore)
			}
		})
	}
}

func TestMatchSkills_OrderFollowsRequiredList(t *testing.T) {
	got := MatchSkills("c,b,a", "a,b,c")
	want := []string{"c", "b", "a"}
	if !reflect.DeepEqual(got.Matched, want) {
		t.Errorf("matched = %v, want required-list order %v", got.Matched, want)
	}
}
