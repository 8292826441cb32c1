package catalog

import (
	"reflect"
	"testing"
)

func TestDependenciesMet(t *testing.T) {
	req := Requirement{
		ID:           "university_acceptance_letter",
		Dependencies: []string{"sat_scores", "academic_transcripts", "toefl_ielts"},
	}

	tests := []struct {
		name      string
		completed map[string]bool
		want      bool
	}{
		{"全部前置完成", map[string]bool{"sat_scores": true, "academic_transcripts": true, "toefl_ielts": true}, true},
		{"缺一个前置", map[string]bool{"sat_scores": true, "academic_transcripts": true}, false},
		{"前置存在但为 false", map[string]bool{"sat_scores": true, "academic_transcripts": true, "toefl_ielts": false}, false},
		{"完成集为空", map[string]bool{}, false},
		{"完成集为 nil", nil, false},
		{"无关条目不影响判定", map[string]bool{"sat_scores": true, "academic_transcripts": true, "toefl_ielts": true, "minimum_gpa": false}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DependenciesMet(req, tt.completed); got != tt.want {
				t.Errorf("DependenciesMet() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDependenciesMetNoDeps(t *testing.T) {
	req := Requirement{ID: "minimum_gpa"}
	if !DependenciesMet(req, nil) {
		t.Error("requirement without dependencies should always be satisfiable")
	}
}

func TestUnmetDependencies(t *testing.T) {
	req := Requirement{
		ID:           "university_acceptance_letter",
		Dependencies: []string{"sat_scores", "academic_transcripts", "toefl_ielts"},
	}

	tests := []struct {
		name      string
		completed map[string]bool
		want      []string
	}{
		{"全缺", nil, []string{"sat_scores", "academic_transcripts", "toefl_ielts"}},
		{"缺两个，保持声明顺序", map[string]bool{"academic_transcripts": true}, []string{"sat_scores", "toefl_ielts"}},
		{"全部满足", map[string]bool{"sat_scores": true, "academic_transcripts": true, "toefl_ielts": true}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnmetDependencies(req, tt.completed)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("UnmetDependencies() = %v, want %v", got, tt.want)
			}
		})
	}
}
