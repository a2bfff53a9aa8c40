package domain

import "testing"

func TestParseDuplicatePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    DuplicatePolicy
		wantErr bool
	}{
		{"", DuplicatesCountAll, false},
		{"count_all", DuplicatesCountAll, false},
		{"keep_first", DuplicatesKeepFirst, false},
		{"keep_last", DuplicatesKeepLast, false},
		{"dedupe", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDuplicatePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseDuplicatePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseDuplicatePolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuestion_View(t *testing.T) {
	q := Question{ID: 7, Prompt: "2+2?", Options: []string{"3", "4"}, CorrectAnswer: "4"}
	v := q.View()

	if v.ID != 7 || v.Prompt != "2+2?" || len(v.Options) != 2 {
		t.Fatalf("unexpected view %+v", v)
	}
	v.Options[0] = "5"
	if q.Options[0] != "3" {
		t.Fatalf("view shares options with question")
	}
}

func TestQuestion_HasOption(t *testing.T) {
	q := Question{Options: []string{"a", "b"}}
	if !q.HasOption("a") || q.HasOption("A") || q.HasOption("c") {
		t.Fatalf("HasOption mismatch")
	}
}
