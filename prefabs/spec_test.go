package prefabs

import (
	"strings"
	"testing"
)

func TestLoadBoardSpec(t *testing.T) {
	spec, err := LoadBoardSpec()
	if err != nil {
		t.Fatalf("LoadBoardSpec: %v", err)
	}
	if spec.SlideSteps != 20 {
		t.Fatalf("slide_steps = %d, want 20", spec.SlideSteps)
	}
	if len(spec.Levels) != 8 {
		t.Fatalf("levels = %d, want 8", len(spec.Levels))
	}

	table := spec.Table()
	if table.Len() != len(spec.Levels) {
		t.Fatalf("table has %d levels, spec has %d", table.Len(), len(spec.Levels))
	}
	if got := table.MapNumberToLevel(42); got != 1 {
		t.Fatalf("MapNumberToLevel(42) = %d, want 1", got)
	}

	names := spec.RefObjNames()
	if len(names) == 0 {
		t.Fatal("no reference object names")
	}
	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			t.Fatalf("duplicate name %q in union", n)
		}
		seen[n] = true
	}
}

func validSpec() BoardSpec {
	obj := func(name string) RefObjSpec {
		return RefObjSpec{Name: name, Scale: 1}
	}
	return BoardSpec{
		SlideSteps: 20,
		Levels: []LevelSpec{
			{Label: "1", Lower: 0, Upper: 10, ScalePerLargeUnit: 1, Right: []RefObjSpec{obj("a")}},
			{Label: "10", Lower: 10, Upper: 100, ScalePerLargeUnit: 10, NavLevel: 1,
				Left:  []RefObjSpec{obj("a")},
				Right: []RefObjSpec{obj("b"), obj("c")}},
			{Label: "100", Lower: 100, Upper: 1000, ScalePerLargeUnit: 100, NavLevel: 2,
				Left:  []RefObjSpec{obj("b"), obj("c")},
				Right: []RefObjSpec{obj("d")}},
		},
	}
}

func TestBoardSpecValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*BoardSpec)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*BoardSpec) {},
		},
		{
			name:    "no_levels",
			mutate:  func(s *BoardSpec) { s.Levels = nil },
			wantErr: "no levels",
		},
		{
			name:    "inverted_range",
			mutate:  func(s *BoardSpec) { s.Levels[1].Upper = 5 },
			wantErr: "must exceed",
		},
		{
			name:    "gap_between_ranges",
			mutate:  func(s *BoardSpec) { s.Levels[2].Lower = 200 },
			wantErr: "gap",
		},
		{
			name:    "lowest_level_with_left",
			mutate:  func(s *BoardSpec) { s.Levels[0].Left = []RefObjSpec{{Name: "x", Scale: 1}} },
			wantErr: "no left candidates",
		},
		{
			name:    "left_length_mismatch",
			mutate:  func(s *BoardSpec) { s.Levels[2].Left = s.Levels[2].Left[:1] },
			wantErr: "entries",
		},
		{
			name:    "left_name_mismatch",
			mutate:  func(s *BoardSpec) { s.Levels[2].Left[0].Name = "z" },
			wantErr: "previous right",
		},
		{
			name:    "empty_right",
			mutate:  func(s *BoardSpec) { s.Levels[2].Right = nil },
			wantErr: "right candidate",
		},
		{
			name: "duplicate_candidate",
			mutate: func(s *BoardSpec) {
				s.Levels[1].Right[1].Name = "b"
				s.Levels[2].Left[1].Name = "b"
			},
			wantErr: "duplicate",
		},
		{
			name:    "nonpositive_scale",
			mutate:  func(s *BoardSpec) { s.Levels[1].Right[0].Scale = 0 },
			wantErr: "positive scale",
		},
		{
			name:    "negative_slide_steps",
			mutate:  func(s *BoardSpec) { s.SlideSteps = -1 },
			wantErr: "slide_steps",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := validSpec()
			c.mutate(&spec)
			err := spec.Validate()
			if c.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("error %q does not mention %q", err, c.wantErr)
			}
		})
	}
}
