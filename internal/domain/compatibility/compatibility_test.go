package compatibility

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSkills(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"blank", "   ", []string{}},
		{"trim and lower", " Python ,SQL,  Machine Learning", []string{"python", "sql", "machine learning"}},
		{"drops empty tokens", "Go,, ,Rust,", []string{"go", "rust"}},
		{"keeps duplicates", "sql, SQL", []string{"sql", "sql"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSkills(tt.in))
		})
	}
}

func TestScoreSkills(t *testing.T) {
	tests := []struct {
		name      string
		candidate []string
		required  []string
		want      float64
	}{
		{"no candidate skills", nil, []string{"python"}, 0},
		{"no required skills", []string{"python"}, nil, 0},
		{"both empty", nil, nil, 0},
		{"case insensitive exact", []string{"python"}, []string{"Python"}, 100},
		{"candidate inside required", []string{"java"}, []string{"javascript"}, 100},
		{"required inside candidate", []string{"javascript"}, []string{"java"}, 100},
		{"partial", []string{"sql", "excel"}, []string{"SQL", "Power BI", "Excel"}, 200.0 / 3},
		{"whitespace only entries ignored", []string{"  "}, []string{"python"}, 0},
		{"no overlap", []string{"rust"}, []string{"python", "django"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ScoreSkills(tt.candidate, tt.required), 1e-9)
		})
	}
}

func TestScore_Text(t *testing.T) {
	assert.InDelta(t, 66.67, Round(Score("Python, SQL", "Python, Django, SQL")), 1e-9)
	assert.Equal(t, 0.0, Score("Python", ""))
	assert.Equal(t, 0.0, Score("", "Python"))
	assert.Equal(t, 100.0, Score("Python, Python", "python"))
}

func TestScore_NeverExceedsHundred(t *testing.T) {
	s := Score("a, ab, abc, abcd", "a, a, a")
	assert.Equal(t, 100.0, s)
}

func TestSkillGaps(t *testing.T) {
	assert.Equal(t, []string{"sql"}, SkillGapsList([]string{"python"}, []string{"Python", "SQL"}))
	assert.Equal(t, []string{"django"}, SkillGaps("Python, SQL", "Python, Django, SQL"))
	assert.Equal(t, []string{}, SkillGaps("Python", ""))
	assert.Equal(t, []string{"go", "go"}, SkillGaps("", "Go, go"))
}

func TestEvaluate(t *testing.T) {
	res := Evaluate("Excel, Power BI, Marketing", "SQL, Power BI, Excel")
	assert.InDelta(t, 66.67, Round(res.Score), 1e-9)
	assert.Equal(t, []string{"power bi", "excel"}, res.Matched)
	assert.Equal(t, []string{"sql"}, res.Gaps)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 66.67, Round(200.0/3))
	assert.Equal(t, 33.33, Round(100.0/3))
	assert.Equal(t, 100.0, Round(100))
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.InDelta(t, 200.0/3, Score("sql, excel", "SQL, Power BI, Excel"), 1e-9)
		}()
	}
	wg.Wait()
}
