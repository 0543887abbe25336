package planner

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyhub/internal/analytics"
	"github.com/abhisek/studyhub/internal/history"
)

func TestGenerate_EmptySubjects(t *testing.T) {
	plan := Generate(Unweighted(), 60, nil, analytics.PersonaUniversal)
	require.NotNil(t, plan)
	assert.Empty(t, plan)

	plan = Generate(Subjects{}, 60, map[string]bool{}, analytics.PersonaUniversal)
	assert.Empty(t, plan)
}

func TestGenerate_SingleWeakSubject(t *testing.T) {
	plan := Generate(Weighted(Subject{"Math", history.DifficultyWeak}), 60, nil, analytics.PersonaUniversal)

	require.Len(t, plan, 1)
	assert.Equal(t, PlanBlock{Subject: "Math", Minutes: 60, SessionID: 1, Difficulty: history.DifficultyWeak}, plan[0])
}

func TestGenerate_SplitsLongAllocations(t *testing.T) {
	plan := Generate(Unweighted("Math", "Physics"), 200, nil, analytics.PersonaUniversal)

	require.Len(t, plan, 6)
	want := []PlanBlock{
		{"Math", 40, 1, history.DifficultyAverage},
		{"Math", 40, 2, history.DifficultyAverage},
		{"Math", 20, 3, history.DifficultyAverage},
		{"Physics", 40, 1, history.DifficultyAverage},
		{"Physics", 40, 2, history.DifficultyAverage},
		{"Physics", 20, 3, history.DifficultyAverage},
	}
	assert.Equal(t, want, plan)
	assert.Equal(t, 200, TotalMinutes(plan))
}

func TestGenerate_BlockSizeByPersona(t *testing.T) {
	tests := []struct {
		persona analytics.Persona
		minutes int
		want    []int
	}{
		{analytics.PersonaMarathon, 90, []int{90}},
		{analytics.PersonaMarathon, 100, []int{60, 40}},
		{analytics.PersonaMarathon, 130, []int{60, 70}},
		{analytics.PersonaSprinter, 83, []int{25, 25, 33}},
		{analytics.PersonaSprinter, 37, []int{37}},
		{analytics.PersonaSprinter, 38, []int{38}},
		{analytics.PersonaMorning, 61, []int{40, 21}},
		{analytics.PersonaNightOwl, 60, []int{60}},
	}

	for _, tt := range tests {
		t.Run(string(tt.persona), func(t *testing.T) {
			plan := Generate(Unweighted("Math"), tt.minutes, nil, tt.persona)
			var got []int
			for i, b := range plan {
				got = append(got, b.Minutes)
				assert.Equal(t, i+1, b.SessionID)
				assert.GreaterOrEqual(t, b.Minutes, MinBlockMinutes)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.minutes, TotalMinutes(plan))
		})
	}
}

func TestGenerate_Marathon130FoldsRemainder(t *testing.T) {
	plan := Generate(Unweighted("Math"), 130, nil, analytics.PersonaMarathon)
	require.Len(t, plan, 2)
	assert.Equal(t, 70, plan[1].Minutes)
}

func TestGenerate_ReinforcesSkippedSubjects(t *testing.T) {
	subjects := Unweighted("Math", "Art")
	plain := Generate(subjects, 70, nil, analytics.PersonaUniversal)
	boosted := Generate(subjects, 70, map[string]bool{"Art": false, "Math": true}, analytics.PersonaUniversal)

	require.Len(t, plain, 2)
	require.Len(t, boosted, 2)
	assert.Equal(t, plain[0].Minutes, plain[1].Minutes)
	assert.Equal(t, "Math", boosted[0].Subject)
	assert.Equal(t, "Art", boosted[1].Subject)
	assert.Greater(t, boosted[1].Minutes, boosted[0].Minutes)
}

func TestGenerate_DropsTinyAllocations(t *testing.T) {
	subjects := Weighted(
		Subject{"Math", history.DifficultyWeak},
		Subject{"Art", history.DifficultyStrong},
	)
	plan := Generate(subjects, 30, nil, analytics.PersonaUniversal)

	require.Len(t, plan, 1)
	assert.Equal(t, "Math", plan[0].Subject)
	assert.Equal(t, 21, plan[0].Minutes)
}

func TestGenerate_NeverExceedsBudget(t *testing.T) {
	subjects := Weighted(
		Subject{"Math", history.DifficultyWeak},
		Subject{"Physics", history.DifficultyAverage},
		Subject{"Art", history.DifficultyStrong},
		Subject{"History", history.DifficultyAverage},
	)
	lastDay := map[string]bool{"Physics": false}

	for _, persona := range analytics.AllPersonas() {
		for total := 0; total <= 400; total += 7 {
			plan := Generate(subjects, total, lastDay, persona)
			sum := TotalMinutes(plan)
			assert.LessOrEqual(t, sum, total)

			seen := map[string]int{}
			for _, b := range plan {
				seen[b.Subject]++
				assert.Equal(t, seen[b.Subject], b.SessionID)
				assert.GreaterOrEqual(t, b.Minutes, MinBlockMinutes)
			}
		}
	}
}

func TestSubjects_UnmarshalList(t *testing.T) {
	var s Subjects
	require.NoError(t, json.Unmarshal([]byte(`["Math","Physics","Math"]`), &s))

	assert.False(t, s.IsWeighted())
	assert.Equal(t, []string{"Math", "Physics"}, s.Names())
	for _, e := range s.Entries() {
		assert.Equal(t, history.DifficultyAverage, e.Difficulty)
	}
}

func TestSubjects_UnmarshalObjectKeepsOrder(t *testing.T) {
	var s Subjects
	require.NoError(t, json.Unmarshal([]byte(`{"Zoology":"weak","Algebra":"strong","Music":"fuzzy"}`), &s))

	assert.True(t, s.IsWeighted())
	assert.Equal(t, []Subject{
		{"Zoology", history.DifficultyWeak},
		{"Algebra", history.DifficultyStrong},
		{"Music", history.DifficultyAverage},
	}, s.Entries())
}

func TestSubjects_UnmarshalRejectsScalars(t *testing.T) {
	var s Subjects
	assert.Error(t, json.Unmarshal([]byte(`"Math"`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{"Math":3}`), &s))
}

func TestSubjects_MarshalRoundTripsForm(t *testing.T) {
	b, err := json.Marshal(Weighted(Subject{"B", history.DifficultyWeak}, Subject{"A", history.DifficultyStrong}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"B":"weak","A":"strong"}`, string(b))

	b, err = json.Marshal(Unweighted("B", "A"))
	require.NoError(t, err)
	assert.Equal(t, `["B","A"]`, string(b))
}

func TestGenerate_SplitFoldsIntoSingleBlock(t *testing.T) {
	// 38 > 1.5*25 splits into 25+13; the short tail folds back in.
	plan := Generate(Unweighted("Math"), 38, nil, analytics.PersonaSprinter)
	require.Len(t, plan, 1)
	assert.Equal(t, PlanBlock{Subject: "Math", Minutes: 38, SessionID: 1, Difficulty: history.DifficultyAverage}, plan[0])
}
