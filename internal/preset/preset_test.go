package preset

import (
	"errors"
	"testing"

	"github.com/alexanderramin/gradeplan/internal/optimizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"finals", "fresh", "semester"}, Names())
}

func TestEveryPresetIsBalanced(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			set, err := Get(name)
			require.NoError(t, err)
			require.NotNil(t, set.BudgetHours)
			assert.NoError(t, optimizer.CheckWeightSum(set.Activities))
		})
	}
}

func TestGet_Semester(t *testing.T) {
	set, err := Get("semester")
	require.NoError(t, err)

	require.Len(t, set.Activities, 4)
	assert.Equal(t, 10.0, *set.BudgetHours)
	assert.Equal(t, "Prova 1", set.Activities[0].Name)
	assert.True(t, set.Activities[0].Done)
	assert.Equal(t, 8.0, *set.Activities[0].Grade)
	assert.False(t, set.Activities[2].Done)
}

func TestGet_ReturnsFreshCopies(t *testing.T) {
	a, err := Get("semester")
	require.NoError(t, err)
	a.Activities[0].Name = "changed"

	b, err := Get("semester")
	require.NoError(t, err)
	assert.Equal(t, "Prova 1", b.Activities[0].Name)
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPreset))
	assert.Contains(t, err.Error(), "semester")
}

func TestNext_Wraps(t *testing.T) {
	assert.Equal(t, "fresh", Next("finals"))
	assert.Equal(t, "finals", Next("semester"))
	assert.Equal(t, "finals", Next("unknown"))
}
