package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iwvelando/finance-tracker/internal/record"
	"github.com/iwvelando/finance-tracker/pkg/budget"
	"github.com/iwvelando/finance-tracker/pkg/goals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T, format string) (*Renderer, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	r, err := NewRenderer(&buf, format, "")
	require.NoError(t, err)
	return r, &buf
}

func TestNewRendererRejectsUnknownFormat(t *testing.T) {
	_, err := NewRenderer(&bytes.Buffer{}, "xml", "₹")
	assert.Error(t, err)
}

func TestSummaryPretty(t *testing.T) {
	r, buf := newTestRenderer(t, "pretty")
	require.NoError(t, r.Summary(record.Default().Summary(5)))

	out := buf.String()
	for _, want := range []string{
		"₹45,000.00",
		"Budget allocation",
		"₹22,500.00",
		"Remaining: 0%",
		"+₹8,500.00",
		"-₹2,450.00",
		"New Car",
		"₹1,006,522.29",
		"Inflation: latest 4.7% (2025-07), 5-year average 5.3%",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSummaryCSV(t *testing.T) {
	r, buf := newTestRenderer(t, "csv")
	require.NoError(t, r.Summary(record.Default().Summary(5)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "metric,value\n"))
	assert.Contains(t, out, "salary,45000.00\n")
	assert.Contains(t, out, "net,43000.00\n")
	assert.Contains(t, out, "needs,22500.00\n")
	assert.Contains(t, out, "remainingPercent,0\n")
}

func TestSummaryJSON(t *testing.T) {
	r, buf := newTestRenderer(t, "json")
	require.NoError(t, r.Summary(record.Default().Summary(2)))

	var decoded struct {
		Salary             float64         `json:"salary"`
		Net                float64         `json:"net"`
		Budgets            budget.Split    `json:"budgets"`
		RecentTransactions []any           `json:"recentTransactions"`
		Allocation         json.RawMessage `json:"allocation"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 45000.0, decoded.Salary)
	assert.Equal(t, 43000.0, decoded.Net)
	assert.Equal(t, budget.Split{Needs: 50, Wants: 30, Savings: 20}, decoded.Budgets)
	assert.Len(t, decoded.RecentTransactions, 2)
	assert.Contains(t, string(decoded.Allocation), `"isValid": true`)
}

func TestBudget(t *testing.T) {
	over := NewBudgetView(record.Default(), budget.Split{Needs: 60, Wants: 30, Savings: 20})
	under := NewBudgetView(record.Default(), budget.Split{Needs: 40, Wants: 30, Savings: 20})

	tests := []struct {
		name   string
		format string
		view   BudgetView
		want   []string
	}{
		{
			name:   "pretty over-allocated",
			format: "pretty",
			view:   over,
			want:   []string{"₹27,000.00", "Remaining: -10% over-allocated"},
		},
		{
			name:   "pretty under-allocated",
			format: "pretty",
			view:   under,
			want:   []string{"₹18,000.00", "Remaining: 10% unallocated"},
		},
		{
			name:   "csv",
			format: "csv",
			view:   over,
			want:   []string{"category,percent,amount\n", "needs,60,27000.00\n", "remaining,-10,\n"},
		},
		{
			name:   "json",
			format: "json",
			view:   over,
			want:   []string{`"status": "over"`, `"remainingPercent": -10`, `"isValid": false`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, buf := newTestRenderer(t, tt.format)
			require.NoError(t, r.Budget(tt.view))
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	r, buf := newTestRenderer(t, "csv")
	require.NoError(t, r.Presets())
	assert.Equal(t, "name,needs,wants,savings\n50-30-20,50,30,20\n60-20-20,60,20,20\n70-20-10,70,20,10\n", buf.String())

	r, buf = newTestRenderer(t, "pretty")
	require.NoError(t, r.Presets())
	assert.Contains(t, buf.String(), "70-20-10")
}

func TestTransactions(t *testing.T) {
	txs := record.Default().Transactions

	r, buf := newTestRenderer(t, "csv")
	require.NoError(t, r.Transactions(txs))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "id,date,type,category,note,amount", lines[0])
	assert.Equal(t, "1,2023-08-30,expense,Groceries,Grocery Shopping,2450.00", lines[1])

	r, buf = newTestRenderer(t, "json")
	require.NoError(t, r.Transactions(nil))
	assert.Equal(t, "[]\n", buf.String())

	r, buf = newTestRenderer(t, "pretty")
	require.NoError(t, r.Transactions(nil))
	assert.Contains(t, buf.String(), "(none)")
}

func TestGoals(t *testing.T) {
	list := record.Default().Goals

	r, buf := newTestRenderer(t, "csv")
	require.NoError(t, r.Goals(list))
	assert.Contains(t, buf.String(), "1,New Car,inflationAdjusted,800000.00,5,0.047,0.12,1006522.29,12324.31\n")

	r, buf = newTestRenderer(t, "pretty")
	require.NoError(t, r.Goals(list))
	assert.Contains(t, buf.String(), "Inflation-adjusted")
	assert.Contains(t, buf.String(), "₹12,324.31")
}

func TestGoalPreview(t *testing.T) {
	spec := goals.Spec{Kind: goals.KindInflationAdjusted, TargetAmount: 800000, Years: 5, InflationRate: 0.047, ExpectedReturn: 0.12}
	preview := GoalPreview{Spec: spec, Projection: goals.Project(spec)}

	r, buf := newTestRenderer(t, "pretty")
	require.NoError(t, r.GoalPreview(preview))
	assert.Contains(t, buf.String(), "Future value needed: ₹1,006,522")
	assert.Contains(t, buf.String(), "Monthly SIP required: ₹12,324")

	r, buf = newTestRenderer(t, "csv")
	require.NoError(t, r.GoalPreview(preview))
	assert.Equal(t, "futureValue,monthlyContribution\n1006522.29,12324.31\n", buf.String())

	r, buf = newTestRenderer(t, "pretty")
	require.NoError(t, r.GoalPreview(GoalPreview{}))
	assert.Contains(t, buf.String(), "Monthly SIP required: ₹0")
}
